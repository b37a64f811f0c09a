//go:build !windows

package mdrsort

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// writeAtomic writes path through a pending file in the same directory and
// swaps it into place once the data is synced. A failed write never leaves a
// partial file under the final name.
func writeAtomic(path string, perm fs.FileMode, write func(w io.Writer) error) error {
	t, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create temp file for %q: %w", path, err)
	}
	defer t.Cleanup()

	if err := write(t); err != nil {
		return err
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %q: %w", path, err)
	}
	return nil
}

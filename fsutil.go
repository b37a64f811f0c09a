package mdrsort

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// exists reports whether path names an existing file system entry.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// renameNoClobber renames src to dst, refusing to replace an existing dst.
func renameNoClobber(src, dst string) error {
	if exists(dst) {
		return fmt.Errorf("rename %q to %q: %w", src, dst, ErrDestinationExists)
	}
	return os.Rename(src, dst)
}

// moveFile relocates src into dir under the same base name. The move is
// all-or-nothing: either dst holds the full content and src is gone, or
// src is untouched and dst does not exist.
func moveFile(src, dir string) (string, error) {
	dst := filepath.Join(dir, filepath.Base(src))
	if exists(dst) {
		return "", fmt.Errorf("move %q: %w", src, ErrDestinationExists)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return dst, nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !isCrossDevice(linkErr.Err) {
		return "", fmt.Errorf("move %q: %w", src, err)
	}

	// Different file systems: copy, then drop the source.
	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("move %q: %w", src, err)
	}
	if err := os.Remove(src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("move %q: remove source: %w", src, err)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	return writeAtomic(dst, info.Mode().Perm(), func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}

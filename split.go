package mdrsort

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Splitter expands multi-sheet workbooks into one single-sheet xlsx file
// per sheet, deleting the source once every sheet is written.
type Splitter struct {
	retry    RetryPolicy
	sleep    func(time.Duration)
	readFile ReadFileFunc
	log      zerolog.Logger
}

// NewSplitter creates a Splitter configured by opts.
func NewSplitter(opts ...Option) *Splitter {
	o := buildOptions(opts)
	return &Splitter{
		retry:    o.retry,
		sleep:    o.sleep,
		readFile: o.readFile,
		log:      o.logger,
	}
}

// Split splits the workbook at path. A workbook with at most one sheet is
// left alone and yields no paths. The whole open-and-split attempt is
// retried while the source is locked; once retries run out the source is
// untouched and the error wraps ErrRetriesExhausted. Any other failure
// removes the outputs written so far and keeps the source.
func (s *Splitter) Split(path string) ([]string, error) {
	var created []string
	err := s.retry.Do(s.sleep, func(attempt int, err error) {
		s.log.Warn().Str("file", filepath.Base(path)).Int("attempt", attempt).Err(err).
			Msg("file in use, retrying")
	}, func() error {
		var err error
		created, err = s.splitOnce(path)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrRetriesExhausted) {
			s.log.Error().Str("file", filepath.Base(path)).Err(err).Msg("could not access file after retries")
		}
		return nil, err
	}
	return created, nil
}

func (s *Splitter) splitOnce(path string) ([]string, error) {
	wb, err := OpenTabular(path, s.readFile)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if !wb.Format().IsWorkbook() {
		return nil, nil
	}
	sheets := wb.SheetNames()
	if len(sheets) <= 1 {
		s.log.Debug().Str("file", filepath.Base(path)).Msg("single sheet, no split needed")
		return nil, nil
	}

	var created []string
	rollback := func() {
		for _, p := range created {
			os.Remove(p)
		}
	}

	dir := filepath.Dir(path)
	base := stem(path)
	taken := make(map[string]bool, len(sheets))
	for i, sheet := range sheets {
		grid, err := wb.Sheet(sheet)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("split %q: %w", path, err)
		}

		name := splitFileName(dir, base, sheet, i, taken)
		out := filepath.Join(dir, name)
		if err := WriteWorkbook(out, sheet, grid); err != nil {
			rollback()
			return nil, fmt.Errorf("split %q: %w", path, err)
		}
		created = append(created, out)
		s.log.Info().Str("file", name).Str("sheet", sheet).Msg("created")
	}

	if err := os.Remove(path); err != nil {
		rollback()
		return nil, fmt.Errorf("delete split source %q: %w", path, err)
	}
	s.log.Info().Str("file", filepath.Base(path)).Int("sheets", len(sheets)).Msg("deleted original file")
	return created, nil
}

// splitFileName builds "<stem>_<safe sheet>.xlsx" inside dir. Sheets whose
// names sanitize to nothing fall back to their position. Names already
// used by this split or present in dir get a numeric suffix, so no sheet
// overwrites an existing file.
func splitFileName(dir, base, sheet string, index int, taken map[string]bool) string {
	safe := SanitizeSheetName(sheet)
	if safe == "" {
		safe = "Sheet" + strconv.Itoa(index+1)
	}
	used := func(name string) bool {
		return taken[name] || exists(filepath.Join(dir, name))
	}
	name := base + "_" + safe + ".xlsx"
	for n := 2; used(name); n++ {
		name = base + "_" + safe + "_" + strconv.Itoa(n) + ".xlsx"
	}
	taken[name] = true
	return name
}

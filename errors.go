package mdrsort

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Sentinel errors for pipeline operations.
var (
	// ErrUnsupportedFormat indicates a file extension no reader handles.
	ErrUnsupportedFormat = errors.New("unsupported tabular format")
	// ErrNoSheets indicates a workbook without any sheet.
	ErrNoSheets = errors.New("workbook has no sheets")
	// ErrSheetNotFound indicates a sheet name not present in the workbook.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrRetriesExhausted indicates a transient condition outlived the retry policy.
	ErrRetriesExhausted = errors.New("retries exhausted")
	// ErrDestinationExists indicates a rename or move target is already taken.
	ErrDestinationExists = errors.New("destination already exists")
	// ErrNilGrid indicates classification was asked to inspect no data.
	ErrNilGrid = errors.New("grid is nil")
	// ErrMultiSheet indicates a workbook that still holds more than one sheet.
	ErrMultiSheet = errors.New("workbook has multiple sheets")
)

// ParseError reports a file that could not be read as tabular data.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s file %q: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// lockedError marks a read that failed because another process holds the
// file open.
type lockedError struct{ err error }

func (e *lockedError) Error() string { return e.err.Error() }

func (e *lockedError) Unwrap() error { return e.err }

// IsTransient reports whether err is a read blocked by another process
// holding the file. Only OpenTabular marks errors this way, so failures
// while writing outputs or deleting sources are never retried.
func IsTransient(err error) bool {
	var le *lockedError
	return errors.As(err, &le)
}

// looksLocked reports whether a read failure means another process holds
// the file.
func looksLocked(err error) bool {
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return isLockErrno(errno)
	}
	return false
}

//go:build unix

package mdrsort

import (
	"errors"
	"syscall"
)

func isLockErrno(errno syscall.Errno) bool {
	switch errno {
	case syscall.EACCES, syscall.EPERM, syscall.EBUSY, syscall.ETXTBSY, syscall.EAGAIN:
		return true
	}
	return false
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

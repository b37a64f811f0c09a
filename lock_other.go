//go:build !unix && !windows

package mdrsort

import "syscall"

func isLockErrno(syscall.Errno) bool { return false }

func isCrossDevice(error) bool { return false }

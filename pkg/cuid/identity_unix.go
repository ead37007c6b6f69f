//go:build linux || darwin || freebsd || netbsd || openbsd

package cuid

import "golang.org/x/sys/unix"

func platformIdentity() []string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil
	}
	return []string{
		unix.ByteSliceToString(uts.Sysname[:]),
		unix.ByteSliceToString(uts.Nodename[:]),
		unix.ByteSliceToString(uts.Release[:]),
		unix.ByteSliceToString(uts.Version[:]),
		unix.ByteSliceToString(uts.Machine[:]),
	}
}

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package cuid

import "runtime"

func platformIdentity() []string {
	return []string{runtime.GOOS, runtime.GOARCH}
}

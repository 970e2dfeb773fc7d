//go:build unix

package backend

import "golang.org/x/sys/unix"

// executable reports whether path exists and may be executed by the
// current user.
func executable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}

//go:build !unix

package backend

import "os"

func executable(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

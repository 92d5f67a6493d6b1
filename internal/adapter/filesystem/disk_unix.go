//go:build linux || darwin || freebsd || dragonfly || aix

package filesystem

import (
	"golang.org/x/sys/unix"
)

// availableBytes uses statfs; Bavail excludes blocks reserved for root.
func availableBytes(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, err
	}

	bsize := uint64(stat.Bsize)
	if bsize == 0 {
		bsize = 1
	}
	return uint64(stat.Bavail) * bsize, nil
}

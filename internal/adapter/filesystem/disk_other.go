//go:build !linux && !darwin && !freebsd && !dragonfly && !aix

package filesystem

import (
	"github.com/shirou/gopsutil/v3/disk"
)

// availableBytes uses the platform disk usage call, whose Free field
// is the space available to the calling user.
func availableBytes(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

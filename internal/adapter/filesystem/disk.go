package filesystem

import (
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/vertextoedge/pixi-assistant/internal/port"
)

// DiskSpace queries the operating system for free space
type DiskSpace struct {
	logger *zap.Logger
}

// Ensure DiskSpace implements port.SpaceProvider
var _ port.SpaceProvider = (*DiskSpace)(nil)

// NewDiskSpace creates a new DiskSpace provider
func NewDiskSpace(logger *zap.Logger) *DiskSpace {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiskSpace{logger: logger}
}

// AvailableBytes returns the bytes available to the calling user on the
// volume containing path. Platform-specific lookup in disk_unix.go and disk_other.go.
func (d *DiskSpace) AvailableBytes(path string) (uint64, error) {
	available, err := availableBytes(path)
	if err != nil {
		return 0, err
	}

	d.logger.Debug("queried available space",
		zap.String("path", path),
		zap.Uint64("bytes", available),
		zap.String("human", humanize.IBytes(available)),
	)
	return available, nil
}

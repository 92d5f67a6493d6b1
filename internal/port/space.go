package port

import (
	"context"

	"github.com/vertextoedge/pixi-assistant/internal/domain"
)

// SpaceProvider reports free space on the volume holding a path
type SpaceProvider interface {
	// AvailableBytes returns the bytes usable by the calling user
	// on the volume containing path.
	AvailableBytes(path string) (uint64, error)
}

// SpaceChecker defines the interface for the space check operation
type SpaceChecker interface {
	// Check resolves the cache directory and compares its free space to minGB.
	// A result is returned with a nil error only when every step succeeded;
	// HasSpace then tells whether the threshold was met.
	Check(ctx context.Context, minGB float64) (*domain.CheckResult, error)
}

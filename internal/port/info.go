package port

import (
	"context"

	"github.com/vertextoedge/pixi-assistant/internal/domain"
)

// InfoFetcher obtains the package manager's status information
type InfoFetcher interface {
	// FetchInfo runs the info query and returns the decoded result.
	// Errors are *domain.CheckError values of kind ErrLaunch,
	// ErrCommandFailed, ErrTimeout or ErrDecode.
	FetchInfo(ctx context.Context) (*domain.Info, error)
}

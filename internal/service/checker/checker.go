package checker

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/vertextoedge/pixi-assistant/internal/domain"
	"github.com/vertextoedge/pixi-assistant/internal/domain/vo"
	"github.com/vertextoedge/pixi-assistant/internal/port"
)

// Checker resolves the cache directory and compares its free space to a threshold
type Checker struct {
	info   port.InfoFetcher
	space  port.SpaceProvider
	logger *zap.Logger
}

// Ensure Checker implements port.SpaceChecker
var _ port.SpaceChecker = (*Checker)(nil)

// New creates a new Checker
func New(info port.InfoFetcher, space port.SpaceProvider, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		info:   info,
		space:  space,
		logger: logger,
	}
}

// Check runs the pipeline once. It stops at the first failure and never
// queries space when the info command did not produce a cache directory.
func (c *Checker) Check(ctx context.Context, minGB float64) (*domain.CheckResult, error) {
	if err := vo.ValidateGB(minGB); err != nil {
		return nil, domain.NewCheckError(domain.ErrInvalidInput,
			fmt.Sprintf("Error: invalid --gb value %v: %v", minGB, err), err)
	}

	info, err := c.info.FetchInfo(ctx)
	if err != nil {
		return nil, err
	}

	available, err := c.space.AvailableBytes(info.CacheDir)
	if err != nil {
		return nil, domain.NewCheckError(domain.ErrSpaceQuery,
			fmt.Sprintf("Error: Failed to get available space for %s: %v", info.CacheDir, err), err)
	}

	result := domain.NewCheckResult(info.CacheDir, vo.NewSize(available), minGB)

	c.logger.Debug("space check complete",
		zap.String("cache_dir", result.CacheDir),
		zap.String("available", humanize.IBytes(available)),
		zap.Float64("available_gb", result.AvailableGB()),
		zap.Float64("required_gb", result.RequiredGB),
		zap.Bool("has_space", result.HasSpace),
	)
	return result, nil
}

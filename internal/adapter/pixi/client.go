package pixi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/vertextoedge/pixi-assistant/internal/domain"
	"github.com/vertextoedge/pixi-assistant/internal/port"
)

// DefaultBinary is the package manager executable looked up on PATH.
const DefaultBinary = "pixi"

// Client runs `pixi info --json` and decodes its output
type Client struct {
	binary         string
	timeout        time.Duration
	logger         *zap.Logger
	commandContext func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// Ensure Client implements port.InfoFetcher
var _ port.InfoFetcher = (*Client)(nil)

// ClientConfig contains optional client configuration
type ClientConfig struct {
	Binary  string        // Executable name or path (default: pixi)
	Timeout time.Duration // Zero waits for the command indefinitely
}

// NewClientWithConfig creates a client; a nil cfg runs the default binary with no timeout
func NewClientWithConfig(cfg *ClientConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		binary:         DefaultBinary,
		logger:         logger,
		commandContext: exec.CommandContext,
	}
	if cfg != nil {
		if cfg.Binary != "" {
			c.binary = cfg.Binary
		}
		if cfg.Timeout > 0 {
			c.timeout = cfg.Timeout
		}
	}
	return c
}

// FetchInfo runs the info command and decodes the cache directory from its output.
func (c *Client) FetchInfo(ctx context.Context) (*domain.Info, error) {
	out, err := c.run(ctx)
	if err != nil {
		return nil, err
	}

	info, err := DecodeInfo(out)
	if err != nil {
		c.logger.Debug("failed to decode info output",
			zap.ByteString("stdout", out),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("resolved cache directory", zap.String("cache_dir", info.CacheDir))
	return info, nil
}

// run executes the command and returns its captured standard output.
func (c *Client) run(ctx context.Context) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := c.commandContext(ctx, c.binary, "info", "--json")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("running info command", zap.Strings("argv", cmd.Args))

	start := time.Now()
	err := cmd.Run()
	c.logger.Debug("info command finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("stdout_bytes", stdout.Len()),
		zap.ByteString("stderr", bytes.TrimSpace(stderr.Bytes())),
	)
	if err == nil {
		return stdout.Bytes(), nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, domain.NewCheckError(domain.ErrTimeout,
			fmt.Sprintf("Error: Timed out after %s waiting for '%s info --json'", c.timeout, c.binary),
			ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, domain.NewCheckError(domain.ErrCommandFailed,
			fmt.Sprintf("Error: Failed to run '%s info --json'", c.binary),
			err)
	}

	return nil, domain.NewCheckError(domain.ErrLaunch,
		fmt.Sprintf("Error: Failed to execute %s info: %v", c.binary, err),
		err)
}

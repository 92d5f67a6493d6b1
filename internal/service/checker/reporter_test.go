package checker

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vertextoedge/pixi-assistant/internal/domain"
	"github.com/vertextoedge/pixi-assistant/internal/domain/vo"
)

func TestReporter_ReportPass(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := NewReporter(&stdout, &stderr)

	err := r.Report(domain.NewCheckResult("/tmp/cache", vo.NewSize(10*vo.GB), 5))
	assert.NoError(t, err)
	assert.Equal(t, "✓ Cache directory /tmp/cache has sufficient space available (10.00 GB)\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestReporter_ReportInsufficient(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := NewReporter(&stdout, &stderr)

	err := r.Report(domain.NewCheckResult("/tmp/cache", vo.NewSize(10*vo.GB), 20))
	assert.ErrorIs(t, err, domain.ErrInsufficientSpace)
	assert.Equal(t, 1, domain.ExitCode(err))
	assert.Empty(t, stdout.String())
	assert.Equal(t,
		"✗ Cache directory /tmp/cache has insufficient space (10.00 GB), please set PIXI_CACHE_DIR to a location with at least 20.00 GB free.\n",
		stderr.String())

	// already printed, so no second line
	r.ReportError(err)
	assert.Equal(t, 1, bytes.Count(stderr.Bytes(), []byte("\n")))
}

func TestReporter_ReportRoundsForDisplayOnly(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := NewReporter(&stdout, &stderr)

	size := vo.NewSize(10*vo.GB - 1)
	err := r.Report(domain.NewCheckResult("/tmp/cache", size, 10))
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "("+size.String()+")")
	assert.Contains(t, stderr.String(), "(10.00 GB)")
	assert.Contains(t, stderr.String(), "at least "+vo.FormatGB(10)+" free")
}

func TestReporter_ReportError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := NewReporter(&stdout, &stderr)

	r.ReportError(domain.NewCheckError(domain.ErrCommandFailed, "Error: Failed to run 'pixi info --json'", errors.New("exit status 1")))
	r.ReportError(nil)

	assert.Empty(t, stdout.String())
	assert.Equal(t, "Error: Failed to run 'pixi info --json'\n", stderr.String())
}

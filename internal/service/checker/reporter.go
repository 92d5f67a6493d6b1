package checker

import (
	"fmt"
	"io"

	"github.com/vertextoedge/pixi-assistant/internal/domain"
	"github.com/vertextoedge/pixi-assistant/internal/domain/vo"
)

// CacheDirEnv is the variable operators can set to move the pixi cache.
const CacheDirEnv = "PIXI_CACHE_DIR"

// Reporter writes check outcomes for a human operator
type Reporter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewReporter creates a new Reporter
func NewReporter(stdout, stderr io.Writer) *Reporter {
	return &Reporter{stdout: stdout, stderr: stderr}
}

// Report prints the verdict. A pass goes to stdout; a shortfall goes to
// stderr and is returned as an ErrInsufficientSpace error.
func (r *Reporter) Report(result *domain.CheckResult) error {
	if result.HasSpace {
		fmt.Fprintf(r.stdout, "✓ Cache directory %s has sufficient space available (%s)\n",
			result.CacheDir, result.Available)
		return nil
	}

	msg := fmt.Sprintf("✗ Cache directory %s has insufficient space (%s), please set %s to a location with at least %s free.",
		result.CacheDir, result.Available, CacheDirEnv, vo.FormatGB(result.RequiredGB))
	fmt.Fprintln(r.stderr, msg)
	return domain.NewCheckError(domain.ErrInsufficientSpace, msg, nil)
}

// ReportError prints a one-line diagnostic for a failed run
func (r *Reporter) ReportError(err error) {
	if err == nil || domain.IsReported(err) {
		return
	}
	fmt.Fprintln(r.stderr, err.Error())
}

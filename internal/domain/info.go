package domain

import (
	"github.com/vertextoedge/pixi-assistant/internal/domain/vo"
)

// Info is the subset of `pixi info --json` this tool consumes.
type Info struct {
	CacheDir string
}

// CheckResult is the outcome of comparing available space against a threshold.
type CheckResult struct {
	CacheDir   string
	Available  vo.Size
	RequiredGB float64
	HasSpace   bool
}

// NewCheckResult compares available space against the required minimum.
// The threshold is inclusive and uses the unrounded values.
func NewCheckResult(cacheDir string, available vo.Size, requiredGB float64) *CheckResult {
	return &CheckResult{
		CacheDir:   cacheDir,
		Available:  available,
		RequiredGB: requiredGB,
		HasSpace:   available.AtLeastGB(requiredGB),
	}
}

// AvailableGB returns the available space in binary gigabytes, unrounded.
func (r *CheckResult) AvailableGB() float64 {
	return r.Available.GB()
}

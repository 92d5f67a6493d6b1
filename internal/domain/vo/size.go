package vo

import (
	"errors"
	"fmt"
	"math"
)

// Size represents a byte count on disk.
// Gigabytes are binary: 1 GB = 1024^3 bytes.
type Size struct {
	bytes uint64
}

const (
	KB uint64 = 1024
	MB uint64 = 1024 * KB
	GB uint64 = 1024 * MB
)

// BytesPerGB is the divisor used for every gigabyte conversion.
const BytesPerGB = float64(GB)

var (
	ErrNotANumber = errors.New("size must be a finite number")
)

// NewSize creates a new Size value object.
func NewSize(bytes uint64) Size {
	return Size{bytes: bytes}
}

// ValidateGB checks that a gigabyte threshold is a usable number.
// Negative thresholds are allowed and always pass.
func ValidateGB(gb float64) error {
	if math.IsNaN(gb) || math.IsInf(gb, 0) {
		return ErrNotANumber
	}
	return nil
}

// Bytes returns the size in bytes.
func (s Size) Bytes() uint64 {
	return s.bytes
}

// GB returns the size in binary gigabytes, unrounded.
func (s Size) GB() float64 {
	return float64(s.bytes) / BytesPerGB
}

// AtLeastGB reports whether the size meets a gigabyte threshold, inclusive.
func (s Size) AtLeastGB(gb float64) bool {
	return s.GB() >= gb
}

// FormatGB renders a gigabyte value the way it is shown to the operator.
func FormatGB(gb float64) string {
	return fmt.Sprintf("%.2f GB", gb)
}

// String returns the size as gigabytes with two decimals.
func (s Size) String() string {
	return FormatGB(s.GB())
}

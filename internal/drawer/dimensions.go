package drawer

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a row index has no RowDimensions.
	ErrIndexOutOfRange = errors.New("row index out of range")

	// ErrInvalidDimensions is returned when a RowDimensions entry is inconsistent.
	ErrInvalidDimensions = errors.New("invalid row dimensions")

	// ErrNilContent is returned by New when no drawer content function is given.
	ErrNilContent = errors.New("nil drawer content function")
)

// RowDimensions holds the two steady-state heights of a row, in lines.
type RowDimensions struct {
	CollapsedHeight int `yaml:"collapsed_height"`
	ExpandedHeight  int `yaml:"expanded_height"`
}

// Validate checks 0 <= CollapsedHeight <= ExpandedHeight.
func (d RowDimensions) Validate() error {
	if d.CollapsedHeight < 0 {
		return fmt.Errorf("%w: collapsed height %d is negative", ErrInvalidDimensions, d.CollapsedHeight)
	}
	if d.ExpandedHeight < d.CollapsedHeight {
		return fmt.Errorf("%w: expanded height %d is less than collapsed height %d",
			ErrInvalidDimensions, d.ExpandedHeight, d.CollapsedHeight)
	}
	return nil
}

// DrawerHeight returns the height of the region below the row head.
func (d RowDimensions) DrawerHeight() int {
	return d.ExpandedHeight - d.CollapsedHeight
}

// HeightFor returns the steady-state height for the given expansion flag.
func (d RowDimensions) HeightFor(expanded bool) int {
	if expanded {
		return d.ExpandedHeight
	}
	return d.CollapsedHeight
}

// UniformDimensions returns n copies of the same dimensions.
func UniformDimensions(n int, d RowDimensions) []RowDimensions {
	dims := make([]RowDimensions, n)
	for i := range dims {
		dims[i] = d
	}
	return dims
}

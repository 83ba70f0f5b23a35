package terrain

import (
	"fmt"
	"math"
)

// Params are the validated inputs of one generation run.
type Params struct {
	Divisions int
	Size      float32
	MaxHeight float32
}

// Validate reports whether p can produce a gap-free diamond-square grid.
func (p Params) Validate() error {
	if err := validateGrid(p.Divisions, p.Size); err != nil {
		return err
	}
	if err := validateDivisions(p.Divisions); err != nil {
		return err
	}
	return validateAmplitude(p.MaxHeight)
}

// VertexCount returns the number of vertices a grid built from p will have.
func (p Params) VertexCount() int {
	return Grid{Divisions: p.Divisions}.Len()
}

func validateGrid(divisions int, size float32) error {
	if divisions <= 0 {
		return fmt.Errorf("%w: divisions must be positive, got %d", ErrInvalidConfiguration, divisions)
	}
	if !isFinite(size) || size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %v", ErrInvalidConfiguration, size)
	}
	return nil
}

func validateDivisions(divisions int) error {
	if !IsPowerOfTwo(divisions) {
		return fmt.Errorf("%w: divisions must be a power of two, got %d", ErrInvalidConfiguration, divisions)
	}
	return nil
}

func validateAmplitude(maxHeight float32) error {
	if !isFinite(maxHeight) || maxHeight < 0 {
		return fmt.Errorf("%w: max height must be non-negative, got %v", ErrInvalidConfiguration, maxHeight)
	}
	return nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

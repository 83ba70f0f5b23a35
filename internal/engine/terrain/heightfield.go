package terrain

import (
	"fmt"
	"math/bits"

	"github.com/go-gl/mathgl/mgl32"
)

// Synthesize displaces the Y component of vertices with the diamond-square
// algorithm. vertices must be a (divisions+1)² grid as produced by BuildGrid
// and divisions must be a power of two. Only heights are written, and
// nothing is written if the arguments are rejected.
//
// rng is consumed in a fixed order: the four corners, then for each pass and
// each sub-square (row-major) one diamond draw followed by four square draws.
func Synthesize(vertices []mgl32.Vec3, divisions int, maxHeight float32, rng RandomSource) error {
	if divisions <= 0 {
		return fmt.Errorf("%w: divisions must be positive, got %d", ErrInvalidConfiguration, divisions)
	}
	if err := validateDivisions(divisions); err != nil {
		return err
	}
	if err := validateAmplitude(maxHeight); err != nil {
		return err
	}
	if rng == nil {
		return fmt.Errorf("%w: nil random source", ErrPreconditionViolation)
	}
	grid := Grid{Divisions: divisions}
	if len(vertices) != grid.Len() {
		return fmt.Errorf("%w: %d vertices for a %d-division grid, want %d",
			ErrPreconditionViolation, len(vertices), divisions, grid.Len())
	}

	hf := heightField{grid: grid, vertices: vertices, rng: rng}

	for _, corner := range grid.Corners() {
		hf.vertices[corner][1] = rng.Range(-maxHeight, maxHeight)
	}

	numSquares := 1
	squareSize := divisions
	amplitude := maxHeight

	for range Iterations(divisions) {
		for j := range numSquares {
			row := j * squareSize
			for k := range numSquares {
				hf.diamond(row, k*squareSize, squareSize, amplitude)
			}
		}
		numSquares *= 2
		squareSize /= 2
		amplitude *= 0.5
	}

	return nil
}

// Iterations returns the number of refinement passes for a power-of-two
// division count.
func Iterations(divisions int) int {
	if divisions <= 0 {
		return 0
	}
	return bits.Len(uint(divisions)) - 1
}

type heightField struct {
	grid     Grid
	vertices []mgl32.Vec3
	rng      RandomSource
}

func (h *heightField) y(i int) float32 {
	return h.vertices[i][1]
}

func (h *heightField) set(i int, avg, amplitude float32) {
	h.vertices[i][1] = avg + h.rng.Range(-amplitude, amplitude)
}

// diamond sets the center of the square at (row, col) from its four corners,
// then runs the square step on its edges.
func (h *heightField) diamond(row, col, size int, amplitude float32) {
	half := size / 2
	topLeft := h.grid.Index(row, col)
	bottomLeft := h.grid.Index(row+size, col)
	mid := h.grid.Index(row+half, col+half)

	sum := h.y(topLeft) + h.y(topLeft+size) + h.y(bottomLeft) + h.y(bottomLeft+size)
	h.set(mid, sum*0.25, amplitude)

	h.square(size, half, topLeft, bottomLeft, mid, amplitude)
}

// square sets the four edge midpoints from their two corners and the center.
// Edges shared with a neighbouring square are overwritten by whichever square
// comes later in the pass.
func (h *heightField) square(size, half, topLeft, bottomLeft, mid int, amplitude float32) {
	center := h.y(mid)
	h.set(topLeft+half, (h.y(topLeft)+h.y(topLeft+size)+center)/3, amplitude)
	h.set(mid-half, (h.y(topLeft)+h.y(bottomLeft)+center)/3, amplitude)
	h.set(mid+half, (h.y(topLeft+size)+h.y(bottomLeft+size)+center)/3, amplitude)
	h.set(bottomLeft+half, (h.y(bottomLeft)+h.y(bottomLeft+size)+center)/3, amplitude)
}

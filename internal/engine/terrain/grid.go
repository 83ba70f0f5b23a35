package terrain

import "fmt"

// Grid maps (row, col) grid coordinates onto a flattened row-major array
// of (Divisions+1)² points.
type Grid struct {
	Divisions int
}

// Stride returns the number of points per row.
func (g Grid) Stride() int {
	return g.Divisions + 1
}

// Len returns the total number of points in the grid.
func (g Grid) Len() int {
	return g.Stride() * g.Stride()
}

// Index returns the flattened offset of (row, col). It does not check bounds.
func (g Grid) Index(row, col int) int {
	return row*g.Stride() + col
}

// CheckedIndex returns the flattened offset of (row, col), or an error if
// the coordinate lies outside the grid.
func (g Grid) CheckedIndex(row, col int) (int, error) {
	if row < 0 || col < 0 || row > g.Divisions || col > g.Divisions {
		return 0, fmt.Errorf("grid point (%d,%d) outside %dx%d grid", row, col, g.Stride(), g.Stride())
	}
	return g.Index(row, col), nil
}

// Coords is the inverse of Index.
func (g Grid) Coords(index int) (row, col int) {
	return index / g.Stride(), index % g.Stride()
}

// Corners returns the flattened indices of the four grid corners in seeding
// order: (0,0), (0,d), (d,d), (d,0).
func (g Grid) Corners() [4]int {
	d := g.Divisions
	return [4]int{
		g.Index(0, 0),
		g.Index(0, d),
		g.Index(d, d),
		g.Index(d, 0),
	}
}

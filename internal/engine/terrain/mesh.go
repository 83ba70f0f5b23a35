package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BuildGrid creates a flat size x size grid of divisions x divisions quads,
// centered at the origin in the XZ plane. Heights are left at zero.
func BuildGrid(divisions int, size float32) (*Mesh, error) {
	if err := validateGrid(divisions, size); err != nil {
		return nil, err
	}

	grid := Grid{Divisions: divisions}
	vertices := make([]mgl32.Vec3, grid.Len())
	uvs := make([]mgl32.Vec2, grid.Len())
	indices := make([]uint32, 0, divisions*divisions*6)

	halfSize := size * 0.5
	cellSize := size / float32(divisions)

	for row := range grid.Stride() {
		for col := range grid.Stride() {
			i := grid.Index(row, col)

			// Row 0 is the +Z edge, col 0 the -X edge
			vertices[i] = mgl32.Vec3{
				gridCoord(col, divisions, -halfSize, cellSize),
				0,
				-gridCoord(row, divisions, -halfSize, cellSize),
			}

			// U follows the row and V the column
			uvs[i] = mgl32.Vec2{
				float32(row) / float32(divisions),
				float32(col) / float32(divisions),
			}

			if row < divisions && col < divisions {
				indices = appendQuad(indices, grid, row, col)
			}
		}
	}

	return &Mesh{
		Divisions: divisions,
		Size:      size,
		Vertices:  vertices,
		UVs:       uvs,
		Indices:   indices,
	}, nil
}

// gridCoord returns start + step*n, pinned to -start on the far edge so
// the grid spans exactly [start, -start] whatever the division count.
func gridCoord(n, divisions int, start, step float32) float32 {
	if n == divisions {
		return -start
	}
	return start + float32(n)*step
}

// appendQuad emits the two triangles of the cell whose top-left point is
// (row, col). The winding decides the face normal the host computes.
func appendQuad(indices []uint32, grid Grid, row, col int) []uint32 {
	topLeft := uint32(grid.Index(row, col))
	bottomLeft := uint32(grid.Index(row+1, col))

	return append(indices,
		topLeft, topLeft+1, bottomLeft+1,
		topLeft, bottomLeft+1, bottomLeft,
	)
}

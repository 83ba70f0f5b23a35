// Package terrain builds diamond-square heightfield meshes.
package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds generated terrain geometry ready for upload.
// Vertices and UVs share the grid's flattened index; every three
// consecutive Indices form one triangle.
type Mesh struct {
	Divisions int
	Size      float32
	Vertices  []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Heights returns a copy of the Y component of every vertex.
func (m *Mesh) Heights() []float32 {
	heights := make([]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		heights[i] = v.Y()
	}
	return heights
}

// RenderSink consumes finished terrain geometry.
// Normals and bounding volumes are the sink's responsibility.
type RenderSink interface {
	Upload(mesh *Mesh) error
}

// RandomSource yields uniformly distributed values between lo and hi.
type RandomSource interface {
	Range(lo, hi float32) float32
}

package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/diamond-terrain/internal/engine/terrain"
	"github.com/Faultbox/diamond-terrain/internal/logger"
)

// Bounds is the axis-aligned bounding box of uploaded geometry.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// logSink stands in for a renderer: it computes what a host would after
// mesh upload and reports it.
type logSink struct {
	last Bounds
}

func (s *logSink) Upload(mesh *terrain.Mesh) error {
	s.last = computeBounds(mesh.Vertices)

	logger.Info("terrain uploaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("uvs", len(mesh.UVs)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Float32("minHeight", s.last.Min.Y()),
		zap.Float32("maxHeight", s.last.Max.Y()))
	logger.Sugar.Debugf("Bounds: min=%v max=%v", s.last.Min, s.last.Max)

	return nil
}

func computeBounds(vertices []mgl32.Vec3) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		for axis := range 3 {
			if v[axis] < b.Min[axis] {
				b.Min[axis] = v[axis]
			}
			if v[axis] > b.Max[axis] {
				b.Max[axis] = v[axis]
			}
		}
	}
	return b
}

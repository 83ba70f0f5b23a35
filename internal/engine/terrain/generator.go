package terrain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/diamond-terrain/internal/logger"
)

// Generate builds a grid for p and displaces its heights with rng.
func Generate(p Params, rng RandomSource) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	mesh, err := BuildGrid(p.Divisions, p.Size)
	if err != nil {
		return nil, err
	}

	if err := Synthesize(mesh.Vertices, p.Divisions, p.MaxHeight, rng); err != nil {
		return nil, err
	}

	return mesh, nil
}

// Generator regenerates terrain on demand and hands each result to a sink.
// The last successful mesh stays current when a regeneration fails.
type Generator struct {
	sink    RenderSink
	rng     RandomSource
	current *Mesh
	params  Params
}

// NewGenerator creates a generator that uploads to sink and draws heights
// from rng.
func NewGenerator(sink RenderSink, rng RandomSource) *Generator {
	return &Generator{
		sink: sink,
		rng:  rng,
	}
}

// Current returns the last mesh uploaded to the sink, or nil.
func (g *Generator) Current() *Mesh {
	return g.current
}

// Params returns the parameters of the current mesh.
func (g *Generator) Params() Params {
	return g.params
}

// Regenerate produces a new mesh for p and uploads it.
func (g *Generator) Regenerate(p Params) (*Mesh, error) {
	mesh, err := Generate(p, g.rng)
	if err != nil {
		logger.Warn("terrain generation rejected",
			zap.Int("divisions", p.Divisions),
			zap.Float32("size", p.Size),
			zap.Float32("maxHeight", p.MaxHeight),
			zap.Error(err))
		return nil, err
	}

	if g.sink != nil {
		if err := g.sink.Upload(mesh); err != nil {
			logger.Warn("terrain upload failed", zap.Error(err))
			return nil, fmt.Errorf("uploading terrain: %w", err)
		}
	}

	g.current = mesh
	g.params = p

	logger.Info("terrain generated",
		zap.Int("divisions", p.Divisions),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("iterations", Iterations(p.Divisions)))

	return mesh, nil
}

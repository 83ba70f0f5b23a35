// Package config handles terrain generator configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/diamond-terrain/internal/engine/terrain"
)

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds the generation inputs.
type TerrainConfig struct {
	Divisions   int     `yaml:"divisions"`    // Quads per side, power of two
	Size        float32 `yaml:"size"`         // World-space extent of one side
	MaxHeight   float32 `yaml:"max_height"`   // Initial displacement amplitude
	Seed        uint64  `yaml:"seed"`         // 0 picks a seed at startup
	MaxVertices int     `yaml:"max_vertices"` // Vertex ceiling of the render backend
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Divisions:   128,
			Size:        30,
			MaxHeight:   5,
			Seed:        0,
			MaxVertices: 65000,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params converts the terrain section into generator parameters.
func (t TerrainConfig) Params() terrain.Params {
	return terrain.Params{
		Divisions: t.Divisions,
		Size:      t.Size,
		MaxHeight: t.MaxHeight,
	}
}

// Validate checks the terrain section, including the vertex ceiling.
func (c *Config) Validate() error {
	p := c.Terrain.Params()
	if err := p.Validate(); err != nil {
		return err
	}
	if c.Terrain.MaxVertices > 0 && p.VertexCount() > c.Terrain.MaxVertices {
		return fmt.Errorf("%w: %d divisions need %d vertices, limit is %d",
			terrain.ErrInvalidConfiguration, p.Divisions, p.VertexCount(), c.Terrain.MaxVertices)
	}
	return nil
}

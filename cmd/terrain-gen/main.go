// Package main is the command-line driver for the diamond-square terrain generator.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/diamond-terrain/internal/config"
	"github.com/Faultbox/diamond-terrain/internal/engine/terrain"
	"github.com/Faultbox/diamond-terrain/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("=== Diamond-Square Terrain ===", zap.Uint64("seed", seed))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		}
	}

	g := terrain.NewGenerator(&logSink{}, terrain.NewSeededSource(seed))

	start := time.Now()
	if _, err := g.Regenerate(cfg.Terrain.Params()); err != nil {
		logger.Error("terrain generation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("terrain ready", zap.Duration("elapsed", time.Since(start)))
}

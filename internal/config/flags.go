package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagSave      = flag.Bool("save", false, "Save the resolved config to the user config directory")
	flagDivisions = flag.Int("divisions", 0, "Quads per terrain side (power of two)")
	flagSize      = flag.Float64("size", 0, "World-space terrain size")
	flagMaxHeight = flag.Float64("max-height", 0, "Initial height amplitude")
	flagSeed      = flag.Uint64("seed", 0, "Random seed (0 picks one)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save was given.
func SaveRequested() bool {
	return *flagSave
}

// setFlags returns the names of flags given on the command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags applies the flags named in set as overrides, whatever their
// value. Out-of-range values are left for Validate to reject.
func applyFlags(cfg *Config, set map[string]bool) {
	if set["debug"] && *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if set["divisions"] {
		cfg.Terrain.Divisions = *flagDivisions
	}
	if set["size"] {
		cfg.Terrain.Size = float32(*flagSize)
	}
	if set["max-height"] {
		cfg.Terrain.MaxHeight = float32(*flagMaxHeight)
	}
	if set["seed"] {
		cfg.Terrain.Seed = *flagSeed
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/vamp-arena/audio"
	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/layout"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the executable-level configuration
type Config struct {
	Profile   string `toml:"profile"`
	SaveDir   string `toml:"save_dir"`
	Archetype string `toml:"archetype"`
	// Seed 0 seeds from the clock
	Seed  int64 `toml:"seed"`
	Debug bool  `toml:"debug"`

	Arena ArenaConfig  `toml:"arena"`
	Feed  FeedConfig   `toml:"feed"`
	Audio audio.Config `toml:"audio"`
}

// ArenaConfig tunes obstacle generation
type ArenaConfig struct {
	Obstacles  int     `toml:"obstacles"`
	SafeRadius float64 `toml:"safe_radius"`
}

// FeedConfig enables the spectator websocket when Addr is set
type FeedConfig struct {
	Addr string `toml:"addr"`
	Path string `toml:"path"`
}

// Default returns the built-in configuration
func Default() Config {
	lc := layout.DefaultConfig()
	return Config{
		Profile:   "default",
		SaveDir:   "saves",
		Archetype: component.Speedster.String(),
		Arena: ArenaConfig{
			Obstacles:  lc.Count,
			SafeRadius: lc.SafeRadius,
		},
		Feed: FeedConfig{
			Path: "/feed",
		},
		Audio: audio.DefaultConfig(),
	}
}

// Load builds the configuration in order: defaults, TOML file, .env, ARENA_* variables
// An empty path skips the file
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
		}
	}

	if err := LoadDotEnv(".env"); err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from files, a missing file is skipped
// Variables already set in the environment are not replaced
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("config: loaded environment from %s", f)
	}
	return nil
}

// ApplyEnv overrides fields from ARENA_* variables, malformed values are ignored
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("ARENA_PROFILE"); v != "" {
		cfg.Profile = v
	}
	if v := os.Getenv("ARENA_SAVE_DIR"); v != "" {
		cfg.SaveDir = v
	}
	if v := os.Getenv("ARENA_ARCHETYPE"); v != "" {
		cfg.Archetype = v
	}
	if v := os.Getenv("ARENA_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("ARENA_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}
	if v := os.Getenv("ARENA_OBSTACLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Arena.Obstacles = n
		}
	}
	if v := os.Getenv("ARENA_FEED_ADDR"); v != "" {
		cfg.Feed.Addr = v
	}
	audio.ApplyEnv(&cfg.Audio)
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	if c.Profile == "" {
		return fmt.Errorf("%w: empty profile", ErrInvalidConfig)
	}
	if c.SaveDir == "" {
		return fmt.Errorf("%w: empty save_dir", ErrInvalidConfig)
	}
	if _, err := component.ParseArchetype(c.Archetype); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Arena.Obstacles < 0 || c.Arena.Obstacles > 100 {
		return fmt.Errorf("%w: arena.obstacles %d out of range 0-100", ErrInvalidConfig, c.Arena.Obstacles)
	}
	if c.Arena.SafeRadius < 0 {
		return fmt.Errorf("%w: negative arena.safe_radius", ErrInvalidConfig)
	}
	if c.Feed.Addr != "" && !strings.HasPrefix(c.Feed.Path, "/") {
		return fmt.Errorf("%w: feed.path must start with /", ErrInvalidConfig)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: audio.master_volume %.2f out of range 0-1", ErrInvalidConfig, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalidConfig)
	}
	if c.Audio.MinHitGap < 0 || c.Audio.MinHitGap > time.Second {
		return fmt.Errorf("%w: audio.min_hit_gap %s out of range", ErrInvalidConfig, c.Audio.MinHitGap)
	}
	return nil
}

// ArchetypeValue returns the parsed archetype, Speedster when invalid
func (c Config) ArchetypeValue() component.Archetype {
	a, err := component.ParseArchetype(c.Archetype)
	if err != nil {
		return component.Speedster
	}
	return a
}

// Layout returns the obstacle generator configuration
func (c Config) Layout() layout.Config {
	lc := layout.DefaultConfig()
	lc.Count = c.Arena.Obstacles
	lc.SafeRadius = c.Arena.SafeRadius
	return lc
}

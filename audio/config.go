package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"
)

// Config controls synthesized sound effects
type Config struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0 - 1.0
	SampleRate   int     `toml:"sample_rate"`

	HitVolume      float64 `toml:"hit_volume"`
	LevelUpVolume  float64 `toml:"level_up_volume"`
	GameOverVolume float64 `toml:"game_over_volume"`

	// MinHitGap drops hit sounds closer together than this
	MinHitGap time.Duration `toml:"min_hit_gap"`
}

// DefaultConfig returns audio enabled at moderate volume
func DefaultConfig() Config {
	return Config{
		Enabled:        true,
		MasterVolume:   0.5,
		SampleRate:     44100,
		HitVolume:      0.35,
		LevelUpVolume:  0.6,
		GameOverVolume: 0.7,
		MinHitGap:      40 * time.Millisecond,
	}
}

// ApplyEnv overrides fields from ARENA_* environment variables
// Malformed values are ignored
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv("ARENA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("ARENA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if sfx := os.Getenv("ARENA_SFX_VOLUMES"); sfx != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(sfx), &volumes); err == nil {
			if v, ok := volumes["hit"]; ok {
				cfg.HitVolume = clampVolume(v)
			}
			if v, ok := volumes["level_up"]; ok {
				cfg.LevelUpVolume = clampVolume(v)
			}
			if v, ok := volumes["game_over"]; ok {
				cfg.GameOverVolume = clampVolume(v)
			}
		}
	}

	if rate := os.Getenv("ARENA_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

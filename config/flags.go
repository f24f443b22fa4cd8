package config

import "flag"

// Flags holds command-line overrides shared by the executables
type Flags struct {
	Path      string
	Debug     bool
	Archetype string
	Seed      int64
	Fresh     bool
	Feed      string
	Profile   string
}

// BindFlags registers the shared flags on fs
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", "", "Path to TOML config file")
	fs.BoolVar(&f.Debug, "debug", false, "Write debug log under logs/")
	fs.StringVar(&f.Archetype, "archetype", "", "Archetype for a fresh run: speedster, tank, mage")
	fs.Int64Var(&f.Seed, "seed", 0, "RNG seed, 0 seeds from the clock")
	fs.BoolVar(&f.Fresh, "fresh", false, "Ignore the saved session")
	fs.StringVar(&f.Feed, "feed", "", "Spectator websocket listen address, e.g. :8088")
	fs.StringVar(&f.Profile, "profile", "", "Save profile name")
	return f
}

// Apply overrides cfg with every flag that was set
func (f *Flags) Apply(cfg *Config) {
	if f.Archetype != "" {
		cfg.Archetype = f.Archetype
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if f.Feed != "" {
		cfg.Feed.Addr = f.Feed
	}
	if f.Profile != "" {
		cfg.Profile = f.Profile
	}
	cfg.Debug = cfg.Debug || f.Debug
}

// LoadWithFlags loads the config file named by -config and applies the flags
func LoadWithFlags(f *Flags) (Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return cfg, err
	}
	f.Apply(&cfg)
	return cfg, cfg.Validate()
}

package config

// Config holds runtime settings for the vidkeeper binary.
//
// Fields:
//   - StoragePath: path of the JSON catalog file.
//   - ListenAddr: host:port the form front-end listens on.
type Config struct {
	StoragePath string
	ListenAddr  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoragePath = "videos.json"
	c.ListenAddr = "localhost:8080"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Package config defines the service configuration and its loading order.
package config

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the SQLite database location.
	DBPath string `koanf:"db_path"`

	// FixtureProvider forces the synthetic annotation provider even when a
	// backend is configured; useful for local development.
	FixtureProvider bool `koanf:"fixture_provider"`

	// FixtureDuration is the synthetic session length in seconds.
	FixtureDuration float64 `koanf:"fixture_duration"`

	// StaticDir optionally serves the dashboard's static files.
	StaticDir string `koanf:"static_dir"`
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		Addr:            ":8080",
		DBPath:          "playsight.db",
		FixtureProvider: true,
		FixtureDuration: 90,
	}
}

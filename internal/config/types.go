package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	// Port is the HTTP listen port.
	Port string `koanf:"port"`

	// APIBaseURL is the root of the live matches API. Empty disables the backend source.
	APIBaseURL string `koanf:"api_base_url"`

	// SnapshotURL and SnapshotPath locate the static snapshot document. The URL wins
	// when both are set.
	SnapshotURL  string `koanf:"snapshot_url"`
	SnapshotPath string `koanf:"snapshot_path"`

	// MapAPIKey is handed to map clients through /filters.
	MapAPIKey string `koanf:"map_api_key"`

	// FetchTimeout bounds each source fetch.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`

	// RefreshInterval reloads every source periodically. Zero disables it.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	LogLevel string `koanf:"log_level"`

	// City is the covered city, used for display.
	City string `koanf:"city"`
}

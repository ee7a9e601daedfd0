package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ReferenceLayout is the format of the reference key. A bare date
// ("2006-01-02") is accepted too.
const ReferenceLayout = "2006-01-02T15:04:05"

// ICSConfig controls calendar import and export.
type ICSConfig struct {
	// Summary is the SUMMARY written on exported events.
	Summary string `yaml:"summary" json:"summary"`
	// Preview is how many upcoming instances are listed by default.
	Preview int `yaml:"preview" json:"preview"`
	// MaxOccurrences caps any single preview request.
	MaxOccurrences int `yaml:"max_occurrences" json:"max_occurrences"`
	// CacheDir holds fetched calendars and their ETag metadata.
	CacheDir string `yaml:"cache_dir" json:"cache_dir"`
}

// TranslatorConfig enables dictionary translation of Russian input.
type TranslatorConfig struct {
	Enabled    bool   `yaml:"enabled" json:"enabled"`
	Dictionary string `yaml:"dictionary" json:"dictionary"`
}

// BasicAuthConfig holds HTTP Basic Auth credentials for the API.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the API.
	Listen string `yaml:"listen" json:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Reference pins the reference clock ("2010-01-01T00:00:00"). Empty
	// means the current local time.
	Reference string `yaml:"reference" json:"reference"`

	// Fallback enables natural-language date resolution for phrases the
	// grammar does not know.
	Fallback bool `yaml:"fallback" json:"fallback"`

	ICS        ICSConfig        `yaml:"ics" json:"ics"`
	Translator TranslatorConfig `yaml:"translator" json:"translator"`

	// BasicAuth, if non-nil, enables HTTP Basic Authentication on all endpoints
	// except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:   "127.0.0.1:8080",
		LogLevel: "info",
		Fallback: true,
		ICS: ICSConfig{
			Summary:        "Recurring event",
			Preview:        5,
			MaxOccurrences: 500,
			CacheDir:       "./var/ics-cache",
		},
	}
}

// Normalize fills in missing/zero values so that partially-filled configs
// still behave.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ICS.Summary == "" {
		c.ICS.Summary = "Recurring event"
	}
	if c.ICS.MaxOccurrences <= 0 {
		c.ICS.MaxOccurrences = 500
	}
	if c.ICS.Preview <= 0 {
		c.ICS.Preview = 5
	}
	if c.ICS.Preview > c.ICS.MaxOccurrences {
		c.ICS.Preview = c.ICS.MaxOccurrences
	}
	if c.ICS.CacheDir == "" {
		c.ICS.CacheDir = "./var/ics-cache"
	}
}

// ReferenceTime parses Reference. ok is false when it is unset.
func (c *Config) ReferenceTime() (t time.Time, ok bool, err error) {
	return ParseReference(c.Reference)
}

// ParseReference reads a reference clock value. ok is false for "".
func ParseReference(v string) (t time.Time, ok bool, err error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false, nil
	}
	layout := ReferenceLayout
	if len(v) == len("2006-01-02") {
		layout = "2006-01-02"
	}
	t, err = time.ParseInLocation(layout, v, time.UTC)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reference: %w", err)
	}
	return t, true, nil
}

// Load loads configuration from the given YAML path. A missing file is
// created with defaults and 0600 permissions.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	// Start from defaults so keys left out of the file keep them.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	if _, _, err := cfg.ReferenceTime(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg atomically (temp file + rename) with 0600 permissions,
// creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".recurrent-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

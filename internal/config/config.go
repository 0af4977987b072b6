// Package config loads projtrack settings from defaults, an optional config
// file and PROJTRACK_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/inovacc/projtrack/internal/application"
	"github.com/inovacc/projtrack/internal/logging"
	"github.com/inovacc/projtrack/internal/store"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultFileName is looked up in the application directory.
	DefaultFileName = "config.ini"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Config holds the complete projtrack configuration.
type Config struct {
	Storage StorageConfig `koanf:"storage"`
	Log     LogConfig     `koanf:"log"`
	Export  ExportConfig  `koanf:"export"`
}

// StorageConfig selects where the durable slots live.
type StorageConfig struct {
	Backend string `koanf:"backend"` // bolt, sqlite or memory
	Dir     string `koanf:"dir"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	File string `koanf:"file"`
}

// Default returns the built-in configuration rooted at dir.
func Default(dir string) Config {
	return Config{
		Storage: StorageConfig{Backend: store.BackendBolt, Dir: dir},
		Log:     LogConfig{Level: "warn", Format: logging.FormatText},
		Export:  ExportConfig{File: "projects_backup.json"},
	}
}

// DefaultPath returns the config file path inside the application directory.
func DefaultPath() (string, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, DefaultFileName), nil
}

// Load builds the configuration. An empty path means the default file; a
// missing default file is not an error, a missing explicit one is.
//
// Files ending in .yaml or .yml are parsed as YAML, anything else as INI:
//
//	[storage]
//	backend = sqlite
//
//	[log]
//	level = info
//
// Environment variables map onto keys by dropping the prefix and splitting
// on the first underscore: PROJTRACK_STORAGE_BACKEND -> storage.backend.
func Load(path string) (*Config, error) {
	appDir, err := application.GetApplicationDirectory()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(appDir, DefaultFileName)
	}

	k := koanf.New(".")

	content, err := readConfigFile(path)

	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(content), parserFor(path)); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, err
	}

	if err := k.Load(env.Provider(application.EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default(appDir)
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the rest of the application cannot act on.
func (c *Config) Validate() error {
	if !slices.Contains(store.Backends(), c.Storage.Backend) {
		return fmt.Errorf("storage.backend must be one of %s, got %q",
			strings.Join(store.Backends(), ", "), c.Storage.Backend)
	}

	if c.Storage.Backend != store.BackendMemory && c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required for the %s backend", c.Storage.Backend)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if c.Export.File == "" {
		return fmt.Errorf("export.file must not be empty")
	}

	return nil
}

// Marshal renders the configuration in the INI file format.
func (c *Config) Marshal() ([]byte, error) {
	k := koanf.New(".")

	for key, value := range map[string]string{
		"storage.backend": c.Storage.Backend,
		"storage.dir":     c.Storage.Dir,
		"log.level":       c.Log.Level,
		"log.format":      c.Log.Format,
		"export.file":     c.Export.File,
	} {
		if err := k.Set(key, value); err != nil {
			return nil, err
		}
	}

	return k.Marshal(INIParser())
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}

	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return content, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return INIParser()
	}
}

// envKey maps PROJTRACK_STORAGE_BACKEND to storage.backend. Variables
// without a section, like PROJTRACK_HOME or PROJTRACK_PASSWORD, are skipped.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, application.EnvPrefix))

	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return ""
	}

	return section + "." + key
}

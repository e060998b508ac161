package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/belphemur/hypersql/internal/constants"
	"github.com/belphemur/hypersql/internal/driver"
)

// EnvPrefix prefixes every environment variable that overrides the config file.
// Levels are separated by a double underscore: HYPERSQL_DATASOURCES__MAIN__PASSWORD.
const EnvPrefix = "HYPERSQL_"

// Config holds the application configuration
type Config struct {
	Service     ServiceConfig             `koanf:"service"`
	Datasources map[string]map[string]any `koanf:"datasources"`
}

// ServiceConfig holds the service configuration
type ServiceConfig struct {
	LogLevel string `koanf:"log_level"`
	// StateFile is the SQLite catalog of resolved datasources; empty disables it
	StateFile string `koanf:"state_file"`
}

func defaults() map[string]any {
	return map[string]any{
		"service.log_level":  "info",
		"service.state_file": "",
	}
}

// Load reads the configuration file and environment variables
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default configuration: %w", err)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	// Relative state files live next to the config file
	if cfg.Service.StateFile != "" && !filepath.IsAbs(cfg.Service.StateFile) {
		cfg.Service.StateFile = filepath.Join(filepath.Dir(path), cfg.Service.StateFile)
	}

	for _, props := range cfg.Datasources {
		if _, ok := props[driver.PropDriver]; !ok {
			props[driver.PropDriver] = constants.DriverName
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps HYPERSQL_DATASOURCES__MAIN__PORT to datasources.main.port
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// validate checks if the configuration is valid, reporting every problem at once
func validate(cfg *Config) error {
	var result *multierror.Error

	if !constants.IsValidLogLevel(cfg.Service.LogLevel) {
		result = multierror.Append(result, fmt.Errorf("invalid log level: %s", cfg.Service.LogLevel))
	}

	if len(cfg.Datasources) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one datasource is required"))
	}

	for _, name := range cfg.DatasourceNames() {
		if d, ok := cfg.Datasources[name][driver.PropDriver].(string); !ok || d == "" {
			result = multierror.Append(result, fmt.Errorf("datasource %s: driver must be a non-empty string", name))
		}
	}

	return result.ErrorOrNil()
}

// DatasourceNames returns the configured datasource names in sorted order
func (c *Config) DatasourceNames() []string {
	names := make([]string, 0, len(c.Datasources))
	for name := range c.Datasources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DatasourceProperties returns the datasources as driver properties
func (c *Config) DatasourceProperties() map[string]driver.Properties {
	out := make(map[string]driver.Properties, len(c.Datasources))
	for name, props := range c.Datasources {
		out[name] = driver.Properties(props)
	}
	return out
}

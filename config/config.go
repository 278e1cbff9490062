// Package config loads tool configuration with Viper: defaults, an
// assocgen.toml file found by walking up from the working directory, and
// ASSOCGEN_* environment variables, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/assocgen/errors"
)

// ConfigFileName is the project configuration file searched for by Load.
const ConfigFileName = "assocgen.toml"

// Config is the tool configuration. CLI flags take precedence over every
// field here.
type Config struct {
	// Schema is the default schema file path
	Schema string `mapstructure:"schema"`
	// Output is the default output directory; empty means stdout
	Output string `mapstructure:"output"`
	// JSONLogs switches log output to structured JSON
	JSONLogs bool `mapstructure:"json_logs"`
}

// SetDefaults registers default values on a Viper instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("schema", "schema.yaml")
	v.SetDefault("output", "")
	v.SetDefault("json_logs", false)
}

// Load reads configuration from defaults, a discovered assocgen.toml (if
// any), and the environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("ASSOCGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "unmarshaling config from %s", configPath)
	}
	return &config, nil
}

// findProjectConfig searches for assocgen.toml by walking up the directory
// tree from the working directory. Returns empty when none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

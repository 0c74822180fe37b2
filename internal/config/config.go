// Package config loads pyvalid settings from flags, environment variables and
// an optional pyvalid.toml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	pverrors "github.com/matzehuels/pyvalid/pkg/errors"
	"github.com/matzehuels/pyvalid/pkg/integrations"
	"github.com/matzehuels/pyvalid/pkg/integrations/pypi"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. PYVALID_INPUT.
	EnvPrefix = "PYVALID"

	// FileName is the config file looked up in the working directory.
	FileName = "pyvalid.toml"

	DefaultInput  = "files/pip_packages.txt"
	DefaultOutput = "valid_pip_packages.txt"
)

// Keys shared by flags, env vars and the config file.
const (
	KeyInput    = "input"
	KeyOutput   = "output"
	KeyRegistry = "registry"
	KeyTimeout  = "timeout"
)

type Config struct {
	Input    string        `mapstructure:"input"`
	Output   string        `mapstructure:"output"`
	Registry string        `mapstructure:"registry"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Input:    DefaultInput,
		Output:   DefaultOutput,
		Registry: pypi.DefaultBaseURL,
		Timeout:  integrations.DefaultTimeout,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := pverrors.ValidatePath(c.Input); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	if err := pverrors.ValidatePath(c.Output); err != nil {
		return fmt.Errorf("invalid output: %w", err)
	}
	if err := pverrors.ValidateURL(c.Registry); err != nil {
		return fmt.Errorf("invalid registry: %w", err)
	}
	if c.Timeout <= 0 {
		return pverrors.New(pverrors.ErrCodeInvalidInput, "invalid timeout: must be positive, got %s", c.Timeout)
	}
	return nil
}

// NewViper returns a viper instance with defaults, env bindings and the
// config file search path set up. Config files are read through fs.
func NewViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(strings.TrimSuffix(FileName, ".toml"))
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault(KeyInput, defaults.Input)
	v.SetDefault(KeyOutput, defaults.Output)
	v.SetDefault(KeyRegistry, defaults.Registry)
	v.SetDefault(KeyTimeout, defaults.Timeout)
	return v
}

// Load reads the config file (if any), merges env vars and bound flags, and
// validates the result. A missing pyvalid.toml in the search path is not an
// error; a missing file set explicitly with SetConfigFile is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, pverrors.Wrap(pverrors.ErrCodeInvalidInput, err, "read config")
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, pverrors.Wrap(pverrors.ErrCodeInvalidInput, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// fileConfig is the on-disk shape of pyvalid.toml.
type fileConfig struct {
	Input    string `toml:"input"`
	Output   string `toml:"output"`
	Registry string `toml:"registry"`
	Timeout  string `toml:"timeout"`
}

// TOML renders c in pyvalid.toml format.
func (c *Config) TOML() ([]byte, error) {
	var buf bytes.Buffer
	err := toml.NewEncoder(&buf).Encode(fileConfig{
		Input:    c.Input,
		Output:   c.Output,
		Registry: c.Registry,
		Timeout:  c.Timeout.String(),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

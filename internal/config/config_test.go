package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pverrors "github.com/matzehuels/pyvalid/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "files/pip_packages.txt", cfg.Input)
	assert.Equal(t, "valid_pip_packages.txt", cfg.Output)
	assert.Equal(t, "https://pypi.org/pypi", cfg.Registry)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "Should accept defaults", mutate: func(*Config) {}},
		{name: "Should accept an absolute output path", mutate: func(c *Config) { c.Output = "/tmp/out.txt" }},
		{name: "Should accept a local registry", mutate: func(c *Config) { c.Registry = "http://localhost:8080/pypi" }},
		{name: "Should reject an empty input", mutate: func(c *Config) { c.Input = "" }, wantErr: true},
		{name: "Should reject an empty output", mutate: func(c *Config) { c.Output = " " }, wantErr: true},
		{name: "Should reject a registry without scheme", mutate: func(c *Config) { c.Registry = "pypi.org/pypi" }, wantErr: true},
		{name: "Should reject a zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
		{name: "Should reject a negative timeout", mutate: func(c *Config) { c.Timeout = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("Should use defaults without file or env", func(t *testing.T) {
		cfg, err := Load(NewViper(afero.NewMemMapFs()))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Should read pyvalid.toml from the working directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, configPath(t), []byte(`
input = "lists/candidates.txt"
timeout = "30s"
`), 0o644))

		cfg, err := Load(NewViper(fs))
		require.NoError(t, err)
		assert.Equal(t, "lists/candidates.txt", cfg.Input)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, DefaultOutput, cfg.Output)
	})

	t.Run("Should let env vars override the file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, configPath(t), []byte(`output = "from-file.txt"`), 0o644))
		t.Setenv("PYVALID_OUTPUT", "from-env.txt")
		t.Setenv("PYVALID_REGISTRY", "http://127.0.0.1:9000/pypi")

		cfg, err := Load(NewViper(fs))
		require.NoError(t, err)
		assert.Equal(t, "from-env.txt", cfg.Output)
		assert.Equal(t, "http://127.0.0.1:9000/pypi", cfg.Registry)
	})

	t.Run("Should let explicit values override env vars", func(t *testing.T) {
		t.Setenv("PYVALID_INPUT", "from-env.txt")
		v := NewViper(afero.NewMemMapFs())
		v.Set(KeyInput, "from-flag.txt")

		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, "from-flag.txt", cfg.Input)
	})

	t.Run("Should fail on an invalid config", func(t *testing.T) {
		t.Setenv("PYVALID_TIMEOUT", "-5s")

		_, err := Load(NewViper(afero.NewMemMapFs()))
		require.Error(t, err)
		assert.True(t, pverrors.Is(err, pverrors.ErrCodeInvalidInput))
	})

	t.Run("Should fail on a malformed file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, configPath(t), []byte(`input = [unterminated`), 0o644))

		_, err := Load(NewViper(fs))
		require.Error(t, err)
	})
}

func TestConfig_TOML(t *testing.T) {
	cfg := Default()
	cfg.Timeout = 45 * time.Second

	data, err := cfg.TOML()
	require.NoError(t, err)

	var decoded fileConfig
	_, err = toml.Decode(string(data), &decoded)
	require.NoError(t, err)
	assert.Equal(t, cfg.Input, decoded.Input)
	assert.Equal(t, cfg.Output, decoded.Output)
	assert.Equal(t, cfg.Registry, decoded.Registry)
	assert.Equal(t, "45s", decoded.Timeout)
}

// configPath returns where viper looks for pyvalid.toml; config search paths
// are made absolute against the working directory.
func configPath(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Join(wd, FileName)
}

// Package config loads the CLI configuration: embedded defaults first,
// then the user's config file (TOML or YAML) from the XDG config
// directory, then GLOBBER_-prefixed environment variables. The library
// packages never read configuration; only cmd/globber consumes this.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/globber/pkg/errors"
)

// Config holds the CLI defaults
type Config struct {
	// Grammar is the pattern grammar used when --grammar is not given
	Grammar string `koanf:"grammar" toml:"grammar"`

	// Color controls styled output: auto, always, or never
	Color string `koanf:"color" toml:"color"`

	// Verbosity is the default logging verbosity (0..3)
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Grammar:   "bsd",
		Color:     "auto",
		Verbosity: 0,
	}
}

// Load resolves the effective configuration
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	if path, parser := userConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
	}

	// GLOBBER_COLOR=never etc. override the file
	if err := k.Load(env.Provider("GLOBBER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GLOBBER_"))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}
	return &cfg, nil
}

// Generate renders the default configuration as an annotated TOML document,
// used by `globber config init`
func Generate() ([]byte, error) {
	body, err := gotoml.Marshal(Default())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render default config")
	}
	header := "# globber configuration\n# grammar: bsd | simple | sql\n# color: auto | always | never\n"
	return append([]byte(header), body...), nil
}

// UserConfigPath returns where `config init` writes the user file
func UserConfigPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// configDir prefers the live environment over xdg's value, which is fixed
// at process start; tests rely on re-reading it
func configDir() string {
	if env := os.Getenv("XDG_CONFIG_HOME"); env != "" {
		return filepath.Join(env, "globber")
	}
	return filepath.Join(xdg.ConfigHome, "globber")
}

// userConfigFile finds the user's config file and the parser matching its
// extension. TOML wins when both exist.
func userConfigFile() (string, koanf.Parser) {
	dir := configDir()
	candidates := []struct {
		name   string
		parser koanf.Parser
	}{
		{"config.toml", toml.Parser()},
		{"config.yaml", yaml.Parser()},
		{"config.yml", yaml.Parser()},
	}
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		if _, err := os.Stat(path); err == nil {
			return path, c.parser
		}
	}
	return "", nil
}

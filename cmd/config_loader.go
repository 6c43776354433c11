package cmd

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/fje/pkg/core"
	"github.com/oakwood-commons/fje/pkg/loader"
	"github.com/oakwood-commons/fje/pkg/settings"
)

//go:embed default_config.yaml
var defaultConfigYAML []byte

// fileConfig mirrors config.yaml.
type fileConfig struct {
	Defaults configDefaults `yaml:"defaults"`
}

type configDefaults struct {
	Style  string `yaml:"style,omitempty"`
	Icons  string `yaml:"icons,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// configLoader centralizes config loading so callers avoid duplicating merge logic.
type configLoader struct {
	defaultConfig func() ([]byte, error)
}

var cfgLoader = configLoader{defaultConfig: loadDefaultConfigYAML}

func loadMergedConfig(cfgPath string) (fileConfig, error) {
	return cfgLoader.loadMergedConfig(cfgPath)
}

func loadDefaultConfigYAML() ([]byte, error) {
	if len(bytes.TrimSpace(defaultConfigYAML)) == 0 {
		return nil, fmt.Errorf("embedded default config is empty")
	}
	return defaultConfigYAML, nil
}

func (l configLoader) loadMergedConfig(cfgPath string) (fileConfig, error) {
	defaultData, err := l.defaultConfig()
	if err != nil {
		return fileConfig{}, fmt.Errorf("load default config: %w", err)
	}
	cfg, err := decodeConfig(defaultData)
	if err != nil {
		return fileConfig{}, fmt.Errorf("decode default config: %w", err)
	}
	if cfg.Defaults.Style == "" || cfg.Defaults.Icons == "" {
		return fileConfig{}, fmt.Errorf("default config is missing style or icon defaults")
	}

	if cfgPath != "" {
		data, err := os.ReadFile(cfgPath)
		if err != nil {
			return fileConfig{}, fmt.Errorf("read config file %s: %w", cfgPath, err)
		}
		user, err := decodeConfig(data)
		if err != nil {
			return fileConfig{}, fmt.Errorf("decode config file %s: %w", cfgPath, err)
		}
		cfg = mergeConfig(cfg, user)
	}

	if err := validateConfig(cfg); err != nil {
		if cfgPath != "" {
			return fileConfig{}, fmt.Errorf("config file %s: %w", cfgPath, err)
		}
		return fileConfig{}, err
	}
	return cfg, nil
}

// decodeConfig rejects unknown keys so typos do not pass silently. An empty
// document decodes to the zero config.
func decodeConfig(data []byte) (fileConfig, error) {
	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, err
	}
	return cfg, nil
}

func mergeConfig(base, override fileConfig) fileConfig {
	if override.Defaults.Style != "" {
		base.Defaults.Style = override.Defaults.Style
	}
	if override.Defaults.Icons != "" {
		base.Defaults.Icons = override.Defaults.Icons
	}
	if override.Defaults.Format != "" {
		base.Defaults.Format = override.Defaults.Format
	}
	return base
}

func validateConfig(cfg fileConfig) error {
	if _, err := core.ParseSelection(cfg.Defaults.Style, cfg.Defaults.Icons); err != nil {
		return err
	}
	_, err := loader.ParseFormat(cfg.Defaults.Format)
	return err
}

// resolveConfigPath returns the explicit path if set, otherwise
// $XDG_CONFIG_HOME/fje/config.yaml or ~/.config/fje/config.yaml if present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

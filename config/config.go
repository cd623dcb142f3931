package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

var (
	homePath       string
	configHomePath string
	dataHomePath   string
	stateHomePath  string
)

type Config struct {
	// default theme name or theme file path
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty"`
	// whether to inline fetched images as data URIs
	EmbedImages *bool `yaml:"embedImages,omitempty" json:"embedImages,omitempty"`
	// conditions assigning slide types to pages that declare none
	Defaults []DefaultCondition `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

type DefaultCondition struct {
	If   string `yaml:"if" json:"if"`                         // condition to check
	Type string `yaml:"type,omitempty" json:"type,omitempty"` // slide type to apply if condition is true
	Skip *bool  `yaml:"skip,omitempty" json:"skip,omitempty"` // whether to skip the page if condition is true
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/deckgen/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/deckgen/config.yml
// If no config file is found, it returns an empty Config struct.
func Load(profile string) (*Config, error) {
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	cfg := &Config{}
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := yaml.Unmarshal(b, cfg); err != nil {
					return nil, fmt.Errorf("failed to unmarshal config: %w", err)
				}
				return cfg, nil
			}
		}
	}
	// If no config file is found, return an empty config
	return cfg, nil
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, "deckgen")
	} else {
		configHomePath = filepath.Join(homePath, ".config", "deckgen")
	}
	return configHomePath
}

// DataHomePath returns the path to the data home directory.
func DataHomePath() string {
	if dataHomePath != "" {
		return dataHomePath
	}
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		dataHomePath = filepath.Join(v, "deckgen")
	} else {
		dataHomePath = filepath.Join(homePath, ".local", "share", "deckgen")
	}
	return dataHomePath
}

// StateHomePath returns the path to the state home directory.
func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, "deckgen")
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", "deckgen")
	}
	return stateHomePath
}

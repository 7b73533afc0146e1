// Package config loads bskycli settings from an ini file, a dotenv file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/ini.v1"
)

const (
	// SectionName is the ini section holding bskycli settings.
	SectionName = "bskycli"
	// UserConfigDir is the directory for the user-level config, relative to $HOME.
	UserConfigDir = ".config/bskycli"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.ini"
	// DefaultEnvFile is loaded from the working directory when present.
	DefaultEnvFile = ".env"
)

// Environment overrides.
const (
	UsersFileEnv = "BSKYCLI_USERS_FILE"
	NetworkEnv   = "BSKYCLI_NETWORK"
	BinaryEnv    = "BSKYCLI_BINARY"
	BaseURLEnv   = "BSKYCLI_BASE_URL"
	OutputEnv    = "BSKYCLI_OUTPUT"
)

type Config struct {
	UsersFile string `ini:"users_file"`
	Network   string `ini:"network"`
	Binary    string `ini:"binary"`
	BaseURL   string `ini:"base_url"`
	Output    string `ini:"output"`
	Limit     int    `ini:"limit"`
	ReadLimit int    `ini:"read_limit"`
}

func DefaultConfig() *Config {
	return &Config{
		UsersFile: "users.txt",
		Network:   "bluesky",
		BaseURL:   "https://bsky.social/xrpc",
		Output:    "text",
		Limit:     10,
		ReadLimit: 20,
	}
}

// UserConfigPath returns ~/.config/bskycli/config.ini, or "" when the home
// directory is unknown.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// LoadFile overlays the [bskycli] section of the ini file at path onto c.
// Keys absent from the file keep their current value.
func (c *Config) LoadFile(path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if !cfg.HasSection(SectionName) {
		return nil
	}
	if err := cfg.Section(SectionName).MapTo(c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from BSKYCLI_* environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for env, field := range map[string]*string{
		UsersFileEnv: &c.UsersFile,
		NetworkEnv:   &c.Network,
		BinaryEnv:    &c.Binary,
		BaseURLEnv:   &c.BaseURL,
		OutputEnv:    &c.Output,
	} {
		if v, ok := lookup(env); ok && v != "" {
			*field = v
		}
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	return c.validate(true, true)
}

// ValidateUsers checks only the settings list-users reads.
func (c *Config) ValidateUsers() error {
	return c.validate(true, false)
}

// ValidateNetwork checks only the settings post and read use.
func (c *Config) ValidateNetwork() error {
	return c.validate(false, true)
}

func (c *Config) validate(users, network bool) error {
	var result *multierror.Error
	if users && c.UsersFile == "" {
		result = multierror.Append(result, errors.New("users_file is required"))
	}
	if network && c.Network == "" {
		result = multierror.Append(result, errors.New("network is required"))
	}
	if c.Output == "" {
		result = multierror.Append(result, errors.New("output is required"))
	}
	if users && c.Limit < 0 {
		result = multierror.Append(result, fmt.Errorf("limit must not be negative, got %d", c.Limit))
	}
	if network && c.ReadLimit < 1 {
		result = multierror.Append(result, fmt.Errorf("read_limit must be positive, got %d", c.ReadLimit))
	}
	return result.ErrorOrNil()
}

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// LoadEnvFile reads KEY=VALUE pairs from a dotenv file and exports those not
// already set in the environment. It returns the keys it exported.
func LoadEnvFile(path string) ([]string, error) {
	values, err := ReadEnvFile(path)
	if err != nil {
		return nil, err
	}

	var exported []string
	for _, key := range values.keys {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, values.values[key]); err != nil {
			return exported, fmt.Errorf("failed to export %s: %w", key, err)
		}
		exported = append(exported, key)
	}
	return exported, nil
}

// EnvFile holds the parsed contents of a dotenv file in file order.
type EnvFile struct {
	keys   []string
	values map[string]string
}

func (e *EnvFile) Keys() []string { return e.keys }

func (e *EnvFile) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// ReadEnvFile parses a dotenv file without touching the environment. A
// leading "export " on a key is dropped and a trailing backslash is kept as
// part of the value.
func ReadEnvFile(path string) (*EnvFile, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreContinuation:      true,
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	env := &EnvFile{values: map[string]string{}}
	for _, key := range cfg.Section(ini.DefaultSection).Keys() {
		name := envKeyName(key.Name())
		if _, seen := env.values[name]; !seen {
			env.keys = append(env.keys, name)
		}
		env.values[name] = key.String()
	}
	return env, nil
}

func envKeyName(name string) string {
	if fields := strings.Fields(name); len(fields) == 2 && fields[0] == "export" {
		return fields[1]
	}
	return name
}

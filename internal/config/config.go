// Package config loads the sandbox configuration.
//
// Values come from built-in defaults, then an optional YAML file, then
// environment variables. Session and machine IDs that are still empty after
// that are generated.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"sandboxenv/internal/environment"
	"sandboxenv/internal/logging"
	"sandboxenv/internal/resource"
)

// Environment variables read by Load.
const (
	EnvUserDataDir     = "SANDBOX_USER_DATA_DIR"
	EnvMachineID       = "SANDBOX_MACHINE_ID"
	EnvRemoteAuthority = "SANDBOX_REMOTE_AUTHORITY"
	EnvLogLevel        = "LOG_LEVEL"
)

// Config is the sandbox configuration.
type Config struct {
	// UserDataDir is the root every derived user location lives under.
	UserDataDir string `yaml:"user_data_dir"`

	// SessionID identifies this run. Generated when empty.
	SessionID string `yaml:"session_id"`

	// MachineID identifies the host. Generated when empty.
	MachineID string `yaml:"machine_id"`

	// RemoteAuthority is copied into the environment untouched.
	RemoteAuthority string `yaml:"remote_authority"`

	// LogLevel is one of error, warn, info, debug, trace.
	LogLevel string `yaml:"log_level"`

	// Mount configures the FUSE view.
	Mount MountConfig `yaml:"mount"`
}

// MountConfig configures the FUSE view of the store.
type MountConfig struct {
	// Mountpoint is where `sandboxenv mount` attaches when no argument is given.
	Mountpoint string `yaml:"mountpoint"`

	// FSName is reported to the kernel as the filesystem name.
	FSName string `yaml:"fsname"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UserDataDir: environment.DefaultUserDataDir,
		LogLevel:    "info",
		Mount: MountConfig{
			FSName: "sandboxenv",
		},
	}
}

// Load builds the configuration from path (may be empty) and the process
// environment.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv(lookupEnv)
	cfg.fillIDs()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the YAML file at path into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvUserDataDir); ok && v != "" {
		c.UserDataDir = v
	}
	if v, ok := lookupEnv(EnvMachineID); ok && v != "" {
		c.MachineID = v
	}
	// An empty remote authority is meaningful, so presence alone overrides.
	if v, ok := lookupEnv(EnvRemoteAuthority); ok {
		c.RemoteAuthority = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

func (c *Config) fillIDs() {
	if c.SessionID == "" {
		c.SessionID = uuid.NewString()
	}
	if c.MachineID == "" {
		c.MachineID = uuid.NewString()
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.UserDataDir == "" {
		errs = append(errs, errors.New("user_data_dir is required"))
	} else if !strings.HasPrefix(c.UserDataDir, "/") && !strings.HasPrefix(c.UserDataDir, `\`) {
		errs = append(errs, fmt.Errorf("user_data_dir must be absolute: %q", c.UserDataDir))
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("invalid log_level: %q", c.LogLevel))
	}
	if strings.TrimSpace(c.SessionID) == "" {
		errs = append(errs, errors.New("session_id must not be blank"))
	}
	if strings.TrimSpace(c.MachineID) == "" {
		errs = append(errs, errors.New("machine_id must not be blank"))
	}

	return errors.Join(errs...)
}

// Level returns the parsed log level, INFO when it is not valid.
func (c *Config) Level() logging.LogLevel {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

// Environment returns the values the environment descriptor is built from.
func (c *Config) Environment() environment.Configuration {
	return environment.Configuration{
		UserDataDir:     resource.File(c.UserDataDir),
		SessionID:       c.SessionID,
		MachineID:       c.MachineID,
		RemoteAuthority: c.RemoteAuthority,
	}
}

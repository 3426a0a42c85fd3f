// Package config loads pacwords settings from a TOML file and the
// environment. Environment variables take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"pacwords.build/cli/pacman"
)

const (
	pacmanEnvVar      = "PACWORDS_PACMAN"
	sudoEnvVar        = "PACWORDS_SUDO"
	sudoCommandEnvVar = "PACWORDS_SUDO_COMMAND"
	captureEnvVar     = "PACWORDS_CAPTURE"
	dryRunEnvVar      = "PACWORDS_DRY_RUN"
)

type Config struct {
	// Pacman is the package manager binary to forward to.
	Pacman string `toml:"pacman"`

	// Sudo runs pacman through SudoCommand when pacwords is not already root.
	Sudo bool `toml:"sudo"`

	// SudoCommand is the privilege escalation binary, e.g. "doas".
	SudoCommand string `toml:"sudo_command"`

	// Capture tees pacman's output into a temporary log file so that
	// failures can be inspected after the run.
	Capture bool `toml:"capture"`

	// DryRun prints the translated command line instead of running it.
	DryRun bool `toml:"dry_run"`
}

func Default() *Config {
	return &Config{
		Pacman:      "pacman",
		SudoCommand: "sudo",
		Capture:     true,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pacwords/config.toml, or "" if the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pacwords", "config.toml")
}

// Load reads the config file at path (a missing file is fine) and applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(pacmanEnvVar); ok {
		c.Pacman = v
	}
	if v, ok := os.LookupEnv(sudoCommandEnvVar); ok {
		c.SudoCommand = v
	}
	for name, dst := range map[string]*bool{
		sudoEnvVar:    &c.Sudo,
		captureEnvVar: &c.Capture,
		dryRunEnvVar:  &c.DryRun,
	} {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not a boolean", name, v)
		}
		*dst = b
	}
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Pacman) == "" {
		return fmt.Errorf("config: pacman binary must not be empty")
	}
	if c.Sudo && strings.TrimSpace(c.SudoCommand) == "" {
		return fmt.Errorf("config: sudo_command must not be empty when sudo is enabled")
	}
	return nil
}

var (
	current = Default()

	// IsRoot reports whether pacwords already runs with root privileges.
	IsRoot = func() bool { return os.Geteuid() == 0 }
)

// Set installs cfg as the configuration used by cli commands for the rest
// of the run.
func Set(cfg *Config) {
	current = cfg
}

// Get returns the configuration installed with Set, or the defaults.
func Get() *Config {
	return current
}

// RunOpts are the pacman run options implied by the config. Sudo is only
// set when it is enabled and we are not root already.
func (c *Config) RunOpts() *pacman.RunOpts {
	return &pacman.RunOpts{
		Pacman:      c.Pacman,
		Sudo:        c.Sudo && !IsRoot(),
		SudoCommand: c.SudoCommand,
	}
}

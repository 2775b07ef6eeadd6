package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/inspector/internal/core/analytics"
	"github.com/colonyops/inspector/internal/core/config"
	"github.com/colonyops/inspector/internal/core/property"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Entity is the edited entity, restored from the data dir snapshot when
	// one exists.
	Entity *property.Entity

	// Analytics receives interaction reports; nil when analytics is disabled.
	Analytics *analytics.Bus
}

// Reporter returns the analytics reporter commands hand to controls.
func (f *Flags) Reporter() analytics.Reporter {
	if f.Analytics == nil {
		return analytics.Nop{}
	}
	return f.Analytics
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "inspector", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "inspector")
}

// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppName names the per-user configuration directory.
	AppName = "llmboard"
	// DefaultConfigPath is the project-local configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultLogFile is used when the config does not name a log file.
	defaultLogFile = "llmboard.log"
	// defaultFormat is the render format when none is configured.
	defaultFormat = "text"
)

// Config represents the top-level application configuration.
type Config struct {
	Debug      bool   `json:"debug"`
	DataFile   string `json:"dataFile,omitempty"`
	LogFile    string `json:"logFile,omitempty"`
	NoColor    bool   `json:"noColor"`
	Format     string `json:"format,omitempty"`
	ExpandFAQ  int    `json:"expandFaq"`
	ConfigPath string `json:"-"`
}

// Defaults returns the configuration used when nothing is set. ExpandFAQ
// of -1 leaves every FAQ entry collapsed.
func Defaults() Config {
	return Config{Format: defaultFormat, ExpandFAQ: -1}
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// RenderFormat returns the configured format name, applying a default if not set.
func (c Config) RenderFormat() string {
	if f := strings.TrimSpace(c.Format); f != "" {
		return f
	}
	return defaultFormat
}

// ResolvePath picks the config file to read. An explicit path other than
// the default is returned as is. Otherwise the project-local file wins over
// the per-user file; "" means no file exists and defaults apply.
func ResolvePath(explicit string) string {
	if explicit != "" && explicit != DefaultConfigPath {
		return explicit
	}
	if fileExists(DefaultConfigPath) {
		return DefaultConfigPath
	}
	if path, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.json")); err == nil {
		return path
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

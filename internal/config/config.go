// Package config loads the srr settings file.
//
// The file is INI formatted with a single [srr] section:
//
//	[srr]
//	mappics_dir = /var/www/mappics
//	log_level   = info
//	json        = false
//	indent      = true
//	timeout     = 30s
//	max_size    = 67108864
package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"
)

// Section is the INI section read by Load.
const Section = "srr"

// DefaultPath is the settings file looked up when none is given.
const DefaultPath = "srr.ini"

// Config holds the CLI settings. Command-line flags override its fields.
type Config struct {
	MapPicsDir string        // directory of map pictures, none when empty
	LogLevel   string        // zerolog level name
	JSON       bool          // print JSON instead of a summary
	Indent     bool          // indent JSON output
	Timeout    time.Duration // per-replay fetch timeout
	MaxSize    int64         // download and decompressed size limit in bytes
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Indent:   true,
		Timeout:  30 * time.Second,
		MaxSize:  64 << 20,
	}
}

// Load reads path on top of Default. A missing file is only an error when
// required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "config %s", path)
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	sec := file.Section(Section)
	cfg.MapPicsDir = sec.Key("mappics_dir").MustString(cfg.MapPicsDir)
	cfg.LogLevel = sec.Key("log_level").MustString(cfg.LogLevel)
	cfg.JSON = sec.Key("json").MustBool(cfg.JSON)
	cfg.Indent = sec.Key("indent").MustBool(cfg.Indent)
	cfg.Timeout = sec.Key("timeout").MustDuration(cfg.Timeout)
	cfg.MaxSize = sec.Key("max_size").MustInt64(cfg.MaxSize)

	if _, err := cfg.Level(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	if cfg.Timeout <= 0 {
		return cfg, errors.Errorf("config %s: timeout must be positive", path)
	}
	if cfg.MaxSize <= 0 {
		return cfg, errors.Errorf("config %s: max_size must be positive", path)
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.NoLevel, errors.Wrap(err, "log_level")
	}
	return lvl, nil
}

// Package config holds globally available configuration values, either
// defaulted, read from a TOML file, or overridden by command-line flags.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// LogLevels maps the human-readable level names accepted on the command
// line to the github.com/op/go-logging level ints.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

var (
	// ConfFile is the path to the config file to read; set before Setup().
	ConfFile = "./config.toml"

	// LogLevel is the standard logger level; can be overridden by
	// -loglvl (the config file has no log level setting).
	LogLevel = 5

	// SearchLogLevel is the search-internal logger level.
	SearchLogLevel = 5

	// Settings holds the values decoded from ConfFile, defaults otherwise.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfig
	Search searchConfig
}

type logConfig struct {
	LogPath string
}

type searchConfig struct {
	// HashSizeMb is the transposition table size (MB) the UCI handler's
	// Search is created with. A later `setoption Hash` resizes that table
	// at once and does not update this value.
	HashSizeMb int
}

const (
	// DefaultHashSizeMb is used until a config file or setoption overrides it.
	DefaultHashSizeMb = 64
	MinHashSizeMb     = 1
	MaxHashSizeMb     = 4096
)

// Setup reads ConfFile (if present) over top of the defaults. Safe to call
// more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	Settings.Search.HashSizeMb = DefaultHashSizeMb
	Settings.Log.LogPath = "./logs"

	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults:", err)
	}
	if Settings.Search.HashSizeMb < MinHashSizeMb || Settings.Search.HashSizeMb > MaxHashSizeMb {
		Settings.Search.HashSizeMb = DefaultHashSizeMb
	}
	initialized = true
}

// ClampHash clamps a requested Hash size (MB) to the supported range.
func ClampHash(mb int) int {
	switch {
	case mb < MinHashSizeMb:
		return MinHashSizeMb
	case mb > MaxHashSizeMb:
		return MaxHashSizeMb
	default:
		return mb
	}
}

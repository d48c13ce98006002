// Package logging is a thin helper around "github.com/op/go-logging" that
// hands out preconfigured Logger instances so every other package needs
// only a single line to get a correctly leveled, correctly formatted
// logger instead of repeating backend setup everywhere.
package logging

import (
	"log"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/corvid/corvid/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the standard, stdout-backed logger, leveled from config.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the logger used from inside the search hot path;
// kept separate from the standard logger so it can be silenced
// independently (config.SearchLogLevel) without touching everything else.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetUciLog returns the logger for raw UCI protocol traffic, backed by a
// file under config.Settings.Log.LogPath in addition to stdout, so a GUI
// session's full protocol exchange survives after the window closes.
// Falls back to stdout only if the log folder can't be created or opened.
func GetUciLog() *logging.Logger {
	uciFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	stdoutBackend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	uciBackend1 := logging.AddModuleLevel(logging.NewBackendFormatter(stdoutBackend, uciFormat))
	uciBackend1.SetLevel(logging.DEBUG, "")

	f := openUciLogFile()
	if f == nil {
		uciLog.SetBackend(uciBackend1)
		return uciLog
	}
	fileBackend := logging.NewLogBackend(f, "", log.Lmsgprefix)
	uciBackend2 := logging.AddModuleLevel(logging.NewBackendFormatter(fileBackend, uciFormat))
	uciBackend2.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(logging.SetBackend(uciBackend1, uciBackend2))
	return uciLog
}

func openUciLogFile() *os.File {
	logPath := config.Settings.Log.LogPath
	if logPath == "" {
		return nil
	}
	if err := os.MkdirAll(logPath, 0o755); err != nil {
		log.Println("log folder could not be created:", err)
		return nil
	}
	exe, _ := os.Executable()
	name := filepath.Base(exe)
	if name == "" {
		name = "corvid"
	}
	f, err := os.OpenFile(filepath.Join(logPath, name+"_uci.log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		log.Println("logfile could not be created:", err)
		return nil
	}
	return f
}

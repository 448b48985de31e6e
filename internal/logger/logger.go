package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/daywell/internal/constants"
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Logger is nil until Init runs; the package helpers are no-ops before that.
var Logger *log.Logger

var sink *lumberjack.Logger

type Config struct {
	Debug bool
	// ConfigDir holds the logs/ directory.
	ConfigDir string
}

// Init points the package logger at ConfigDir/logs/daywell.log. Debug also
// mirrors output to stderr and reports callers.
func Init(cfg Config) error {
	dir := filepath.Join(cfg.ConfigDir, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	Close()
	sink = &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.AppName+".log"),
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          constants.AppName,
		Level:           log.InfoLevel,
	}
	var w io.Writer = sink
	if cfg.Debug {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
		w = io.MultiWriter(os.Stderr, sink)
	}
	Logger = log.NewWithOptions(w, opts)
	return nil
}

// Path is the active log file, or "" before Init.
func Path() string {
	if sink == nil {
		return ""
	}
	return sink.Filename
}

// Close releases the log file. Later calls log nowhere until Init.
func Close() {
	if sink != nil {
		_ = sink.Close()
		sink = nil
	}
	Logger = nil
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/lifeadvance/internal/constants"
)

// Logger is nil until Init runs; the helpers below drop messages until then.
var Logger *log.Logger

type Config struct {
	Debug   bool
	DataDir string
}

// Init writes logs to a rotated file under DataDir. Debug also echoes to
// stderr and lowers the level.
func Init(cfg Config) error {
	logDir := filepath.Join(cfg.DataDir, constants.LogDirName)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.LogFileName),
		MaxSize:    2,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	level := log.WarnLevel
	var out io.Writer = rotated
	if cfg.Debug {
		level = log.DebugLevel
		out = io.MultiWriter(os.Stderr, rotated)
	}

	Logger = log.NewWithOptions(out, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})

	return nil
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

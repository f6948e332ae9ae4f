package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tikotako/takonsole/pkg/paths"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log output goes
type Options struct {
	// Verbosity 0 = warn, 1 = info, 2 = debug, 3+ = trace
	Verbosity int
	// File is the log file path; empty uses the XDG state location
	File string
	// DisableFile turns off file logging entirely
	DisableFile bool
	// MaxSizeMB is the size at which the log file is rotated
	MaxSizeMB int
	// MaxBackups is how many rotated files are kept
	MaxBackups int
	// MaxAgeDays is how long rotated files are kept
	MaxAgeDays int
}

// DefaultOptions returns the options SetupLogger uses
func DefaultOptions(verbosity int) Options {
	return Options{
		Verbosity:  verbosity,
		MaxSizeMB:  5,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

var logFile *lumberjack.Logger

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	Setup(DefaultOptions(verbosity))
}

// Setup configures the global logger from opts
func Setup(opts Options) {
	switch opts.Verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	// Log lines go to stderr so they never mix with console output on stdout
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    false,
	}

	writers := []io.Writer{consoleWriter}

	Close()
	path := opts.File
	if path == "" {
		path = paths.LogFilePath()
	}
	var fileErr error
	if !opts.DisableFile {
		logFile, fileErr = setupLogFile(path, opts)
		if fileErr == nil {
			writers = append(writers, logFile)
		}
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("Logger initialized")
}

// Close flushes and closes the log file, if any
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// WithFields returns a logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	logger := log.Logger
	for k, v := range fields {
		logger = logger.With().Interface(k, v).Logger()
	}
	return logger
}

// setupLogFile prepares the rotating log file; lumberjack opens it lazily
func setupLogFile(logPath string, opts Options) (*lumberjack.Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogDuration logs the duration of an operation
func LogDuration(start time.Time, operation string) {
	log.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("Operation completed")
}

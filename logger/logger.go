// Package logger builds zerolog loggers with optional rotating file output.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/aleister1102/toolbox/errorwrapper"
)

// Format represents available log output formats
type Format int

const (
	FormatJSON Format = iota
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	if f == FormatConsole {
		return "console"
	}
	return "json"
}

// ParseFormat parses "json" or "console" (case-insensitive)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "console":
		return FormatConsole, nil
	default:
		return 0, errorwrapper.NewValidationError("format", s, "must be 'json' or 'console'")
	}
}

// Builder provides a fluent interface for building loggers
type Builder struct {
	level      zerolog.Level
	format     Format
	component  string
	filePath   string
	maxSizeMB  int
	maxBackups int
	console    io.Writer
}

// NewBuilder creates a builder with console output at info level
func NewBuilder() *Builder {
	return &Builder{
		level:      zerolog.InfoLevel,
		format:     FormatConsole,
		maxSizeMB:  100,
		maxBackups: 3,
		console:    os.Stderr,
	}
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level zerolog.Level) *Builder {
	b.level = level
	return b
}

// WithFormat sets the output format
func (b *Builder) WithFormat(format Format) *Builder {
	b.format = format
	return b
}

// WithComponent tags every event with a component name
func (b *Builder) WithComponent(name string) *Builder {
	b.component = name
	return b
}

// WithFile enables rotating file output
func (b *Builder) WithFile(path string, maxSizeMB, maxBackups int) *Builder {
	b.filePath = path
	b.maxSizeMB = maxSizeMB
	b.maxBackups = maxBackups
	return b
}

// WithConsoleWriter overrides the console destination, used in tests
func (b *Builder) WithConsoleWriter(w io.Writer) *Builder {
	b.console = w
	return b
}

// Build creates the logger instance
func (b *Builder) Build() (zerolog.Logger, error) {
	if err := b.validate(); err != nil {
		return zerolog.Nop(), err
	}

	writers := []io.Writer{b.consoleWriter()}
	if b.filePath != "" {
		fileWriter, err := b.fileWriter()
		if err != nil {
			return zerolog.Nop(), err
		}
		writers = append(writers, fileWriter)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(b.level).
		With().
		Timestamp().
		Logger()

	if b.component != "" {
		logger = logger.With().Str("component", b.component).Logger()
	}

	return logger, nil
}

func (b *Builder) validate() error {
	if b.filePath != "" && b.maxSizeMB <= 0 {
		return errorwrapper.NewValidationError("max_size_mb", b.maxSizeMB, "must be positive when file logging enabled")
	}
	if b.maxBackups < 0 {
		return errorwrapper.NewValidationError("max_backups", b.maxBackups, "must not be negative")
	}
	return nil
}

func (b *Builder) consoleWriter() io.Writer {
	if b.format == FormatConsole {
		return zerolog.ConsoleWriter{Out: b.console, TimeFormat: time.RFC3339}
	}
	return b.console
}

func (b *Builder) fileWriter() (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(b.filePath), 0755); err != nil {
		return nil, errorwrapper.WrapError(err, "could not create log directory for '"+b.filePath+"'")
	}

	return &lumberjack.Logger{
		Filename:   b.filePath,
		MaxSize:    b.maxSizeMB,
		MaxBackups: b.maxBackups,
		LocalTime:  true,
	}, nil
}

// Nop returns a disabled logger for tests
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

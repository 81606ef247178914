// Package tui provides terminal user interface components and utilities.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Console prefixes for the message kinds that carry one
const (
	warnPrefix  = "⚠️  "
	errorPrefix = "❌ "
	tipPrefix   = "💡 "
)

// consoleHandler prints bare messages, one per line. Attributes only reach the log file.
type consoleHandler struct {
	w     io.Writer
	debug bool
	quiet *bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level > slog.LevelDebug || h.debug
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.w, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(_ string) slog.Handler { return h }

// fanoutHandler sends each record to every handler that accepts its level
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h {
		if handler.Enabled(ctx, record.Level) {
			errs = append(errs, handler.Handle(ctx, record.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(fanoutHandler, len(h))
	for i, handler := range h {
		next[i] = handler.WithAttrs(attrs)
	}
	return next
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	next := make(fanoutHandler, len(h))
	for i, handler := range h {
		next[i] = handler.WithGroup(name)
	}
	return next
}

// envInt reads a non-negative integer setting, falling back to def
func envInt(name string, def int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n < 0 {
		return def
	}
	return n
}

// rotatingLog opens the log file with rotation limits from METRO_LOG_MAX_SIZE (MB),
// METRO_LOG_MAX_BACKUPS and METRO_LOG_MAX_AGE (days)
func rotatingLog(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("METRO_LOG_MAX_SIZE", 1),
		MaxBackups: envInt("METRO_LOG_MAX_BACKUPS", 2),
		MaxAge:     envInt("METRO_LOG_MAX_AGE", 30),
	}
}

// Splog writes command output to the console and, when configured, a
// timestamped debug log on disk
type Splog struct {
	logger  *slog.Logger
	console io.Writer
	logFile io.Closer
	quiet   bool
}

// NewSplog creates a console-only splog on stdout.
// Debug messages are shown when DEBUG is set.
func NewSplog() *Splog {
	return NewSplogWithWriter(os.Stdout)
}

// NewSplogWithConfig creates a splog on stdout that also logs everything to logFilePath
func NewSplogWithConfig(logFilePath string) (*Splog, error) {
	return newSplog(os.Stdout, logFilePath)
}

// NewSplogWithWriter creates a console-only splog writing to w
func NewSplogWithWriter(w io.Writer) *Splog {
	splog, _ := newSplog(w, "")
	return splog
}

func newSplog(w io.Writer, logFilePath string) (*Splog, error) {
	s := &Splog{console: w}
	handlers := fanoutHandler{&consoleHandler{
		w:     w,
		debug: os.Getenv("DEBUG") != "",
		quiet: &s.quiet,
	}}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file := rotatingLog(logFilePath)
		s.logFile = file
		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					a.Value = slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))
				}
				return a
			},
		}))
	}

	s.logger = slog.New(handlers)
	return s, nil
}

// SetQuiet turns console output off or back on. The log file keeps everything.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// Logger returns the underlying structured logger. Attributes reach the log
// file; the console shows messages only.
func (s *Splog) Logger() *slog.Logger {
	return s.logger
}

func (s *Splog) emit(level slog.Level, prefix, format string, args []any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, prefix+msg)
}

// Info writes a message
func (s *Splog) Info(format string, args ...any) {
	s.emit(slog.LevelInfo, "", format, args)
}

// Tip writes a hint about what to run next
func (s *Splog) Tip(format string, args ...any) {
	s.emit(slog.LevelInfo, tipPrefix, format, args)
}

// Warn writes a warning
func (s *Splog) Warn(format string, args ...any) {
	s.emit(slog.LevelWarn, warnPrefix, format, args)
}

// Error writes an error
func (s *Splog) Error(format string, args ...any) {
	s.emit(slog.LevelError, errorPrefix, format, args)
}

// Debug writes a message shown only when DEBUG is set
func (s *Splog) Debug(format string, args ...any) {
	s.emit(slog.LevelDebug, "", format, args)
}

// Newline writes an empty line to the console
func (s *Splog) Newline() {
	if !s.quiet {
		_, _ = fmt.Fprintln(s.console)
	}
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}

package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"
)

// Logger printf-логгер поверх slog
// Пишет в консоль (tint), опционально в JSON-файл и в Fluent Bit
type Logger struct {
	slog    *slog.Logger
	closers []io.Closer
}

// Option дополнительная настройка логгера
type Option func(*options)

type options struct {
	console    io.Writer
	noColor    bool
	fluentHost string
	fluentPort int
	fluentTag  string
}

// WithConsole переопределяет writer консольного вывода (по умолчанию os.Stdout)
func WithConsole(w io.Writer, noColor bool) Option {
	return func(o *options) {
		o.console = w
		o.noColor = noColor
	}
}

// WithFluent включает отправку логов в Fluent Bit
func WithFluent(host string, port int, tag string) Option {
	return func(o *options) {
		o.fluentHost = host
		o.fluentPort = port
		o.fluentTag = tag
	}
}

// New создает логгер
// file - путь к файлу логов (пустая строка - только консоль)
// level - debug, info, warn, error
func New(file string, level string, opts ...Option) (*Logger, error) {
	o := &options{console: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := &Logger{}
	handlers := []slog.Handler{
		tint.NewHandler(o.console, &tint.Options{
			Level:      lvl,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    o.noColor,
		}),
	}

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, fmt.Errorf("logger: failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file: %w", err)
		}
		l.closers = append(l.closers, f)
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl}))
	}

	if o.fluentHost != "" {
		client, err := fluent.New(fluent.Config{
			FluentHost: o.fluentHost,
			FluentPort: o.fluentPort,
			Async:      true,
		})
		if err != nil {
			l.Close()
			return nil, fmt.Errorf("logger: failed to connect to fluent: %w", err)
		}
		l.closers = append(l.closers, client)
		handlers = append(handlers, newFluentHandler(client, o.fluentTag, lvl))
	}

	if len(handlers) == 1 {
		l.slog = slog.New(handlers[0])
	} else {
		l.slog = slog.New(&multiHandler{handlers: handlers})
	}

	return l, nil
}

// NewNop логгер, который ничего не пишет (для тестов)
func NewNop() *Logger {
	return &Logger{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel конвертирует строковый уровень в slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", level)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.slog.Debug(fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.slog.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.slog.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.slog.Error(fmt.Sprintf(format, v...))
}

// Fatal логирует ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.slog.Error(fmt.Sprintf(format, v...))
	l.Close()
	os.Exit(1)
}

// With возвращает дочерний логгер с дополнительными атрибутами
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...)}
}

// Slog отдает нижележащий *slog.Logger
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Close закрывает файл логов и соединение с Fluent Bit
func (l *Logger) Close() error {
	var errs []error
	for _, c := range l.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.closers = nil
	return errors.Join(errs...)
}

type ctxKey struct{}

// WithContext кладет логгер в контекст
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext достает логгер из контекста, fallback - переданный логгер
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return fallback
}

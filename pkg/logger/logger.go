package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Logger логгер с printf-интерфейсом поверх zerolog
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New создает логгер
// Если filePath пустой, логи пишутся в stdout
// level: debug, info, warn, error (по умолчанию info)
func New(filePath string, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	return newWithWriter(out, lvl, file), nil
}

// NewWithWriter создает логгер, пишущий в произвольный writer (используется в тестах)
func NewWithWriter(w io.Writer, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return newWithWriter(w, lvl, nil), nil
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func newWithWriter(w io.Writer, lvl zerolog.Level, file *os.File) *Logger {
	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return &Logger{zl: zl, file: file}
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.WithLevel(zerolog.FatalLevel).Msgf(format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

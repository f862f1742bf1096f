package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger логгер с printf-подобным API поверх zap
// Пишет в stdout (console encoder) и, если указан файл, дублирует записи в файл в формате JSON
type Logger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// New создает логгер
// filePath - путь к файлу логов (пустая строка - только stdout)
// level - debug, info, warn, error
func New(filePath, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(os.Stdout), lvl),
	}

	var file *os.File
	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(file), lvl))
	}

	base := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{
		sugar: base.Sugar(),
		file:  file,
	}, nil
}

// NewNop возвращает логгер, который ничего не пишет (для тестов)
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal логирует сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close сбрасывает буферы и закрывает файл логов
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

package logger

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Middleware) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// SlogLogger é a implementação concreta da interface Logger
// que escreve uma linha JSON por entrada usando log/slog.
type SlogLogger struct {
	l    *slog.Logger
	exit func(code int)
}

// NewLogger cria um Logger que escreve em stdout no nível informado.
// Esta função é chamada no main.go.
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stdout)
}

// NewLoggerWithWriter cria um Logger que escreve no writer informado (útil em testes).
func NewLoggerWithWriter(level string, w io.Writer) *SlogLogger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &SlogLogger{l: slog.New(h), exit: os.Exit}
}

// ParseLevel converte o nível textual (debug, info, warn, error) para slog.Level.
// Valores desconhecidos resultam em info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// attrs converte o mapa de campos em pares chave/valor em ordem estável.
func attrs(fields map[string]interface{}) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}

func (s *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	s.l.Debug(msg, attrs(fields)...)
}

func (s *SlogLogger) Info(msg string, fields map[string]interface{}) {
	s.l.Info(msg, attrs(fields)...)
}

func (s *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	s.l.Warn(msg, attrs(fields)...)
}

func (s *SlogLogger) Error(msg string, err error) {
	if err != nil {
		s.l.Error(msg, "error", err.Error())
		return
	}
	s.l.Error(msg)
}

// Fatal registra o erro e encerra o processo.
func (s *SlogLogger) Fatal(msg string, err error) {
	s.Error(msg, err)
	s.exit(1)
}

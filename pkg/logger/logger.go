// Package logger arma el logger zerolog de la aplicación: salida de consola
// legible en desarrollo, JSON en cualquier otro entorno.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config formato y nivel mínimo del logger.
type Config struct {
	Env   string // "development" activa la consola legible
	Level string // trace|debug|info|warn|error; desconocido o vacío cae en info
}

// Logger expone los niveles que usa la aplicación sin acoplar el arranque a
// la API de zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger de la aplicación escribiendo a stdout.
func New(cfg Config) *Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter crea el logger sobre un writer arbitrario y además fija el
// logger global de zerolog, que algunas librerías usan directamente.
func NewWithWriter(cfg Config, out io.Writer) *Logger {
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out}
	}
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

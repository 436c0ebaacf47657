package logger_test

import (
	"bytes"
	"testing"

	"github.com/jhoicas/ElectroPos-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

// TestNivelMinimo_FiltraEventosMenores: con nivel warn, los eventos info no
// se escriben y los warn salen como JSON con su nivel.
func TestNivelMinimo_FiltraEventosMenores(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Env: "production", Level: "warn"}, &buf)

	log.Info().Msg("ruido")
	log.Warn().Msg("atencion")

	out := buf.String()
	assert.NotContains(t, out, "ruido")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "atencion")
}

// TestNivelDesconocido_CaeEnInfo: un nivel no reconocido (o vacío) deja el
// logger en info en lugar de silenciarlo o fallar.
func TestNivelDesconocido_CaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: "verboso"}, &buf)

	log.Info().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
}

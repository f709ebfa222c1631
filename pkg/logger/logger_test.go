package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-pos/pkg/logger"
)

func TestNew_JSONEnSalidaConfigurada(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})

	comp := log.Component("catalog")
	comp.Info().Str("barcode", "AUTOGEN-0001").Msg("producto agregado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog", entry["component"])
	assert.Equal(t, "AUTOGEN-0001", entry["barcode"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("oculto")
	assert.Zero(t, buf.Len())
	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNop_NoEscribe(t *testing.T) {
	log := logger.Nop()
	assert.Equal(t, zerolog.Disabled, log.Zerolog().GetLevel())
	log.Error().Msg("descartado")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("verboso"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
}

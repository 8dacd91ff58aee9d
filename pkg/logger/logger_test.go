package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sitebuilder-api/pkg/logger"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("descartado")
	log.WithTenant("t-1").Warn().Str("label", "Retail").Msg("categoría desconocida")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "info queda por debajo del nivel warn")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "t-1", entry["tenant_id"])
	assert.Equal(t, "Retail", entry["label"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "ruidoso", Output: &buf})
	log.Debug().Msg("no")
	log.Info().Msg("si")
	assert.Contains(t, buf.String(), `"message":"si"`)
	assert.NotContains(t, buf.String(), `"message":"no"`)
}

func TestNop_NoEscribe(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Nop().Error().Msg("nada")
	})
}

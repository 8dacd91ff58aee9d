package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "sitebuilder-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "postgres://postgres:@localhost:5432/sitebuilder?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_ValoresComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("METRICS_ENABLED", "false")
	v.Set("DB_PORT", "no-es-numero")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5432, cfg.DB.Port, "un entero inválido conserva el default")
}

func TestFromViper_DatabaseURLTienePrioridad(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgresql://u:p@db.example.com:6543/postgres?sslmode=require")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgresql://u:p@db.example.com:6543/postgres?sslmode=require", cfg.DB.ConnectionString())
}

func TestDSN_EscapaCaracteresEspeciales(t *testing.T) {
	c := DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss/w:rd", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%2Fw%3Ard@h:5432/d?sslmode=disable", c.DSN())
}

func TestFromViper_ProduccionSinSecret_Falla(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	_, err := fromViper(v)
	assert.Error(t, err)
}

package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del servicio (Viper: variables de entorno y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Metrics MetricsConfig
	Docs    DocsConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío se usa tal cual (ej. DATABASE_URL del backend hospedado).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve DATABASE_URL si está definido; si no, el DSN construido.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig verificación de los tokens de acceso emitidos por el backend de autenticación.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos, solo para tokens emitidos localmente (dev)
	Issuer     string
}

// HTTPConfig servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MetricsConfig exposición de métricas Prometheus.
type MetricsConfig struct {
	Enabled bool
	Path    string
}

// DocsConfig Swagger UI.
type DocsConfig struct {
	Enabled  bool
	FilePath string
}

// Load lee la configuración. Las env vars tienen prioridad sobre .env / config.env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "sitebuilder-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "sitebuilder"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "sitebuilder"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
			Path:    getString(v, "METRICS_PATH", "/metrics"),
		},
		Docs: DocsConfig{
			Enabled:  getBool(v, "SWAGGER_ENABLED", true),
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}
	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en producción")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return b
	}
	return v.GetBool(key)
}

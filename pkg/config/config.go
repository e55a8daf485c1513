package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Almacenes de registros soportados para el snapshot.
const (
	StorePostgres = "postgres"
	StoreFile     = "file"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	Redis  RedisConfig
	Report ReportConfig
	Shop   ShopConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve DATABASE_URL si está definido, si no el DSN construido.
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig cache de reportes. Addr vacío desactiva el cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled indica si hay un Redis configurado.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// ReportConfig parámetros del motor de reportes.
type ReportConfig struct {
	Store           string // postgres | file
	SnapshotPath    string // directorio de colecciones JSON cuando Store=file
	Timezone        string // zona IANA de los rangos y buckets
	CacheTTLSeconds int
	// AllowUnknownOwner registros sin campo de dueño visibles para todos los tenants.
	AllowUnknownOwner bool
	// AllowedRoles roles del token con acceso a los reportes; vacío = todos.
	AllowedRoles []string
}

// CacheTTL TTL del cache como duración.
func (c ReportConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Location carga la zona horaria; cae en UTC si no es válida.
func (c ReportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ShopConfig encabezado del recibo de texto.
type ShopConfig struct {
	Name    string
	Phone   string
	Address string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-reportes"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario_reportes"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-reportes"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Report: ReportConfig{
			Store:             strings.ToLower(getString(v, "REPORT_STORE", StorePostgres)),
			SnapshotPath:      getString(v, "REPORT_SNAPSHOT_PATH", "./data"),
			Timezone:          getString(v, "REPORT_TIMEZONE", "America/Bogota"),
			CacheTTLSeconds:   getInt(v, "REPORT_CACHE_TTL_SECONDS", 60),
			AllowUnknownOwner: getBool(v, "REPORT_ALLOW_UNKNOWN_OWNER", true),
			AllowedRoles:      splitList(getString(v, "REPORT_ALLOWED_ROLES", "")),
		},
		Shop: ShopConfig{
			Name:    getString(v, "SHOP_NAME", ""),
			Phone:   getString(v, "SHOP_PHONE", ""),
			Address: getString(v, "SHOP_ADDRESS", ""),
		},
	}

	if cfg.Report.Store != StorePostgres && cfg.Report.Store != StoreFile {
		return nil, fmt.Errorf("config: REPORT_STORE inválido %q (postgres|file)", cfg.Report.Store)
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
	return v.GetBool(key)
}

// splitList "a, b,,c" -> [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

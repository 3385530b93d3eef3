package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	DBDSN       string // opcional; vacío = diagnósticos in-memory
	DBMaxConns  int
	DBPingWait  time.Duration
	Household   string // YAML opcional para precargar la sesión
	ConflictMax int    // límite por defecto en GET /conflicts
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

// Load lee la configuración desde variables de entorno con defaults de dev.
// Si hay un .env en el directorio actual se carga antes; no pisa variables ya definidas.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			App:    getEnv("APP_NAME", "pet-care-planner"),
		},
		DBDSN:       strings.TrimSpace(os.Getenv("DB_DSN")),
		DBMaxConns:  getEnvAsInt("DB_MAX_OPEN_CONNS", 5),
		DBPingWait:  getEnvAsDuration("DB_PING_TIMEOUT", 3*time.Second),
		Household:   strings.TrimSpace(os.Getenv("HOUSEHOLD_FILE")),
		ConflictMax: getEnvAsInt("CONFLICT_LIST_LIMIT", 50),
	}
}

func (c Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

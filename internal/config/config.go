package config

import (
	"context"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env   string
	Port  int
	DBURL string

	// Drops and recreates the schema on start. Development only.
	DBResetOnStart bool

	CORSAllowedOrigins []string
	MaxBodyBytes       int64

	ServiceName  string
	OTLPEndpoint string

	// When true, 500 responses carry the raw error text in "error".
	ExposeInternalErrors bool
}

// ClientConfig is what the form client needs: where the API lives and where to serve the form.
type ClientConfig struct {
	APIBaseURL string
	WebPort    int
	Timeout    time.Duration
}

func Load() Config {
	loadDotEnv()

	return Config{
		Env:                  getEnv("APP_ENV", "dev"),
		Port:                 getEnvInt("PORT", 5000),
		DBURL:                buildDBURL(),
		DBResetOnStart:       getEnvBool("DB_RESET_ON_START", false),
		CORSAllowedOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		MaxBodyBytes:         int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		ServiceName:          getEnv("OTEL_SERVICE_NAME", "employeehub-api"),
		OTLPEndpoint:         getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ExposeInternalErrors: getEnvBool("EXPOSE_INTERNAL_ERRORS", true),
	}
}

func LoadClient() ClientConfig {
	loadDotEnv()

	return ClientConfig{
		APIBaseURL: strings.TrimRight(getEnv("EMPLOYEE_API_URL", "http://localhost:5000"), "/"),
		WebPort:    getEnvInt("WEB_PORT", 3000),
		Timeout:    time.Duration(getEnvInt("CLIENT_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

// a missing .env is normal outside local development
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("could not read .env", "err", err)
	}
}

func buildDBURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "employeehub")
	pass := getEnv("DB_PASSWORD", "employeehub")
	name := getEnv("DB_NAME", "employeedb")
	ssl := getEnv("DB_SSLMODE", "disable")

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, pass),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": {ssl}}.Encode(),
	}
	return dsn.String()
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			slog.Warn("invalid int env, using default", "key", key, "value", v, "default", fallback)
			return fallback
		}

		return num
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)

		if err != nil {
			slog.Warn("invalid bool env, using default", "key", key, "value", v, "default", fallback)
			return fallback
		}

		return b
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	out := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

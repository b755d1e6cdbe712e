package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	JWTSecret   string
	ServerPort  string
	CORSOrigins []string
	LogLevel    string
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set win over .env values.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBUrl:       os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "clients"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "90210"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL assembled
// from the individual DB_* settings.
func (c *Config) DSN() string {
	if c.DBUrl != "" {
		return c.DBUrl
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

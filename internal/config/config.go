package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	SeedPath          string
	NATSURL           string
	NATSSubjectPrefix string
	LogNATSSubjects   bool
	MetricsAddr       string
}

// Load reads .env (if present) into the environment, then builds the config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              Get("PORT", "8080"),
		SeedPath:          Get("SEED_PATH", "data/seeds/trips.json"),
		NATSURL:           strings.TrimSpace(os.Getenv("NATS_URL")),
		NATSSubjectPrefix: Get("NATS_SUBJECT_PREFIX", "hos.sheets"),
		MetricsAddr:       strings.TrimSpace(os.Getenv("METRICS_ADDR")),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}

	dsn, err := databaseURL()
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = dsn

	if v := os.Getenv("LOG_NATS_SUBJECTS"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_NATS_SUBJECTS: %q", v)
		}
		cfg.LogNATSSubjects = b
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// databaseURL prefers DATABASE_URL, else assembles a DSN from PG* parts.
func databaseURL() (string, error) {
	if dsn := strings.TrimSpace(os.Getenv("DATABASE_URL")); dsn != "" {
		return dsn, nil
	}

	db := os.Getenv("PGDATABASE")
	if db == "" {
		return "", errors.New("DATABASE_URL or PGDATABASE must be set")
	}
	host := Get("PGHOST", "127.0.0.1")
	port := Get("PGPORT", "5432")
	user := Get("PGUSER", "postgres")
	sslmode := Get("PGSSLMODE", "disable")

	if pass := os.Getenv("PGPASSWORD"); pass != "" {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", urlEscape(user), urlEscape(pass), host, port, db, sslmode), nil
	}
	return fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=%s", urlEscape(user), host, port, db, sslmode), nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", v)
}

func urlEscape(s string) string {
	r := strings.NewReplacer("@", "%40", ":", "%3A", "/", "%2F", "?", "%3F", "#", "%23")
	return r.Replace(s)
}

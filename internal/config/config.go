package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all startup configuration of the service.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	// Store is the hosted Postgres database holding the users table.
	StoreURL          string
	StoreAnonUser     string
	StoreAnonKey      string
	StoreServiceUser  string
	StoreServiceKey   string
	StoreMaxOpenConns int
	StoreMaxIdleConns int
	StoreTimeout      time.Duration

	// Generation API. An empty OpenAIKey selects fallback-only mode.
	OpenAIKey         string
	OpenAIBaseURL     string
	OpenAIModel       string
	GenerationTimeout time.Duration

	BcryptCost  int
	CORSOrigins []string

	// Auth events. No brokers means events are disabled.
	KafkaBrokers   []string
	KafkaAuthTopic string
}

// Load reads the optional env file at path, then the process environment,
// and returns the resulting configuration. It does not validate it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:          getEnv("APP_HOST", "localhost"),
		AppPort:          getEnv("APP_PORT", "8080"),
		LogLevel:         getEnv("APP_LOG_LEVEL", "info"),
		StoreURL:         getEnv("STORE_URL", ""),
		StoreAnonUser:    getEnv("STORE_ANON_USER", "anon"),
		StoreAnonKey:     getEnv("STORE_ANON_KEY", ""),
		StoreServiceUser: getEnv("STORE_SERVICE_USER", "postgres"),
		StoreServiceKey:  getEnv("STORE_SERVICE_ROLE_KEY", ""),
		OpenAIKey:        strings.TrimSpace(getEnv("OPENAI_API_KEY", "")),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		KafkaBrokers:     splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaAuthTopic:   getEnv("KAFKA_AUTH_TOPIC", "auth-events"),
	}

	var err error
	if cfg.StoreMaxOpenConns, err = getEnvInt("STORE_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.StoreMaxIdleConns, err = getEnvInt("STORE_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getEnvInt("BCRYPT_COST", 12); err != nil {
		return nil, err
	}

	storeTimeout, err := getEnvInt("STORE_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	cfg.StoreTimeout = time.Duration(storeTimeout) * time.Second

	genTimeout, err := getEnvInt("GENERATION_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	cfg.GenerationTimeout = time.Duration(genTimeout) * time.Second

	return cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("APP_LOG_LEVEL: %w", err))
	}

	if c.StoreURL == "" {
		errs = append(errs, errors.New("STORE_URL is required"))
	} else if u, err := url.Parse(c.StoreURL); err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") || u.Host == "" {
		errs = append(errs, fmt.Errorf("STORE_URL must be a postgres:// URL, got %q", c.StoreURL))
	}
	if c.StoreAnonKey == "" {
		errs = append(errs, errors.New("STORE_ANON_KEY is required"))
	}
	if c.StoreServiceKey == "" {
		errs = append(errs, errors.New("STORE_SERVICE_ROLE_KEY is required"))
	}
	if c.StoreTimeout <= 0 {
		errs = append(errs, errors.New("STORE_TIMEOUT_SECONDS must be positive"))
	}
	if c.GenerationTimeout <= 0 {
		errs = append(errs, errors.New("GENERATION_TIMEOUT_SECONDS must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaAuthTopic == "" {
		errs = append(errs, errors.New("KAFKA_AUTH_TOPIC is required when KAFKA_BROKERS is set"))
	}

	return errors.Join(errs...)
}

// ServiceDSN is the connection string of the privileged (service-role) client.
func (c *Config) ServiceDSN() string {
	return withCredentials(c.StoreURL, c.StoreServiceUser, c.StoreServiceKey)
}

// AnonDSN is the connection string of the anonymous-scope client.
func (c *Config) AnonDSN() string {
	return withCredentials(c.StoreURL, c.StoreAnonUser, c.StoreAnonKey)
}

// GenerationEnabled reports whether a generation API credential is configured.
func (c *Config) GenerationEnabled() bool {
	return c.OpenAIKey != ""
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

func withCredentials(rawURL, user, key string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.User = url.UserPassword(user, key)
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}

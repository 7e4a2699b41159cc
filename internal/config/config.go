package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// DevJWTSecret is the built-in signing secret. It is public, so tokens
// signed with it can be forged by anyone.
const DevJWTSecret = "dev-secret-change-me"

type Config struct {
	ServerPort string `yaml:"server_port"`
	Storage    string `yaml:"storage"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`

	JWTSecret      string        `yaml:"jwt_secret"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl"`
	BcryptCost     int           `yaml:"bcrypt_cost"`

	GoogleAPIKey string `yaml:"google_api_key"`
	GeminiModel  string `yaml:"gemini_model"`

	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	CORSOrigin string `yaml:"cors_origin"`
}

func defaults() *Config {
	return &Config{
		ServerPort:     "8000",
		Storage:        StoragePostgres,
		DBHost:         "localhost",
		DBPort:         "5432",
		DBUser:         "smartblog",
		DBPassword:     "smartblog_dev_password",
		DBName:         "smartblog",
		JWTSecret:      DevJWTSecret,
		AccessTokenTTL: 30 * time.Minute,
		BcryptCost:     bcrypt.DefaultCost,
		GeminiModel:    "gemini-1.5-flash",
		LogLevel:       "info",
		LogFormat:      "json",
		CORSOrigin:     "*",
	}
}

// Load builds the configuration from defaults, then an optional .env file
// (ENV_FILE, default ".env"), then an optional YAML file named by
// CONFIG_FILE, then the process environment. Later sources win.
func Load() (*Config, error) {
	cfg := defaults()

	if err := godotenv.Load(getEnv("ENV_FILE", ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.Storage = getEnv("STORAGE", c.Storage)
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnv("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)
	c.GoogleAPIKey = getEnv("GOOGLE_API_KEY", c.GoogleAPIKey)
	c.GeminiModel = getEnv("GEMINI_MODEL", c.GeminiModel)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.CORSOrigin = getEnv("CORS_ORIGIN", c.CORSOrigin)

	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ACCESS_TOKEN_TTL: %w", err)
		}
		c.AccessTokenTTL = ttl
	}

	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BCRYPT_COST: %w", err)
		}
		c.BcryptCost = cost
	}

	return nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("ACCESS_TOKEN_TTL must be positive, got %s", c.AccessTokenTTL))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		errs = append(errs, fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage))
	}

	return errors.Join(errs...)
}

// UsesDevSecret reports whether tokens are signed with DevJWTSecret.
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

// DatabaseURL is the pgx connection string for the configured database.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
	}
	Mongo struct {
		URI      string
		Database string
	}
	RabbitMQ struct {
		Host     string
		Port     int
		User     string
		Password string
		Exchange string
	}
	JWT struct {
		Secret     string
		AccessTTL  time.Duration
		RefreshTTL time.Duration
	}
	Captain struct {
		Port           int
		Store          string
		PresencePolicy string
		BcryptCost     int
	}
	LogLevel string
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return def
}

// LoadConfig reads the environment, preloading any variables found in envFiles.
// Missing files are skipped; variables already set win over file values.
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "ridehail_user")
	cfg.Database.Password = getEnv("DB_PASSWORD", "ridehail_pass")
	cfg.Database.Name = getEnv("DB_NAME", "ridehail_db")

	cfg.Mongo.URI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	cfg.Mongo.Database = getEnv("MONGO_DB", "ridehail")

	cfg.RabbitMQ.Host = getEnv("RABBITMQ_HOST", "localhost")
	cfg.RabbitMQ.Port = getEnvInt("RABBITMQ_PORT", 5672)
	cfg.RabbitMQ.User = getEnv("RABBITMQ_USER", "guest")
	cfg.RabbitMQ.Password = getEnv("RABBITMQ_PASSWORD", "guest")
	cfg.RabbitMQ.Exchange = getEnv("RABBITMQ_EXCHANGE", "driver_topic")

	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	cfg.JWT.AccessTTL = getEnvDuration("JWT_ACCESS_TTL", 15*time.Minute)
	cfg.JWT.RefreshTTL = getEnvDuration("JWT_REFRESH_TTL", 7*24*time.Hour)

	cfg.Captain.Port = getEnvInt("CAPTAIN_SERVICE_PORT", 3002)
	cfg.Captain.Store = getEnv("CAPTAIN_STORE", "postgres")
	cfg.Captain.PresencePolicy = getEnv("CAPTAIN_PRESENCE_POLICY", "truthy")
	cfg.Captain.BcryptCost = getEnvInt("BCRYPT_COST", 10)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	switch cfg.Captain.Store {
	case "postgres", "mongo", "memory":
	default:
		return nil, fmt.Errorf("unknown CAPTAIN_STORE: %q", cfg.Captain.Store)
	}

	return cfg, nil
}

func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name,
	)
}

func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}

func (c *Config) Print() {
	fmt.Printf("Database: %s@%s:%d/%s\n", c.Database.User, c.Database.Host, c.Database.Port, c.Database.Name)
	fmt.Printf("Mongo: %s/%s\n", c.Mongo.URI, c.Mongo.Database)
	fmt.Printf("RabbitMQ: amqp://%s@%s:%d exchange=%s\n", c.RabbitMQ.User, c.RabbitMQ.Host, c.RabbitMQ.Port, c.RabbitMQ.Exchange)
	fmt.Printf("Captain service: port=%d store=%s presence=%s log=%s\n", c.Captain.Port, c.Captain.Store, c.Captain.PresencePolicy, c.LogLevel)
}

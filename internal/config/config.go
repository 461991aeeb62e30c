package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
	EnvironmentTest        = "test"

	DatabaseClientSQLite   = "sqlite"
	DatabaseClientPostgres = "postgres"
)

type Config struct {
	Environment string
	Port        string
	LogLevel    string

	DatabaseClient string
	// DatabaseURL is the sqlite database file.
	DatabaseURL string
	AutoMigrate bool

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string
	EventWorkers   int
}

// ProcessEnvironmentVariables loads the optional dotenv file for the current
// APP_ENV and builds a validated Config from the environment.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := loadDotEnv(os.Getenv("APP_ENV")); err != nil {
		return nil, err
	}

	// In all cases the default behavior should be for the local sqlite setup
	env := Config{
		Environment:      getEnv("APP_ENV", EnvironmentProduction),
		Port:             getEnv("PORT", "3333"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DatabaseClient:   getEnv("DATABASE_CLIENT", DatabaseClientSQLite),
		DatabaseURL:      getEnv("DATABASE_URL", "./tmp/db.sqlite"),
		AutoMigrate:      getEnvBool("AUTO_MIGRATE", true),
		PostgresAddress:  getEnv("POSTGRES_ADDRESS", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5433"),
		PostgresDB:       getEnv("POSTGRES_DB", "postgres"),
		PostgresUsername: getEnv("POSTGRES_USERNAME", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "testpassword"),
		AMQPURL:          getEnv("AMQP_URL", ""),
		AMQPExchange:     getEnv("AMQP_EXCHANGE", "ledger"),
		AMQPRoutingKey:   getEnv("AMQP_ROUTING_KEY", "transaction.created"),
		EventWorkers:     getEnvInt("EVENT_WORKERS", 2),
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" + c.PostgresPassword + "@" +
		c.PostgresAddress + ":" + c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

// DSN returns the connection string for the configured database client.
func (c *Config) DSN() string {
	if c.DatabaseClient == DatabaseClientPostgres {
		return c.PostgresDSN()
	}
	return c.DatabaseURL
}

func (c *Config) Validate() error {
	var problems []string

	switch c.Environment {
	case EnvironmentDevelopment, EnvironmentProduction, EnvironmentTest:
	default:
		problems = append(problems, fmt.Sprintf("invalid APP_ENV '%s': must be one of development, production, test", c.Environment))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DatabaseClient {
	case DatabaseClientSQLite:
		if c.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL cannot be empty when using sqlite")
		}
	case DatabaseClientPostgres:
		if c.PostgresAddress == "" || c.PostgresDB == "" {
			problems = append(problems, "POSTGRES_ADDRESS and POSTGRES_DB are required when using postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid DATABASE_CLIENT '%s': must be sqlite or postgres", c.DatabaseClient))
	}

	if c.AMQPURL != "" && c.AMQPExchange == "" {
		problems = append(problems, "AMQP_EXCHANGE cannot be empty when AMQP_URL is provided")
	}

	if c.EventWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid EVENT_WORKERS %d: must be at least 1", c.EventWorkers))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func loadDotEnv(appEnv string) error {
	file := ".env"
	if appEnv == EnvironmentTest {
		file = ".env.test"
	}
	err := godotenv.Load(file)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", file, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); len(value) != 0 {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); len(value) != 0 {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); len(value) != 0 {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

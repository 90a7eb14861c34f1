package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
	SourceMongo    = "mongo"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	DataSource      string        `env:"DATA_SOURCE" envDefault:"memory"`
	DatabaseDSN     string        `env:"DB_DSN"`
	MongoURI        string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase   string        `env:"MONGO_DB" envDefault:"devclub"`
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	CORSOrigins     string        `env:"CORS_ORIGINS" envDefault:"*"`
	DemoPassword    string        `env:"DEMO_PASSWORD" envDefault:"devclub"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`
	LoadTimeout     time.Duration `env:"LOAD_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadEnv reads .env into the process environment when the file exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using process environment")
	}
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DataSource {
	case SourceMemory, SourceMongo:
	case SourcePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DB_DSN is required when DATA_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q (want %s, %s or %s)", c.DataSource, SourceMemory, SourcePostgres, SourceMongo)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}

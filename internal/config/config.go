package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port                    string        `mapstructure:"API_PORT"`
	Env                     string        `mapstructure:"ENV"`
	StoreDriver             string        `mapstructure:"STORE_DRIVER"`
	MongoURI                string        `mapstructure:"MONGO_URI"`
	MongoDatabase           string        `mapstructure:"MONGO_DATABASE"`
	MongoConnectTimeout     time.Duration `mapstructure:"MONGO_CONNECT_TIMEOUT"`
	JWTSecret               string        `mapstructure:"JWT_SECRET"`
	TokenTTL                time.Duration `mapstructure:"TOKEN_TTL"`
	DefaultAvailabilityDate string        `mapstructure:"DEFAULT_AVAILABILITY_DATE"`
	CORSOrigins             []string      `mapstructure:"-"`
}

// Load reads the process environment, optionally seeded from a .env file in
// the working directory. Variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("API_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("MONGO_DATABASE", "DoctorsPortal")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	v.SetDefault("TOKEN_TTL", "12h")
	v.SetDefault("DEFAULT_AVAILABILITY_DATE", "May 16, 2022")
	v.SetDefault("CORS_ORIGINS", "*")

	// PORT is what most hosting platforms inject.
	v.BindEnv("API_PORT", "API_PORT", "PORT")
	v.BindEnv("ENV")
	v.BindEnv("STORE_DRIVER")
	v.BindEnv("MONGO_URI")
	v.BindEnv("MONGO_DATABASE")
	v.BindEnv("MONGO_CONNECT_TIMEOUT")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("TOKEN_TTL")
	v.BindEnv("DEFAULT_AVAILABILITY_DATE")
	v.BindEnv("CORS_ORIGINS")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is complete enough to serve.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_DRIVER is %q", DriverMongo)
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGO_DATABASE must not be empty")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMongo, DriverMemory, c.StoreDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.MongoConnectTimeout <= 0 {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be positive, got %s", c.MongoConnectTimeout)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

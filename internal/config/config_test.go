package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", DriverMemory)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_RequiresMongoURIForMongoDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", DriverMongo)
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("API_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("DEFAULT_AVAILABILITY_DATE", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "DoctorsPortal", cfg.MongoDatabase)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.MongoConnectTimeout)
	assert.Equal(t, "May 16, 2022", cfg.DefaultAvailabilityDate)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", DriverMemory)
	t.Setenv("API_PORT", "")
	t.Setenv("PORT", "7000")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	cfg := &Config{JWTSecret: "s", StoreDriver: "postgres", TokenTTL: time.Hour, MongoConnectTimeout: time.Second}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveTTL(t *testing.T) {
	cfg := &Config{JWTSecret: "s", StoreDriver: DriverMemory, MongoConnectTimeout: time.Second}
	assert.Error(t, cfg.Validate())
}

func TestConfig_IsProduction(t *testing.T) {
	c := &Config{Env: "production"}
	assert.True(t, c.IsProduction())
	c.Env = "development"
	assert.False(t, c.IsProduction())
}

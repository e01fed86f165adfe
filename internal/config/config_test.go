package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "laundry")
	t.Setenv("POSTGRES_PASSWORD", "laundry")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
}

func TestNew_Defaults(t *testing.T) {
	setValidEnv(t)

	conf := config.New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "order-changes", conf.Kafka.Topic)
	assert.Equal(t, []string{"localhost:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 24*time.Hour, conf.Auth.TokenTTL)
	assert.Equal(t, 15*time.Second, conf.Http.StreamHeartbeat)
}

func TestNew_Overrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("POSTGRES_PORT", "not-a-number")

	conf := config.New()

	assert.Equal(t, []string{"k1:9092", "k2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 90*time.Minute, conf.Auth.TokenTTL)
	assert.Equal(t, 5432, conf.Postgres.Port)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"ENV": "dev"}},
		{name: "short jwt secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "bad redis addr", env: map[string]string{"REDIS_ADDR": "redis"}},
		{name: "bad cors origin", env: map[string]string{"ALLOWED_CORS_ORIGINS": "not a url"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setValidEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, config.New().Validate())
		})
	}
}

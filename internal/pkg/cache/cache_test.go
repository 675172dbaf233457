package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boldgroup/website/internal/pkg/env"
)

func TestConfigFromEnv(t *testing.T) {
	env.Env = map[string]string{
		"CACHE_HOST":     "cache",
		"CACHE_PORT":     "6380",
		"CACHE_PASSWORD": "secret",
		"CACHE_DB":       "2",
	}
	t.Cleanup(func() { env.Env = nil })

	cfg := ConfigFromEnv()
	assert.Equal(t, Config{Host: "cache", Port: 6380, Password: "secret", DB: 2}, cfg)
	assert.Equal(t, "cache:6380", cfg.Addr())
}

func TestConfigAddr_IPv6(t *testing.T) {
	assert.Equal(t, "[::1]:6379", Config{Host: "::1", Port: 6379}.Addr())
}

func TestNewClient_Unreachable(t *testing.T) {
	// Port 1 on localhost is not expected to serve Redis.
	client, err := NewClient(context.Background(), Config{Host: "127.0.0.1", Port: 1})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

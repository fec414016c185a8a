package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("Should default the port and read the URL password", func(t *testing.T) {
		opts, err := Options(Config{URL: "redis://:s3cret@cache.internal"})
		require.NoError(t, err)
		assert.Equal(t, "cache.internal:6379", opts.Addr)
		assert.Equal(t, "s3cret", opts.Password)
		assert.Nil(t, opts.TLSConfig)
	})

	t.Run("Should prefer the explicit password and enable TLS for rediss", func(t *testing.T) {
		opts, err := Options(Config{URL: "rediss://:fromurl@cache.internal:6380", Password: "explicit"})
		require.NoError(t, err)
		assert.Equal(t, "cache.internal:6380", opts.Addr)
		assert.Equal(t, "explicit", opts.Password)
		assert.NotNil(t, opts.TLSConfig)
	})

	t.Run("Should reject missing or foreign URLs", func(t *testing.T) {
		_, err := Options(Config{})
		assert.Error(t, err)
		_, err = Options(Config{URL: "http://cache.internal"})
		assert.Error(t, err)
	})
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, HealthCheck(context.Background(), client))
	assert.Error(t, HealthCheck(context.Background(), nil))
}

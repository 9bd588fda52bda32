package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func TestNew(t *testing.T) {
	t.Run("Connects to a running Redis", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: connecting to the container address
		client, err := New(ctx, st.Addr)

		// Then: the client is ready to use
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		assert.NoError(t, client.Set(ctx, "ping", "pong", time.Minute).Err())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		client, err := New(ctx, "127.0.0.1:1")

		require.Error(t, err)
		assert.Nil(t, client)
	})
}

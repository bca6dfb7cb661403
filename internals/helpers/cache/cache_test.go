package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberUsesVersionedKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	calls := 0
	fn := func(context.Context) (map[string]int, error) {
		calls++
		return map[string]int{"merek": calls}, nil
	}

	key, err := Key(ctx, s, "filings", "daftar_ki", 2025)
	require.NoError(t, err)
	first, err := Remember(ctx, s, key, time.Minute, fn)
	require.NoError(t, err)
	again, err := Remember(ctx, s, key, time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, calls)

	require.NoError(t, s.Bump(ctx, "daftar_ki"))
	bumped, err := Key(ctx, s, "filings", "daftar_ki", 2025)
	require.NoError(t, err)
	assert.NotEqual(t, key, bumped)

	fresh, err := Remember(ctx, s, bumped, time.Minute, fn)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh["merek"])
}

func TestRememberDoesNotStoreErrors(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	boom := errors.New("db mati")

	_, err := Remember(ctx, s, "k", time.Minute, func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	var dst int
	assert.ErrorIs(t, s.Get(ctx, "k", &dst), ErrMiss)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "k", 7, time.Nanosecond))
	time.Sleep(time.Millisecond)

	var dst int
	assert.ErrorIs(t, s.Get(ctx, "k", &dst), ErrMiss)
}

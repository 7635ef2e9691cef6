package mem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionsSetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessions()

	require.NoError(t, s.Set(ctx, "a", []byte(`{"step":1}`), time.Minute))

	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"step":1}`, string(v))

	require.NoError(t, s.Delete(ctx, "a"))
	_, ok, _ = s.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemorySessionsExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessions()
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	_ = s.Set(ctx, "short", []byte("x"), time.Minute)
	_ = s.Set(ctx, "long", []byte("y"), time.Hour)

	now = now.Add(2 * time.Minute)

	_, ok, _ := s.Get(ctx, "short")
	assert.False(t, ok)

	_ = s.Set(ctx, "short2", []byte("z"), time.Minute)
	now = now.Add(2 * time.Minute)

	removed, err := s.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())
}

func TestMemorySessionsCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessions()
	buf := []byte("abc")
	_ = s.Set(ctx, "k", buf, time.Minute)
	buf[0] = 'z'

	v, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(v))
}

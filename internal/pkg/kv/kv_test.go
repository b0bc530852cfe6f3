package kv

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := NewSQLite(path, 0)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "cm_services", `[{"id":"a"}]`))
	v, ok, err := s.Get(ctx, "cm_services")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"a"}]`, v)

	// Overwrite replaces the previous value.
	require.NoError(t, s.Set(ctx, "cm_services", `[]`))
	v, _, err = s.Get(ctx, "cm_services")
	require.NoError(t, err)
	require.Equal(t, `[]`, v)

	require.NoError(t, s.Remove(ctx, "cm_services"))
	_, ok, err = s.Get(ctx, "cm_services")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "kv.db")
	ctx := context.Background()

	s, err := NewSQLite(path, 0)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "cm_auth", "true"))
	require.NoError(t, s.Close())

	s2, err := NewSQLite(path, 0)
	require.NoError(t, err)
	defer s2.Close()
	v, ok, err := s2.Get(ctx, "cm_auth")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "true", v)
}

func TestSQLiteQuota(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "kv.db"), 16)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.ErrorIs(t, s.Set(ctx, "big", strings.Repeat("x", 17)), ErrQuotaExceeded)
	_, ok, err := s.Get(ctx, "big")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory(8)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", "value"))
	v, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "value", v)

	require.ErrorIs(t, m.Set(ctx, "k", "way too long"), ErrQuotaExceeded)

	require.NoError(t, m.Remove(ctx, "k"))
	_, ok, _ = m.Get(ctx, "k")
	require.False(t, ok)
}

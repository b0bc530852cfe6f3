package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clementmotivates/core/internal/pkg/kv"
)

var testCreds = StaticCredentials{Identifier: "admin@clementmotivates.com", Secret: "admin"}

func TestLoginSetsAndPersistsFlag(t *testing.T) {
	backing := kv.NewMemory(0)
	ctx := context.Background()
	g, err := New(ctx, backing, testCreds, nil)
	require.NoError(t, err)
	require.False(t, g.IsAuthenticated())

	require.False(t, g.Login(ctx, "admin@clementmotivates.com", "wrong"))
	require.False(t, g.IsAuthenticated())

	require.True(t, g.Login(ctx, "admin@clementmotivates.com", "admin"))
	require.True(t, g.IsAuthenticated())

	raw, ok, err := backing.Get(ctx, authKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "true", raw)
}

func TestLogoutClearsFlagAndKey(t *testing.T) {
	backing := kv.NewMemory(0)
	ctx := context.Background()
	g, err := New(ctx, backing, testCreds, nil)
	require.NoError(t, err)
	require.True(t, g.Login(ctx, testCreds.Identifier, testCreds.Secret))

	require.NoError(t, g.Logout(ctx))
	require.False(t, g.IsAuthenticated())

	_, ok, err := backing.Get(ctx, authKey)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSessionRehydratesFromBacking(t *testing.T) {
	backing := kv.NewMemory(0)
	ctx := context.Background()
	require.NoError(t, backing.Set(ctx, authKey, "true"))

	g, err := New(ctx, backing, testCreds, nil)
	require.NoError(t, err)
	require.True(t, g.IsAuthenticated())
}

func TestSessionOnlyLiteralTrueCounts(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"TRUE", "1", "yes", ""} {
		backing := kv.NewMemory(0)
		require.NoError(t, backing.Set(ctx, authKey, raw))
		g, err := New(ctx, backing, testCreds, nil)
		require.NoError(t, err)
		require.False(t, g.IsAuthenticated(), "raw=%q", raw)
	}
}

type brokenWrites struct {
	kv.Store
}

func (b brokenWrites) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestLoginSurvivesPersistFailure(t *testing.T) {
	ctx := context.Background()
	g, err := New(ctx, brokenWrites{Store: kv.NewMemory(0)}, testCreds, nil)
	require.NoError(t, err)

	require.True(t, g.Login(ctx, testCreds.Identifier, testCreds.Secret))
	require.True(t, g.IsAuthenticated())
}

func TestBcryptCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	v := BcryptCredentials{Identifier: "owner@example.com", Hash: string(hash)}
	require.True(t, v.Verify("owner@example.com", "s3cret"))
	require.False(t, v.Verify("owner@example.com", "wrong"))
	require.False(t, v.Verify("other@example.com", "s3cret"))
}

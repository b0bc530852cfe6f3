package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	token, err := Sign("admin@clementmotivates.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token)
	require.NoError(t, err)
	require.Equal(t, "admin@clementmotivates.com", claims.Identifier())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token")
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := Sign("admin@clementmotivates.com", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	require.Error(t, err)
}

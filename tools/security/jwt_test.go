package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-do-not-use")

func TestGenerateVerifyRoundTrip(t *testing.T) {
	opts := DefaultOptions(testSecret)

	token, exp, err := Generate(opts, "u-1001", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := Verify(opts, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1001", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, exp, claims.ExpireAt, time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	opts := DefaultOptions(testSecret)
	opts.TTL = -time.Minute

	token, exp, err := Generate(opts, "u-1001", "alice")
	require.NoError(t, err)
	require.True(t, exp.Before(time.Now()), "negative TTL must not be clamped")

	_, err = Verify(DefaultOptions(testSecret), token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestVerifyWrongSecret(t *testing.T) {
	token, _, err := Generate(DefaultOptions(testSecret), "u-1001", "alice")
	require.NoError(t, err)

	_, err = Verify(DefaultOptions([]byte("other-secret")), token)
	assert.Error(t, err)
}

func TestVerifyTamperedToken(t *testing.T) {
	opts := DefaultOptions(testSecret)
	token, _, err := Generate(opts, "u-1001", "alice")
	require.NoError(t, err)

	_, err = Verify(opts, token+"x")
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := Verify(DefaultOptions(testSecret), "not.a.token")
	assert.Error(t, err)
}

func TestSigningMethods(t *testing.T) {
	for _, alg := range []string{"", "HS256", "hs384", "HS512"} {
		opts := DefaultOptions(testSecret)
		opts.Alg = alg
		token, _, err := Generate(opts, "u-1", "a")
		require.NoError(t, err, "alg %q", alg)
		_, err = Verify(opts, token)
		require.NoError(t, err, "alg %q", alg)
	}

	opts := DefaultOptions(testSecret)
	opts.Alg = "RS256"
	_, _, err := Generate(opts, "u-1", "a")
	assert.Error(t, err, "non-HMAC algs are rejected")
}

package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSecret(t *testing.T) string {
	t.Helper()
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(bytes)
}

func TestJwtTicketer(t *testing.T) {
	secretKey := newSecret(t)
	issuer := "testIssuer"

	svc, err := NewJwtTicketer(secretKey, issuer)
	require.NoError(t, err)

	t.Run("Issue and Parse valid ticket", func(t *testing.T) {
		claims := map[string]interface{}{
			"columns":   12,
			"algorithm": "wilson",
			"seed":      "18446744073709551615",
		}

		ticket, err := svc.Issue(claims, 5*time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, ticket)

		decoded, err := svc.Parse(ticket)
		require.NoError(t, err)
		assert.Equal(t, float64(12), decoded["columns"])
		assert.Equal(t, "wilson", decoded["algorithm"])
		assert.Equal(t, "18446744073709551615", decoded["seed"])
		assert.Equal(t, issuer, decoded["iss"])
	})

	t.Run("Parse invalid ticket", func(t *testing.T) {
		_, err := svc.Parse("invalidTicketString")
		assert.Error(t, err)
	})

	t.Run("Parse expired ticket", func(t *testing.T) {
		ticket, err := svc.Issue(map[string]interface{}{"rows": 3}, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Parse(ticket)
		assert.Error(t, err)
	})

	t.Run("Parse ticket signed with another secret", func(t *testing.T) {
		other, err := NewJwtTicketer(newSecret(t), issuer)
		require.NoError(t, err)
		ticket, err := other.Issue(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Parse(ticket)
		assert.Error(t, err)
	})

	t.Run("Parse ticket from another issuer", func(t *testing.T) {
		other, err := NewJwtTicketer(secretKey, "someoneElse")
		require.NoError(t, err)
		ticket, err := other.Issue(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Parse(ticket)
		assert.ErrorIs(t, err, ErrUnexpectedIssuer)
	})

	t.Run("Parse ticket with none signing", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"iss": issuer})
		ticket, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Parse(ticket)
		assert.Error(t, err)
	})

	t.Run("Empty secret", func(t *testing.T) {
		_, err := NewJwtTicketer("", issuer)
		assert.ErrorIs(t, err, ErrEmptySecret)
	})
}

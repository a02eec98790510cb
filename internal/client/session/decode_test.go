package session

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ReadsClaimsWithoutVerification(t *testing.T) {
	tok := mintToken(t, jwt.MapClaims{
		"user_id":  42,
		"username": "dean",
		"is_staff": true,
		"exp":      1,
	})

	id, err := Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: 42, Username: "dean", IsStaff: true}, id)
}

func TestDecode_StringUserID(t *testing.T) {
	tok := mintToken(t, jwt.MapClaims{"user_id": "17", "username": "s1"})

	id, err := Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, 17, id.UserID)
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "garbage"},
		{"bad base64 payload", "eyJhbGciOiJIUzI1NiJ9.!!!.sig"},
		{"non-numeric user id", mintToken(t, jwt.MapClaims{"user_id": "abc"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			var de *AuthDecodeError
			require.True(t, errors.As(err, &de), "got %v", err)
			assert.NotNil(t, de.Unwrap())
		})
	}
}

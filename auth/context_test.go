package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, exp time.Time) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "member1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return s
}

func TestQueryParams(t *testing.T) {
	c := NewContext("k123", "t456")
	assert.Equal(t, map[string]string{"key": "k123", "token": "t456"}, c.QueryParams())

	c = NewContext("k123", "")
	assert.Equal(t, map[string]string{"key": "k123"}, c.QueryParams())
}

func TestValidateMissingKey(t *testing.T) {
	c := NewContext("", "tok")
	assert.Error(t, c.Validate())
}

func TestValidateOpaqueToken(t *testing.T) {
	c := NewContext("k123", "9a1b2c3d4e5f")
	assert.NoError(t, c.Validate())
}

func TestValidateExpiredJWT(t *testing.T) {
	c := NewContext("k123", signedToken(t, time.Now().Add(-time.Hour)))
	assert.Error(t, c.Validate())
}

func TestValidateLiveJWT(t *testing.T) {
	c := NewContext("k123", signedToken(t, time.Now().Add(time.Hour)))
	assert.NoError(t, c.Validate())
}

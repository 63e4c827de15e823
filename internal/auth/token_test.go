package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josiaholayin-ops/ShareMoment-backend/internal/model"
)

func testUser() *model.User {
	u := &model.User{
		Email:       "pat@example.com",
		DisplayName: "Pat",
		Role:        model.RoleCreator,
	}
	u.ID = 42
	return u
}

func TestSignParseRoundtrip(t *testing.T) {
	token, err := Sign(testUser(), "secret")
	require.NoError(t, err)

	claims, err := Parse(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "pat@example.com", claims.Email)
	assert.Equal(t, model.RoleCreator, claims.Role)
	assert.Equal(t, "Pat", claims.DisplayName)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Sign(testUser(), "secret")
	require.NoError(t, err)

	_, err = Parse(token, "other-secret")
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token", "secret")
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = Parse(token, "secret")
	assert.Error(t, err)
}

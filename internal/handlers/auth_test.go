package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"kashmeeri-backend/internal/models"
)

func TestIssueTokenClaims(t *testing.T) {
	user := models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  models.RoleAdmin,
	}

	signed, err := issueToken(user, "secret", 24*time.Hour)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.Hex(), claims["sub"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
	assert.Equal(t, user.Email, claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	expiresIn := time.Until(time.Unix(int64(exp), 0))
	assert.InDelta(t, (24 * time.Hour).Seconds(), expiresIn.Seconds(), 60)
}

func TestIssueTokenRejectedByOtherSecret(t *testing.T) {
	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}

	signed, err := issueToken(user, "secret", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}

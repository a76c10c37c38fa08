package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/pkg/entity"
	jwtservice "github.com/limbo/adhyaya/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := jwtservice.New("secret", time.Minute)
	user := &entity.User{ID: uuid.New(), Name: "asha"}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "asha", claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenRejected(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Name: "asha"}
	token, err := jwtservice.New("secret", time.Minute).GenerateToken(user)
	require.NoError(t, err)
	t.Run("other secret", func(t *testing.T) {
		_, err := jwtservice.New("other", time.Minute).ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := jwtservice.New("secret", time.Minute).ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}

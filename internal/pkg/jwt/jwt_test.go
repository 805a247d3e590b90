//go:build unit

package jwt

import (
	"testing"
	"time"

	"restaurant-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("issued token validates", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		svc := NewService("secret", time.Hour, clk)

		token, expiresAt, err := svc.GenerateAdminToken()
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Hour), expiresAt)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, AdminRole, claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		svc := NewService("secret", time.Hour, clk)

		token, _, err := svc.GenerateAdminToken()
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		token, _, err := NewService("other", time.Hour, clk).GenerateAdminToken()
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour, clk).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		svc := NewService("secret", time.Hour, clock.NewMockClock(now))

		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

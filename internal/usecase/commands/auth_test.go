//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery"

type fakeUserFinder struct {
	account *shared.UserAccount
	err     error
}

func (f *fakeUserFinder) FindByEmail(_ context.Context, _ string) (*shared.UserAccount, error) {
	return f.account, f.err
}

func newAuthFixture(t *testing.T) (*fakeUserFinder, *jwt.Service, commands.AuthCommands) {
	t.Helper()

	hash, err := password.HashPassword(testPassword)
	require.NoError(t, err)

	finder := &fakeUserFinder{account: &shared.UserAccount{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         "admin",
		FirstName:    "Ana",
		LastName:     "Costa",
		IsActive:     true,
	}}
	tokens := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	uow := &fakeUow{tx: &fakeTx{
		reads:         &fakeReads{},
		bookings:      &fakeBookingRepo{},
		notifications: &fakeNotificationRepo{},
	}}

	return finder, tokens, commands.NewAuthCommands(uow, finder, tokens)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success: issues an access and refresh pair", func(t *testing.T) {
		finder, tokens, auth := newAuthFixture(t)

		pair, err := auth.Login(ctx, commands.LoginInput{Email: "admin@example.com", Password: testPassword})
		require.NoError(t, err)
		require.NotNil(t, pair)

		claims, err := tokens.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, finder.account.ID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)

		refreshClaims, err := tokens.ValidateToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, refreshClaims.TokenType)
	})

	t.Run("error: unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Run("unknown email", func(t *testing.T) {
			finder, _, auth := newAuthFixture(t)
			finder.account = nil
			finder.err = infra.WrapRepoErr("user not found", nil, infra.KindNotFound)

			_, err := auth.Login(ctx, commands.LoginInput{Email: "ghost@example.com", Password: testPassword})
			require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		})

		t.Run("wrong password", func(t *testing.T) {
			_, _, auth := newAuthFixture(t)

			_, err := auth.Login(ctx, commands.LoginInput{Email: "admin@example.com", Password: "wrong-password"})
			require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		})

		t.Run("malformed email", func(t *testing.T) {
			_, _, auth := newAuthFixture(t)

			_, err := auth.Login(ctx, commands.LoginInput{Email: "not-an-email", Password: testPassword})
			require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		})
	})

	t.Run("error: disabled account", func(t *testing.T) {
		finder, _, auth := newAuthFixture(t)
		finder.account.IsActive = false

		_, err := auth.Login(ctx, commands.LoginInput{Email: "admin@example.com", Password: testPassword})
		require.ErrorIs(t, err, commands.ErrAccountDisabled)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("success: exchanges a refresh token for a new pair", func(t *testing.T) {
		finder, tokens, auth := newAuthFixture(t)

		refreshToken, err := tokens.GenerateRefreshToken(finder.account.ID, "admin")
		require.NoError(t, err)

		pair, err := auth.Refresh(ctx, refreshToken)
		require.NoError(t, err)

		claims, err := tokens.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, finder.account.ID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("error: an access token cannot be used as a refresh token", func(t *testing.T) {
		finder, tokens, auth := newAuthFixture(t)

		accessToken, err := tokens.GenerateAccessToken(finder.account.ID, "admin")
		require.NoError(t, err)

		_, err = auth.Refresh(ctx, accessToken)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		_, _, auth := newAuthFixture(t)

		_, err := auth.Refresh(ctx, "not.a.token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: token signed with another secret", func(t *testing.T) {
		finder, _, auth := newAuthFixture(t)

		otherService := jwt.NewService("other-secret", 15*time.Minute, 24*time.Hour)
		foreignToken, err := otherService.GenerateRefreshToken(finder.account.ID, "admin")
		require.NoError(t, err)

		_, err = auth.Refresh(ctx, foreignToken)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

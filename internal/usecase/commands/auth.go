package commands

import (
	"context"

	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/password"
	"hotel-booking-api/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrAccountDisabled    = errs.New("account is disabled")
	ErrLoginFailed        = errs.New("failed to log in")
)

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, input LoginInput) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authUseCaseImpl struct {
	uow    shared.UnitOfWork
	users  UserFinder
	tokens *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, users UserFinder, tokens *jwt.Service) AuthCommands {
	return &authUseCaseImpl{uow: uow, users: users, tokens: tokens}
}

// Login verifies staff credentials and issues an access/refresh pair.
// Unknown email and wrong password collapse into the same error so the
// response never reveals which accounts exist.
func (uc *authUseCaseImpl) Login(ctx context.Context, input LoginInput) (*TokenPair, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	account, err := uc.users.FindByEmail(ctx, email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrLoginFailed)
	}

	if err := password.ComparePassword(account.PasswordHash, input.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if !account.IsActive {
		return nil, ErrAccountDisabled
	}

	role, err := user.NewRole(account.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrLoginFailed)
	}

	pair, err := uc.issueTokens(account, role)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrLoginFailed)
	}

	return pair, nil
}

// Refresh exchanges a valid refresh token for a new pair. The account
// is re-read so a deactivation between issue and refresh locks the
// user out.
func (uc *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := uc.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}

	account := &shared.UserAccount{ID: claims.UserID}
	return uc.issueTokens(account, role)
}

func (uc *authUseCaseImpl) issueTokens(account *shared.UserAccount, role user.Role) (*TokenPair, error) {
	accessToken, err := uc.tokens.GenerateAccessToken(account.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrLoginFailed)
	}
	refreshToken, err := uc.tokens.GenerateRefreshToken(account.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrLoginFailed)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

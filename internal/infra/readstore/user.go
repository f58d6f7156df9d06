package readstore

import (
	"context"
	"strings"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*shared.UserAccount, error) {
	const query = `
		SELECT id, email, password_hash, role, first_name, last_name, is_active
		FROM users
		WHERE email = $1
	`

	var (
		id      pgtype.UUID
		account shared.UserAccount
	)

	err := s.dbtx.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&id,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.FirstName,
		&account.LastName,
		&account.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	account.ID = uuid.UUID(id.Bytes)

	return &account, nil
}

func (s *UserReadStore) FindByID(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, first_name, last_name, last_login_at, created_at
		FROM users
		WHERE id = $1 AND is_active
	`

	var (
		id          pgtype.UUID
		lastLoginAt pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
		view        queries.AuthorizedUserView
	)

	err := s.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(userID)).Scan(
		&id,
		&view.Email,
		&view.Role,
		&view.FirstName,
		&view.LastName,
		&lastLoginAt,
		&createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	view.ID = uuid.UUID(id.Bytes)
	view.LastLoginAt = pgconv.TimePtrFromPgtype(lastLoginAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &view, nil
}

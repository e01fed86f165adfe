package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var userColumns = []string{
	"id", "email", "password_hash", "role", "full_name",
	"reg_number", "mobile", "hostel", "room_number", "created_at",
}

// CreateUser stores a new account and returns its profile with the generated id.
func (r *postgresRepo) CreateUser(ctx context.Context, profile entities.Profile, passwordHash string) (entities.Profile, error) {
	query, args := r.qb.Insert("users").
		Columns("email", "password_hash", "role", "full_name", "reg_number", "mobile", "hostel", "room_number").
		Values(
			profile.Email, passwordHash, profile.Role.String(), profile.FullName, profile.RegNumber,
			profile.Mobile, stringToNullString(profile.Hostel), stringToNullString(profile.Room),
		).
		Suffix("RETURNING id, created_at").
		MustSql()

	var row struct {
		ID        uuid.UUID `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	err := r.getContext(ctx, &row, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return entities.Profile{}, entities.ErrUserExists
	}
	if err != nil {
		return entities.Profile{}, fmt.Errorf("failed to insert user: %w", err)
	}

	profile.UserID = row.ID
	profile.CreatedAt = row.CreatedAt
	return profile, nil
}

// FindUserByEmail returns the profile and password hash of the account.
func (r *postgresRepo) FindUserByEmail(ctx context.Context, email string) (entities.Profile, string, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		MustSql()

	user, err := r.getUser(ctx, query, args...)
	if err != nil {
		return entities.Profile{}, "", err
	}
	profile, err := UserToProfile(user)
	if err != nil {
		return entities.Profile{}, "", err
	}
	return profile, user.PasswordHash, nil
}

func (r *postgresRepo) GetProfile(ctx context.Context, userID uuid.UUID) (entities.Profile, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	user, err := r.getUser(ctx, query, args...)
	if err != nil {
		return entities.Profile{}, err
	}
	return UserToProfile(user)
}

func (r *postgresRepo) getUser(ctx context.Context, query string, args ...any) (User, error) {
	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

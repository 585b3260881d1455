// Package userspgxstore implements the user storer on Postgres.
package userspgxstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rsalas/taskdeck/core/repositories/usersrepo"
	"github.com/rsalas/taskdeck/infrastructure/postgresdb"
	"github.com/rsalas/taskdeck/sdk/logger"
)

const userColumns = `user_id, email, password_hash, created_at, updated_at`

type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

func (s *Store) Create(ctx context.Context, user usersrepo.User) (usersrepo.User, error) {
	query := `INSERT INTO users (user_id, email, password_hash)
		VALUES (@user_id, @email, @password_hash)
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"user_id":       uuid.NewString(),
		"email":         user.Email,
		"password_hash": user.PasswordHash,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		err = postgresdb.HandlePgError(err)
		if errors.Is(err, postgresdb.ErrDBDuplicatedEntry) {
			return usersrepo.User{}, usersrepo.ErrEmailTaken
		}
		return usersrepo.User{}, err
	}

	return created, nil
}

func (s *Store) GetByID(ctx context.Context, userID string) (usersrepo.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE user_id = @user_id`

	return s.getOne(ctx, query, pgx.NamedArgs{"user_id": userID})
}

func (s *Store) GetByEmail(ctx context.Context, email string) (usersrepo.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE email = @email`

	return s.getOne(ctx, query, pgx.NamedArgs{"email": email})
}

func (s *Store) getOne(ctx context.Context, query string, args pgx.NamedArgs) (usersrepo.User, error) {
	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usersrepo.User{}, usersrepo.ErrNotFound
		}
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}

	return user, nil
}

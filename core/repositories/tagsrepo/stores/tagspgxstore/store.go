// Package tagspgxstore implements the tag catalog storer on Postgres.
package tagspgxstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/rsalas/taskdeck/core/repositories/tagsrepo"
	"github.com/rsalas/taskdeck/infrastructure/postgresdb"
	"github.com/rsalas/taskdeck/sdk/logger"
)

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

func (s *Store) List(ctx context.Context) ([]tagsrepo.Tag, error) {
	query := `SELECT tag_id, name, created_at
		FROM tags
		ORDER BY name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	sl, err := pgx.CollectRows(rows, pgx.RowToStructByName[tagsrepo.Tag])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}

	return sl, nil
}

func (s *Store) GetByID(ctx context.Context, tagID string) (tagsrepo.Tag, error) {
	query := `SELECT tag_id, name, created_at
		FROM tags
		WHERE tag_id = @tag_id`

	args := pgx.NamedArgs{
		"tag_id": tagID,
	}

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return tagsrepo.Tag{}, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	tag, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[tagsrepo.Tag])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tagsrepo.Tag{}, tagsrepo.ErrNotFound
		}
		return tagsrepo.Tag{}, postgresdb.HandlePgError(err)
	}

	return tag, nil
}

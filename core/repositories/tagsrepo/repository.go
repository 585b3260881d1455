// Package tagsrepo provides read access to the tag catalog.
package tagsrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rsalas/taskdeck/sdk/logger"
)

// Set of error values for operations on the tag catalog.
var (
	ErrNotFound = errors.New("tag not found")
)

type Storer interface {
	List(ctx context.Context) ([]Tag, error)
	GetByID(ctx context.Context, tagID string) (Tag, error)
}

type Repository struct {
	log    *logger.Logger
	storer Storer
}

func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

func (r *Repository) List(ctx context.Context) ([]Tag, error) {
	records, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("tag repository list: %w", err)
	}

	return records, nil
}

func (r *Repository) GetByID(ctx context.Context, tagID string) (Tag, error) {
	record, err := r.storer.GetByID(ctx, tagID)
	if err != nil {
		return Tag{}, fmt.Errorf("tag repository get by id: %w", err)
	}
	return record, nil
}

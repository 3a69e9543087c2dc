package repository

import (
	"context"

	"sathorn/internal/model"
)

// Catalogue is the read-mostly store of properties
type Catalogue interface {
	GetAll(ctx context.Context) []model.Property
	GetByID(ctx context.Context, id int64) (model.Property, error)
	Create(ctx context.Context, p model.Property) (model.Property, error)
}

// QueryLog is the append-only record of successful AI searches
type QueryLog interface {
	Append(ctx context.Context, q model.AIQuery) (model.AIQuery, error)
	Recent(ctx context.Context, limit int) ([]model.AIQuery, error)
}

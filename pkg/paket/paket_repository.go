package paket

import (
	"context"

	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils/restdb"
)

type (
	PaketRepository interface {
		GetAll(ctx context.Context) ([]entities.PaketData, error)
		GetByID(ctx context.Context, id string) (*entities.PaketData, error)
	}

	paketRepository struct {
		store *restdb.Client
	}
)

func NewPaketRepository(store *restdb.Client) PaketRepository {
	return &paketRepository{
		store: store,
	}
}

func (r *paketRepository) GetAll(ctx context.Context) ([]entities.PaketData, error) {
	var pakets []entities.PaketData
	if err := r.store.List(ctx, restdb.CollectionPaketData, nil, &pakets); err != nil {
		return nil, err
	}
	return pakets, nil
}

func (r *paketRepository) GetByID(ctx context.Context, id string) (*entities.PaketData, error) {
	var paket entities.PaketData
	if err := r.store.Get(ctx, restdb.CollectionPaketData, id, &paket); err != nil {
		return nil, err
	}
	return &paket, nil
}

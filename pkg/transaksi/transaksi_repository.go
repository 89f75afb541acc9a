package transaksi

import (
	"context"
	"net/url"

	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils/restdb"
)

type (
	TransaksiRepository interface {
		Create(ctx context.Context, transaksi *entities.Transaksi) (*entities.Transaksi, error)
		GetByUser(ctx context.Context, userID string) ([]entities.Transaksi, error)
		Delete(ctx context.Context, id string) error
	}

	transaksiRepository struct {
		store *restdb.Client
	}
)

func NewTransaksiRepository(store *restdb.Client) TransaksiRepository {
	return &transaksiRepository{
		store: store,
	}
}

func (r *transaksiRepository) Create(ctx context.Context, transaksi *entities.Transaksi) (*entities.Transaksi, error) {
	var created entities.Transaksi
	if err := r.store.Create(ctx, restdb.CollectionTransaksi, transaksi, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *transaksiRepository) GetByUser(ctx context.Context, userID string) ([]entities.Transaksi, error) {
	filter := url.Values{}
	filter.Set("userId", userID)

	var transaksi []entities.Transaksi
	if err := r.store.List(ctx, restdb.CollectionTransaksi, filter, &transaksi); err != nil {
		return nil, err
	}
	return transaksi, nil
}

func (r *transaksiRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, restdb.CollectionTransaksi, id)
}

package user

import (
	"context"
	"net/url"

	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils/restdb"
)

type (
	UserRepository interface {
		// FindByCredentials runs the store-side credential filter. Absent match
		// is (nil, nil); wrong email and wrong password are indistinguishable.
		FindByCredentials(ctx context.Context, email, password string) (*entities.User, error)
		FindByEmail(ctx context.Context, email string) (*entities.User, error)
		GetByID(ctx context.Context, id string) (*entities.User, error)
		Create(ctx context.Context, user *entities.User) (*entities.User, error)
		Update(ctx context.Context, id string, partial map[string]any) (*entities.User, error)
		UpdateSaldo(ctx context.Context, id string, saldo int64) (*entities.User, error)
	}

	userRepository struct {
		store *restdb.Client
	}
)

func NewUserRepository(store *restdb.Client) UserRepository {
	return &userRepository{
		store: store,
	}
}

func (r *userRepository) FindByCredentials(ctx context.Context, email, password string) (*entities.User, error) {
	filter := url.Values{}
	filter.Set("email", email)
	filter.Set("password", password)

	var users []entities.User
	if err := r.store.List(ctx, restdb.CollectionUsers, filter, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	filter := url.Values{}
	filter.Set("email", email)

	var users []entities.User
	if err := r.store.List(ctx, restdb.CollectionUsers, filter, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.store.Get(ctx, restdb.CollectionUsers, id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	var created entities.User
	if err := r.store.Create(ctx, restdb.CollectionUsers, user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *userRepository) Update(ctx context.Context, id string, partial map[string]any) (*entities.User, error) {
	var updated entities.User
	if err := r.store.Patch(ctx, restdb.CollectionUsers, id, partial, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *userRepository) UpdateSaldo(ctx context.Context, id string, saldo int64) (*entities.User, error) {
	return r.Update(ctx, id, map[string]any{"saldo": saldo})
}

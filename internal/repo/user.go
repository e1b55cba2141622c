package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/tripwise/backend/internal/domain"
	"github.com/pkordes/tripwise/backend/internal/recordstore"
)

// UserRepo persists the single mock identity of the durable scope.
type UserRepo interface {
	// Get returns the stored user, or domain.ErrNotFound when logged out.
	Get(ctx context.Context) (domain.User, error)

	// Save overwrites the stored user.
	Save(ctx context.Context, u domain.User) error

	// Delete removes the stored user. Deleting when logged out is a no-op.
	Delete(ctx context.Context) error
}

type storeUserRepo struct {
	store *recordstore.Store
}

// NewUserRepo constructs a UserRepo over the user record of store.
func NewUserRepo(store *recordstore.Store) UserRepo {
	return &storeUserRepo{store: store}
}

func (r *storeUserRepo) Get(ctx context.Context) (domain.User, error) {
	var u domain.User
	ok, err := r.store.Get(ctx, recordstore.KeyUser, &u)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Get: %w", err)
	}
	if !ok {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Get: %w", domain.ErrNotFound)
	}
	return u, nil
}

func (r *storeUserRepo) Save(ctx context.Context, u domain.User) error {
	if err := r.store.Set(ctx, recordstore.KeyUser, u); err != nil {
		return fmt.Errorf("repo.UserRepo.Save: %w", err)
	}
	return nil
}

func (r *storeUserRepo) Delete(ctx context.Context) error {
	if err := r.store.Remove(ctx, recordstore.KeyUser); err != nil {
		return fmt.Errorf("repo.UserRepo.Delete: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"

	"ride-hail/internal/captain/model"
	"ride-hail/internal/captain/service"

	"golang.org/x/crypto/bcrypt"
)

// HashingStore replaces the plaintext password with its bcrypt hash before
// handing the record to the wrapped store.
type HashingStore struct {
	next service.CaptainStore
	cost int
}

var _ service.CaptainStore = (*HashingStore)(nil)

func NewHashingStore(next service.CaptainStore, cost int) *HashingStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &HashingStore{next: next, cost: cost}
}

func (s *HashingStore) Create(ctx context.Context, captain model.Captain) (model.Captain, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(captain.Password), s.cost)
	if err != nil {
		return model.Captain{}, fmt.Errorf("failed to hash password: %w", err)
	}
	captain.Password = string(hash)
	return s.next.Create(ctx, captain)
}

// ComparePassword reports whether plain matches a hash produced by HashingStore.
func ComparePassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

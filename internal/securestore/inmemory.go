package securestore

import (
	"context"
	"sync"

	apperrors "github.com/allisson/credstore/internal/errors"
)

// InMemoryStore is a mutex-guarded map implementation of Store.
//
// It backs development setups and tests where no platform store is
// available. Individual operations are atomic, but multi-call sequences
// (such as an erase followed by an insert) are not serialized against
// concurrent writers; that matches the contract documented on Store.
type InMemoryStore struct {
	mu    sync.RWMutex
	items map[Attributes][]byte
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		items: make(map[Attributes][]byte),
	}
}

// Insert adds a new item, rejecting duplicates.
func (s *InMemoryStore) Insert(ctx context.Context, item Item) error {
	if err := validateAttributes(item.Attributes); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.Attributes]; exists {
		return apperrors.Wrapf(
			apperrors.ErrStoreRejected,
			"duplicate item for tag %q", item.Attributes.Tag,
		)
	}

	s.items[item.Attributes] = cloneBytes(item.Data)
	return nil
}

// Query returns a copy of the stored item, or ErrNotFound.
func (s *InMemoryStore) Query(ctx context.Context, attrs Attributes) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.items[attrs]
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	return &Item{Attributes: attrs, Data: cloneBytes(data)}, nil
}

// Update replaces the data of an existing item, or fails with ErrNotFound.
func (s *InMemoryStore) Update(ctx context.Context, attrs Attributes, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[attrs]; !exists {
		return apperrors.ErrNotFound
	}

	s.items[attrs] = cloneBytes(data)
	return nil
}

// Erase removes the item, or fails with ErrNotFound when absent.
func (s *InMemoryStore) Erase(ctx context.Context, attrs Attributes) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[attrs]; !exists {
		return apperrors.ErrNotFound
	}

	delete(s.items, attrs)
	return nil
}

// cloneBytes copies b so callers never share backing arrays with the store.
func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

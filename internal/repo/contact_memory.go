package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryContactRepository is an in-memory implementation of
// ContactRepository.
type InMemoryContactRepository struct {
	mu     sync.Mutex
	items  []models.ContactItem
	nextID int
}

func NewInMemoryContactRepository() *InMemoryContactRepository {
	return &InMemoryContactRepository{nextID: 1}
}

func (r *InMemoryContactRepository) CreateContactItem(_ context.Context, item models.ContactItem) (models.ContactItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

func (r *InMemoryContactRepository) GetAllContactItems(_ context.Context) ([]models.ContactItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.items), nil
}

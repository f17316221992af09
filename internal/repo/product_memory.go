package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. The composite operations mirror the transactional
// behavior of the Postgres implementation: either the product row and the
// ownership index both change, or neither does.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int
	users    *InMemoryUserRepository
}

func NewInMemoryProductRepository(users *InMemoryUserRepository) *InMemoryProductRepository {
	return &InMemoryProductRepository{nextID: 1, users: users}
}

func (r *InMemoryProductRepository) CreateWithOwner(_ context.Context, p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.GTIN == p.GTIN {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}
	p.ID = r.nextID
	if err := r.users.appendProduct(p.OwnerID, p.ID); err != nil {
		return models.Product{}, err
	}
	r.nextID++
	if p.Subscribers == nil {
		p.Subscribers = []int{}
	}
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) GetByGTIN(_ context.Context, gtin string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.GTIN == gtin {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) GetByOwner(_ context.Context, ownerID int) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []models.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *InMemoryProductRepository) ExistsByGTIN(_ context.Context, gtin string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.GTIN == gtin {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryProductRepository) Update(_ context.Context, p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) DeleteWithOwner(_ context.Context, id, ownerID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = slices.Delete(r.products, i, i+1)
			r.users.removeProduct(ownerID, id)
			return nil
		}
	}
	return ErrProductNotFound
}

// Clear removes all products. Test helper.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = nil
	r.nextID = 1
}

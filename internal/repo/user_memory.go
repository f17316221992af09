package repo

import (
	"context"
	"slices"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	mu     sync.Mutex
	users  []models.User
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{nextID: 1}
}

func (r *InMemoryUserRepository) CreateUser(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}
	u.ID = r.nextID
	r.nextID++
	if u.Products == nil {
		u.Products = []int{}
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(_ context.Context, id int) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.users), nil
}

// appendProduct and removeProduct maintain the ownership index on behalf of
// InMemoryProductRepository.

func (r *InMemoryUserRepository) appendProduct(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].Products = append(r.users[i].Products, productID)
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *InMemoryUserRepository) removeProduct(userID, productID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].Products = slices.DeleteFunc(r.users[i].Products, func(id int) bool {
				return id == productID
			})
			return
		}
	}
}

// SetProducts overwrites a user's ownership index. Test helper.
func (r *InMemoryUserRepository) SetProducts(userID int, productIDs []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == userID {
			r.users[i].Products = slices.Clone(productIDs)
			return
		}
	}
}

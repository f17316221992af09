package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ProductRepository defines the interface for product data operations.
// CreateWithOwner and DeleteWithOwner mutate the product row and the owning
// user's product index inside a single transaction.
type ProductRepository interface {
	CreateWithOwner(ctx context.Context, p models.Product) (models.Product, error)
	GetByGTIN(ctx context.Context, gtin string) (models.Product, error)
	GetByOwner(ctx context.Context, ownerID int) ([]models.Product, error)
	ExistsByGTIN(ctx context.Context, gtin string) (bool, error)
	Update(ctx context.Context, p models.Product) (models.Product, error)
	DeleteWithOwner(ctx context.Context, id, ownerID int) error
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicatedValueUnique is returned when an insert violates a unique
// constraint (gtin, email).
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")

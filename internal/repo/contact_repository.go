package repo

import (
	"context"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type ContactRepository interface {
	CreateContactItem(ctx context.Context, item models.ContactItem) (models.ContactItem, error)
	GetAllContactItems(ctx context.Context) ([]models.ContactItem, error)
}

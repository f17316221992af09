package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int) (models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

var ErrUserNotFound = errors.New("user not found")

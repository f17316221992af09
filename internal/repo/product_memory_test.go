package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

func seedOwner(t *testing.T, users *InMemoryUserRepository) models.User {
	t.Helper()
	u, err := users.CreateUser(context.Background(), models.User{Email: "owner@example.test"})
	if err != nil {
		t.Fatalf("seeding owner: %v", err)
	}
	return u
}

func TestCreateWithOwner_MaintainsIndex(t *testing.T) {
	users := NewInMemoryUserRepository()
	products := NewInMemoryProductRepository(users)
	owner := seedOwner(t, users)

	first, err := products.CreateWithOwner(context.Background(), models.Product{GTIN: "00000000000001", OwnerID: owner.ID})
	if err != nil {
		t.Fatalf("CreateWithOwner: %v", err)
	}
	second, err := products.CreateWithOwner(context.Background(), models.Product{GTIN: "00000000000002", OwnerID: owner.ID})
	if err != nil {
		t.Fatalf("CreateWithOwner: %v", err)
	}

	u, _ := users.GetByID(context.Background(), owner.ID)
	if len(u.Products) != 2 || u.Products[0] != first.ID || u.Products[1] != second.ID {
		t.Errorf("expected index [%d %d], got %v", first.ID, second.ID, u.Products)
	}
}

func TestCreateWithOwner_UnknownOwner(t *testing.T) {
	users := NewInMemoryUserRepository()
	products := NewInMemoryProductRepository(users)

	_, err := products.CreateWithOwner(context.Background(), models.Product{GTIN: "00000000000001", OwnerID: 42})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if exists, _ := products.ExistsByGTIN(context.Background(), "00000000000001"); exists {
		t.Error("expected no product row when the owner lookup fails")
	}
}

func TestCreateWithOwner_DuplicateGTIN(t *testing.T) {
	users := NewInMemoryUserRepository()
	products := NewInMemoryProductRepository(users)
	owner := seedOwner(t, users)

	if _, err := products.CreateWithOwner(context.Background(), models.Product{GTIN: "00000000000001", OwnerID: owner.ID}); err != nil {
		t.Fatalf("CreateWithOwner: %v", err)
	}
	_, err := products.CreateWithOwner(context.Background(), models.Product{GTIN: "00000000000001", OwnerID: owner.ID})
	if !errors.Is(err, ErrDuplicatedValueUnique) {
		t.Fatalf("expected ErrDuplicatedValueUnique, got %v", err)
	}

	u, _ := users.GetByID(context.Background(), owner.ID)
	if len(u.Products) != 1 {
		t.Errorf("expected a single index entry, got %v", u.Products)
	}
}

func TestDeleteWithOwner_RemovesByValue(t *testing.T) {
	users := NewInMemoryUserRepository()
	products := NewInMemoryProductRepository(users)
	owner := seedOwner(t, users)

	first, _ := products.CreateWithOwner(context.Background(), models.Product{GTIN: "00000000000001", OwnerID: owner.ID})
	second, _ := products.CreateWithOwner(context.Background(), models.Product{GTIN: "00000000000002", OwnerID: owner.ID})

	if err := products.DeleteWithOwner(context.Background(), first.ID, owner.ID); err != nil {
		t.Fatalf("DeleteWithOwner: %v", err)
	}

	u, _ := users.GetByID(context.Background(), owner.ID)
	if len(u.Products) != 1 || u.Products[0] != second.ID {
		t.Errorf("expected index [%d], got %v", second.ID, u.Products)
	}
	if _, err := products.GetByGTIN(context.Background(), "00000000000001"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected first product gone, got %v", err)
	}
}

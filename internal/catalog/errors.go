package catalog

import (
	"errors"
	"fmt"
)

// ErrDuplicateGTIN is returned by Create when the GTIN is already registered.
var ErrDuplicateGTIN = errors.New("a product with this gtin already exists")

// ErrForbidden is returned when the caller is authenticated but does not own
// the product.
var ErrForbidden = errors.New("caller is not the owner of this product")

// ErrNoProducts is returned by GetByOwner when the user owns no products.
var ErrNoProducts = errors.New("no products found for this user")

// PartialFailureError reports a blob operation that failed after the
// relational transaction already committed. The relational state is the
// source of truth and is not rolled back; Key identifies the orphaned or
// dangling object so it can be reconciled.
type PartialFailureError struct {
	Op   string // "upload" or "delete"
	Key  string
	GTIN string
	Err  error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("product %s committed but image %s of key %q failed: %v", e.GTIN, e.Op, e.Key, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

package catalog

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/blob"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

const defaultSignedURLTTL = time.Hour

// Service orchestrates product writes across the relational store and blob
// storage. The relational transaction is the source of truth: it always
// commits before any blob mutation, and a blob failure after commit is
// surfaced as a PartialFailureError rather than rolled back.
type Service struct {
	products repo.ProductRepository
	users    repo.UserRepository
	blobs    blob.Store
	cache    URLCache
	signTTL  time.Duration
	now      func() time.Time
}

func NewService(products repo.ProductRepository, users repo.UserRepository, blobs blob.Store) *Service {
	return &Service{
		products: products,
		users:    users,
		blobs:    blobs,
		signTTL:  defaultSignedURLTTL,
		now:      time.Now,
	}
}

// SetURLCache enables signed-URL caching. A nil cache means every read signs.
func (s *Service) SetURLCache(cache URLCache) {
	s.cache = cache
}

func (s *Service) SetSignedURLTTL(ttl time.Duration) {
	if ttl > 0 {
		s.signTTL = ttl
	}
}

// Create registers a new product owned by ownerID. The image key is chosen
// before the insert so it can be embedded in the row; the upload itself
// happens only after the transaction commits.
func (s *Service) Create(ctx context.Context, ownerID int, in CreateInput, img *ImageUpload) (models.Product, error) {
	// Fast-path rejection; the gtin unique constraint is the actual
	// race-breaker and also maps to ErrDuplicateGTIN below.
	exists, err := s.products.ExistsByGTIN(ctx, in.GTIN)
	if err != nil {
		return models.Product{}, err
	}
	if exists {
		return models.Product{}, ErrDuplicateGTIN
	}

	p := models.Product{
		GTIN:                in.GTIN,
		Name:                in.Name,
		Description:         in.Description,
		Category:            in.Category,
		Type:                in.Type,
		PackagingType:       in.PackagingType,
		TempUnits:           in.TempUnits,
		MinTemp:             in.MinTemp,
		MaxTemp:             in.MaxTemp,
		StorageInstructions: in.StorageInstructions,
		Height:              in.Height,
		Width:               in.Width,
		Depth:               in.Depth,
		Weight:              in.Weight,
		Subscribers:         []int{},
		DateAdded:           s.now().UTC(),
		OwnerID:             ownerID,
	}

	var key string
	if img != nil {
		key = newImageKey(img.ContentType)
		p.Image = &key
	}

	created, err := s.products.CreateWithOwner(ctx, p)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			return models.Product{}, ErrDuplicateGTIN
		}
		return models.Product{}, err
	}

	if img != nil {
		// The row is committed; the upload is a best-effort follow-up that
		// must not be aborted by the caller hanging up.
		if err := s.blobs.Put(context.WithoutCancel(ctx), key, img.Data, img.ContentType); err != nil {
			return created, &PartialFailureError{Op: "upload", Key: key, GTIN: created.GTIN, Err: err}
		}
	}
	return created, nil
}

// Update applies a partial update to the product identified by gtin. When a
// new image is supplied the ordering is upload-then-delete: the old object is
// removed only after the new one is stored, so the row never points at a key
// whose only backing copy was already destroyed.
func (s *Service) Update(ctx context.Context, gtin string, callerID int, patch Patch, img *ImageUpload) (models.Product, error) {
	p, err := s.products.GetByGTIN(ctx, gtin)
	if err != nil {
		return models.Product{}, err
	}
	if p.OwnerID != callerID {
		return models.Product{}, ErrForbidden
	}

	now := s.now().UTC()
	applyPatch(&p, patch, now)

	var oldKey *string
	var newKey string
	if img != nil {
		oldKey = p.Image
		newKey = newImageKey(img.ContentType)
		p.Image = &newKey
	}

	updated, err := s.products.Update(ctx, p)
	if err != nil {
		return models.Product{}, err
	}

	if img != nil {
		blobCtx := context.WithoutCancel(ctx)
		if err := s.blobs.Put(blobCtx, newKey, img.Data, img.ContentType); err != nil {
			return updated, &PartialFailureError{Op: "upload", Key: newKey, GTIN: gtin, Err: err}
		}
		if oldKey != nil {
			if err := s.blobs.Delete(blobCtx, *oldKey); err != nil {
				return updated, &PartialFailureError{Op: "delete", Key: *oldKey, GTIN: gtin, Err: err}
			}
		}
	}
	return updated, nil
}

// Delete removes the product row and its ownership index entry in one
// transaction, then deletes the blob object. A blob failure leaves an
// orphaned object, which is cheap and recoverable; the committed relational
// delete is never undone.
func (s *Service) Delete(ctx context.Context, gtin string, callerID int) (DeleteResult, error) {
	p, err := s.products.GetByGTIN(ctx, gtin)
	if err != nil {
		return DeleteResult{}, err
	}
	if p.OwnerID != callerID {
		return DeleteResult{}, ErrForbidden
	}

	if err := s.products.DeleteWithOwner(ctx, p.ID, p.OwnerID); err != nil {
		return DeleteResult{}, err
	}

	res := DeleteResult{ID: p.ID, GTIN: p.GTIN, Name: p.Name}
	if p.Image != nil {
		if err := s.blobs.Delete(context.WithoutCancel(ctx), *p.Image); err != nil {
			return res, &PartialFailureError{Op: "delete", Key: *p.Image, GTIN: gtin, Err: err}
		}
	}
	return res, nil
}

// GetByGTIN returns the stored product. Image holds the raw storage key;
// clients needing a displayable URL go through GetByOwner.
func (s *Service) GetByGTIN(ctx context.Context, gtin string) (models.Product, error) {
	return s.products.GetByGTIN(ctx, gtin)
}

// GetByOwner returns all products owned by userID with each stored image key
// replaced by a signed read URL in the returned values only. A signing
// failure degrades that product's image to null instead of failing the set.
func (s *Service) GetByOwner(ctx context.Context, userID int) ([]models.Product, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	products, err := s.products.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	for i := range products {
		if products[i].Image == nil {
			continue
		}
		url, err := s.signedImageURL(ctx, *products[i].Image)
		if err != nil {
			log.Printf("failed to sign image %q: %v", *products[i].Image, err)
			products[i].Image = nil
			continue
		}
		products[i].Image = &url
	}
	return products, nil
}

func (s *Service) signedImageURL(ctx context.Context, key string) (string, error) {
	cacheKey := "signedurl:" + key

	if s.cache != nil {
		if url, err := s.cache.Get(ctx, cacheKey); err == nil {
			return url, nil
		}
	}

	url, err := s.blobs.SignedURL(ctx, key, s.signTTL)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		// Cache for less than the signature lifetime so a cached URL never
		// outlives its signature.
		ttl := s.signTTL - 5*time.Minute
		if ttl < time.Minute {
			ttl = time.Minute
		}
		if err := s.cache.Set(ctx, cacheKey, url, ttl); err != nil {
			log.Printf("failed to cache signed url for %q: %v", key, err)
		}
	}
	return url, nil
}

func applyPatch(p *models.Product, patch Patch, now time.Time) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.PackagingType != nil {
		p.PackagingType = *patch.PackagingType
	}
	if patch.TempUnits != nil {
		p.TempUnits = *patch.TempUnits
	}
	if patch.MinTemp != nil {
		p.MinTemp = *patch.MinTemp
	}
	if patch.MaxTemp != nil {
		p.MaxTemp = *patch.MaxTemp
	}
	if patch.StorageInstructions != nil {
		p.StorageInstructions = *patch.StorageInstructions
	}
	if patch.Height != nil {
		p.Height = *patch.Height
	}
	if patch.Width != nil {
		p.Width = *patch.Width
	}
	if patch.Depth != nil {
		p.Depth = *patch.Depth
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}

	// Subscribers replace-or-clear: a non-empty set replaces and publishes,
	// an empty or absent set clears and unpublishes.
	if len(patch.Subscribers) > 0 {
		p.Subscribers = patch.Subscribers
		published := now
		p.DatePublished = &published
	} else {
		p.Subscribers = []int{}
		p.DatePublished = nil
	}

	if patch.DateInactive != nil {
		if patch.DateInactive.Unix() == 0 {
			p.DateInactive = nil
		} else {
			inactive := *patch.DateInactive
			p.DateInactive = &inactive
		}
	}

	modified := now
	p.DateModified = &modified
}

// newImageKey synthesizes a globally unique storage key carrying the image's
// content subtype, e.g. 2f9d...-....png.
func newImageKey(contentType string) string {
	ext := contentType
	if i := strings.Index(contentType, "/"); i >= 0 {
		ext = contentType[i+1:]
	}
	return uuid.New().String() + "." + ext
}

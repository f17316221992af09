package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// CreateProductHandler godoc
// @Summary Register a new product
// @Description Creates a product owned by the caller, with an optional image attachment
// @Tags products
// @Accept mpfd
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to register"
// @Success 201 {object} ProductResult
// @Failure 409 {string} string "Duplicate gtin"
// @Failure 422 {array} ProductValidationError
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	callerID := mw.GetUserID(r)

	var req ProductRequest
	var img *catalog.ImageUpload

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxImageBytes); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
		var err error
		req, err = productRequestFromForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		img, err = imageFromRequest(r)
		if err != nil {
			http.Error(w, "invalid image upload", http.StatusBadRequest)
			return
		}
	} else if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, validationErrors)
		return
	}

	created, err := catalogSvc.Create(r.Context(), callerID, catalog.CreateInput{
		GTIN:                req.GTIN,
		Name:                req.Name,
		Description:         req.Description,
		Category:            req.Category,
		Type:                req.Type,
		PackagingType:       req.PackagingType,
		TempUnits:           req.TempUnits,
		MinTemp:             req.MinTemp,
		MaxTemp:             req.MaxTemp,
		StorageInstructions: req.StorageInstructions,
		Height:              req.Height,
		Width:               req.Width,
		Depth:               req.Depth,
		Weight:              req.Weight,
	}, img)

	var partial *catalog.PartialFailureError
	switch {
	case errors.Is(err, catalog.ErrDuplicateGTIN):
		http.Error(w, "a product with this gtin already exists", http.StatusConflict)
	case errors.Is(err, repo.ErrUserNotFound):
		http.Error(w, "could not find user for provided id", http.StatusNotFound)
	case errors.As(err, &partial):
		log.Printf("partial failure on create: %v", partial)
		writeJSON(w, http.StatusCreated, ProductResult{Product: created, Warning: partial.Error()})
	case err != nil:
		http.Error(w, "could not create product", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusCreated, ProductResult{Product: created})
	}
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Applies a partial update to the product identified by gtin, with an optional replacement image
// @Tags products
// @Accept mpfd
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param gtin path string true "Product GTIN"
// @Param product body ProductPatchRequest true "Fields to update"
// @Success 200 {object} ProductResult
// @Failure 403 {string} string "Not the owner"
// @Failure 404 {string} string "Not found"
// @Failure 422 {array} ProductValidationError
// @Router /api/products/{gtin} [patch]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	gtin := chi.URLParam(r, "gtin")
	callerID := mw.GetUserID(r)

	var req ProductPatchRequest
	var img *catalog.ImageUpload

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxImageBytes); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
		var err error
		req, err = patchRequestFromForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		img, err = imageFromRequest(r)
		if err != nil {
			http.Error(w, "invalid image upload", http.StatusBadRequest)
			return
		}
	} else if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validatePatch(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, validationErrors)
		return
	}

	updated, err := catalogSvc.Update(r.Context(), gtin, callerID, catalog.Patch{
		Name:                req.Name,
		Description:         req.Description,
		Category:            req.Category,
		Type:                req.Type,
		PackagingType:       req.PackagingType,
		TempUnits:           req.TempUnits,
		MinTemp:             req.MinTemp,
		MaxTemp:             req.MaxTemp,
		StorageInstructions: req.StorageInstructions,
		Height:              req.Height,
		Width:               req.Width,
		Depth:               req.Depth,
		Weight:              req.Weight,
		Subscribers:         req.Subscribers,
		DateInactive:        req.DateInactive,
	}, img)

	var partial *catalog.PartialFailureError
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrForbidden):
		http.Error(w, "you are not authorized to edit this product", http.StatusForbidden)
	case errors.As(err, &partial):
		log.Printf("partial failure on update: %v", partial)
		writeJSON(w, http.StatusOK, ProductResult{Product: updated, Warning: partial.Error()})
	case err != nil:
		http.Error(w, "could not update product", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, ProductResult{Product: updated})
	}
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param gtin path string true "Product GTIN"
// @Success 200 {object} DeleteProductResult
// @Failure 403 {string} string "Not the owner"
// @Failure 404 {string} string "Not found"
// @Router /api/products/{gtin} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	gtin := chi.URLParam(r, "gtin")
	callerID := mw.GetUserID(r)

	res, err := catalogSvc.Delete(r.Context(), gtin, callerID)

	var partial *catalog.PartialFailureError
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		http.Error(w, "could not find product for this gtin", http.StatusNotFound)
	case errors.Is(err, catalog.ErrForbidden):
		http.Error(w, "you are not authorized to delete this product", http.StatusForbidden)
	case errors.As(err, &partial):
		log.Printf("partial failure on delete: %v", partial)
		writeJSON(w, http.StatusOK, DeleteProductResult{
			Message: deletedMessage(gtin, res.Name),
			ID:      res.ID,
			GTIN:    res.GTIN,
			Warning: partial.Error(),
		})
	case err != nil:
		http.Error(w, "could not delete product", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, DeleteProductResult{
			Message: deletedMessage(gtin, res.Name),
			ID:      res.ID,
			GTIN:    res.GTIN,
		})
	}
}

func deletedMessage(gtin, name string) string {
	return fmt.Sprintf("Product %s %s has been deleted", gtin, name)
}

// GetProductByGTINHandler godoc
// @Summary Get product by GTIN
// @Description Returns the stored product; the image field holds the raw storage key
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param gtin path string true "Product GTIN"
// @Success 200 {object} ProductResult
// @Failure 404 {string} string "Not found"
// @Router /api/products/{gtin} [get]
func GetProductByGTINHandler(w http.ResponseWriter, r *http.Request) {
	gtin := chi.URLParam(r, "gtin")

	product, err := catalogSvc.GetByGTIN(r.Context(), gtin)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "could not find a product for the provided gtin", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ProductResult{Product: product})
}

// GetProductsByUserHandler godoc
// @Summary List a user's products
// @Description Returns all products owned by the user, image keys replaced with signed read URLs
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {array} models.Product
// @Failure 404 {string} string "Not found"
// @Router /api/products/user/{userId} [get]
func GetProductsByUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	products, err := catalogSvc.GetByOwner(r.Context(), userID)
	switch {
	case errors.Is(err, repo.ErrUserNotFound):
		http.Error(w, "could not find user for the provided id", http.StatusNotFound)
	case errors.Is(err, catalog.ErrNoProducts):
		http.Error(w, "could not find products for the provided user id", http.StatusNotFound)
	case err != nil:
		http.Error(w, "fetching user products failed, please try again", http.StatusInternalServerError)
	default:
		writeJSON(w, http.StatusOK, products)
	}
}

func productRequestFromForm(r *http.Request) (ProductRequest, error) {
	form := r.MultipartForm

	minTemp, err := formFloat(form, "minTemp")
	if err != nil {
		return ProductRequest{}, err
	}
	maxTemp, err := formFloat(form, "maxTemp")
	if err != nil {
		return ProductRequest{}, err
	}
	height, err := formFloat(form, "height")
	if err != nil {
		return ProductRequest{}, err
	}
	width, err := formFloat(form, "width")
	if err != nil {
		return ProductRequest{}, err
	}
	depth, err := formFloat(form, "depth")
	if err != nil {
		return ProductRequest{}, err
	}
	weight, err := formFloat(form, "weight")
	if err != nil {
		return ProductRequest{}, err
	}

	return ProductRequest{
		GTIN:                r.FormValue("gtin"),
		Name:                r.FormValue("name"),
		Description:         r.FormValue("description"),
		Category:            r.FormValue("category"),
		Type:                r.FormValue("type"),
		PackagingType:       r.FormValue("packagingType"),
		TempUnits:           r.FormValue("tempUnits"),
		MinTemp:             floatOrZero(minTemp),
		MaxTemp:             floatOrZero(maxTemp),
		StorageInstructions: r.FormValue("storageInstructions"),
		Height:              floatOrZero(height),
		Width:               floatOrZero(width),
		Depth:               floatOrZero(depth),
		Weight:              floatOrZero(weight),
	}, nil
}

func patchRequestFromForm(r *http.Request) (ProductPatchRequest, error) {
	form := r.MultipartForm

	var req ProductPatchRequest
	var err error

	req.Name = formString(form, "name")
	req.Description = formString(form, "description")
	req.Category = formString(form, "category")
	req.Type = formString(form, "type")
	req.PackagingType = formString(form, "packagingType")
	req.TempUnits = formString(form, "tempUnits")
	req.StorageInstructions = formString(form, "storageInstructions")

	if req.MinTemp, err = formFloat(form, "minTemp"); err != nil {
		return ProductPatchRequest{}, err
	}
	if req.MaxTemp, err = formFloat(form, "maxTemp"); err != nil {
		return ProductPatchRequest{}, err
	}
	if req.Height, err = formFloat(form, "height"); err != nil {
		return ProductPatchRequest{}, err
	}
	if req.Width, err = formFloat(form, "width"); err != nil {
		return ProductPatchRequest{}, err
	}
	if req.Depth, err = formFloat(form, "depth"); err != nil {
		return ProductPatchRequest{}, err
	}
	if req.Weight, err = formFloat(form, "weight"); err != nil {
		return ProductPatchRequest{}, err
	}

	if subs := formString(form, "subscribers"); subs != nil {
		if req.Subscribers, err = parseSubscribers(*subs); err != nil {
			return ProductPatchRequest{}, err
		}
	}
	if inactive := formString(form, "dateInactive"); inactive != nil {
		if req.DateInactive, err = parseTimestamp(*inactive); err != nil {
			return ProductPatchRequest{}, err
		}
	}
	return req, nil
}

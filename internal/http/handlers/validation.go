package handlers

import (
	"regexp"
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

var gtinPattern = regexp.MustCompile(`^[0-9]{14}$`)

const minDescriptionLength = 10

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if len(p.Description) < minDescriptionLength {
		errs = append(errs, ProductValidationError{Field: "Description", Description: "Description must be at least 10 characters"})
	}
	if !gtinPattern.MatchString(p.GTIN) {
		errs = append(errs, ProductValidationError{Field: "Gtin", Description: "Gtin must be exactly 14 digits"})
	}
	return errs
}

// validatePatch checks only the fields present in the patch.
func validatePatch(p ProductPatchRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name cannot be empty"})
	}
	if p.Description != nil && len(*p.Description) < minDescriptionLength {
		errs = append(errs, ProductValidationError{Field: "Description", Description: "Description must be at least 10 characters"})
	}
	return errs
}

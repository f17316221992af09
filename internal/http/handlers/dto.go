package handlers

import (
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

type ProductRequest struct {
	GTIN                string  `json:"gtin"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Category            string  `json:"category"`
	Type                string  `json:"type"`
	PackagingType       string  `json:"packagingType"`
	TempUnits           string  `json:"tempUnits"`
	MinTemp             float64 `json:"minTemp"`
	MaxTemp             float64 `json:"maxTemp"`
	StorageInstructions string  `json:"storageInstructions"`
	Height              float64 `json:"height"`
	Width               float64 `json:"width"`
	Depth               float64 `json:"depth"`
	Weight              float64 `json:"weight"`
}

// ProductPatchRequest is the JSON form of a partial update: nil means the
// field was absent from the payload.
type ProductPatchRequest struct {
	Name                *string    `json:"name"`
	Description         *string    `json:"description"`
	Category            *string    `json:"category"`
	Type                *string    `json:"type"`
	PackagingType       *string    `json:"packagingType"`
	TempUnits           *string    `json:"tempUnits"`
	MinTemp             *float64   `json:"minTemp"`
	MaxTemp             *float64   `json:"maxTemp"`
	StorageInstructions *string    `json:"storageInstructions"`
	Height              *float64   `json:"height"`
	Width               *float64   `json:"width"`
	Depth               *float64   `json:"depth"`
	Weight              *float64   `json:"weight"`
	Subscribers         []int      `json:"subscribers"`
	DateInactive        *time.Time `json:"dateInactive"`
}

// ProductResult wraps a single product response; Warning is set when the
// relational write committed but a blob operation failed.
type ProductResult struct {
	Product models.Product `json:"product"`
	Warning string         `json:"warning,omitempty"`
}

type DeleteProductResult struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
	GTIN    string `json:"gtin"`
	Warning string `json:"warning,omitempty"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserData struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type AuthResult struct {
	Message  string   `json:"message"`
	UserData UserData `json:"userData"`
}

type UsersResult struct {
	Users []models.User `json:"users"`
}

type ContactRequest struct {
	Name     string  `json:"name"`
	Company  string  `json:"company"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Comments string  `json:"comments"`
}

type ContactResult struct {
	Message     string             `json:"message"`
	ContactItem models.ContactItem `json:"contactItem"`
}

type ContactsResult struct {
	Contact []models.ContactItem `json:"contact"`
}

package models

import "time"

// Product represents a catalog product entity. Image holds the blob storage
// key, never a URL; the read path substitutes a signed URL in the response
// payload only.
type Product struct {
	ID                  int        `json:"id"`
	GTIN                string     `json:"gtin"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Category            string     `json:"category"`
	Type                string     `json:"type"`
	PackagingType       string     `json:"packagingType"`
	TempUnits           string     `json:"tempUnits"`
	MinTemp             float64    `json:"minTemp"`
	MaxTemp             float64    `json:"maxTemp"`
	StorageInstructions string     `json:"storageInstructions"`
	Height              float64    `json:"height"`
	Width               float64    `json:"width"`
	Depth               float64    `json:"depth"`
	Weight              float64    `json:"weight"`
	Image               *string    `json:"image"`
	Subscribers         []int      `json:"subscribers"`
	DateAdded           time.Time  `json:"dateAdded"`
	DateModified        *time.Time `json:"dateModified"`
	DatePublished       *time.Time `json:"datePublished"`
	DateInactive        *time.Time `json:"dateInactive"`
	OwnerID             int        `json:"owner"`
}

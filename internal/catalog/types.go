package catalog

import "time"

// CreateInput carries the caller-supplied fields of a new product. Syntactic
// validation (gtin format, required fields) happens before the orchestrator
// is invoked.
type CreateInput struct {
	GTIN                string
	Name                string
	Description         string
	Category            string
	Type                string
	PackagingType       string
	TempUnits           string
	MinTemp             float64
	MaxTemp             float64
	StorageInstructions string
	Height              float64
	Width               float64
	Depth               float64
	Weight              float64
}

// Patch is an explicit partial update: a nil field is absent and leaves the
// stored value unchanged. Subscribers follows replace-or-clear semantics
// regardless of presence; DateInactive treats the epoch-zero timestamp as a
// "clear" sentinel.
type Patch struct {
	Name                *string
	Description         *string
	Category            *string
	Type                *string
	PackagingType       *string
	TempUnits           *string
	MinTemp             *float64
	MaxTemp             *float64
	StorageInstructions *string
	Height              *float64
	Width               *float64
	Depth               *float64
	Weight              *float64
	Subscribers         []int
	DateInactive        *time.Time
}

// ImageUpload is an image payload attached to a create or update.
type ImageUpload struct {
	Data        []byte
	ContentType string
}

// DeleteResult confirms a completed delete.
type DeleteResult struct {
	ID   int    `json:"id"`
	GTIN string `json:"gtin"`
	Name string `json:"name"`
}

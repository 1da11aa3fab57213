package models

import "fmt"

// ImportFormat represents the file format for import
type ImportFormat string

const (
	ImportFormatCSV  ImportFormat = "csv"
	ImportFormatXLSX ImportFormat = "xlsx"
)

// ImportRecord is one spreadsheet row's parsed, normalized result. It is
// constructed once by the row parser, never mutated afterwards, and consumed
// exactly once by the ingestion pipeline.
type ImportRecord struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Description  *string  `json:"description,omitempty"`
	SKU          *string  `json:"sku,omitempty"`
	Barcode      *string  `json:"barcode,omitempty"`
	Stock        *int     `json:"stock,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	ComparePrice *float64 `json:"comparePrice,omitempty"`
	Brand        *string  `json:"brand,omitempty"`
	// Tags is the raw comma-separated cell value; splitting happens at
	// ingestion time.
	Tags     *string `json:"tags,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	// Category is the free-text name from the sheet, not an id. The
	// pipeline resolves it against the store's categories.
	Category *string `json:"category,omitempty"`
	Active   bool    `json:"active"`
	Featured bool    `json:"featured"`

	// Structured fields, present only when the active business type
	// enables the corresponding feature flag.
	Variations                []Variation     `json:"variations,omitempty"`
	ModifierGroups            []ModifierGroup `json:"modifierGroups,omitempty"`
	Specs                     []SpecEntry     `json:"specs,omitempty"`
	PrepTimeMin               *int            `json:"prepTimeMin,omitempty"`
	PrepTimeMax               *int            `json:"prepTimeMax,omitempty"`
	DurationValue             *int            `json:"durationValue,omitempty"`
	DurationUnit              *DurationUnit   `json:"durationUnit,omitempty"`
	Model                     *string         `json:"model,omitempty"`
	WarrantyMonths            *int            `json:"warrantyMonths,omitempty"`
	PetType                   *PetType        `json:"petType,omitempty"`
	PetAge                    *PetAge         `json:"petAge,omitempty"`
	Customizable              *bool           `json:"customizable,omitempty"`
	CustomizationInstructions *string         `json:"customizationInstructions,omitempty"`
	AvailableQuantity         *int            `json:"availableQuantity,omitempty"`
}

// RowError is a parse-time failure tied to a specific spreadsheet row.
// Row is the human-facing 1-indexed row number, so the first data row
// reports as row 2.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}

// ImportError is a persistence-time failure tied to a specific product.
// It is named by product rather than row number since categories may have
// shifted the effective index by the time products are written.
type ImportError struct {
	ProductName string `json:"productName"`
	Message     string `json:"message"`
}

// BatchResult aggregates the outcome of one ingestion batch. Partial
// success is the expected, supported outcome.
type BatchResult struct {
	SuccessCount      int           `json:"successCount"`
	TotalCount        int           `json:"totalCount"`
	CategoriesCreated int           `json:"categoriesCreated"`
	Errors            []ImportError `json:"errors,omitempty"`
}

// ImportResponse is the full HTTP response for an import request: parse
// errors and ingestion errors travel on separate channels and are never
// merged.
type ImportResponse struct {
	Success           bool          `json:"success"`
	TotalRows         int           `json:"totalRows"`
	ParsedCount       int           `json:"parsedCount"`
	SuccessCount      int           `json:"successCount"`
	CategoriesCreated int           `json:"categoriesCreated"`
	RowErrors         []RowError    `json:"rowErrors,omitempty"`
	ImportErrors      []ImportError `json:"importErrors,omitempty"`
	ProcessingMs      int64         `json:"processingMs"`
}

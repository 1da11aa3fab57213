package importer

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"catalog-import-service/internal/models"
)

// CategoryStore is the category persistence collaborator. Create must
// surface transport/validation errors as returned errors; the pipeline
// treats any error as "this category could not be created" and proceeds.
type CategoryStore interface {
	ListCategories(ctx context.Context, tenantID string) ([]models.Category, error)
	CreateCategory(ctx context.Context, tenantID string, category *models.Category) error
}

// ProductStore is the product persistence collaborator.
type ProductStore interface {
	CreateProduct(ctx context.Context, tenantID string, product *models.Product) error
}

// ProgressFunc reports incremental progress between persistence calls:
// current counts completed category plus product writes, total is their sum.
type ProgressFunc func(current, total int)

// Pipeline ingests parsed import records for one store: it resolves
// free-text category names against existing records, creates missing
// categories exactly once, then writes one product per record.
//
// All persistence runs sequentially, one call at a time. That ordering is
// deliberate: by the time product creation for row i begins, the category
// lookup includes every category created earlier in the batch, and
// duplicate-category races cannot occur. Batches are bounded by realistic
// spreadsheet sizes, so O(n) sequential round-trips are acceptable.
type Pipeline struct {
	categories CategoryStore
	products   ProductStore
	logger     *logrus.Entry

	// Progress is optional; when set it is invoked after every
	// category and product write.
	Progress ProgressFunc
}

// NewPipeline creates an ingestion pipeline over the given stores.
func NewPipeline(categories CategoryStore, products ProductStore, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		categories: categories,
		products:   products,
		logger:     logger.WithField("component", "import-pipeline"),
	}
}

// Run ingests records into the store. existing is the store's already
// persisted category list, loaded by the caller. Every record is assumed
// to have passed row validation, so failures here are persistence
// failures, never validation failures. One failing record never blocks
// the rest; the outcome is counts plus named per-product errors.
//
// Run returns a non-nil error only when ctx is cancelled between
// iterations; the partial BatchResult is still returned.
func (p *Pipeline) Run(ctx context.Context, tenantID string, records []models.ImportRecord, existing []models.Category) (*models.BatchResult, error) {
	result := &models.BatchResult{TotalCount: len(records)}

	// Case-insensitive name → id lookup, owned exclusively by this run.
	lookup := make(map[string]models.Category, len(existing))
	for _, cat := range existing {
		lookup[strings.ToLower(cat.Name)] = cat
	}

	// Distinct missing category names, in first-encounter order.
	var toCreate []string
	seen := make(map[string]bool)
	for _, record := range records {
		if record.Category == nil {
			continue
		}
		name := strings.TrimSpace(*record.Category)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, exists := lookup[key]; exists || seen[key] {
			continue
		}
		seen[key] = true
		toCreate = append(toCreate, name)
	}

	total := len(toCreate) + len(records)
	current := 0

	for i, name := range toCreate {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		category := &models.Category{
			TenantID: tenantID,
			Name:     name,
			Slug:     Slugify(name),
			Order:    len(existing) + i,
		}
		if err := p.categories.CreateCategory(ctx, tenantID, category); err != nil {
			// Products referencing this name import without a
			// category id instead of aborting the batch.
			p.logger.WithError(err).WithField("category", name).Warn("Failed to create category")
		} else {
			lookup[strings.ToLower(name)] = *category
			result.CategoriesCreated++
		}
		current++
		p.reportProgress(current, total)
	}

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		product := buildProduct(tenantID, record, lookup)
		if err := p.products.CreateProduct(ctx, tenantID, product); err != nil {
			p.logger.WithError(err).WithField("product", record.Name).Warn("Failed to import product")
			result.Errors = append(result.Errors, models.ImportError{
				ProductName: record.Name,
				Message:     err.Error(),
			})
		} else {
			result.SuccessCount++
		}
		current++
		p.reportProgress(current, total)
	}

	return result, nil
}

func (p *Pipeline) reportProgress(current, total int) {
	if p.Progress != nil {
		p.Progress(current, total)
	}
}

// buildProduct assembles the persistence-ready product from a record.
// Unset optional fields stay nil pointers so persistence omits them
// entirely rather than writing explicit nulls.
func buildProduct(tenantID string, record models.ImportRecord, lookup map[string]models.Category) *models.Product {
	product := &models.Product{
		TenantID:     tenantID,
		Name:         record.Name,
		Slug:         Slugify(record.Name),
		Price:        record.Price,
		Description:  record.Description,
		SKU:          record.SKU,
		Barcode:      record.Barcode,
		Stock:        record.Stock,
		TrackStock:   record.Stock != nil,
		Cost:         record.Cost,
		ComparePrice: record.ComparePrice,
		Brand:        record.Brand,
		Tags:         splitTags(record.Tags),
		Weight:       record.Weight,
		Active:       record.Active,
		Featured:     record.Featured,

		PrepTimeMin:               record.PrepTimeMin,
		PrepTimeMax:               record.PrepTimeMax,
		DurationValue:             record.DurationValue,
		DurationUnit:              record.DurationUnit,
		Model:                     record.Model,
		WarrantyMonths:            record.WarrantyMonths,
		PetType:                   record.PetType,
		PetAge:                    record.PetAge,
		Customizable:              record.Customizable,
		CustomizationInstructions: record.CustomizationInstructions,
		AvailableQuantity:         record.AvailableQuantity,
	}

	if record.Category != nil {
		if cat, ok := lookup[strings.ToLower(strings.TrimSpace(*record.Category))]; ok {
			id := cat.ID
			product.CategoryID = &id
		}
	}

	if len(record.Variations) > 0 {
		variations := models.VariationList(record.Variations)
		product.Variations = &variations
	}
	if len(record.ModifierGroups) > 0 {
		groups := models.ModifierGroupList(record.ModifierGroups)
		product.ModifierGroups = &groups
	}
	if len(record.Specs) > 0 {
		specs := models.SpecList(record.Specs)
		product.Specs = &specs
	}

	return product
}

// splitTags turns the raw comma-separated tags cell into a trimmed list
// with blanks filtered out.
func splitTags(raw *string) models.StringList {
	tags := models.StringList{}
	if raw == nil {
		return tags
	}
	for _, tag := range strings.Split(*raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

package importer

import (
	"strconv"
	"strings"

	"catalog-import-service/internal/businesstype"
	"catalog-import-service/internal/models"
)

// activeTruthy and featuredTruthy are the recognized affirmative cell
// tokens, case-insensitive. Anything else counts as false; unrecognized
// tokens never fail a row.
var (
	activeTruthy   = map[string]bool{"si": true, "yes": true, "1": true, "true": true, "activo": true}
	featuredTruthy = map[string]bool{"si": true, "yes": true, "1": true, "true": true}
)

var petTypes = map[string]models.PetType{
	"dog": models.PetTypeDog, "cat": models.PetTypeCat, "bird": models.PetTypeBird,
	"fish": models.PetTypeFish, "small": models.PetTypeSmall, "other": models.PetTypeOther,
}

var petAges = map[string]models.PetAge{
	"puppy": models.PetAgePuppy, "adult": models.PetAgeAdult,
	"senior": models.PetAgeSenior, "all": models.PetAgeAll,
}

var durationUnits = map[string]models.DurationUnit{
	"min": models.DurationMinutes, "hr": models.DurationHours,
}

// ParseRow validates and normalizes one raw spreadsheet row into an
// ImportRecord. Only a missing name or invalid price can fail the row; every
// other field degrades to "not set" when absent or unparseable, because
// spreadsheet data is human-edited. Structured fields are only read when
// the business type's feature flags enable them. Pure: no side effects.
func ParseRow(row map[string]string, rowNum int, features businesstype.Features, newID IDFunc) (*models.ImportRecord, *models.RowError) {
	name := strings.TrimSpace(cell(row, FieldName))
	if name == "" {
		return nil, &models.RowError{Row: rowNum, Message: "name is required"}
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(cell(row, FieldPrice)), 64)
	if err != nil || price < 0 {
		return nil, &models.RowError{Row: rowNum, Message: "price must be a valid number"}
	}

	record := &models.ImportRecord{
		Name:         name,
		Price:        price,
		Description:  optionalString(cell(row, FieldDescription)),
		SKU:          optionalString(cell(row, FieldSKU)),
		Barcode:      optionalString(cell(row, FieldBarcode)),
		Stock:        optionalNonNegativeInt(cell(row, FieldStock)),
		Cost:         optionalNonNegativeFloat(cell(row, FieldCost)),
		ComparePrice: optionalNonNegativeFloat(cell(row, FieldComparePrice)),
		Brand:        optionalString(cell(row, FieldBrand)),
		Tags:         optionalString(cell(row, FieldTags)),
		Weight:       optionalFloat(cell(row, FieldWeight)),
		Category:     optionalString(cell(row, FieldCategory)),
		Active:       parseActive(cell(row, FieldActive)),
		Featured:     parseFeatured(cell(row, FieldFeatured)),
	}

	if features.ShowVariants {
		if v, ok := DecodeVariation(cell(row, FieldVariation1Name), cell(row, FieldVariation1Options), newID); ok {
			record.Variations = append(record.Variations, v)
		}
		if v, ok := DecodeVariation(cell(row, FieldVariation2Name), cell(row, FieldVariation2Options), newID); ok {
			record.Variations = append(record.Variations, v)
		}
	}

	if features.ShowPrepTime {
		record.PrepTimeMin = optionalInt(cell(row, FieldPrepTimeMin))
		record.PrepTimeMax = optionalInt(cell(row, FieldPrepTimeMax))
	}

	if features.ShowModifiers {
		if groups := DecodeModifierGroups(cell(row, FieldModifiers), newID); len(groups) > 0 {
			record.ModifierGroups = groups
		}
	}

	if features.ShowServiceDuration {
		record.DurationValue = optionalInt(cell(row, FieldDurationValue))
		if unit, ok := durationUnits[normalizeToken(cell(row, FieldDurationUnit))]; ok {
			record.DurationUnit = &unit
		}
	}

	if features.ShowModel {
		record.Model = optionalString(cell(row, FieldModel))
	}
	if features.ShowWarranty {
		record.WarrantyMonths = optionalInt(cell(row, FieldWarrantyMonths))
	}
	if features.ShowSpecs {
		if specs := DecodeSpecs(cell(row, FieldSpecs)); len(specs) > 0 {
			record.Specs = specs
		}
	}

	if features.ShowPetType {
		if pt, ok := petTypes[normalizeToken(cell(row, FieldPetType))]; ok {
			record.PetType = &pt
		}
	}
	if features.ShowPetAge {
		if pa, ok := petAges[normalizeToken(cell(row, FieldPetAge))]; ok {
			record.PetAge = &pa
		}
	}

	if features.ShowCustomOrder {
		if raw := strings.TrimSpace(cell(row, FieldCustomizable)); raw != "" {
			customizable := featuredTruthy[strings.ToLower(raw)]
			record.Customizable = &customizable
		}
		record.CustomizationInstructions = optionalString(cell(row, FieldCustomizationInstructions))
	}

	if features.ShowLimitedStock {
		record.AvailableQuantity = optionalNonNegativeInt(cell(row, FieldAvailableQuantity))
	}

	return record, nil
}

// cell resolves a logical field against a row by trying each header
// candidate in order and accepting the first non-empty cell. Users edit
// template headers and mix languages, so lookup is by name with multiple
// spellings, never by column position.
func cell(row map[string]string, key string) string {
	for _, candidate := range HeaderCandidates(key) {
		if value, ok := row[candidate]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseActive(raw string) bool {
	token := normalizeToken(raw)
	if token == "" {
		return true
	}
	return activeTruthy[token]
}

func parseFeatured(raw string) bool {
	return featuredTruthy[normalizeToken(raw)]
}

func normalizeToken(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func optionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalInt(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	// Spreadsheet cells frequently hold "10.0" for integers.
	if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
		n := int(parsed)
		return &n
	}
	return nil
}

func optionalNonNegativeInt(raw string) *int {
	n := optionalInt(raw)
	if n == nil || *n < 0 {
		return nil
	}
	return n
}

func optionalFloat(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return &parsed
	}
	return nil
}

func optionalNonNegativeFloat(raw string) *float64 {
	f := optionalFloat(raw)
	if f == nil || *f < 0 {
		return nil
	}
	return f
}

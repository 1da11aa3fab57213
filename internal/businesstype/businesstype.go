package businesstype

// Type is a tenant-level tag selecting which optional product fields are
// relevant for that store's catalog.
type Type string

const (
	TypeFashion   Type = "fashion"
	TypeFood      Type = "food"
	TypeGrocery   Type = "grocery"
	TypeCosmetics Type = "cosmetics"
	TypeTech      Type = "tech"
	TypePets      Type = "pets"
	TypeCraft     Type = "craft"
	TypeGeneral   Type = "general"
)

// Features is the fixed boolean record derived from a business type. It
// gates which spreadsheet columns and structured fields are active during
// import and template generation.
type Features struct {
	ShowSku             bool
	ShowBarcode         bool
	ShowStock           bool
	ShowCost            bool
	ShowComparePrice    bool
	ShowBrand           bool
	ShowTags            bool
	ShowShipping        bool
	ShowVariants        bool
	ShowPrepTime        bool
	ShowModifiers       bool
	ShowServiceDuration bool
	ShowModel           bool
	ShowWarranty        bool
	ShowSpecs           bool
	ShowPetType         bool
	ShowPetAge          bool
	ShowCustomOrder     bool
	ShowLimitedStock    bool
}

var catalog = map[Type]Features{
	TypeFashion: {
		ShowVariants:     true,
		ShowComparePrice: true,
		ShowSku:          true,
		ShowStock:        true,
		ShowCost:         true,
		ShowBrand:        true,
		ShowTags:         true,
		ShowShipping:     true,
	},
	TypeFood: {
		ShowModifiers: true,
		ShowPrepTime:  true,
		ShowCost:      true,
		ShowTags:      true,
	},
	TypeGrocery: {
		ShowComparePrice: true,
		ShowSku:          true,
		ShowBarcode:      true,
		ShowStock:        true,
		ShowCost:         true,
		ShowBrand:        true,
		ShowTags:         true,
		ShowShipping:     true,
	},
	TypeCosmetics: {
		ShowComparePrice: true,
		ShowSku:          true,
		ShowBarcode:      true,
		ShowStock:        true,
		ShowCost:         true,
		ShowBrand:        true,
		ShowTags:         true,
		ShowShipping:     true,
	},
	TypeTech: {
		ShowSpecs:        true,
		ShowWarranty:     true,
		ShowModel:        true,
		ShowComparePrice: true,
		ShowSku:          true,
		ShowBarcode:      true,
		ShowStock:        true,
		ShowCost:         true,
		ShowBrand:        true,
		ShowTags:         true,
		ShowShipping:     true,
	},
	TypePets: {
		ShowVariants:     true,
		ShowPetType:      true,
		ShowPetAge:       true,
		ShowComparePrice: true,
		ShowSku:          true,
		ShowStock:        true,
		ShowCost:         true,
		ShowBrand:        true,
		ShowTags:         true,
		ShowShipping:     true,
	},
	TypeCraft: {
		ShowCustomOrder:  true,
		ShowLimitedStock: true,
		ShowComparePrice: true,
		ShowCost:         true,
		ShowTags:         true,
	},
	TypeGeneral: {
		ShowComparePrice: true,
		ShowSku:          true,
		ShowStock:        true,
		ShowCost:         true,
		ShowBrand:        true,
		ShowTags:         true,
	},
}

// legacyAliases maps retired business type values to their replacements.
var legacyAliases = map[string]Type{
	"retail":     TypeGeneral,
	"restaurant": TypeFood,
	"services":   TypeGeneral,
	"other":      TypeGeneral,
	"beauty":     TypeCosmetics,
}

// Normalize resolves a raw business type string to a known Type. Unknown or
// empty values resolve to general.
func Normalize(raw string) Type {
	if raw == "" {
		return TypeGeneral
	}
	t := Type(raw)
	if _, ok := catalog[t]; ok {
		return t
	}
	if mapped, ok := legacyAliases[raw]; ok {
		return mapped
	}
	return TypeGeneral
}

// FeaturesFor returns the feature flags for a business type. The lookup has
// no side effects and cannot fail.
func FeaturesFor(raw string) Features {
	return catalog[Normalize(raw)]
}

// All returns every known business type, for selection UIs.
func All() []Type {
	return []Type{
		TypeFashion, TypeFood, TypeGrocery, TypeCosmetics,
		TypeTech, TypePets, TypeCraft, TypeGeneral,
	}
}

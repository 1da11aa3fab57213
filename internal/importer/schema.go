package importer

import (
	"strings"

	"catalog-import-service/internal/businesstype"
)

// Locale selects the header spelling for generated templates. Parsing is
// always tolerant of both spellings regardless of the template's locale.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// NormalizeLocale resolves a raw locale string, defaulting to Spanish (the
// product's primary market).
func NormalizeLocale(raw string) Locale {
	if strings.EqualFold(strings.TrimSpace(raw), string(LocaleEN)) {
		return LocaleEN
	}
	return LocaleES
}

// Logical field keys. Template generation and row parsing share this
// vocabulary; the spreadsheet header spellings live in fieldDefs.
const (
	FieldName                      = "name"
	FieldPrice                     = "price"
	FieldDescription               = "description"
	FieldCategory                  = "category"
	FieldSKU                       = "sku"
	FieldBarcode                   = "barcode"
	FieldStock                     = "stock"
	FieldCost                      = "cost"
	FieldComparePrice              = "comparePrice"
	FieldBrand                     = "brand"
	FieldTags                      = "tags"
	FieldWeight                    = "weight"
	FieldVariation1Name            = "variation1Name"
	FieldVariation1Options         = "variation1Options"
	FieldVariation2Name            = "variation2Name"
	FieldVariation2Options         = "variation2Options"
	FieldPrepTimeMin               = "prepTimeMin"
	FieldPrepTimeMax               = "prepTimeMax"
	FieldModifiers                 = "modifiers"
	FieldDurationValue             = "durationValue"
	FieldDurationUnit              = "durationUnit"
	FieldModel                     = "model"
	FieldWarrantyMonths            = "warrantyMonths"
	FieldSpecs                     = "specs"
	FieldPetType                   = "petType"
	FieldPetAge                    = "petAge"
	FieldCustomizable              = "customizable"
	FieldCustomizationInstructions = "customizationInstructions"
	FieldAvailableQuantity         = "availableQuantity"
	FieldActive                    = "active"
	FieldFeatured                  = "featured"
)

// fieldDef binds a logical field to its localized header spellings.
type fieldDef struct {
	key string
	es  string
	en  string
}

// fieldDefs is pure static data: the header vocabulary users see in
// templates and the parser accepts back. Order here is irrelevant; column
// order is decided by TemplateColumns.
var fieldDefs = []fieldDef{
	{FieldName, "nombre", "name"},
	{FieldPrice, "precio", "price"},
	{FieldDescription, "descripcion", "description"},
	{FieldCategory, "categoria", "category"},
	{FieldSKU, "sku", "sku"},
	{FieldBarcode, "codigo_barras", "barcode"},
	{FieldStock, "stock", "stock"},
	{FieldCost, "costo", "cost"},
	{FieldComparePrice, "precio_anterior", "compare_price"},
	{FieldBrand, "marca", "brand"},
	{FieldTags, "etiquetas", "tags"},
	{FieldWeight, "peso_gramos", "weight"},
	{FieldVariation1Name, "variacion_1_nombre", "variation_1_name"},
	{FieldVariation1Options, "variacion_1_opciones", "variation_1_options"},
	{FieldVariation2Name, "variacion_2_nombre", "variation_2_name"},
	{FieldVariation2Options, "variacion_2_opciones", "variation_2_options"},
	{FieldPrepTimeMin, "tiempo_prep_min", "prep_time_min"},
	{FieldPrepTimeMax, "tiempo_prep_max", "prep_time_max"},
	{FieldModifiers, "modificadores", "modifiers"},
	{FieldDurationValue, "duracion_valor", "duration_value"},
	{FieldDurationUnit, "duracion_unidad", "duration_unit"},
	{FieldModel, "modelo", "model"},
	{FieldWarrantyMonths, "garantia_meses", "warranty_months"},
	{FieldSpecs, "especificaciones", "specs"},
	{FieldPetType, "tipo_mascota", "pet_type"},
	{FieldPetAge, "edad_mascota", "pet_age"},
	{FieldCustomizable, "personalizable", "customizable"},
	{FieldCustomizationInstructions, "instrucciones_personalizacion", "customization_instructions"},
	{FieldAvailableQuantity, "cantidad_disponible", "available_quantity"},
	{FieldActive, "activo", "active"},
	{FieldFeatured, "destacado", "featured"},
}

var fieldsByKey = func() map[string]fieldDef {
	m := make(map[string]fieldDef, len(fieldDefs))
	for _, def := range fieldDefs {
		m[def.key] = def
	}
	return m
}()

// Header returns the localized spreadsheet header for a logical field.
func Header(key string, locale Locale) string {
	def, ok := fieldsByKey[key]
	if !ok {
		return key
	}
	if locale == LocaleEN {
		return def.en
	}
	return def.es
}

// HeaderCandidates returns the ordered list of header spellings tried when
// looking a field up in a row: the Spanish header, the English header, and
// their capitalized variants. Users edit template headers and mix
// languages; lookup stays tolerant.
func HeaderCandidates(key string) []string {
	def, ok := fieldsByKey[key]
	if !ok {
		return []string{key}
	}
	candidates := []string{def.es}
	if def.en != def.es {
		candidates = append(candidates, def.en)
	}
	candidates = append(candidates, capitalize(def.es))
	if def.en != def.es {
		candidates = append(candidates, capitalize(def.en))
	}
	return candidates
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// TemplateFields returns the ordered list of logical fields for a business
// type's template. The order is a contract for readability of exported
// files only: the row parser looks columns up by name, never by position,
// so templates generated today stay re-importable forever.
func TemplateFields(features businesstype.Features) []string {
	fields := []string{FieldName, FieldPrice, FieldDescription, FieldCategory}

	if features.ShowSku {
		fields = append(fields, FieldSKU)
	}
	if features.ShowBarcode {
		fields = append(fields, FieldBarcode)
	}
	if features.ShowStock {
		fields = append(fields, FieldStock)
	}
	if features.ShowCost {
		fields = append(fields, FieldCost)
	}
	if features.ShowComparePrice {
		fields = append(fields, FieldComparePrice)
	}
	if features.ShowBrand {
		fields = append(fields, FieldBrand)
	}
	if features.ShowTags {
		fields = append(fields, FieldTags)
	}
	if features.ShowShipping {
		fields = append(fields, FieldWeight)
	}
	if features.ShowVariants {
		fields = append(fields,
			FieldVariation1Name, FieldVariation1Options,
			FieldVariation2Name, FieldVariation2Options)
	}
	if features.ShowPrepTime {
		fields = append(fields, FieldPrepTimeMin, FieldPrepTimeMax)
	}
	if features.ShowModifiers {
		fields = append(fields, FieldModifiers)
	}
	if features.ShowServiceDuration {
		fields = append(fields, FieldDurationValue, FieldDurationUnit)
	}
	if features.ShowModel {
		fields = append(fields, FieldModel)
	}
	if features.ShowWarranty {
		fields = append(fields, FieldWarrantyMonths)
	}
	if features.ShowSpecs {
		fields = append(fields, FieldSpecs)
	}
	if features.ShowPetType {
		fields = append(fields, FieldPetType)
	}
	if features.ShowPetAge {
		fields = append(fields, FieldPetAge)
	}
	if features.ShowCustomOrder {
		fields = append(fields, FieldCustomizable, FieldCustomizationInstructions)
	}
	if features.ShowLimitedStock {
		fields = append(fields, FieldAvailableQuantity)
	}

	return append(fields, FieldActive, FieldFeatured)
}

// TemplateColumns returns the ordered, localized column headers for a
// business type's import template.
func TemplateColumns(bt string, locale Locale) []string {
	fields := TemplateFields(businesstype.FeaturesFor(bt))
	columns := make([]string, len(fields))
	for i, key := range fields {
		columns[i] = Header(key, locale)
	}
	return columns
}

// ExampleRow produces one illustrative value per template column, keyed by
// the localized header. The example row doubles as a grammar-conformance
// fixture: every structured-field value round-trips through the cell
// decoders.
func ExampleRow(bt string, locale Locale) map[string]string {
	features := businesstype.FeaturesFor(bt)
	name, category := exampleNameAndCategory(businesstype.Normalize(bt), locale)

	values := map[string]string{
		FieldName:                      name,
		FieldPrice:                     "99.99",
		FieldDescription:               pick(locale, "Descripcion del producto", "Product description"),
		FieldCategory:                  category,
		FieldSKU:                       "SKU-001",
		FieldBarcode:                   "7501234567890",
		FieldStock:                     "100",
		FieldCost:                      "50",
		FieldComparePrice:              "120",
		FieldBrand:                     pick(locale, "Mi Marca", "My Brand"),
		FieldTags:                      pick(locale, "nuevo, oferta", "new, sale"),
		FieldWeight:                    "500",
		FieldVariation1Name:            pick(locale, "Talla", "Size"),
		FieldVariation1Options:         "S, M, L",
		FieldVariation2Name:            "Color",
		FieldVariation2Options:         pick(locale, "Rojo, Azul", "Red, Blue"),
		FieldPrepTimeMin:               "10",
		FieldPrepTimeMax:               "20",
		FieldModifiers:                 pick(locale, "Pan:Brioche|Integral;Extras:Queso:+5|Tocino:+8", "Bread:Brioche|Whole wheat;Extras:Cheese:+5|Bacon:+8"),
		FieldDurationValue:             "45",
		FieldDurationUnit:              "min",
		FieldModel:                     "X-200",
		FieldWarrantyMonths:            "12",
		FieldSpecs:                     pick(locale, "RAM:8GB;Almacenamiento:256GB", "RAM:8GB;Storage:256GB"),
		FieldPetType:                   "dog",
		FieldPetAge:                    "adult",
		FieldCustomizable:              pick(locale, "si", "yes"),
		FieldCustomizationInstructions: pick(locale, "Indica el nombre a grabar", "Specify the name to engrave"),
		FieldAvailableQuantity:         "5",
		FieldActive:                    pick(locale, "si", "yes"),
		FieldFeatured:                  "no",
	}

	row := make(map[string]string)
	for _, key := range TemplateFields(features) {
		row[Header(key, locale)] = values[key]
	}
	return row
}

func exampleNameAndCategory(bt businesstype.Type, locale Locale) (string, string) {
	switch bt {
	case businesstype.TypeFood:
		return pick(locale, "Hamburguesa clasica", "Classic burger"),
			pick(locale, "Hamburguesas", "Burgers")
	case businesstype.TypeFashion:
		return pick(locale, "Vestido floral", "Floral dress"),
			pick(locale, "Vestidos", "Dresses")
	case businesstype.TypeTech:
		return pick(locale, "Audifonos Bluetooth", "Bluetooth headphones"),
			pick(locale, "Audio", "Audio")
	case businesstype.TypePets:
		return pick(locale, "Alimento premium perros", "Premium dog food"),
			pick(locale, "Alimentos", "Food")
	case businesstype.TypeCraft:
		return pick(locale, "Macrame colgante", "Macrame wall hanging"),
			pick(locale, "Decoracion", "Decor")
	case businesstype.TypeCosmetics:
		return pick(locale, "Labial mate rojo", "Red matte lipstick"),
			pick(locale, "Labiales", "Lipsticks")
	case businesstype.TypeGrocery:
		return pick(locale, "Galletas integrales", "Whole grain cookies"),
			pick(locale, "Galletas", "Cookies")
	default:
		return pick(locale, "Producto ejemplo", "Example product"),
			pick(locale, "Categoria ejemplo", "Example category")
	}
}

func pick(locale Locale, es, en string) string {
	if locale == LocaleEN {
		return en
	}
	return es
}

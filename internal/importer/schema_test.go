package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-import-service/internal/businesstype"
)

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, LocaleES, NormalizeLocale(""))
	assert.Equal(t, LocaleES, NormalizeLocale("es"))
	assert.Equal(t, LocaleES, NormalizeLocale("fr"))
	assert.Equal(t, LocaleEN, NormalizeLocale("en"))
	assert.Equal(t, LocaleEN, NormalizeLocale("EN"))
}

func TestTemplateColumnsBaseColumnsFirst(t *testing.T) {
	for _, bt := range businesstype.All() {
		columns := TemplateColumns(string(bt), LocaleES)
		assert.GreaterOrEqual(t, len(columns), 6, "business type %s", bt)
		assert.Equal(t, []string{"nombre", "precio", "descripcion", "categoria"}, columns[:4], "business type %s", bt)
		assert.Equal(t, "activo", columns[len(columns)-2], "business type %s", bt)
		assert.Equal(t, "destacado", columns[len(columns)-1], "business type %s", bt)
	}
}

func TestTemplateColumnsFood(t *testing.T) {
	columns := TemplateColumns("food", LocaleEN)
	assert.Equal(t, []string{
		"name", "price", "description", "category",
		"cost", "tags",
		"prep_time_min", "prep_time_max",
		"modifiers",
		"active", "featured",
	}, columns)
}

func TestTemplateColumnsTechIncludesSpecs(t *testing.T) {
	columns := TemplateColumns("tech", LocaleES)
	assert.Contains(t, columns, "especificaciones")
	assert.Contains(t, columns, "modelo")
	assert.Contains(t, columns, "garantia_meses")
	assert.NotContains(t, columns, "modificadores")
	assert.NotContains(t, columns, "tipo_mascota")
}

func TestTemplateColumnsLegacyAlias(t *testing.T) {
	assert.Equal(t, TemplateColumns("general", LocaleES), TemplateColumns("retail", LocaleES))
	assert.Equal(t, TemplateColumns("food", LocaleES), TemplateColumns("restaurant", LocaleES))
	assert.Equal(t, TemplateColumns("cosmetics", LocaleES), TemplateColumns("beauty", LocaleES))
	assert.Equal(t, TemplateColumns("general", LocaleES), TemplateColumns("space-travel", LocaleES))
}

func TestHeaderCandidates(t *testing.T) {
	assert.Equal(t, []string{"nombre", "name", "Nombre", "Name"}, HeaderCandidates(FieldName))
	// Identical spellings collapse.
	assert.Equal(t, []string{"sku", "Sku"}, HeaderCandidates(FieldSKU))
}

func TestExampleRowMatchesColumns(t *testing.T) {
	for _, bt := range businesstype.All() {
		for _, locale := range []Locale{LocaleES, LocaleEN} {
			columns := TemplateColumns(string(bt), locale)
			example := ExampleRow(string(bt), locale)
			assert.Len(t, example, len(columns), "business type %s locale %s", bt, locale)
			for _, column := range columns {
				assert.NotEmpty(t, example[column], "business type %s locale %s column %s", bt, locale, column)
			}
		}
	}
}

func TestExampleRowParses(t *testing.T) {
	// The example row shipped in every template must survive its own
	// parser without errors.
	for _, bt := range businesstype.All() {
		for _, locale := range []Locale{LocaleES, LocaleEN} {
			features := businesstype.FeaturesFor(string(bt))
			example := ExampleRow(string(bt), locale)
			record, rowErr := ParseRow(example, 2, features, testIDs())
			assert.Nil(t, rowErr, "business type %s locale %s", bt, locale)
			assert.NotEmpty(t, record.Name)
			assert.Equal(t, 99.99, record.Price)
			if features.ShowModifiers {
				assert.Len(t, record.ModifierGroups, 2)
			}
			if features.ShowVariants {
				assert.Len(t, record.Variations, 2)
			}
			if features.ShowSpecs {
				assert.Len(t, record.Specs, 2)
			}
		}
	}
}

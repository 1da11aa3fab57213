package businesstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, TypeFood, Normalize("food"))
	assert.Equal(t, TypeGeneral, Normalize(""))
	assert.Equal(t, TypeGeneral, Normalize("space-travel"))
}

func TestNormalizeLegacyAliases(t *testing.T) {
	assert.Equal(t, TypeGeneral, Normalize("retail"))
	assert.Equal(t, TypeFood, Normalize("restaurant"))
	assert.Equal(t, TypeGeneral, Normalize("services"))
	assert.Equal(t, TypeGeneral, Normalize("other"))
	assert.Equal(t, TypeCosmetics, Normalize("beauty"))
}

func TestFeaturesFor(t *testing.T) {
	food := FeaturesFor("food")
	assert.True(t, food.ShowModifiers)
	assert.True(t, food.ShowPrepTime)
	assert.False(t, food.ShowVariants)
	assert.False(t, food.ShowSku)

	fashion := FeaturesFor("fashion")
	assert.True(t, fashion.ShowVariants)
	assert.False(t, fashion.ShowModifiers)

	tech := FeaturesFor("tech")
	assert.True(t, tech.ShowSpecs)
	assert.True(t, tech.ShowModel)
	assert.True(t, tech.ShowWarranty)
	assert.True(t, tech.ShowBarcode)

	pets := FeaturesFor("pets")
	assert.True(t, pets.ShowPetType)
	assert.True(t, pets.ShowPetAge)
	assert.True(t, pets.ShowVariants)

	craft := FeaturesFor("craft")
	assert.True(t, craft.ShowCustomOrder)
	assert.True(t, craft.ShowLimitedStock)
	assert.False(t, craft.ShowSku)
}

func TestFeaturesForUnknownFallsBackToGeneral(t *testing.T) {
	general := FeaturesFor("general")
	assert.Equal(t, general, FeaturesFor("unknown"))
	assert.Equal(t, general, FeaturesFor(""))

	// General keeps generic commerce fields on and every business-type
	// specific field off.
	assert.True(t, general.ShowSku)
	assert.True(t, general.ShowStock)
	assert.False(t, general.ShowModifiers)
	assert.False(t, general.ShowPetType)
	assert.False(t, general.ShowSpecs)
	assert.False(t, general.ShowCustomOrder)
}

func TestAllCoversCatalog(t *testing.T) {
	all := All()
	assert.Len(t, all, len(catalog))
	for _, bt := range all {
		_, ok := catalog[bt]
		assert.True(t, ok, "type %s", bt)
	}
}

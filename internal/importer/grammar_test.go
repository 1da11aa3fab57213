package importer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-import-service/internal/models"
)

// testIDs returns a deterministic id generator.
func testIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestDecodeVariation(t *testing.T) {
	v, ok := DecodeVariation("Talla", "S, M, L", testIDs())
	assert.True(t, ok)
	assert.Equal(t, "Talla", v.Name)
	assert.Len(t, v.Options, 3)
	assert.Equal(t, "S", v.Options[0].Value)
	assert.Equal(t, "M", v.Options[1].Value)
	assert.Equal(t, "L", v.Options[2].Value)
	for _, opt := range v.Options {
		assert.True(t, opt.Available)
		assert.NotEmpty(t, opt.ID)
	}
}

func TestDecodeVariationRequiresNameAndOptions(t *testing.T) {
	_, ok := DecodeVariation("", "S, M", testIDs())
	assert.False(t, ok)

	_, ok = DecodeVariation("Talla", "", testIDs())
	assert.False(t, ok)

	_, ok = DecodeVariation("Talla", " , , ", testIDs())
	assert.False(t, ok)
}

func TestDecodeVariationDropsEmptyOptions(t *testing.T) {
	v, ok := DecodeVariation("Color", "Rojo,, Azul ,", testIDs())
	assert.True(t, ok)
	assert.Len(t, v.Options, 2)
	assert.Equal(t, "Rojo", v.Options[0].Value)
	assert.Equal(t, "Azul", v.Options[1].Value)
}

func TestDecodeModifierGroups(t *testing.T) {
	groups := DecodeModifierGroups("Bread:Brioche|Whole wheat;Extras:Cheese:+5|Bacon:+8", testIDs())

	assert.Len(t, groups, 2)

	bread := groups[0]
	assert.Equal(t, "Bread", bread.Name)
	assert.Len(t, bread.Options, 2)
	assert.Equal(t, "Brioche", bread.Options[0].Name)
	assert.Equal(t, 0.0, bread.Options[0].Price)
	assert.Equal(t, "Whole wheat", bread.Options[1].Name)
	assert.Equal(t, 0.0, bread.Options[1].Price)
	assert.False(t, bread.Required)
	assert.Equal(t, 0, bread.MinSelect)
	assert.Equal(t, 2, bread.MaxSelect)

	extras := groups[1]
	assert.Equal(t, "Extras", extras.Name)
	assert.Len(t, extras.Options, 2)
	assert.Equal(t, "Cheese", extras.Options[0].Name)
	assert.Equal(t, 5.0, extras.Options[0].Price)
	assert.Equal(t, "Bacon", extras.Options[1].Name)
	assert.Equal(t, 8.0, extras.Options[1].Price)
}

func TestDecodeModifierGroupsDropsEmptyGroups(t *testing.T) {
	groups := DecodeModifierGroups("Bread:;Extras:Cheese:+5", testIDs())

	assert.Len(t, groups, 1)
	assert.Equal(t, "Extras", groups[0].Name)
}

func TestDecodeModifierGroupsTolerance(t *testing.T) {
	// Unparseable price defaults to 0, not an error.
	groups := DecodeModifierGroups("Extras:Cheese:abc", testIDs())
	assert.Len(t, groups, 1)
	assert.Equal(t, 0.0, groups[0].Options[0].Price)

	// A fragment without a colon is not a group.
	groups = DecodeModifierGroups("Just a note", testIDs())
	assert.Empty(t, groups)

	// Empty cell yields nothing.
	assert.Empty(t, DecodeModifierGroups("", testIDs()))

	// Options with empty names are dropped.
	groups = DecodeModifierGroups("Extras:|Cheese:+5", testIDs())
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Options, 1)
	assert.Equal(t, "Cheese", groups[0].Options[0].Name)

	// Price fragment without the plus sign still parses.
	groups = DecodeModifierGroups("Extras:Cheese:5", testIDs())
	assert.Equal(t, 5.0, groups[0].Options[0].Price)
}

func TestModifierGroupsRoundTrip(t *testing.T) {
	cell := "Bread:Brioche|Whole wheat;Extras:Cheese:+5|Bacon:+8"
	groups := DecodeModifierGroups(cell, testIDs())
	encoded := EncodeModifierGroups(groups)
	assert.Equal(t, cell, encoded)

	again := DecodeModifierGroups(encoded, testIDs())
	assert.Equal(t, len(groups), len(again))
	for i := range groups {
		assert.Equal(t, groups[i].Name, again[i].Name)
		assert.Equal(t, len(groups[i].Options), len(again[i].Options))
		for j := range groups[i].Options {
			assert.Equal(t, groups[i].Options[j].Name, again[i].Options[j].Name)
			assert.Equal(t, groups[i].Options[j].Price, again[i].Options[j].Price)
		}
	}
}

func TestDecodeSpecs(t *testing.T) {
	specs := DecodeSpecs("RAM:8GB;Storage:256GB")
	assert.Equal(t, []models.SpecEntry{
		{Key: "RAM", Value: "8GB"},
		{Key: "Storage", Value: "256GB"},
	}, specs)
}

func TestDecodeSpecsKeepsColonsInValues(t *testing.T) {
	specs := DecodeSpecs("Ratio:16:9")
	assert.Equal(t, []models.SpecEntry{{Key: "Ratio", Value: "16:9"}}, specs)
}

func TestDecodeSpecsDropsIncompleteEntries(t *testing.T) {
	specs := DecodeSpecs("RAM:8GB;NoValue:;:orphan;loose")
	assert.Equal(t, []models.SpecEntry{{Key: "RAM", Value: "8GB"}}, specs)
}

func TestSpecsRoundTrip(t *testing.T) {
	cell := "RAM:8GB;Storage:256GB"
	assert.Equal(t, cell, EncodeSpecs(DecodeSpecs(cell)))
}

func TestEncodeVariationOptions(t *testing.T) {
	v, ok := DecodeVariation("Talla", "S, M, L", testIDs())
	assert.True(t, ok)
	assert.Equal(t, "S, M, L", EncodeVariationOptions(v))
}

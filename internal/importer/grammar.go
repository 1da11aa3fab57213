package importer

import (
	"strconv"
	"strings"

	"catalog-import-service/internal/models"
)

// IDFunc supplies fresh ids for variations, options and modifier groups.
// Production code injects uuid.NewString; tests inject a counter. The ids
// are only used as local object keys, never compared against external
// systems.
type IDFunc func() string

// The cell grammars below are de facto interchange formats: decoders are
// total, never fail a whole cell for one malformed fragment, and ignore
// unknown trailing segments so files written by future template versions
// stay parseable.

// DecodeVariation builds one variation axis from its name and
// comma-separated options cells. Both a non-empty name and at least one
// non-empty option are required; otherwise the axis is dropped without
// error.
func DecodeVariation(name, options string, newID IDFunc) (models.Variation, bool) {
	name = strings.TrimSpace(name)
	var opts []models.VariationOption
	for _, raw := range strings.Split(options, ",") {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		opts = append(opts, models.VariationOption{
			ID:        newID(),
			Value:     value,
			Available: true,
		})
	}
	if name == "" || len(opts) == 0 {
		return models.Variation{}, false
	}
	return models.Variation{ID: newID(), Name: name, Options: opts}, true
}

// EncodeVariationOptions serializes a variation's option values for a
// template cell.
func EncodeVariationOptions(v models.Variation) string {
	values := make([]string, 0, len(v.Options))
	for _, opt := range v.Options {
		values = append(values, opt.Value)
	}
	return strings.Join(values, ", ")
}

// DecodeModifierGroups parses the modifier cell grammar
// Group1:OptA|OptB:+5;Group2:OptC. Groups split on ';', the group name is
// everything before the first ':', options split on '|', and an option's
// trailing ':<price>' fragment is optional (leading '+' stripped,
// unparseable prices default to 0). Options with empty names and groups
// with no surviving options are dropped.
func DecodeModifierGroups(cell string, newID IDFunc) []models.ModifierGroup {
	var groups []models.ModifierGroup
	for _, fragment := range strings.Split(cell, ";") {
		parts := strings.SplitN(fragment, ":", 2)
		if len(parts) < 2 {
			// No options at all for this group.
			continue
		}
		groupName := strings.TrimSpace(parts[0])
		if groupName == "" {
			continue
		}

		var options []models.ModifierOption
		for _, optFragment := range strings.Split(parts[1], "|") {
			optParts := strings.Split(optFragment, ":")
			optName := strings.TrimSpace(optParts[0])
			if optName == "" {
				continue
			}
			price := 0.0
			if len(optParts) > 1 {
				priceFragment := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(optParts[1]), "+"))
				if parsed, err := strconv.ParseFloat(priceFragment, 64); err == nil {
					price = parsed
				}
			}
			options = append(options, models.ModifierOption{
				ID:        newID(),
				Name:      optName,
				Price:     price,
				Available: true,
			})
		}
		if len(options) == 0 {
			continue
		}

		groups = append(groups, models.ModifierGroup{
			ID:        newID(),
			Name:      groupName,
			Required:  false,
			MinSelect: 0,
			MaxSelect: len(options),
			Options:   options,
		})
	}
	return groups
}

// EncodeModifierGroups serializes modifier groups back into the canonical
// Group:Opt1|Opt2:+price;... form. Free options omit the price fragment.
func EncodeModifierGroups(groups []models.ModifierGroup) string {
	fragments := make([]string, 0, len(groups))
	for _, group := range groups {
		opts := make([]string, 0, len(group.Options))
		for _, opt := range group.Options {
			if opt.Price != 0 {
				opts = append(opts, opt.Name+":+"+strconv.FormatFloat(opt.Price, 'f', -1, 64))
			} else {
				opts = append(opts, opt.Name)
			}
		}
		if len(opts) == 0 {
			continue
		}
		fragments = append(fragments, group.Name+":"+strings.Join(opts, "|"))
	}
	return strings.Join(fragments, ";")
}

// DecodeSpecs parses the Key1:Value1;Key2:Value2 spec cell grammar. The
// value is everything after the first colon, so values containing colons
// survive. Entries missing either part are dropped.
func DecodeSpecs(cell string) []models.SpecEntry {
	var specs []models.SpecEntry
	for _, fragment := range strings.Split(cell, ";") {
		parts := strings.SplitN(fragment, ":", 2)
		if len(parts) < 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" || value == "" {
			continue
		}
		specs = append(specs, models.SpecEntry{Key: key, Value: value})
	}
	return specs
}

// EncodeSpecs serializes spec entries into the Key:Value;Key:Value form.
func EncodeSpecs(specs []models.SpecEntry) string {
	fragments := make([]string, 0, len(specs))
	for _, spec := range specs {
		fragments = append(fragments, spec.Key+":"+spec.Value)
	}
	return strings.Join(fragments, ";")
}

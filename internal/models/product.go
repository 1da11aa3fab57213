package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PetType is the fixed enumeration for pet-oriented catalogs.
type PetType string

const (
	PetTypeDog   PetType = "dog"
	PetTypeCat   PetType = "cat"
	PetTypeBird  PetType = "bird"
	PetTypeFish  PetType = "fish"
	PetTypeSmall PetType = "small"
	PetTypeOther PetType = "other"
)

// PetAge is the fixed enumeration for pet life stages.
type PetAge string

const (
	PetAgePuppy  PetAge = "puppy"
	PetAgeAdult  PetAge = "adult"
	PetAgeSenior PetAge = "senior"
	PetAgeAll    PetAge = "all"
)

// DurationUnit is the unit for service durations.
type DurationUnit string

const (
	DurationMinutes DurationUnit = "min"
	DurationHours   DurationUnit = "hr"
)

// VariationOption is one selectable value on a variation axis.
type VariationOption struct {
	ID        string `json:"id"`
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

// Variation is one dimension of product variants (e.g. "Size") with its
// enumerated option list. A product carries at most two.
type Variation struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Options []VariationOption `json:"options"`
}

// ModifierOption is a priced add-on inside a modifier group.
type ModifierOption struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// ModifierGroup is a named set of optional priced add-ons attachable to a
// product (e.g. "Extras: Cheese +5").
type ModifierGroup struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Required  bool             `json:"required"`
	MinSelect int              `json:"minSelect"`
	MaxSelect int              `json:"maxSelect"`
	Options   []ModifierOption `json:"options"`
}

// SpecEntry is one key/value row in a technical specifications table.
type SpecEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StringList is a JSONB-backed string slice (tags).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// VariationList is a JSONB-backed variation slice.
type VariationList []Variation

func (l VariationList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *VariationList) Scan(value interface{}) error {
	if value == nil {
		*l = make(VariationList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// ModifierGroupList is a JSONB-backed modifier group slice.
type ModifierGroupList []ModifierGroup

func (l ModifierGroupList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *ModifierGroupList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ModifierGroupList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// SpecList is a JSONB-backed spec entry slice.
type SpecList []SpecEntry

func (l SpecList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *SpecList) Scan(value interface{}) error {
	if value == nil {
		*l = make(SpecList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Product represents a storefront catalog product.
// Composite tenant indexes follow the multi-tenant query pattern: every
// read is scoped by tenant_id first.
type Product struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID     string     `json:"tenantId" gorm:"not null;index:idx_products_tenant_id;index:idx_products_tenant_slug,unique;index:idx_products_tenant_category"`
	CategoryID   *uuid.UUID `json:"categoryId,omitempty" gorm:"index:idx_products_tenant_category"`
	Name         string     `json:"name" gorm:"not null"`
	Slug         string     `json:"slug" gorm:"not null;index:idx_products_tenant_slug,unique"`
	Description  *string    `json:"description,omitempty"`
	Price        float64    `json:"price" gorm:"not null"`
	ComparePrice *float64   `json:"comparePrice,omitempty"`
	Cost         *float64   `json:"cost,omitempty"`
	SKU          *string    `json:"sku,omitempty" gorm:"column:sku;index"`
	Barcode      *string    `json:"barcode,omitempty"`
	Stock        *int       `json:"stock,omitempty"`
	TrackStock   bool       `json:"trackStock" gorm:"default:false"`
	Brand        *string    `json:"brand,omitempty"`
	Tags         StringList `json:"tags" gorm:"type:jsonb"`
	Weight       *float64   `json:"weight,omitempty"`
	Active       bool       `json:"active" gorm:"default:true"`
	Featured     bool       `json:"featured" gorm:"default:false"`

	// Business-type specific fields; only populated when the tenant's
	// business type enables them.
	Variations                *VariationList     `json:"variations,omitempty" gorm:"type:jsonb"`
	ModifierGroups            *ModifierGroupList `json:"modifierGroups,omitempty" gorm:"type:jsonb"`
	Specs                     *SpecList          `json:"specs,omitempty" gorm:"type:jsonb"`
	PrepTimeMin               *int               `json:"prepTimeMin,omitempty"`
	PrepTimeMax               *int               `json:"prepTimeMax,omitempty"`
	DurationValue             *int               `json:"durationValue,omitempty"`
	DurationUnit              *DurationUnit      `json:"durationUnit,omitempty"`
	Model                     *string            `json:"model,omitempty" gorm:"column:model"`
	WarrantyMonths            *int               `json:"warrantyMonths,omitempty"`
	PetType                   *PetType           `json:"petType,omitempty"`
	PetAge                    *PetAge            `json:"petAge,omitempty"`
	Customizable              *bool              `json:"customizable,omitempty"`
	CustomizationInstructions *string            `json:"customizationInstructions,omitempty"`
	AvailableQuantity         *int               `json:"availableQuantity,omitempty"`

	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Category represents a product category within a store.
type Category struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID  string          `json:"tenantId" gorm:"not null;index;uniqueIndex:idx_categories_tenant_slug"`
	Name      string          `json:"name" gorm:"not null"`
	Slug      string          `json:"slug" gorm:"not null;uniqueIndex:idx_categories_tenant_slug"`
	Order     int             `json:"order" gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

// Error represents error details
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

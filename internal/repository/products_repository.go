package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"catalog-import-service/internal/models"
)

type ProductsRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewProductsRepository(db *gorm.DB, redisClient *redis.Client) *ProductsRepository {
	return &ProductsRepository{db: db, redis: redisClient}
}

// ProductListParams narrows storefront product listings.
type ProductListParams struct {
	CategoryID *uuid.UUID
	ActiveOnly bool
	Featured   *bool
	Search     string
	Limit      int
	Offset     int
}

// CreateProduct inserts a product for a tenant. Slug collisions within the
// tenant get a short ID suffix so a second "Red Mug" still imports.
func (r *ProductsRepository) CreateProduct(ctx context.Context, tenantID string, product *models.Product) error {
	product.TenantID = tenantID
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	var count int64
	r.db.WithContext(ctx).Model(&models.Product{}).
		Where("tenant_id = ? AND slug = ?", tenantID, product.Slug).
		Count(&count)
	if count > 0 {
		product.Slug = fmt.Sprintf("%s-%s", product.Slug, product.ID.String()[:8])
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// ListProducts returns a tenant's products with optional filters, newest
// first, along with the unfiltered-match total for pagination.
func (r *ProductsRepository) ListProducts(ctx context.Context, tenantID string, params ProductListParams) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("tenant_id = ?", tenantID)

	if params.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}
	if params.Featured != nil {
		query = query.Where("featured = ?", *params.Featured)
	}
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

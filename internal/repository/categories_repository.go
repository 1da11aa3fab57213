package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"catalog-import-service/internal/models"
)

// Categories rarely change outside of imports, so the list cache can be
// generous.
const CategoryListCacheTTL = 30 * time.Minute

type CategoriesRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewCategoriesRepository(db *gorm.DB, redisClient *redis.Client) *CategoriesRepository {
	return &CategoriesRepository{db: db, redis: redisClient}
}

func categoryListCacheKey(tenantID string) string {
	return fmt.Sprintf("catalog:categories:%s", tenantID)
}

// ListCategories returns all categories for a tenant ordered by sort
// position, serving from Redis when a fresh copy exists.
func (r *CategoriesRepository) ListCategories(ctx context.Context, tenantID string) ([]models.Category, error) {
	cacheKey := categoryListCacheKey(tenantID)

	if r.redis != nil {
		if cached, err := r.redis.Get(ctx, cacheKey).Result(); err == nil {
			var categories []models.Category
			if err := json.Unmarshal([]byte(cached), &categories); err == nil {
				return categories, nil
			}
		}
	}

	var categories []models.Category
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if r.redis != nil {
		if data, err := json.Marshal(categories); err == nil {
			r.redis.Set(ctx, cacheKey, data, CategoryListCacheTTL)
		}
	}

	return categories, nil
}

// CreateCategory inserts a category for a tenant and invalidates the
// tenant's category list cache.
func (r *CategoriesRepository) CreateCategory(ctx context.Context, tenantID string, category *models.Category) error {
	category.TenantID = tenantID
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	if r.redis != nil {
		r.redis.Del(ctx, categoryListCacheKey(tenantID))
	}

	return nil
}

// GetCategoryBySlug fetches a single category scoped to a tenant.
func (r *CategoriesRepository) GetCategoryBySlug(ctx context.Context, tenantID, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND slug = ?", tenantID, slug).
		First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

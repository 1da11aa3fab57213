package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"catalog-import-service/internal/middleware"
	"catalog-import-service/internal/models"
	"catalog-import-service/internal/repository"
)

type CatalogHandler struct {
	categoriesRepo  *repository.CategoriesRepository
	productsRepo    *repository.ProductsRepository
	logger          *logrus.Logger
	defaultPageSize int
	maxPageSize     int
}

func NewCatalogHandler(categoriesRepo *repository.CategoriesRepository, productsRepo *repository.ProductsRepository, logger *logrus.Logger, defaultPageSize, maxPageSize int) *CatalogHandler {
	return &CatalogHandler{
		categoriesRepo:  categoriesRepo,
		productsRepo:    productsRepo,
		logger:          logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// GetProducts returns storefront products for a tenant with pagination
// @Summary Get products
// @Description Get active products for the storefront with optional category, featured and search filters
// @Tags Storefront
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Param categoryId query string false "Filter by category id"
// @Param featured query bool false "Only featured products"
// @Param search query string false "Search in name and description"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /storefront/products [get]
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > h.maxPageSize {
		limit = h.defaultPageSize
	}

	params := repository.ProductListParams{
		ActiveOnly: true,
		Search:     c.Query("search"),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}
	if raw := c.Query("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "INVALID_CATEGORY_ID",
					Message: "categoryId must be a valid UUID",
				},
			})
			return
		}
		params.CategoryID = &categoryID
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true"
		params.Featured = &featured
	}

	products, total, err := h.productsRepo.ListProducts(c.Request.Context(), tenantID, params)
	if err != nil {
		h.logger.WithError(err).WithField("tenant_id", tenantID).Error("Failed to list products")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FETCH_FAILED",
				Message: "Failed to retrieve products",
			},
		})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetCategories returns all storefront categories for a tenant
// @Summary Get categories
// @Description Get the tenant's categories ordered by sort position
// @Tags Storefront
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /storefront/categories [get]
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)

	categories, err := h.categoriesRepo.ListCategories(c.Request.Context(), tenantID)
	if err != nil {
		h.logger.WithError(err).WithField("tenant_id", tenantID).Error("Failed to list categories")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FETCH_FAILED",
				Message: "Failed to retrieve categories",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}

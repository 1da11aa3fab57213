package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"catalog-import-service/internal/businesstype"
	"catalog-import-service/internal/events"
	"catalog-import-service/internal/importer"
	"catalog-import-service/internal/middleware"
	"catalog-import-service/internal/models"
	"catalog-import-service/internal/repository"
)

type ImportHandler struct {
	categoriesRepo *repository.CategoriesRepository
	productsRepo   *repository.ProductsRepository
	publisher      *events.Publisher
	logger         *logrus.Logger
	maxRows        int
}

func NewImportHandler(categoriesRepo *repository.CategoriesRepository, productsRepo *repository.ProductsRepository, publisher *events.Publisher, logger *logrus.Logger, maxRows int) *ImportHandler {
	return &ImportHandler{
		categoriesRepo: categoriesRepo,
		productsRepo:   productsRepo,
		publisher:      publisher,
		logger:         logger,
		maxRows:        maxRows,
	}
}

// GetImportTemplate generates and downloads an import template
// @Summary Get import template
// @Description Download a CSV or Excel import template tailored to the store's business type
// @Tags Import
// @Produce octet-stream
// @Param format query string false "Template format: csv or xlsx" default(xlsx)
// @Param businessType query string false "Business type" default(general)
// @Param locale query string false "Column header language: es or en" default(es)
// @Success 200
// @Failure 500 {object} models.ErrorResponse
// @Router /products/import/template [get]
func (h *ImportHandler) GetImportTemplate(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	bt := c.DefaultQuery("businessType", "general")
	locale := importer.NormalizeLocale(c.Query("locale"))

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", "attachment; filename=products_import_template.csv")
		if err := importer.WriteCSVTemplate(c.Writer, bt, locale); err != nil {
			h.logger.WithError(err).Error("Failed to write CSV template")
		}
	case "xlsx":
		f, err := importer.BuildTemplate(bt, locale)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "TEMPLATE_FAILED",
					Message: "Failed to generate template",
				},
			})
			return
		}
		defer f.Close()

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=products_import_template.xlsx")
		f.Write(c.Writer)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "INVALID_FORMAT",
				Message: "Format must be csv or xlsx",
			},
		})
	}
}

// ImportProducts imports products from an uploaded CSV or Excel file
// @Summary Import products
// @Description Parse an uploaded spreadsheet and ingest its products, creating referenced categories on the fly
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Param businessType formData string false "Business type" default(general)
// @Success 200 {object} models.ImportResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /products/import [post]
func (h *ImportHandler) ImportProducts(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	startTime := time.Now()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FILE_REQUIRED",
				Message: "Please upload a CSV or Excel file",
			},
		})
		return
	}
	defer file.Close()

	features := businesstype.FeaturesFor(c.DefaultPostForm("businessType", "general"))

	filename := strings.ToLower(header.Filename)
	var rows []importer.Row
	var parseErr error
	switch {
	case strings.HasSuffix(filename, ".csv"):
		rows, parseErr = importer.ParseCSV(file)
	case strings.HasSuffix(filename, ".xlsx"):
		rows, parseErr = importer.ParseXLSX(file)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "INVALID_FORMAT",
				Message: "Only CSV and XLSX files are supported",
			},
		})
		return
	}

	if parseErr != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "PARSE_ERROR",
				Message: parseErr.Error(),
			},
		})
		return
	}

	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "EMPTY_FILE",
				Message: "The file contains no data rows",
			},
		})
		return
	}

	if h.maxRows > 0 && len(rows) > h.maxRows {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "TOO_MANY_ROWS",
				Message: fmt.Sprintf("File exceeds the maximum of %d rows per import", h.maxRows),
			},
		})
		return
	}

	var records []models.ImportRecord
	var rowErrors []models.RowError
	for _, row := range rows {
		record, rowErr := importer.ParseRow(row.Cells, row.Number, features, uuid.NewString)
		if rowErr != nil {
			rowErrors = append(rowErrors, *rowErr)
			continue
		}
		records = append(records, *record)
	}

	if len(records) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NO_VALID_ROWS",
				"message": "No valid rows found in the file",
			},
			"rowErrors": rowErrors,
		})
		return
	}

	existing, err := h.categoriesRepo.ListCategories(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FETCH_FAILED",
				Message: "Failed to load existing categories",
			},
		})
		return
	}

	store := &publishingProductStore{repo: h.productsRepo, publisher: h.publisher}
	pipeline := importer.NewPipeline(h.categoriesRepo, store, h.logger)
	result, runErr := pipeline.Run(c.Request.Context(), tenantID, records, existing)
	if runErr != nil {
		h.logger.WithError(runErr).WithField("tenant_id", tenantID).Warn("Import cancelled before completion")
	}

	if h.publisher != nil && h.publisher.IsConnected() {
		failed := result.TotalCount - result.SuccessCount
		h.publisher.PublishImportCompleted(tenantID, len(rows), result.SuccessCount, failed, result.CategoriesCreated)
	}

	h.logger.WithFields(logrus.Fields{
		"tenant_id":          tenantID,
		"total_rows":         len(rows),
		"parsed":             len(records),
		"imported":           result.SuccessCount,
		"categories_created": result.CategoriesCreated,
		"row_errors":         len(rowErrors),
		"import_errors":      len(result.Errors),
	}).Info("Product import completed")

	c.JSON(http.StatusOK, models.ImportResponse{
		Success:           result.SuccessCount > 0,
		TotalRows:         len(rows),
		ParsedCount:       len(records),
		SuccessCount:      result.SuccessCount,
		CategoriesCreated: result.CategoriesCreated,
		RowErrors:         rowErrors,
		ImportErrors:      result.Errors,
		ProcessingMs:      time.Since(startTime).Milliseconds(),
	})
}

// ExportProducts exports a store's full catalog as an Excel workbook
// @Summary Export products
// @Description Download the tenant's catalog in the import template layout, so the file can be edited and re-imported
// @Tags Import
// @Produce octet-stream
// @Param businessType query string false "Business type" default(general)
// @Param locale query string false "Column header language: es or en" default(es)
// @Success 200
// @Failure 500 {object} models.ErrorResponse
// @Router /products/export [post]
func (h *ImportHandler) ExportProducts(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	bt := c.DefaultQuery("businessType", "general")
	locale := importer.NormalizeLocale(c.Query("locale"))

	products, _, err := h.productsRepo.ListProducts(c.Request.Context(), tenantID, repository.ProductListParams{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FETCH_FAILED",
				Message: "Failed to load products",
			},
		})
		return
	}

	categories, err := h.categoriesRepo.ListCategories(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FETCH_FAILED",
				Message: "Failed to load categories",
			},
		})
		return
	}

	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID.String()] = category.Name
	}

	f, err := importer.BuildExport(bt, locale, products, categoryNames)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "EXPORT_FAILED",
				Message: "Failed to generate export file",
			},
		})
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=products_export.xlsx")
	f.Write(c.Writer)
}

// publishingProductStore wraps the products repository so each successful
// write also publishes a product.imported event.
type publishingProductStore struct {
	repo      *repository.ProductsRepository
	publisher *events.Publisher
}

func (s *publishingProductStore) CreateProduct(ctx context.Context, tenantID string, product *models.Product) error {
	if err := s.repo.CreateProduct(ctx, tenantID, product); err != nil {
		return err
	}
	if s.publisher != nil && s.publisher.IsConnected() {
		categoryID := ""
		if product.CategoryID != nil {
			categoryID = product.CategoryID.String()
		}
		s.publisher.PublishProductImported(tenantID, product.ID.String(), product.Name, categoryID)
	}
	return nil
}

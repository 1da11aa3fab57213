package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"catalog-import-service/internal/middleware"
)

func setupRouter(handler *ImportHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.TenantMiddleware())
	api.GET("/products/import/template", handler.GetImportTemplate)
	api.POST("/products/import", handler.ImportProducts)
	return router
}

func newTestHandler() *ImportHandler {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewImportHandler(nil, nil, nil, logger, 0)
}

func TestGetImportTemplateCSV(t *testing.T) {
	router := setupRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/import/template?format=csv&businessType=food&locale=en", nil)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products_import_template.csv")

	records, err := csv.NewReader(w.Body).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "name", records[0][0])
	assert.Equal(t, "price", records[0][1])
	assert.Contains(t, records[0], "modifiers")
	assert.NotContains(t, records[0], "sku")
}

func TestGetImportTemplateXLSX(t *testing.T) {
	router := setupRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/import/template?businessType=tech", nil)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}

func TestGetImportTemplateRejectsUnknownFormat(t *testing.T) {
	router := setupRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/import/template?format=pdf", nil)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_FORMAT")
}

func TestImportRequiresTenant(t *testing.T) {
	router := setupRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TENANT_REQUIRED")
}

func TestImportRequiresFile(t *testing.T) {
	router := setupRouter(newTestHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", nil)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "FILE_REQUIRED")
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestImportRejectsUnsupportedExtension(t *testing.T) {
	router := setupRouter(newTestHandler())

	body, contentType := multipartUpload(t, "products.pdf", "not a spreadsheet")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_FORMAT")
}

func TestImportEmptyFile(t *testing.T) {
	router := setupRouter(newTestHandler())

	body, contentType := multipartUpload(t, "products.csv", "name,price\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "EMPTY_FILE")
}

func TestImportAllRowsInvalid(t *testing.T) {
	router := setupRouter(newTestHandler())

	body, contentType := multipartUpload(t, "products.csv", strings.Join([]string{
		"name,price",
		",10",
		"Mug,not-a-price",
	}, "\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
		RowErrors []struct {
			Row     int    `json:"row"`
			Message string `json:"message"`
		} `json:"rowErrors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "NO_VALID_ROWS", response.Error.Code)
	assert.Len(t, response.RowErrors, 2)
	assert.Equal(t, 2, response.RowErrors[0].Row)
	assert.Equal(t, "name is required", response.RowErrors[0].Message)
	assert.Equal(t, 3, response.RowErrors[1].Row)
	assert.Equal(t, "price must be a valid number", response.RowErrors[1].Message)
}

func TestImportTooManyRows(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	handler := NewImportHandler(nil, nil, nil, logger, 2)
	router := setupRouter(handler)

	body, contentType := multipartUpload(t, "products.csv", strings.Join([]string{
		"name,price",
		"A,1",
		"B,2",
		"C,3",
	}, "\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "TOO_MANY_ROWS")
}

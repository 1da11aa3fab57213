package events

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// Event subjects
const (
	ProductImported = "product.imported"
	ImportCompleted = "catalog.import.completed"
)

// ProductImportedEvent is published once per product that an import run
// persists. Downstream services (search indexing, storefront cache warmers)
// consume it.
type ProductImportedEvent struct {
	EventType   string    `json:"event_type"`
	TenantID    string    `json:"tenant_id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	CategoryID  string    `json:"category_id,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// ImportCompletedEvent summarizes a finished import run.
type ImportCompletedEvent struct {
	EventType         string    `json:"event_type"`
	TenantID          string    `json:"tenant_id"`
	TotalRows         int       `json:"total_rows"`
	SuccessCount      int       `json:"success_count"`
	FailedCount       int       `json:"failed_count"`
	CategoriesCreated int       `json:"categories_created"`
	Timestamp         time.Time `json:"timestamp"`
}

// Publisher publishes import lifecycle events to NATS. Publishing is
// best-effort: a dead broker never fails an import.
type Publisher struct {
	conn   *nats.Conn
	logger *logrus.Entry
}

// NewPublisher connects to NATS using NATS_URL.
func NewPublisher(logger *logrus.Logger) (*Publisher, error) {
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		return nil, fmt.Errorf("NATS_URL not set")
	}

	conn, err := nats.Connect(natsURL,
		nats.Name("catalog-import-service"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		conn:   conn,
		logger: logger.WithField("component", "events.publisher"),
	}, nil
}

// PublishProductImported publishes a product.imported event.
func (p *Publisher) PublishProductImported(tenantID, productID, productName, categoryID string) {
	event := ProductImportedEvent{
		EventType:   ProductImported,
		TenantID:    tenantID,
		ProductID:   productID,
		ProductName: productName,
		CategoryID:  categoryID,
		Timestamp:   time.Now().UTC(),
	}
	p.publish(ProductImported, event)
}

// PublishImportCompleted publishes the end-of-run summary event.
func (p *Publisher) PublishImportCompleted(tenantID string, totalRows, successCount, failedCount, categoriesCreated int) {
	event := ImportCompletedEvent{
		EventType:         ImportCompleted,
		TenantID:          tenantID,
		TotalRows:         totalRows,
		SuccessCount:      successCount,
		FailedCount:       failedCount,
		CategoriesCreated: categoriesCreated,
		Timestamp:         time.Now().UTC(),
	}
	p.publish(ImportCompleted, event)
}

func (p *Publisher) publish(subject string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.WithError(err).WithField("subject", subject).Error("Failed to marshal event")
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.WithError(err).WithField("subject", subject).Error("Failed to publish event")
	}
}

// IsConnected reports whether the NATS connection is up.
func (p *Publisher) IsConnected() bool {
	return p.conn != nil && p.conn.IsConnected()
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

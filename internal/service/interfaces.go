package service

import (
	"context"

	"github.com/MKhiriev/go-api-caller/internal/adapter"
	"github.com/MKhiriev/go-api-caller/models"
)

// DemoIntegrationService is a typed client of the demo items API built on
// [adapter.APICaller].
type DemoIntegrationService interface {
	ListItems(ctx context.Context, filter models.ItemFilter) (models.ItemList, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)
	ArchiveItem(ctx context.Context, id int64) (models.Item, error)
	SearchItems(ctx context.Context, search models.ItemSearch) (models.ItemList, error)
	DeleteItem(ctx context.Context, id int64) error

	UploadAttachment(ctx context.Context, itemID int64, file adapter.File, meta models.AttachmentMeta) (models.Attachment, error)
	DownloadAttachment(ctx context.Context, itemID int64, attachmentID string) ([]byte, error)

	// Token requests a session token. The API answers with either a bare
	// token or a JSON string.
	Token(ctx context.Context) (string, error)
}

// DemoIntegrationServiceWrapper defines middleware composition for
// DemoIntegrationService. Implementations wrap an existing service to add
// behavior such as validation.
type DemoIntegrationServiceWrapper interface {
	Wrap(DemoIntegrationService) DemoIntegrationService // returns a decorated DemoIntegrationService applying additional behavior
}

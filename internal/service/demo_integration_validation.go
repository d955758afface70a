package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-api-caller/internal/adapter"
	"github.com/MKhiriev/go-api-caller/models"
)

// DemoIntegrationValidationService rejects malformed input before any call
// leaves the process.
type DemoIntegrationValidationService struct {
	inner DemoIntegrationService
}

func NewDemoIntegrationValidationService() DemoIntegrationServiceWrapper {
	return &DemoIntegrationValidationService{}
}

// Wrap implements [DemoIntegrationServiceWrapper].
func (v *DemoIntegrationValidationService) Wrap(inner DemoIntegrationService) DemoIntegrationService {
	return &DemoIntegrationValidationService{inner: inner}
}

func (v *DemoIntegrationValidationService) ListItems(ctx context.Context, filter models.ItemFilter) (models.ItemList, error) {
	if filter.Page != nil && (filter.Page.Number < 0 || filter.Page.Size < 0) {
		return models.ItemList{}, fmt.Errorf("%w: negative page", ErrInvalidDataProvided)
	}

	return v.inner.ListItems(ctx, filter)
}

func (v *DemoIntegrationValidationService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	if id <= 0 {
		return models.Item{}, ErrValidationNoItemID
	}

	return v.inner.GetItem(ctx, id)
}

func (v *DemoIntegrationValidationService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if err := validateItem(item); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before creating: %w", err)
	}

	return v.inner.CreateItem(ctx, item)
}

func (v *DemoIntegrationValidationService) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if item.ID <= 0 {
		return models.Item{}, ErrValidationNoItemID
	}
	if err := validateItem(item); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before updating: %w", err)
	}

	return v.inner.UpdateItem(ctx, item)
}

func (v *DemoIntegrationValidationService) ArchiveItem(ctx context.Context, id int64) (models.Item, error) {
	if id <= 0 {
		return models.Item{}, ErrValidationNoItemID
	}

	return v.inner.ArchiveItem(ctx, id)
}

func (v *DemoIntegrationValidationService) SearchItems(ctx context.Context, search models.ItemSearch) (models.ItemList, error) {
	if strings.TrimSpace(search.Query) == "" && search.Filter == nil {
		return models.ItemList{}, fmt.Errorf("%w: empty search", ErrInvalidDataProvided)
	}
	if search.Limit < 0 {
		return models.ItemList{}, fmt.Errorf("%w: negative limit", ErrInvalidDataProvided)
	}

	return v.inner.SearchItems(ctx, search)
}

func (v *DemoIntegrationValidationService) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrValidationNoItemID
	}

	return v.inner.DeleteItem(ctx, id)
}

func (v *DemoIntegrationValidationService) UploadAttachment(ctx context.Context, itemID int64, file adapter.File, meta models.AttachmentMeta) (models.Attachment, error) {
	if itemID <= 0 {
		return models.Attachment{}, ErrValidationNoItemID
	}
	if file.Content == nil {
		return models.Attachment{}, ErrValidationNoFileContent
	}

	return v.inner.UploadAttachment(ctx, itemID, file, meta)
}

func (v *DemoIntegrationValidationService) DownloadAttachment(ctx context.Context, itemID int64, attachmentID string) ([]byte, error) {
	if itemID <= 0 {
		return nil, ErrValidationNoItemID
	}
	if strings.TrimSpace(attachmentID) == "" {
		return nil, ErrValidationNoAttachmentID
	}

	return v.inner.DownloadAttachment(ctx, itemID, attachmentID)
}

func (v *DemoIntegrationValidationService) Token(ctx context.Context) (string, error) {
	return v.inner.Token(ctx)
}

func validateItem(item models.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrValidationEmptyItemName
	}
	if item.Price < 0 {
		return ErrValidationNegativePrice
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-api-caller/internal/adapter"
	"github.com/MKhiriev/go-api-caller/internal/config"
	"github.com/MKhiriev/go-api-caller/internal/flatten"
	"github.com/MKhiriev/go-api-caller/internal/logger"
	"github.com/MKhiriev/go-api-caller/models"
)

const (
	itemsPath       = "/items"
	itemsSearchPath = "/items/search"
	tokenPath       = "/auth/token"
)

type demoIntegrationService struct {
	caller adapter.APICaller
	auth   adapter.Auth

	logger *logger.Logger
}

// NewDemoIntegrationService returns a DemoIntegrationService calling the
// demo API through caller. A configured bearer token is sent with every
// call; without one the calls rely on ambient credentials.
func NewDemoIntegrationService(caller adapter.APICaller, authCfg config.ClientAuth, log *logger.Logger) DemoIntegrationService {
	auth := adapter.Ambient()
	if authCfg.BearerToken != "" {
		auth = adapter.Bearer(authCfg.BearerToken)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &demoIntegrationService{caller: caller, auth: auth, logger: log}
}

func (s *demoIntegrationService) ListItems(ctx context.Context, filter models.ItemFilter) (models.ItemList, error) {
	var list models.ItemList
	if err := s.caller.GetWithQuery(ctx, itemsPath, s.auth, filter, &list); err != nil {
		return models.ItemList{}, fmt.Errorf("list items: %w", mapAdapterError(err))
	}

	return list, nil
}

func (s *demoIntegrationService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var item models.Item
	if err := s.caller.Get(ctx, itemPath(id), s.auth, &item); err != nil {
		return models.Item{}, fmt.Errorf("get item %d: %w", id, mapAdapterError(err))
	}

	return item, nil
}

func (s *demoIntegrationService) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var created models.Item
	if err := s.caller.Post(ctx, itemsPath, s.auth, item, &created); err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", mapAdapterError(err))
	}

	logger.FromContext(ctx).Debug().Int64("item_id", created.ID).Msg("item created")
	return created, nil
}

func (s *demoIntegrationService) UpdateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var updated models.Item
	if err := s.caller.Put(ctx, itemPath(item.ID), s.auth, item, &updated); err != nil {
		return models.Item{}, fmt.Errorf("update item %d: %w", item.ID, mapAdapterError(err))
	}

	return updated, nil
}

// ArchiveItem uses the API's PATCH endpoint, which only accepts ambient
// credentials.
func (s *demoIntegrationService) ArchiveItem(ctx context.Context, id int64) (models.Item, error) {
	var archived models.Item
	if err := s.caller.Patch(ctx, itemPath(id)+"/archive", &archived); err != nil {
		return models.Item{}, fmt.Errorf("archive item %d: %w", id, mapAdapterError(err))
	}

	return archived, nil
}

func (s *demoIntegrationService) SearchItems(ctx context.Context, search models.ItemSearch) (models.ItemList, error) {
	var list models.ItemList
	if err := s.caller.PostForm(ctx, itemsSearchPath, s.auth, search, &list); err != nil {
		return models.ItemList{}, fmt.Errorf("search items: %w", mapAdapterError(err))
	}

	return list, nil
}

func (s *demoIntegrationService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.caller.Delete(ctx, itemPath(id), s.auth, nil); err != nil {
		return fmt.Errorf("delete item %d: %w", id, mapAdapterError(err))
	}

	return nil
}

func (s *demoIntegrationService) UploadAttachment(ctx context.Context, itemID int64, file adapter.File, meta models.AttachmentMeta) (models.Attachment, error) {
	upload := adapter.Upload{
		File:      file,
		FieldName: adapter.DefaultFileField,
		Data:      meta,
	}

	var attachment models.Attachment
	if err := s.caller.PostFile(ctx, itemPath(itemID)+"/attachments", s.auth, upload, &attachment); err != nil {
		return models.Attachment{}, fmt.Errorf("upload attachment to item %d: %w", itemID, mapAdapterError(err))
	}

	return attachment, nil
}

func (s *demoIntegrationService) DownloadAttachment(ctx context.Context, itemID int64, attachmentID string) ([]byte, error) {
	uri := itemPath(itemID) + "/attachments/" + flatten.EscapeDataString(attachmentID)

	content, err := s.caller.DownloadFile(ctx, uri, s.auth)
	if err != nil {
		return nil, fmt.Errorf("download attachment %s: %w", attachmentID, mapAdapterError(err))
	}

	return content, nil
}

func (s *demoIntegrationService) Token(ctx context.Context) (string, error) {
	var token string
	if err := s.caller.PostQuery(ctx, tokenPath, s.auth, &token); err != nil {
		return "", fmt.Errorf("request token: %w", mapAdapterError(err))
	}

	return token, nil
}

func itemPath(id int64) string {
	return itemsPath + "/" + strconv.FormatInt(id, 10)
}

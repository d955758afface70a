package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-api-caller/internal/adapter"
	"github.com/MKhiriev/go-api-caller/internal/config"
	"github.com/MKhiriev/go-api-caller/internal/logger"
	"github.com/MKhiriev/go-api-caller/internal/mock"
	"github.com/MKhiriev/go-api-caller/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDemoSvc is a helper that builds demoIntegrationService with a mocked caller.
func newTestDemoSvc(t *testing.T, ctrl *gomock.Controller, token string) (*demoIntegrationService, *mock.MockAPICaller) {
	t.Helper()
	mockCaller := mock.NewMockAPICaller(ctrl)

	svc := NewDemoIntegrationService(mockCaller, config.ClientAuth{BearerToken: token}, logger.Nop()).(*demoIntegrationService)

	return svc, mockCaller
}

// ── auth selection ───────────────────────────────────────────────────────────

func TestNewDemoIntegrationService_AuthMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withToken, _ := newTestDemoSvc(t, ctrl, "tok")
	assert.Equal(t, adapter.Bearer("tok"), withToken.auth)

	ambient, _ := newTestDemoSvc(t, ctrl, "")
	assert.Equal(t, adapter.Ambient(), ambient.auth)
}

// ── ListItems ────────────────────────────────────────────────────────────────

func TestDemoIntegrationService_ListItems_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	ctx := context.Background()
	status := models.ItemStatusActive
	filter := models.ItemFilter{Query: "lamp", Status: &status}

	mockCaller.EXPECT().GetWithQuery(ctx, "/items", adapter.Bearer("tok"), filter, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ adapter.Auth, _ any, result any) error {
			*result.(*models.ItemList) = models.ItemList{Items: []models.Item{{ID: 1, Name: "lamp"}}, Total: 1}
			return nil
		},
	)

	got, err := svc.ListItems(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, "lamp", got.Items[0].Name)
}

func TestDemoIntegrationService_ListItems_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	serverErr := &adapter.ServerError{StatusCode: 401, Body: "expired"}

	mockCaller.EXPECT().GetWithQuery(gomock.Any(), "/items", gomock.Any(), gomock.Any(), gomock.Any()).Return(serverErr)

	_, err := svc.ListItems(context.Background(), models.ItemFilter{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Server error (HTTP 401). Body: expired")
}

// ── GetItem / CreateItem / UpdateItem / ArchiveItem ──────────────────────────

func TestDemoIntegrationService_GetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "")
	ctx := context.Background()

	mockCaller.EXPECT().Get(ctx, "/items/7", adapter.Ambient(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ adapter.Auth, result any) error {
			*result.(*models.Item) = models.Item{ID: 7, Name: "chair"}
			return nil
		},
	)

	got, err := svc.GetItem(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, models.Item{ID: 7, Name: "chair"}, got)
}

func TestDemoIntegrationService_GetItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "")
	mockCaller.EXPECT().Get(gomock.Any(), "/items/8", gomock.Any(), gomock.Any()).
		Return(&adapter.ServerError{StatusCode: 404, Body: "not found"})

	_, err := svc.GetItem(context.Background(), 8)

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Contains(t, err.Error(), "get item 8")
}

func TestDemoIntegrationService_CreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	ctx := context.Background()
	in := models.Item{Name: "desk", Price: 99.5}

	mockCaller.EXPECT().Post(ctx, "/items", gomock.Any(), in, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ adapter.Auth, body any, result any) error {
			created := body.(models.Item)
			created.ID = 11
			*result.(*models.Item) = created
			return nil
		},
	)

	got, err := svc.CreateItem(ctx, in)

	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "desk", got.Name)
}

func TestDemoIntegrationService_CreateItem_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	mockCaller.EXPECT().Post(gomock.Any(), "/items", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&adapter.ServerError{StatusCode: 409, Body: "exists"})

	_, err := svc.CreateItem(context.Background(), models.Item{Name: "desk"})

	assert.ErrorIs(t, err, ErrItemAlreadyExists)
}

func TestDemoIntegrationService_UpdateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	item := models.Item{ID: 3, Name: "sofa"}

	mockCaller.EXPECT().Put(gomock.Any(), "/items/3", gomock.Any(), item, gomock.Any()).Return(nil)

	_, err := svc.UpdateItem(context.Background(), item)
	require.NoError(t, err)
}

func TestDemoIntegrationService_ArchiveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	mockCaller.EXPECT().Patch(gomock.Any(), "/items/3/archive", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, result any) error {
			*result.(*models.Item) = models.Item{ID: 3, Status: models.ItemStatusArchived}
			return nil
		},
	)

	got, err := svc.ArchiveItem(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusArchived, got.Status)
}

// ── SearchItems / DeleteItem ─────────────────────────────────────────────────

func TestDemoIntegrationService_SearchItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	search := models.ItemSearch{Query: "lamp", Limit: 5}

	mockCaller.EXPECT().PostForm(gomock.Any(), "/items/search", gomock.Any(), search, gomock.Any()).Return(nil)

	_, err := svc.SearchItems(context.Background(), search)
	require.NoError(t, err)
}

func TestDemoIntegrationService_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")

	mockCaller.EXPECT().Delete(gomock.Any(), "/items/4", adapter.Bearer("tok"), nil).Return(nil)
	require.NoError(t, svc.DeleteItem(context.Background(), 4))

	transportErr := errors.New("connection refused")
	mockCaller.EXPECT().Delete(gomock.Any(), "/items/5", gomock.Any(), nil).Return(transportErr)
	err := svc.DeleteItem(context.Background(), 5)
	assert.ErrorIs(t, err, transportErr)
}

// ── attachments ──────────────────────────────────────────────────────────────

func TestDemoIntegrationService_UploadAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	file := adapter.FileFromBytes("manual.pdf", []byte("%PDF"))
	meta := models.AttachmentMeta{Description: "manual", Public: true}

	mockCaller.EXPECT().PostFile(gomock.Any(), "/items/2/attachments", gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ adapter.Auth, up adapter.Upload, result any) error {
			assert.Equal(t, "file", up.FieldName)
			assert.Equal(t, "manual.pdf", up.File.FileName)
			assert.Equal(t, meta, up.Data)
			*result.(*models.Attachment) = models.Attachment{ID: "a1", ItemID: 2, FileName: "manual.pdf", Size: 4}
			return nil
		},
	)

	got, err := svc.UploadAttachment(context.Background(), 2, file, meta)

	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)
}

func TestDemoIntegrationService_DownloadAttachment_EscapesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")

	mockCaller.EXPECT().DownloadFile(gomock.Any(), "/items/2/attachments/a%2Fb%20c", gomock.Any()).Return([]byte("bytes"), nil)

	got, err := svc.DownloadAttachment(context.Background(), 2, "a/b c")

	require.NoError(t, err)
	assert.Equal(t, []byte("bytes"), got)
}

func TestDemoIntegrationService_DownloadAttachment_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	mockCaller.EXPECT().DownloadFile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &adapter.ServerError{StatusCode: 502})

	_, err := svc.DownloadAttachment(context.Background(), 2, "a1")

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

// ── Token ────────────────────────────────────────────────────────────────────

func TestDemoIntegrationService_Token(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCaller := newTestDemoSvc(t, ctrl, "tok")
	mockCaller.EXPECT().PostQuery(gomock.Any(), "/auth/token", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ adapter.Auth, result any) error {
			*result.(*string) = "session-1"
			return nil
		},
	)

	got, err := svc.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "session-1", got)
}

func TestNewServices_WrapsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := NewServices(mock.NewMockAPICaller(ctrl), config.ClientConfig{}, logger.Nop())

	_, err := services.DemoIntegrationService.GetItem(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidationNoItemID)
}

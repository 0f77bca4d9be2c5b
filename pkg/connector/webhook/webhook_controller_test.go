package webhook_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"github.com/inoova/shipping-connector/pkg/connector/webhook"
	mock_storage "github.com/inoova/shipping-connector/test/mock/connector/storage"
	"github.com/stretchr/testify/suite"
)

type WebhookControllerTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	storage     *mock_storage.MockWebhookStorage
	tx          *mock_storage.MockTx
	webhookCtrl webhook.WebhookController

	mux    *http.ServeMux
	server *httptest.Server
}

func TestWebhookController(t *testing.T) {
	suite.Run(t, new(WebhookControllerTestSuite))
}

func (s *WebhookControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.storage = mock_storage.NewMockWebhookStorage(s.ctrl)
	s.tx = mock_storage.NewMockTx(s.ctrl)
	s.webhookCtrl = webhook.NewWebhookController(s.storage)
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
}

func (s *WebhookControllerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *WebhookControllerTestSuite) TestCreateWebhook() {
	ts := time.Now().Unix()

	req := webhook.CreateWebhookRequest{
		Requester:     "erp",
		ApplicationID: "key_1",
		Events:        []model.WebhookEventType{model.WebhookEventShipmentCreated, model.WebhookEventShipmentCreated},
		Url:           "https://example.com/notify",
		Secret:        "secret_key",
	}

	var stored model.Webhook
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any(), gomock.Len(2)).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().AddWebhook(gomock.Any(), s.tx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx storage.Tx, wh model.Webhook) error {
				stored = wh
				return nil
			},
		),
		s.tx.EXPECT().Commit(gomock.Any()).Return(nil),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.webhookCtrl.Create(s.ctx, ts, req)
	s.Require().NoError(err)
	s.NotEmpty(result.ID)
	s.Empty(result.Secret)
	s.Equal("secret_key", stored.Secret)
	s.Equal(int64(1), stored.Version)
	s.Equal([]model.WebhookEventType{model.WebhookEventShipmentCreated}, stored.Events)
	s.Equal("key_1", stored.ApplicationID)
	s.Equal(ts, stored.CreatedAt)
	s.Equal("erp", stored.CreatedBy)
}

func (s *WebhookControllerTestSuite) TestCreateWebhookInvalid() {
	req := webhook.CreateWebhookRequest{
		Requester:     "erp",
		ApplicationID: "key_1",
		Events:        []model.WebhookEventType{"bl.issued"},
		Url:           "not a url",
		Secret:        "secret_key",
	}

	_, err := s.webhookCtrl.Create(s.ctx, time.Now().Unix(), req)
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *WebhookControllerTestSuite) TestListWebhook() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, storage.ListWebhookRequest{Limit: 10, ApplicationID: "key_1"}).Return(
			storage.ListWebhookResult{Total: 1, Records: []model.Webhook{{ID: "wh_1", Secret: "secret"}}}, nil,
		),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	result, err := s.webhookCtrl.List(s.ctx, webhook.ListWebhookRequest{Limit: 10, ApplicationID: "key_1"})
	s.Require().NoError(err)
	s.Equal(1, result.Total)
	s.Require().Len(result.Records, 1)
	s.Empty(result.Records[0].Secret)
}

func (s *WebhookControllerTestSuite) TestListWebhookStorageError() {
	gomock.InOrder(
		s.storage.EXPECT().CreateTx(gomock.Any()).Return(s.tx, s.ctx, nil),
		s.storage.EXPECT().ListWebhook(gomock.Any(), s.tx, gomock.Any()).Return(storage.ListWebhookResult{}, errors.New("boom")),
		s.tx.EXPECT().Rollback(gomock.Any()).Return(nil),
	)

	_, err := s.webhookCtrl.List(s.ctx, webhook.ListWebhookRequest{Limit: 10, ApplicationID: "key_1"})
	s.Error(err)

	_, err = s.webhookCtrl.List(s.ctx, webhook.ListWebhookRequest{ApplicationID: "key_1"})
	s.ErrorIs(err, model.ErrInvalidParameter)
}

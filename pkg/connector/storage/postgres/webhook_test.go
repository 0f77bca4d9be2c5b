package postgres_test

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"github.com/inoova/shipping-connector/pkg/connector/storage/postgres"
	"github.com/stretchr/testify/suite"
)

type WebhookStorageTestSuite struct {
	BaseTestSuite
	storage storage.WebhookStorage
}

func TestWebhookStorage(t *testing.T) {
	suite.Run(t, new(WebhookStorageTestSuite))
}

func (s *WebhookStorageTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.storage = postgres.NewStorageWithPool(s.pgPool)
	s.loadFixtures("testdata/webhook")
}

func (s *WebhookStorageTestSuite) TestAddWebhook() {
	ts := time.Now().Unix()
	webhook := model.Webhook{
		ID:            "test_webhook",
		Version:       1,
		ApplicationID: "app_1",
		Url:           "https://example.com/webhook",
		Events:        []model.WebhookEventType{model.WebhookEventShipmentCreated},
		Secret:        "secret",
		CreatedAt:     ts,
		CreatedBy:     "app_1",
		UpdatedAt:     ts,
		UpdatedBy:     "app_1",
	}

	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	s.Require().NoError(s.storage.AddWebhook(ctx, tx, webhook))

	newWebhook := webhook
	newWebhook.Version = 2
	newWebhook.Url = "https://example2.com/webhook"
	newWebhook.Events = append(newWebhook.Events, model.WebhookEventShipmentStatusUpdated)
	newWebhook.UpdatedAt = ts + 10
	s.Require().NoError(s.storage.AddWebhook(ctx, tx, newWebhook))

	var dbData []model.Webhook
	s.Require().NoError(tx.QueryRow(ctx, `SELECT JSONB_AGG(webhook ORDER BY rec_id ASC) FROM webhook WHERE id = $1`, webhook.ID).Scan(&dbData))
	s.Require().Len(dbData, 1)
	s.Equal(newWebhook, dbData[0])

	s.Require().NoError(tx.QueryRow(ctx, `SELECT JSONB_AGG(webhook ORDER BY rec_id ASC) FROM webhook_history WHERE id = $1`, webhook.ID).Scan(&dbData))
	s.Require().Len(dbData, 2)
	s.Equal(webhook, dbData[0])
	s.Equal(newWebhook, dbData[1])

	s.Require().NoError(tx.Commit(ctx))
}

func (s *WebhookStorageTestSuite) TestListWebhook() {
	tx, ctx, err := s.storage.CreateTx(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	baseReq := storage.ListWebhookRequest{Limit: 10, ApplicationID: "app_1"}

	res, err := s.storage.ListWebhook(ctx, tx, baseReq)
	s.Require().NoError(err)
	s.Equal(2, res.Total)
	s.Require().Len(res.Records, 2)
	s.Equal("webhook_1", res.Records[0].ID)
	s.Equal("webhook_2", res.Records[1].ID)

	req := baseReq
	req.Limit = 1
	req.Offset = 1
	res, err = s.storage.ListWebhook(ctx, tx, req)
	s.Require().NoError(err)
	s.Equal(2, res.Total)
	s.Require().Len(res.Records, 1)
	s.Equal("webhook_2", res.Records[0].ID)

	req = baseReq
	req.IDs = []string{"webhook_1"}
	res, err = s.storage.ListWebhook(ctx, tx, req)
	s.Require().NoError(err)
	s.Equal(1, res.Total)
	s.Equal("webhook_1", res.Records[0].ID)

	// Deleted webhooks never match, across applications too.
	req = storage.ListWebhookRequest{Limit: 10, Events: []string{string(model.WebhookEventShipmentStatusUpdated)}}
	res, err = s.storage.ListWebhook(ctx, tx, req)
	s.Require().NoError(err)
	s.Equal(1, res.Total)
	s.Equal("webhook_2", res.Records[0].ID)
}

func (s *WebhookStorageTestSuite) TestWebhookEvent() {
	tx, ctx, err := s.storage.CreateTx(s.ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := s.storage.GetWebhookEvent(ctx, tx, 10)
	s.Require().NoError(err)
	s.Empty(res)

	ts := time.Now().Unix()
	event := model.WebhookEvent{
		ID:             "MAT-DN-2024-00001",
		Url:            "https://example.com/webhook",
		Type:           model.WebhookEventShipmentCreated,
		Carrier:        "GLS",
		TrackingNumber: "ZX12345678",
		CreatedAt:      ts,
	}
	payload, err := json.Marshal(event)
	s.Require().NoError(err)
	s.Require().NoError(s.storage.AddWebhookEvent(ctx, tx, ts, "signature", payload))

	res, err = s.storage.GetWebhookEvent(ctx, tx, 20)
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal("signature", res[0].Key)
	s.Equal(payload, res[0].Msg)

	s.Require().NoError(s.storage.DeleteWebhookEvent(ctx, tx, res[0].RecID))
	res, err = s.storage.GetWebhookEvent(ctx, tx, 10)
	s.Require().NoError(err)
	s.Empty(res)
}

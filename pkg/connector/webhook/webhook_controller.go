package webhook

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"github.com/samber/lo"
)

type WebhookController interface {
	Create(ctx context.Context, ts int64, req CreateWebhookRequest) (model.Webhook, error)
	List(ctx context.Context, req ListWebhookRequest) (storage.ListWebhookResult, error)
}

type CreateWebhookRequest struct {
	Requester     string                   `json:"requester"`
	ApplicationID string                   `json:"application_id"`
	Events        []model.WebhookEventType `json:"events"`
	Url           string                   `json:"url"`
	Secret        string                   `json:"secret"`
}

type ListWebhookRequest struct {
	Offset        int    `json:"offset"`
	Limit         int    `json:"limit"`
	ApplicationID string `json:"application_id"`
}

type _WebhookController struct {
	storage storage.WebhookStorage
}

func NewWebhookController(storage storage.WebhookStorage) WebhookController {
	return &_WebhookController{
		storage: storage,
	}
}

func (c *_WebhookController) Create(ctx context.Context, ts int64, req CreateWebhookRequest) (model.Webhook, error) {
	err := ValidateCreateWebhookRequest(req)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook := model.Webhook{
		ID:            uuid.NewString(),
		Version:       1,
		ApplicationID: req.ApplicationID,
		Url:           req.Url,
		Events:        lo.Uniq(req.Events),
		Secret:        req.Secret,
		CreatedAt:     ts,
		CreatedBy:     req.Requester,
		UpdatedAt:     ts,
		UpdatedBy:     req.Requester,
		Deleted:       false,
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.Webhook{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = c.storage.AddWebhook(ctx, tx, webhook)
	if err != nil {
		return model.Webhook{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return model.Webhook{}, err
	}

	webhook.Secret = ""
	return webhook, nil
}

func (c *_WebhookController) List(ctx context.Context, req ListWebhookRequest) (storage.ListWebhookResult, error) {
	if err := ValidateListWebhookRequest(req); err != nil {
		return storage.ListWebhookResult{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return storage.ListWebhookResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := c.storage.ListWebhook(ctx, tx, storage.ListWebhookRequest{
		Offset:        req.Offset,
		Limit:         req.Limit,
		ApplicationID: req.ApplicationID,
	})
	if err != nil {
		return storage.ListWebhookResult{}, err
	}

	for i := range result.Records {
		result.Records[i].Secret = ""
	}
	return result, nil
}

package webhook

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jws"
)

const listPageSize = 100

// EventStorage is the part of the storage needed to queue WebhookEvents inside another transaction.
type EventStorage interface {
	ListWebhook(ctx context.Context, tx storage.Tx, req storage.ListWebhookRequest) (storage.ListWebhookResult, error)
	AddWebhookEvent(ctx context.Context, tx storage.Tx, ts int64, key string, payload []byte) error
}

// Sign returns the compact JWS (HS256) of payload. It is sent as X-Payload-Signature.
func Sign(secret string, payload []byte) (string, error) {
	signed, err := jws.Sign(payload, jws.WithKey(jwa.HS256, []byte(secret)))
	if err != nil {
		return "", err
	}
	return string(signed), nil
}

// Enqueue queues one eventType event about note for every webhook subscribed to it.
// It writes through tx so the events commit together with the change they describe.
func Enqueue(ctx context.Context, tx storage.Tx, s EventStorage, ts int64, eventType model.WebhookEventType, note model.DeliveryNote) error {
	req := storage.ListWebhookRequest{
		Limit:  listPageSize,
		Events: []string{string(eventType)},
	}
	for {
		result, err := s.ListWebhook(ctx, tx, req)
		if err != nil {
			return fmt.Errorf("list webhooks: %w", err)
		}

		for _, hook := range result.Records {
			event := model.WebhookEvent{
				ID:             note.Name,
				Url:            hook.Url,
				Type:           eventType,
				Carrier:        note.Carrier(),
				TrackingNumber: note.TrackingNumber,
				ShippingStatus: note.ShippingStatus,
				ShopifyOrderID: note.ShopifyOrderID,
				CreatedAt:      ts,
			}
			payload, err := json.Marshal(event)
			if err != nil {
				return err
			}
			key, err := Sign(hook.Secret, payload)
			if err != nil {
				return fmt.Errorf("sign webhook event: %w", err)
			}
			if err := s.AddWebhookEvent(ctx, tx, ts, key, payload); err != nil {
				return err
			}
		}

		req.Offset += len(result.Records)
		if len(result.Records) == 0 || req.Offset >= result.Total {
			return nil
		}
	}
}

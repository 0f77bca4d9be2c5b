package storage

import (
	"context"
	"database/sql"

	"github.com/inoova/shipping-connector/pkg/connector/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// ListDeliveryNotesRequest is the request to list delivery notes.
type ListDeliveryNotesRequest struct {
	Offset int `json:"offset"` // Offset of the delivery notes to be listed.
	Limit  int `json:"limit"`  // Limit of the delivery notes to be listed.

	// Filters
	Names           []string               `json:"names"`            // Names of the delivery notes.
	DocStatuses     []model.DocStatus      `json:"docstatuses"`      // Document statuses of the delivery notes.
	Tracked         bool                   `json:"tracked"`          // Only notes with a tracking number and a shipping status.
	ExcludeStatuses []model.ShippingStatus `json:"exclude_statuses"` // Shipping statuses to leave out.
}

// ListDeliveryNotesResult is the result of listing delivery notes.
type ListDeliveryNotesResult struct {
	Total   int                  `json:"total"`   // Total number of delivery notes.
	Records []model.DeliveryNote `json:"records"` // Records of delivery notes.
}

type DeliveryNoteStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	StoreDeliveryNote(ctx context.Context, tx Tx, note model.DeliveryNote) error
	// GetDeliveryNote returns model.ErrDeliveryNoteNotFound when no note is named name.
	GetDeliveryNote(ctx context.Context, tx Tx, name string) (model.DeliveryNote, error)
	ListDeliveryNotes(ctx context.Context, tx Tx, req ListDeliveryNotesRequest) (ListDeliveryNotesResult, error)

	ListWebhook(ctx context.Context, tx Tx, req ListWebhookRequest) (ListWebhookResult, error)
	AddWebhookEvent(ctx context.Context, tx Tx, ts int64, key string, payload []byte) error
}

type ListWebhookRequest struct {
	Offset int `json:"offset"` // Offset of the webhooks to be listed.
	Limit  int `json:"limit"`  // Limit of the webhooks to be listed.

	// Filters
	ApplicationID string   `json:"application_id"` // The ID of the application this webhook belongs to.
	IDs           []string `json:"ids"`            // The IDs of the webhook.
	Events        []string `json:"events"`         // The Events the webhook is interested in.
}

type ListWebhookResult struct {
	Total   int             `json:"total"`   // Total number of webhooks.
	Records []model.Webhook `json:"records"` // Records of webhook.
}

type OutboxMsg struct {
	RecID int64
	Key   string
	Msg   []byte
}

type WebhookStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	AddWebhook(ctx context.Context, tx Tx, webhook model.Webhook) error
	ListWebhook(ctx context.Context, tx Tx, req ListWebhookRequest) (ListWebhookResult, error)
	AddWebhookEvent(ctx context.Context, tx Tx, ts int64, key string, payload []byte) error
	GetWebhookEvent(ctx context.Context, tx Tx, batchSize int) ([]OutboxMsg, error)
	DeleteWebhookEvent(ctx context.Context, tx Tx, recIDs ...int64) error
}

type APIKeyStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
	StoreAPIKey(ctx context.Context, tx Tx, key model.APIKey) error
	// GetAPIKey returns model.ErrAPIKeyNotFound when no key has the id.
	GetAPIKey(ctx context.Context, tx Tx, id string) (model.APIKey, error)
}

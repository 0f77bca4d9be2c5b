// Package delivery_note keeps the connector's copy of the ERP Delivery Notes it ships.
package delivery_note

import (
	"context"
	"database/sql"
	"errors"

	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/realtime"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
)

type DeliveryNoteController interface {
	Get(ctx context.Context, name string) (model.DeliveryNote, error)
	Put(ctx context.Context, ts int64, req PutDeliveryNoteRequest) (model.DeliveryNote, error)
}

// PutDeliveryNoteRequest carries a Delivery Note pushed by the ERP.
// Its shipping fields are ignored: only the connector writes them.
type PutDeliveryNoteRequest struct {
	Requester    string             `json:"-"`
	DeliveryNote model.DeliveryNote `json:"-"`
}

type _DeliveryNoteController struct {
	storage   storage.DeliveryNoteStorage
	publisher realtime.Publisher
}

func NewDeliveryNoteController(storage storage.DeliveryNoteStorage, publisher realtime.Publisher) DeliveryNoteController {
	return &_DeliveryNoteController{
		storage:   storage,
		publisher: publisher,
	}
}

func (c *_DeliveryNoteController) Get(ctx context.Context, name string) (model.DeliveryNote, error) {
	if err := ValidateName(name); err != nil {
		return model.DeliveryNote{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return model.DeliveryNote{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.GetDeliveryNote(ctx, tx, name)
}

func (c *_DeliveryNoteController) Put(ctx context.Context, ts int64, req PutDeliveryNoteRequest) (model.DeliveryNote, error) {
	if err := ValidatePutDeliveryNoteRequest(req); err != nil {
		return model.DeliveryNote{}, err
	}

	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.DeliveryNote{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	note := req.DeliveryNote
	note.ShippingCarrier = ""
	note.TrackingNumber = ""
	note.ShippingStatus = ""
	note.ShippingLabelURL = ""
	note.Version = 1

	old, err := c.storage.GetDeliveryNote(ctx, tx, note.Name)
	if err != nil && !errors.Is(err, model.ErrDeliveryNoteNotFound) {
		return model.DeliveryNote{}, err
	}
	if err == nil {
		note.ShippingCarrier = old.ShippingCarrier
		note.TrackingNumber = old.TrackingNumber
		note.ShippingStatus = old.ShippingStatus
		note.ShippingLabelURL = old.ShippingLabelURL
		note.Version = old.Version + 1
	}
	note.UpdatedAt = ts
	note.UpdatedBy = req.Requester

	if err := c.storage.StoreDeliveryNote(ctx, tx, note); err != nil {
		return model.DeliveryNote{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.DeliveryNote{}, err
	}

	if c.publisher != nil {
		c.publisher.Publish(note.Name)
	}
	return note, nil
}

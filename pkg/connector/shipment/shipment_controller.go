// Package shipment books parcels for submitted Delivery Notes and records the result on the note.
package shipment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/inoova/shipping-connector/pkg/connector/carrier"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/realtime"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"github.com/inoova/shipping-connector/pkg/connector/webhook"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultCountryCode = "IT"
	defaultWeight      = 1.0
)

type Controller interface {
	Create(ctx context.Context, ts int64, req CreateShipmentRequest) (model.ShipmentResult, error)
	GetTrackingStatus(ctx context.Context, trackingNumber string) (model.TrackingStatus, error)
}

type CreateShipmentRequest struct {
	DeliveryNote string `json:"delivery_note"`
	Requester    string `json:"-"`
}

// CarrierProvider resolves the carrier that books new shipments.
type CarrierProvider interface {
	Default() (carrier.Carrier, error)
	Get(code string) (carrier.Carrier, error)
}

type _Controller struct {
	storage      storage.DeliveryNoteStorage
	carriers     CarrierProvider
	publisher    realtime.Publisher
	createdCount metric.Int64Counter

	// Delivery Notes with a carrier booking underway in this process.
	booking sync.Map
}

func NewController(storage storage.DeliveryNoteStorage, carriers CarrierProvider, publisher realtime.Publisher) Controller {
	return &_Controller{
		storage:      storage,
		carriers:     carriers,
		publisher:    publisher,
		createdCount: otlp_util.NewInt64Counter("connector.shipment.created.count", metric.WithDescription("The total number of shipments created")),
	}
}

func (c *_Controller) Create(ctx context.Context, ts int64, req CreateShipmentRequest) (model.ShipmentResult, error) {
	if err := ValidateCreateShipmentRequest(req); err != nil {
		return model.ShipmentResult{}, err
	}

	ctx, span := otlp_util.Start(ctx, "shipment.Create",
		trace.WithAttributes(attribute.String("delivery_note", req.DeliveryNote)),
	)
	defer span.End()

	if _, busy := c.booking.LoadOrStore(req.DeliveryNote, struct{}{}); busy {
		return model.ShipmentResult{}, model.ErrShipmentInProgress
	}
	defer c.booking.Delete(req.DeliveryNote)

	note, err := c.getDeliveryNote(ctx, req.DeliveryNote)
	if err != nil {
		return model.ShipmentResult{}, err
	}
	if note.DocStatus != model.DocStatusSubmitted {
		return model.ShipmentResult{}, model.ErrDeliveryNoteNotSubmitted
	}
	if note.HasTrackingNumber() {
		return model.ShipmentResult{}, fmt.Errorf("%w: %s", model.ErrShipmentAlreadyExists, note.TrackingNumber)
	}

	shipmentReq, err := BuildShipmentRequest(note)
	if err != nil {
		return model.ShipmentResult{}, err
	}

	crr, err := c.carriers.Default()
	if err != nil {
		return model.ShipmentResult{}, err
	}
	result, err := crr.CreateShipment(ctx, shipmentReq)
	if err != nil {
		logrus.Errorf("create shipment for %s: %v", note.Name, err)
		return model.ShipmentResult{}, err
	}
	if result.Carrier == "" {
		result.Carrier = crr.Code()
	}

	note, err = c.recordShipment(ctx, ts, note.Name, result, req.Requester)
	if err != nil {
		// The parcel is booked at the carrier even though the note could not be updated.
		logrus.Errorf("store shipment %s of %s: %v", result.TrackingNumber, req.DeliveryNote, err)
		return model.ShipmentResult{}, err
	}

	if c.publisher != nil {
		c.publisher.Publish(note.Name)
	}
	c.createdCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("carrier", result.Carrier),
		attribute.Bool("demo", result.Demo),
	))
	span.SetAttributes(attribute.String("tracking_number", result.TrackingNumber))
	logrus.Infof("Shipment %s created for %s (%s)", result.TrackingNumber, note.Name, result.Carrier)

	return result, nil
}

func (c *_Controller) GetTrackingStatus(ctx context.Context, trackingNumber string) (model.TrackingStatus, error) {
	if err := ValidateTrackingNumber(trackingNumber); err != nil {
		return model.TrackingStatus{}, err
	}

	res := model.TrackingStatus{
		Status:         model.TrackingStatusUnknown,
		TrackingNumber: trackingNumber,
	}

	crr, err := c.carriers.Default()
	if err != nil {
		return model.TrackingStatus{}, err
	}
	status, err := crr.TrackingStatus(ctx, trackingNumber)
	if errors.Is(err, model.ErrTrackingNotSupported) {
		return res, nil
	}
	if err != nil {
		return model.TrackingStatus{}, err
	}
	if status != "" {
		res.Status = string(status)
	}
	return res, nil
}

func (c *_Controller) getDeliveryNote(ctx context.Context, name string) (model.DeliveryNote, error) {
	tx, ctx, err := c.storage.CreateTx(ctx)
	if err != nil {
		return model.DeliveryNote{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return c.storage.GetDeliveryNote(ctx, tx, name)
}

// recordShipment writes result onto the current version of the note. The note
// is read again inside the write transaction, so changes made during the
// carrier call are kept and a concurrent booking is detected.
func (c *_Controller) recordShipment(ctx context.Context, ts int64, name string, result model.ShipmentResult, requester string) (model.DeliveryNote, error) {
	tx, ctx, err := c.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.DeliveryNote{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	note, err := c.storage.GetDeliveryNote(ctx, tx, name)
	if err != nil {
		return model.DeliveryNote{}, err
	}
	if note.DocStatus != model.DocStatusSubmitted {
		return model.DeliveryNote{}, model.ErrDeliveryNoteNotSubmitted
	}
	if note.HasTrackingNumber() {
		return model.DeliveryNote{}, fmt.Errorf("%w: %s", model.ErrShipmentAlreadyExists, note.TrackingNumber)
	}

	note.Version += 1
	note.TrackingNumber = result.TrackingNumber
	note.ShippingLabelURL = result.LabelURL
	note.ShippingCarrier = result.Carrier
	note.ShippingStatus = model.ShippingStatusLabelCreated
	note.UpdatedAt = ts
	note.UpdatedBy = requester

	if err := c.storage.StoreDeliveryNote(ctx, tx, note); err != nil {
		return model.DeliveryNote{}, err
	}
	if err := webhook.Enqueue(ctx, tx, c.storage, ts, model.WebhookEventShipmentCreated, note); err != nil {
		return model.DeliveryNote{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.DeliveryNote{}, err
	}
	return note, nil
}

// BuildShipmentRequest turns note into the carrier independent booking request.
func BuildShipmentRequest(note model.DeliveryNote) (carrier.ShipmentRequest, error) {
	if note.ShippingAddress == nil {
		return carrier.ShipmentRequest{}, model.ErrShippingAddressRequired
	}

	address := *note.ShippingAddress
	if strings.TrimSpace(address.CountryCode) == "" {
		address.CountryCode = defaultCountryCode
	}
	address.CountryCode = strings.ToUpper(address.CountryCode)

	recipient := address.Title
	if recipient == "" {
		recipient = note.CustomerName
	}

	comment := note.ShopifyOrderNumber
	if comment == "" {
		comment = note.Name
	}

	return carrier.ShipmentRequest{
		Reference: note.Name,
		Recipient: recipient,
		Address:   address,
		Weight:    totalWeight(note.Items),
		Comment:   comment,
	}, nil
}

// totalWeight sums the item weights in kg. Notes without weights ship as one kg.
func totalWeight(items []model.DeliveryNoteItem) model.Decimal {
	total := model.NewDecimalFromFloat(0)
	for _, item := range items {
		if item.TotalWeight != nil {
			total = total.Add(*item.TotalWeight)
		}
	}
	if !total.IsPositive() {
		return model.NewDecimalFromFloat(defaultWeight)
	}
	return total
}

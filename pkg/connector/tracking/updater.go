// Package tracking refreshes the shipping status of Delivery Notes that are still on their way.
package tracking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/inoova/shipping-connector/pkg/connector/carrier"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/realtime"
	"github.com/inoova/shipping-connector/pkg/connector/storage"
	"github.com/inoova/shipping-connector/pkg/connector/storage/postgres"
	"github.com/inoova/shipping-connector/pkg/connector/webhook"
	"github.com/inoova/shipping-connector/pkg/util"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

type Config struct {
	Database      util.PostgresDatabaseConfig
	CheckInterval int     // Seconds between two refresh rounds.
	BatchSize     int     // Notes looked at per round.
	RatePerSecond float64 // Carrier lookups per second.
}

type CarrierProvider interface {
	Get(code string) (carrier.Carrier, error)
}

type UpdaterOption func(u *Updater)

func WithStorage(storage storage.DeliveryNoteStorage) UpdaterOption {
	return func(u *Updater) {
		u.storage = storage
	}
}

func WithPublisher(publisher realtime.Publisher) UpdaterOption {
	return func(u *Updater) {
		u.publisher = publisher
	}
}

func WithNowFunc(now func() time.Time) UpdaterOption {
	return func(u *Updater) {
		u.now = now
	}
}

type Updater struct {
	checkInterval time.Duration
	batchSize     int
	limiter       *rate.Limiter
	storage       storage.DeliveryNoteStorage
	carriers      CarrierProvider
	publisher     realtime.Publisher
	now           func() time.Time
	updateCount   metric.Int64Counter
}

func NewUpdaterWithConfig(cfg Config, carriers CarrierProvider, opts ...UpdaterOption) (*Updater, error) {
	u := &Updater{
		checkInterval: time.Second * time.Duration(cfg.CheckInterval),
		batchSize:     cfg.BatchSize,
		carriers:      carriers,
		now:           time.Now,
		updateCount:   otlp_util.NewInt64Counter("connector.tracking.update.count", metric.WithDescription("The total number of shipping status changes recorded")),
	}
	if u.checkInterval <= 0 {
		u.checkInterval = time.Hour
	}
	if u.batchSize <= 0 {
		u.batchSize = 100
	}
	ratePerSecond := cfg.RatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = 5
	}
	u.limiter = rate.NewLimiter(rate.Limit(ratePerSecond), 1)

	for _, opt := range opts {
		opt(u)
	}
	if u.storage == nil {
		noteStorage, err := postgres.NewStorageWithConfig(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("create storage: %w", err)
		}
		u.storage = noteStorage
	}

	return u, nil
}

func (u *Updater) Run(ctx context.Context) {
	logrus.Info("Tracking updater is now running")

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(u.checkInterval):
			if _, err := u.RunOnce(ctx); err != nil {
				logrus.Errorf("failed to update tracking status: %v", err)
			}
		}
	}
}

// RunOnce refreshes one batch of in-flight shipments and returns how many changed.
// Failures of single notes are logged and skipped.
func (u *Updater) RunOnce(ctx context.Context) (int, error) {
	notes, err := u.listInFlight(ctx)
	if err != nil {
		return 0, err
	}
	logrus.Debugf("Checking tracking status of %d delivery notes", len(notes))

	updated := 0
	for _, note := range notes {
		changed, err := u.refresh(ctx, note)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return updated, err
		}
		if err != nil {
			logrus.Warnf("failed to update tracking status of %s: %v", note.Name, err)
			continue
		}
		if changed {
			updated++
		}
	}
	return updated, nil
}

func (u *Updater) listInFlight(ctx context.Context) ([]model.DeliveryNote, error) {
	tx, ctx, err := u.storage.CreateTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req := storage.ListDeliveryNotesRequest{
		Limit:           u.batchSize,
		DocStatuses:     []model.DocStatus{model.DocStatusSubmitted},
		Tracked:         true,
		ExcludeStatuses: []model.ShippingStatus{model.ShippingStatusDelivered, model.ShippingStatusReturned},
	}
	result, err := u.storage.ListDeliveryNotes(ctx, tx, req)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

func (u *Updater) refresh(ctx context.Context, note model.DeliveryNote) (bool, error) {
	crr, err := u.carriers.Get(note.Carrier())
	if errors.Is(err, model.ErrCarrierUnsupported) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := u.limiter.Wait(ctx); err != nil {
		return false, err
	}
	status, err := crr.TrackingStatus(ctx, note.TrackingNumber)
	if errors.Is(err, model.ErrTrackingNotSupported) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if status == "" || status == note.ShippingStatus {
		return false, nil
	}

	ts := u.now().Unix()
	stored, err := u.store(ctx, ts, note, status)
	if err != nil || !stored {
		return false, err
	}
	logrus.Infof("%s: shipping status %q -> %q", note.Name, note.ShippingStatus, status)

	if u.publisher != nil {
		u.publisher.Publish(note.Name)
	}
	u.updateCount.Add(ctx, 1, metric.WithAttributes(
		attribute.String("carrier", note.Carrier()),
		attribute.String("status", string(status)),
	))
	return true, nil
}

// store sets status on the current version of the note. It stores nothing when
// the note was cancelled, got another tracking number or already has status
// since it was listed.
func (u *Updater) store(ctx context.Context, ts int64, listed model.DeliveryNote, status model.ShippingStatus) (bool, error) {
	tx, ctx, err := u.storage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	note, err := u.storage.GetDeliveryNote(ctx, tx, listed.Name)
	if err != nil {
		return false, err
	}
	if note.DocStatus != model.DocStatusSubmitted || note.TrackingNumber != listed.TrackingNumber || note.ShippingStatus == status {
		logrus.Debugf("%s changed while its tracking status was looked up, skipped", note.Name)
		return false, nil
	}

	note.Version += 1
	note.ShippingStatus = status
	note.UpdatedAt = ts
	if err := u.storage.StoreDeliveryNote(ctx, tx, note); err != nil {
		return false, err
	}
	if err := webhook.Enqueue(ctx, tx, u.storage, ts, model.WebhookEventShipmentStatusUpdated, note); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

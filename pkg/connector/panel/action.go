package panel

import (
	"context"
	"errors"
	"fmt"

	"github.com/inoova/shipping-connector/pkg/connector/carrier"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/sirupsen/logrus"
)

// Invoke runs the handler of a button that Refresh offered for note.
// A failed shipment creation is reported to the user through host and is
// not returned; the returned error covers actions that are not offered and
// a failed reload.
func (e *Extension) Invoke(ctx context.Context, host Host, note model.DeliveryNote, action Action) error {
	if err := CheckAllowAction(action, note, true); err != nil {
		return err
	}

	switch action {
	case ActionCreateShipment:
		return e.createShipment(ctx, host, note)
	case ActionTrackPackage:
		host.OpenURL(carrier.TrackingURL(note.Carrier(), note.TrackingNumber))
		return nil
	case ActionDownloadLabel:
		host.OpenURL(note.ShippingLabelURL)
		return nil
	}
	return fmt.Errorf("%s has no handler: %w", action, model.ErrActionNotAllowed)
}

func (e *Extension) createShipment(ctx context.Context, host Host, note model.DeliveryNote) error {
	host.Freeze(e.tr.T("Creating shipment..."))
	result, err := e.caller.CreateShipment(ctx, note.Name)
	host.Unfreeze()

	if err != nil {
		logrus.Debugf("create_shipment for %s failed: %v", note.Name, err)
		host.MsgPrint(Message{
			Title:     e.tr.T("Error"),
			Message:   e.failureMessage(err),
			Indicator: IndicatorRed,
		})
		return nil
	}
	if result == nil {
		return nil
	}

	host.ShowAlert(Alert{
		Message:   e.tr.T("Shipment created: {0}", result.TrackingNumber),
		Indicator: IndicatorGreen,
	})
	return host.ReloadDoc(ctx)
}

// failureMessage is the server supplied message, or the generic text when there is none.
func (e *Extension) failureMessage(err error) string {
	var remoteErr *model.RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Message != "" {
		return remoteErr.Message
	}
	return e.tr.T("Failed to create shipment")
}

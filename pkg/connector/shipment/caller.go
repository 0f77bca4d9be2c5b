package shipment

import (
	"context"
	"time"

	"github.com/inoova/shipping-connector/pkg/connector/model"
)

// Caller runs create_shipment in process for panels rendered by this server.
// Failures come back as *model.RemoteError, the same as through the HTTP client.
type Caller struct {
	ctrl      Controller
	requester string
}

func NewCaller(ctrl Controller, requester string) *Caller {
	return &Caller{ctrl: ctrl, requester: requester}
}

func (c *Caller) CreateShipment(ctx context.Context, deliveryNote string) (*model.ShipmentResult, error) {
	result, err := c.ctrl.Create(ctx, time.Now().Unix(), CreateShipmentRequest{
		DeliveryNote: deliveryNote,
		Requester:    c.requester,
	})
	if err != nil {
		return nil, &model.RemoteError{
			StatusCode: model.ErrorToHttpStatus(err),
			Message:    err.Error(),
		}
	}
	return &result, nil
}

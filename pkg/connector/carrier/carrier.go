package carrier

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/sirupsen/logrus"
)

// ShipmentRequest is the carrier independent description of a parcel booking.
type ShipmentRequest struct {
	Reference string        // Delivery Note name.
	Recipient string        // Name printed on the label.
	Address   model.Address // Delivery address. CountryCode is always set.
	Weight    model.Decimal // Total weight in kg.
	Comment   string        // Free text on the parcel, e.g. the shop order number.
	ShipperID string        // Carrier customer/shipper account, when the carrier needs one.
}

// Carrier books shipments and reports parcel status at one logistics company.
type Carrier interface {
	Code() string
	CreateShipment(ctx context.Context, req ShipmentRequest) (model.ShipmentResult, error)
	TrackingStatus(ctx context.Context, trackingNumber string) (model.ShippingStatus, error)
}

type Registry struct {
	mu          sync.RWMutex
	carriers    map[string]Carrier
	defaultCode string
}

func NewRegistry(carriers ...Carrier) *Registry {
	r := &Registry{
		carriers:    make(map[string]Carrier),
		defaultCode: model.DefaultCarrier,
	}
	for _, c := range carriers {
		r.Register(c)
	}
	return r
}

func (r *Registry) Register(c Carrier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carriers[strings.ToUpper(c.Code())] = c
}

// Get returns the carrier registered for code.
func (r *Registry) Get(code string) (Carrier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carriers[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, fmt.Errorf("%q is not configured. %w", code, model.ErrCarrierUnsupported)
	}
	return c, nil
}

// Default returns the carrier used for new shipments.
func (r *Registry) Default() (Carrier, error) {
	return r.Get(r.defaultCode)
}

// NewRegistryWithConfig registers GLS as the default carrier. Without GLS
// credentials a Demo carrier books the shipments in its place.
func NewRegistryWithConfig(gls GLSConfig) *Registry {
	if gls.Configured() {
		return NewRegistry(NewGLS(gls))
	}

	logrus.Warn("GLS credentials are not configured. Shipments are created in demo mode.")
	return NewRegistry(NewDemo(CodeGLS, 0))
}

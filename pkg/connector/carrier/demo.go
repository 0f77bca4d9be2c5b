package carrier

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/sirupsen/logrus"
)

// Demo stands in for GLS when no credentials are configured.
// It hands out DEMO tracking numbers and never produces a label.
type Demo struct {
	code string

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewDemo(code string, seed int64) *Demo {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Demo{
		code: code,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

func (d *Demo) Code() string {
	return d.code
}

func (d *Demo) CreateShipment(ctx context.Context, req ShipmentRequest) (model.ShipmentResult, error) {
	d.mu.Lock()
	n := 100000000 + d.rnd.Intn(900000000)
	d.mu.Unlock()

	logrus.Warnf("%s not configured - Demo mode (delivery note %s)", d.code, req.Reference)
	return model.ShipmentResult{
		TrackingNumber: fmt.Sprintf("DEMO%d", n),
		Carrier:        d.code,
		Demo:           true,
	}, nil
}

func (d *Demo) TrackingStatus(ctx context.Context, trackingNumber string) (model.ShippingStatus, error) {
	return "", model.ErrTrackingNotSupported
}

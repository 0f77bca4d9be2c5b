package carrier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/goccy/go-json"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/util"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultGLSAPIURL  = "https://api.gls-group.eu/public/v1"
	GLSSandboxAPIURL  = "https://api.gls-group.eu/public/v1/sandbox"
	defaultGLSTimeout = 30
)

type GLSConfig struct {
	APIURL      string `yaml:"api_url"`
	ContactID   string `yaml:"contact_id"`
	Password    string `yaml:"password"`
	CustomerID  string `yaml:"customer_id"`
	Sandbox     *bool  `yaml:"sandbox"`      // Defaults to true.
	Timeout     int    `yaml:"timeout"`      // Seconds.
	TrackingURL string `yaml:"tracking_url"` // Partner tracking API. Status lookups are disabled when empty.
	MaxRetry    int    `yaml:"max_retry"`    // Attempts for status lookups.
}

// Configured reports whether real GLS credentials are present.
func (c GLSConfig) Configured() bool {
	return c.ContactID != ""
}

func (c GLSConfig) shipmentsURL() string {
	base := c.APIURL
	if base == "" {
		base = DefaultGLSAPIURL
	}
	if c.Sandbox == nil || *c.Sandbox {
		base = GLSSandboxAPIURL
	}
	return strings.TrimRight(base, "/") + "/shipments"
}

type glsDeliveryAddress struct {
	Name1       string `json:"name1"`
	Street1     string `json:"street1"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
}

type glsParcel struct {
	Weight  float64 `json:"weight"`
	Comment string  `json:"comment"`
}

type glsShipmentRequest struct {
	ShipperID  string   `json:"shipperId"`
	References []string `json:"references"`
	Addresses  struct {
		Delivery glsDeliveryAddress `json:"delivery"`
	} `json:"addresses"`
	Parcels []glsParcel `json:"parcels"`
}

type glsShipmentResponse struct {
	Parcels []struct {
		TrackingNumber string `json:"trackingNumber"`
		LabelURL       string `json:"labelUrl"`
	} `json:"parcels"`
}

type glsTrackingResponse struct {
	Status string `json:"status"`
}

type GLSOption func(c *GLS)

func GLSWithHTTPClient(client *http.Client) GLSOption {
	return func(c *GLS) {
		c.client = client
	}
}

// GLS books parcels through the GLS public shipment API.
type GLS struct {
	cfg    GLSConfig
	client *http.Client
}

func NewGLS(cfg GLSConfig, opts ...GLSOption) *GLS {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGLSTimeout
	}
	if cfg.MaxRetry <= 0 {
		cfg.MaxRetry = 3
	}

	c := &GLS{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *GLS) Code() string {
	return CodeGLS
}

// CreateShipment posts one parcel. It is not retried because a booking is not idempotent.
func (c *GLS) CreateShipment(ctx context.Context, req ShipmentRequest) (model.ShipmentResult, error) {
	ctx, span := otlp_util.Start(ctx, "carrier/gls.CreateShipment",
		trace.WithAttributes(attribute.String("reference", req.Reference)),
	)
	defer span.End()

	body := glsShipmentRequest{
		ShipperID:  req.ShipperID,
		References: []string{req.Reference},
		Parcels: []glsParcel{
			{Weight: req.Weight.Float64(), Comment: req.Comment},
		},
	}
	if body.ShipperID == "" {
		body.ShipperID = c.cfg.CustomerID
	}
	body.Addresses.Delivery = glsDeliveryAddress{
		Name1:       req.Recipient,
		Street1:     req.Address.Line1,
		ZipCode:     req.Address.Pincode,
		City:        req.Address.City,
		CountryCode: req.Address.CountryCode,
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.shipmentsURL(), util.StructToJSONReader(body))
	if err != nil {
		return model.ShipmentResult{}, fmt.Errorf("create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.cfg.ContactID, c.cfg.Password)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return model.ShipmentResult{}, fmt.Errorf("GLS Error: %s%w", err.Error(), model.ErrCarrierError)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.ShipmentResult{}, fmt.Errorf("GLS Error: read response: %s%w", err.Error(), model.ErrCarrierError)
	}
	if resp.StatusCode/100 != 2 {
		logrus.Debugf("GLS returned %d: %s", resp.StatusCode, string(raw))
		return model.ShipmentResult{}, fmt.Errorf("GLS Error: unexpected status code %d%w", resp.StatusCode, model.ErrCarrierError)
	}

	var glsResp glsShipmentResponse
	if err := json.Unmarshal(raw, &glsResp); err != nil {
		return model.ShipmentResult{}, fmt.Errorf("GLS Error: decode response: %s%w", err.Error(), model.ErrCarrierError)
	}
	if len(glsResp.Parcels) == 0 || glsResp.Parcels[0].TrackingNumber == "" {
		return model.ShipmentResult{}, fmt.Errorf("GLS Error: no tracking number in response%w", model.ErrCarrierError)
	}

	span.SetAttributes(attribute.String("tracking_number", glsResp.Parcels[0].TrackingNumber))
	return model.ShipmentResult{
		TrackingNumber: glsResp.Parcels[0].TrackingNumber,
		LabelURL:       glsResp.Parcels[0].LabelURL,
		Carrier:        CodeGLS,
	}, nil
}

// TrackingStatus asks the partner tracking API for the parcel status.
func (c *GLS) TrackingStatus(ctx context.Context, trackingNumber string) (model.ShippingStatus, error) {
	if c.cfg.TrackingURL == "" {
		return "", model.ErrTrackingNotSupported
	}

	ctx, span := otlp_util.Start(ctx, "carrier/gls.TrackingStatus",
		trace.WithAttributes(attribute.String("tracking_number", trackingNumber)),
	)
	defer span.End()

	endpoint, err := url.JoinPath(c.cfg.TrackingURL, url.PathEscape(trackingNumber))
	if err != nil {
		return "", fmt.Errorf("build tracking url: %w", err)
	}

	var trackingResp glsTrackingResponse
	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Accept", "application/json")
			req.SetBasicAuth(c.cfg.ContactID, c.cfg.Password)

			resp, err := c.client.Do(req)
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode == http.StatusNotFound {
				return retry.Unrecoverable(fmt.Errorf("tracking number %q unknown to GLS", trackingNumber))
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status code: %v", resp.StatusCode)
			}
			return json.NewDecoder(resp.Body).Decode(&trackingResp)
		},
		retry.Attempts(uint(c.cfg.MaxRetry)),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		return "", fmt.Errorf("GLS Error: %s%w", err.Error(), model.ErrCarrierError)
	}

	return mapGLSStatus(trackingResp.Status), nil
}

func mapGLSStatus(status string) model.ShippingStatus {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "DELIVERED", "DELIVEREDPS":
		return model.ShippingStatusDelivered
	case "RETURNED", "NOTDELIVERED_RETURNED":
		return model.ShippingStatusReturned
	case "INTRANSIT", "INWAREHOUSE", "INDELIVERY", "IN_TRANSIT":
		return model.ShippingStatusInTransit
	case "PREADVICE", "PLANNEDPICKUP", "":
		return model.ShippingStatusLabelCreated
	default:
		return model.ShippingStatus(status)
	}
}

// Package client calls the connector's remote methods the way the Delivery Note panel does.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/sirupsen/logrus"
)

const (
	MethodCreateShipment    = "shipping_connector.api.create_shipment"
	MethodGetTrackingStatus = "shipping_connector.api.get_tracking_status"
)

type OptionFunc func(c *Client)

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithAPIKey authenticates every call with an "ID:SECRET" API key string.
func WithAPIKey(apiKey string) OptionFunc {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL string, opts ...OptionFunc) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type createShipmentRequest struct {
	DeliveryNote string `json:"delivery_note"`
}

type methodResponse[T any] struct {
	Message *T `json:"message"`
}

type resourceResponse[T any] struct {
	Data T `json:"data"`
}

// CreateShipment calls create_shipment for the named Delivery Note.
// A response without a message yields a nil result and a nil error.
func (c *Client) CreateShipment(ctx context.Context, deliveryNote string) (*model.ShipmentResult, error) {
	var resp methodResponse[model.ShipmentResult]
	err := c.do(ctx, http.MethodPost, "/api/method/"+MethodCreateShipment, createShipmentRequest{DeliveryNote: deliveryNote}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Message, nil
}

func (c *Client) GetTrackingStatus(ctx context.Context, trackingNumber string) (model.TrackingStatus, error) {
	var resp methodResponse[model.TrackingStatus]
	path := "/api/method/" + MethodGetTrackingStatus + "?tracking_number=" + url.QueryEscape(trackingNumber)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return model.TrackingStatus{}, err
	}
	if resp.Message == nil {
		return model.TrackingStatus{Status: model.TrackingStatusUnknown, TrackingNumber: trackingNumber}, nil
	}
	return *resp.Message, nil
}

func (c *Client) GetDeliveryNote(ctx context.Context, name string) (model.DeliveryNote, error) {
	var resp resourceResponse[model.DeliveryNote]
	path := "/api/resource/" + url.PathEscape(model.DeliveryNoteDocType) + "/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return model.DeliveryNote{}, err
	}
	return resp.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "token "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.Debugf("%s %s returned %d: %s", method, path, resp.StatusCode, string(raw))
		return &model.RemoteError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// errorMessage extracts the human readable message of an error response, if any.
func errorMessage(raw []byte) string {
	var body struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if msg, ok := body.Message.(string); ok {
		return strings.TrimSpace(msg)
	}
	return ""
}

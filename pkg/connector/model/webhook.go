package model

type WebhookEventType string

const (
	WebhookEventShipmentCreated       WebhookEventType = "shipment.created"
	WebhookEventShipmentStatusUpdated WebhookEventType = "shipment.status_updated"
)

var WebhookEventTypes = []WebhookEventType{
	WebhookEventShipmentCreated,
	WebhookEventShipmentStatusUpdated,
}

type Webhook struct {
	ID            string             `json:"id"`                // Unique ID of a Webhook.
	Version       int64              `json:"version"`           // Version of the Webhook.
	ApplicationID string             `json:"application_id"`    // The API key (application) this Webhook belongs to.
	Url           string             `json:"url"`               // The URL the WebhookEvent sent to.
	Events        []WebhookEventType `json:"events"`            // List of events to trigger the Webhook.
	Secret        string             `json:"secret,omitempty"`  // Secret used to sign the payload (JWS HS256).
	CreatedAt     int64              `json:"created_at"`        // Unix Time (in second) when the Webhook was created.
	CreatedBy     string             `json:"created_by"`        // Who created the Webhook.
	UpdatedAt     int64              `json:"updated_at"`        // Unix Time (in second) when the Webhook was last updated.
	UpdatedBy     string             `json:"updated_by"`        // Who last updated the Webhook.
	Deleted       bool               `json:"deleted,omitempty"` // Whether the Webhook is deleted.
}

// WebhookEvent is the payload POSTed to subscribers.
type WebhookEvent struct {
	ID             string           `json:"id"`   // Name of the Delivery Note.
	Url            string           `json:"url"`  // The URL the WebhookEvent sent to.
	Type           WebhookEventType `json:"type"` // Type of the event.
	Carrier        string           `json:"carrier,omitempty"`
	TrackingNumber string           `json:"tracking_number,omitempty"`
	ShippingStatus ShippingStatus   `json:"shipping_status,omitempty"`
	ShopifyOrderID string           `json:"shopify_order_id,omitempty"`
	CreatedAt      int64            `json:"created_at"` // Unix Time (in second) when the WebhookEvent was created.
}

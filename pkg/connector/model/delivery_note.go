package model

import "strings"

type DocStatus int

const (
	DocStatusDraft     DocStatus = 0
	DocStatusSubmitted DocStatus = 1
	DocStatusCancelled DocStatus = 2
)

const DeliveryNoteDocType = "Delivery Note"

type ShippingStatus string

const (
	ShippingStatusLabelCreated ShippingStatus = "Label Created"
	ShippingStatusInTransit    ShippingStatus = "In Transit"
	ShippingStatusDelivered    ShippingStatus = "Delivered"
	ShippingStatusReturned     ShippingStatus = "Returned"
)

// IsFinal reports whether no further tracking updates are expected.
func (s ShippingStatus) IsFinal() bool {
	return s == ShippingStatusDelivered || s == ShippingStatusReturned
}

type Address struct {
	Title       string `json:"address_title,omitempty"`
	Line1       string `json:"address_line1"`
	Pincode     string `json:"pincode"`
	City        string `json:"city"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"` // ISO 3166-1 alpha-2
}

type DeliveryNoteItem struct {
	ItemCode    string   `json:"item_code"`
	Qty         Decimal  `json:"qty"`
	TotalWeight *Decimal `json:"total_weight,omitempty"` // kg
}

// DeliveryNote is the subset of the ERP Delivery Note the connector reads and updates.
type DeliveryNote struct {
	Name      string    `json:"name"`
	DocStatus DocStatus `json:"docstatus"`
	Version   int64     `json:"version"`

	CustomerName       string             `json:"customer_name,omitempty"`
	ShippingAddress    *Address           `json:"shipping_address,omitempty"`
	Items              []DeliveryNoteItem `json:"items,omitempty"`
	ShopifyOrderID     string             `json:"shopify_order_id,omitempty"`
	ShopifyOrderNumber string             `json:"shopify_order_number,omitempty"`

	// Shipping custom fields. Written only by the connector.
	ShippingCarrier  string         `json:"shipping_carrier,omitempty"`
	TrackingNumber   string         `json:"tracking_number,omitempty"`
	ShippingStatus   ShippingStatus `json:"shipping_status,omitempty"`
	ShippingLabelURL string         `json:"shipping_label_url,omitempty"`

	UpdatedAt int64  `json:"updated_at"`
	UpdatedBy string `json:"updated_by,omitempty"`
}

func (n DeliveryNote) HasTrackingNumber() bool {
	return strings.TrimSpace(n.TrackingNumber) != ""
}

func (n DeliveryNote) HasLabel() bool {
	return strings.TrimSpace(n.ShippingLabelURL) != ""
}

// Carrier returns the shipping carrier code, DefaultCarrier when unset.
func (n DeliveryNote) Carrier() string {
	if c := strings.TrimSpace(n.ShippingCarrier); c != "" {
		return c
	}
	return DefaultCarrier
}

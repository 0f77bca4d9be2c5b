package model

// DefaultCarrier is used whenever a Delivery Note does not name its carrier.
const DefaultCarrier = "GLS"

// ShipmentResult is returned by create_shipment.
type ShipmentResult struct {
	TrackingNumber string `json:"tracking_number"`
	LabelURL       string `json:"label_url,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
	Demo           bool   `json:"demo,omitempty"`
}

type TrackingStatus struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number"`
}

const TrackingStatusUnknown = "unknown"

package model

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidParameter = errors.New("")   // Base error for invalid parameter
var ErrDeliveryNoteError = errors.New("")  // Base error for Delivery Note
var ErrShipmentError = errors.New("")      // Base error for shipment creation
var ErrCarrierError = errors.New("")       // Base error for carrier integrations
var ErrAPIKeyError = errors.New("")        // Base error for API key
var ErrWebhookError = errors.New("")       // Base error for Webhook
var ErrPanelActionError = errors.New("")   // Base error for panel actions

// Delivery Note errors
var ErrDeliveryNoteNotFound = fmt.Errorf("delivery note not found%w", ErrDeliveryNoteError)
var ErrDeliveryNoteNotSubmitted = fmt.Errorf("Delivery Note must be submitted%w", ErrDeliveryNoteError)
var ErrShippingAddressRequired = fmt.Errorf("Shipping address required%w", ErrDeliveryNoteError)

// Shipment errors
var ErrShipmentAlreadyExists = fmt.Errorf("Shipment already exists%w", ErrShipmentError)
var ErrShipmentInProgress = fmt.Errorf("Shipment is already being created%w", ErrShipmentError)

// Carrier errors
var ErrCarrierUnsupported = fmt.Errorf("carrier not supported%w", ErrCarrierError)
var ErrTrackingNotSupported = fmt.Errorf("tracking status not supported%w", ErrCarrierError)

// API key errors
var ErrInvalidAPIKeyString = fmt.Errorf("invalid API key string%w", ErrAPIKeyError)
var ErrMismatchAPIKey = fmt.Errorf("mismatch API key%w", ErrAPIKeyError)
var ErrRevokedAPIKey = fmt.Errorf("revoked API key%w", ErrAPIKeyError)
var ErrAPIKeyNotFound = fmt.Errorf("API key not found%w", ErrAPIKeyError)

// Webhook errors
var ErrWebhookUnreachable = fmt.Errorf("webhook unreachable%w", ErrWebhookError)

// Panel errors
var ErrActionNotAllowed = fmt.Errorf("action not allowed%w", ErrPanelActionError)

// RemoteError is the failure of a remote method call as seen by the caller.
// Message is the server supplied, human readable text and may be empty.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote call failed with status %d", e.StatusCode)
	}
	return e.Message
}

// ErrorToHttpStatus maps a service error to the HTTP status returned to the caller.
func ErrorToHttpStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrDeliveryNoteNotFound), errors.Is(err, ErrAPIKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrShipmentAlreadyExists), errors.Is(err, ErrShipmentInProgress), errors.Is(err, ErrActionNotAllowed):
		return http.StatusConflict
	case errors.Is(err, ErrDeliveryNoteError):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrAPIKeyError):
		return http.StatusUnauthorized
	case errors.Is(err, ErrCarrierError):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

package shipment

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/inoova/shipping-connector/pkg/connector/model"
)

func ValidateCreateShipmentRequest(req CreateShipmentRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.DeliveryNote, validation.Required, validation.Length(1, 140)),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidateTrackingNumber(trackingNumber string) error {
	if err := validation.Validate(trackingNumber, validation.Required.Error("tracking_number: cannot be blank")); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

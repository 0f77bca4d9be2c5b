package delivery_note

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/inoova/shipping-connector/pkg/connector/model"
)

func ValidateName(name string) error {
	if err := validation.Validate(name, validation.Required.Error("name: cannot be blank"), validation.Length(1, 140)); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

func ValidatePutDeliveryNoteRequest(req PutDeliveryNoteRequest) error {
	note := req.DeliveryNote
	if err := validation.ValidateStruct(&note,
		validation.Field(&note.Name, validation.Required, validation.Length(1, 140)),
		validation.Field(&note.DocStatus, validation.In(model.DocStatusDraft, model.DocStatusSubmitted, model.DocStatusCancelled)),
	); err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	if note.ShippingAddress != nil {
		addr := *note.ShippingAddress
		if err := validation.ValidateStruct(&addr,
			validation.Field(&addr.Line1, validation.Required),
			validation.Field(&addr.City, validation.Required),
			validation.Field(&addr.CountryCode, validation.Length(2, 2)),
		); err != nil {
			return fmt.Errorf("shipping_address: %s%w", err.Error(), model.ErrInvalidParameter)
		}
	}
	return nil
}

package webhook

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/inoova/shipping-connector/pkg/connector/model"
)

func ValidateCreateWebhookRequest(req CreateWebhookRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ApplicationID, validation.Required),
		validation.Field(&req.Events, validation.Required, validation.Each(validation.In(
			model.WebhookEventShipmentCreated,
			model.WebhookEventShipmentStatusUpdated,
		))),
		validation.Field(&req.Secret, validation.Required),
		validation.Field(&req.Url, validation.Required, is.URL),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateListWebhookRequest(req ListWebhookRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Limit, validation.Required, validation.Max(100)),
		validation.Field(&req.Offset, validation.Min(0)),
		validation.Field(&req.ApplicationID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

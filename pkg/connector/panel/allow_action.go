package panel

import (
	"fmt"

	"github.com/inoova/shipping-connector/pkg/connector/model"
)

var _actionLabels = map[Action]string{
	ActionCreateShipment: "Create Shipment",
	ActionTrackPackage:   "Track Package",
	ActionDownloadLabel:  "Download Label",
}

type _AllowActionChecker func(note model.DeliveryNote, withDetail bool) error

var _allowActionChecker = map[Action]_AllowActionChecker{
	ActionCreateShipment: IsShipmentCreatable,
	ActionTrackPackage:   IsPackageTrackable,
	ActionDownloadLabel:  IsLabelDownloadable,
}

// GetAllowActions returns the actions offered for note, in button order.
func GetAllowActions(note model.DeliveryNote) []Action {
	actionList := []Action{
		ActionCreateShipment,
		ActionTrackPackage,
		ActionDownloadLabel,
	}

	var actions []Action
	for _, action := range actionList {
		if err := CheckAllowAction(action, note, false); err == nil {
			actions = append(actions, action)
		}
	}
	return actions
}

func CheckAllowAction(action Action, note model.DeliveryNote, withDetail bool) error {
	checker, ok := _allowActionChecker[action]
	if !ok && withDetail {
		return fmt.Errorf("%s is unknown action: %w", action, model.ErrActionNotAllowed)
	} else if !ok {
		return model.ErrActionNotAllowed
	}

	return checker(note, withDetail)
}

func IsShipmentCreatable(note model.DeliveryNote, withDetail bool) error {
	if note.DocStatus != model.DocStatusSubmitted {
		if withDetail {
			return fmt.Errorf("delivery note is not submitted: %w", model.ErrActionNotAllowed)
		}
		return model.ErrActionNotAllowed
	}

	if note.HasTrackingNumber() {
		if withDetail {
			return fmt.Errorf("shipment already created: %w", model.ErrActionNotAllowed)
		}
		return model.ErrActionNotAllowed
	}

	return nil
}

func IsPackageTrackable(note model.DeliveryNote, withDetail bool) error {
	if !note.HasTrackingNumber() {
		if withDetail {
			return fmt.Errorf("no tracking number: %w", model.ErrActionNotAllowed)
		}
		return model.ErrActionNotAllowed
	}

	return nil
}

func IsLabelDownloadable(note model.DeliveryNote, withDetail bool) error {
	if !note.HasLabel() {
		if withDetail {
			return fmt.Errorf("no shipping label: %w", model.ErrActionNotAllowed)
		}
		return model.ErrActionNotAllowed
	}

	return nil
}

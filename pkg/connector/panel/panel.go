// Package panel is the Delivery Note panel extension: it decides which
// shipping actions a record view offers and runs them against the host view.
package panel

import (
	"context"

	"github.com/inoova/shipping-connector/pkg/connector/i18n"
	"github.com/inoova/shipping-connector/pkg/connector/model"
)

type Action string

const (
	ActionCreateShipment Action = "create_shipment"
	ActionTrackPackage   Action = "track_package"
	ActionDownloadLabel  Action = "download_label"
)

const (
	IndicatorBlue  = "blue"
	IndicatorGreen = "green"
	IndicatorRed   = "red"
)

type Button struct {
	Action Action `json:"action"`
	Label  string `json:"label"`
	Group  string `json:"group"`
}

type Indicator struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// View is what the extension adds to one rendering of a Delivery Note.
type View struct {
	DocType    string      `json:"doctype"`
	Name       string      `json:"name"`
	Buttons    []Button    `json:"buttons"`
	Indicators []Indicator `json:"indicators"`
}

// Groups returns the button groups in first-seen order.
func (v View) Groups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, b := range v.Buttons {
		if !seen[b.Group] {
			seen[b.Group] = true
			groups = append(groups, b.Group)
		}
	}
	return groups
}

func (v View) Has(action Action) bool {
	for _, b := range v.Buttons {
		if b.Action == action {
			return true
		}
	}
	return false
}

// Alert is a transient notification.
type Alert struct {
	Message   string `json:"message"`
	Indicator string `json:"indicator"`
}

// Message is a blocking dialog.
type Message struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Indicator string `json:"indicator"`
}

// Host is the record view the extension is attached to.
type Host interface {
	// Freeze blocks user input and shows message until Unfreeze.
	Freeze(message string)
	Unfreeze()
	ShowAlert(alert Alert)
	MsgPrint(msg Message)
	// ReloadDoc re-fetches the record from the server and renders it again.
	ReloadDoc(ctx context.Context) error
	// OpenURL opens url in a new browsing context.
	OpenURL(url string)
}

// ShipmentCaller invokes the remote create_shipment operation.
// A nil result with a nil error means the call returned no value.
type ShipmentCaller interface {
	CreateShipment(ctx context.Context, deliveryNote string) (*model.ShipmentResult, error)
}

type OptionFunc func(e *Extension)

func WithTranslator(tr *i18n.Translator) OptionFunc {
	return func(e *Extension) {
		e.tr = tr
	}
}

type Extension struct {
	caller ShipmentCaller
	tr     *i18n.Translator
}

func NewDeliveryNoteExtension(caller ShipmentCaller, opts ...OptionFunc) *Extension {
	e := &Extension{
		caller: caller,
		tr:     i18n.English(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Refresh evaluates every rule against the current field values. It has no side effects.
func (e *Extension) Refresh(note model.DeliveryNote) View {
	view := View{
		DocType:    model.DeliveryNoteDocType,
		Name:       note.Name,
		Buttons:    []Button{},
		Indicators: []Indicator{},
	}

	group := e.tr.T("Shipping")
	for _, action := range GetAllowActions(note) {
		view.Buttons = append(view.Buttons, Button{
			Action: action,
			Label:  e.tr.T(_actionLabels[action]),
			Group:  group,
		})
	}

	if note.HasTrackingNumber() {
		view.Indicators = append(view.Indicators, Indicator{
			Label: e.tr.T("Tracking: {0}", note.TrackingNumber),
			Color: IndicatorBlue,
		})
	}

	return view
}

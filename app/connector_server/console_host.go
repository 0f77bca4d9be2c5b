package main

import (
	"context"
	"fmt"
	"io"

	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/panel"
	"github.com/sirupsen/logrus"
)

type noteLoader interface {
	GetDeliveryNote(ctx context.Context, name string) (model.DeliveryNote, error)
}

// consoleHost shows the panel of one Delivery Note on a terminal.
type consoleHost struct {
	out    io.Writer
	ext    *panel.Extension
	loader noteLoader
	name   string
	failed bool
}

func (h *consoleHost) Freeze(message string) {
	fmt.Fprintln(h.out, message)
}

func (h *consoleHost) Unfreeze() {}

func (h *consoleHost) ShowAlert(alert panel.Alert) {
	fmt.Fprintln(h.out, alert.Message)
}

func (h *consoleHost) MsgPrint(msg panel.Message) {
	if msg.Indicator == panel.IndicatorRed {
		h.failed = true
	}
	fmt.Fprintf(h.out, "%s: %s\n", msg.Title, msg.Message)
}

func (h *consoleHost) ReloadDoc(ctx context.Context) error {
	note, err := h.loader.GetDeliveryNote(ctx, h.name)
	if err != nil {
		return err
	}
	h.print(note)
	return nil
}

func (h *consoleHost) OpenURL(url string) {
	fmt.Fprintln(h.out, url)
}

func (h *consoleHost) print(note model.DeliveryNote) {
	view := h.ext.Refresh(note)
	fmt.Fprintf(h.out, "%s %s\n", view.DocType, view.Name)
	for _, indicator := range view.Indicators {
		fmt.Fprintf(h.out, "  [%s]\n", indicator.Label)
	}
	for _, button := range view.Buttons {
		fmt.Fprintf(h.out, "  %s > %s (%s)\n", button.Group, button.Label, button.Action)
	}
	logrus.Debugf("%s rendered with %d buttons", note.Name, len(view.Buttons))
}

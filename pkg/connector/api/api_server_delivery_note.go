package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/inoova/shipping-connector/pkg/connector/carrier"
	"github.com/inoova/shipping-connector/pkg/connector/delivery_note"
	"github.com/inoova/shipping-connector/pkg/connector/i18n"
	"github.com/inoova/shipping-connector/pkg/connector/middleware"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/panel"
	"github.com/sirupsen/logrus"
)

func (a *API) getDeliveryNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]

	note, err := a.noteCtrl.Get(ctx, name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataEnvelope{Data: note})
}

func (a *API) putDeliveryNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requester, _ := ctx.Value(middleware.REQUESTER).(string)
	name := mux.Vars(r)["name"]

	var note model.DeliveryNote
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeJSON(w, http.StatusBadRequest, messageEnvelope{Message: err.Error()})
		return
	}
	if note.Name == "" {
		note.Name = name
	}
	if note.Name != name {
		writeJSON(w, http.StatusBadRequest, messageEnvelope{Message: "name does not match the path"})
		return
	}

	result, err := a.noteCtrl.Put(ctx, time.Now().Unix(), delivery_note.PutDeliveryNoteRequest{
		Requester:    requester,
		DeliveryNote: note,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dataEnvelope{Data: result})
}

// getPanelView returns the buttons and indicators the Delivery Note panel shows right now.
func (a *API) getPanelView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]

	note, err := a.noteCtrl.Get(ctx, name)
	if err != nil {
		writeError(w, err)
		return
	}

	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = a.defaultLanguage
	}
	tr, err := i18n.Load(lang)
	if err != nil {
		logrus.Warnf("failed to load %q translations: %v", lang, err)
		tr = i18n.English()
	}

	view := panel.NewDeliveryNoteExtension(nil, panel.WithTranslator(tr)).Refresh(note)
	writeJSON(w, http.StatusOK, messageEnvelope{Message: view})
}

func (a *API) getTrackingURL(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	trackingNumber := query.Get("tracking_number")
	if trackingNumber == "" {
		writeJSON(w, http.StatusBadRequest, messageEnvelope{Message: "tracking_number: cannot be blank"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url": carrier.TrackingURL(query.Get("carrier"), trackingNumber),
	})
}

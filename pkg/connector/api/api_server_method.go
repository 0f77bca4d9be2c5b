package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/inoova/shipping-connector/pkg/connector/middleware"
	"github.com/inoova/shipping-connector/pkg/connector/shipment"
)

func (a *API) createShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requester, _ := ctx.Value(middleware.REQUESTER).(string)

	var req shipment.CreateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageEnvelope{Message: err.Error()})
		return
	}
	req.Requester = requester

	result, err := a.shipmentCtrl.Create(ctx, time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageEnvelope{Message: result})
}

func (a *API) getTrackingStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trackingNumber := r.URL.Query().Get("tracking_number")

	result, err := a.shipmentCtrl.GetTrackingStatus(ctx, trackingNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageEnvelope{Message: result})
}

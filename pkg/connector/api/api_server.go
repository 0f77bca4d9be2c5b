package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/inoova/shipping-connector/frontend"
	"github.com/inoova/shipping-connector/pkg/connector/auth"
	"github.com/inoova/shipping-connector/pkg/connector/carrier"
	"github.com/inoova/shipping-connector/pkg/connector/client"
	"github.com/inoova/shipping-connector/pkg/connector/delivery_note"
	"github.com/inoova/shipping-connector/pkg/connector/i18n"
	"github.com/inoova/shipping-connector/pkg/connector/middleware"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/realtime"
	"github.com/inoova/shipping-connector/pkg/connector/shipment"
	"github.com/inoova/shipping-connector/pkg/connector/storage/postgres"
	"github.com/inoova/shipping-connector/pkg/connector/webhook"
	"github.com/inoova/shipping-connector/pkg/util"
	"github.com/sirupsen/logrus"
)

type APIConfig struct {
	Database        util.PostgresDatabaseConfig `yaml:"database"`
	LocalAddress    string                      `yaml:"local_address"`
	GLS             carrier.GLSConfig           `yaml:"gls"`
	DefaultLanguage string                      `yaml:"default_language"`
}

type APIOption func(a *API)

func WithDefaultLanguage(lang string) APIOption {
	return func(a *API) {
		a.defaultLanguage = lang
	}
}

type API struct {
	apiKeyMgr    auth.APIKeyAuthenticator
	noteCtrl     delivery_note.DeliveryNoteController
	shipmentCtrl shipment.Controller
	webhookCtrl  webhook.WebhookController
	hub          *realtime.Hub

	defaultLanguage string
	httpServer      *http.Server
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	storage, err := postgres.NewStorageWithConfig(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	hub := realtime.NewHub()
	apiKeyMgr := auth.NewAPIKeyAuthenticator(storage)
	noteCtrl := delivery_note.NewDeliveryNoteController(storage, hub)
	shipmentCtrl := shipment.NewController(storage, carrier.NewRegistryWithConfig(cfg.GLS), hub)
	webhookCtrl := webhook.NewWebhookController(storage)
	return NewAPIWithController(apiKeyMgr, noteCtrl, shipmentCtrl, webhookCtrl, hub, cfg.LocalAddress, WithDefaultLanguage(cfg.DefaultLanguage))
}

func NewAPIWithController(
	apiKeyMgr auth.APIKeyAuthenticator,
	noteCtrl delivery_note.DeliveryNoteController,
	shipmentCtrl shipment.Controller,
	webhookCtrl webhook.WebhookController,
	hub *realtime.Hub,
	localAddress string,
	opts ...APIOption,
) (*API, error) {
	apiServer := &API{
		apiKeyMgr:       apiKeyMgr,
		noteCtrl:        noteCtrl,
		shipmentCtrl:    shipmentCtrl,
		webhookCtrl:     webhookCtrl,
		hub:             hub,
		defaultLanguage: i18n.DefaultLanguage,
	}
	for _, opt := range opts {
		opt(apiServer)
	}
	if apiServer.defaultLanguage == "" {
		apiServer.defaultLanguage = i18n.DefaultLanguage
	}

	panelHandler := frontend.NewPanelHandler(noteCtrl, shipmentCtrl, frontend.WithDefaultLanguage(apiServer.defaultLanguage))

	r := mux.NewRouter()
	r.Use(middleware.Log, middleware.TimeTrace)
	r.HandleFunc("/health", apiServer.health).Methods(http.MethodGet)
	r.PathPrefix(frontend.StaticPrefix).Handler(frontend.Handler()).Methods(http.MethodGet)

	authRouter := r.NewRoute().Subrouter()
	authRouter.Use(middleware.NewAPIKeyAuth(apiServer.apiKeyMgr).Authenticate)
	authRouter.HandleFunc("/api/method/"+client.MethodCreateShipment, apiServer.createShipment).Methods(http.MethodPost)
	authRouter.HandleFunc("/api/method/"+client.MethodGetTrackingStatus, apiServer.getTrackingStatus).Methods(http.MethodGet)
	authRouter.HandleFunc("/api/resource/"+model.DeliveryNoteDocType+"/{name}", apiServer.getDeliveryNote).Methods(http.MethodGet)
	authRouter.HandleFunc("/api/resource/"+model.DeliveryNoteDocType+"/{name}", apiServer.putDeliveryNote).Methods(http.MethodPut)
	authRouter.HandleFunc("/api/resource/"+model.DeliveryNoteDocType+"/{name}/panel", apiServer.getPanelView).Methods(http.MethodGet)
	authRouter.HandleFunc("/tracking_url", apiServer.getTrackingURL).Methods(http.MethodGet)
	authRouter.HandleFunc("/webhook", apiServer.createWebhook).Methods(http.MethodPost)
	authRouter.HandleFunc("/webhook", apiServer.listWebhook).Methods(http.MethodGet)
	authRouter.HandleFunc("/ws/{name}", apiServer.serveRealtime).Methods(http.MethodGet)
	authRouter.HandleFunc(frontend.PanelPathPrefix+"{name}", panelHandler.Show).Methods(http.MethodGet)
	authRouter.HandleFunc(frontend.PanelPathPrefix+"{name}/action/{action}", panelHandler.Invoke).Methods(http.MethodPost)

	apiServer.httpServer = &http.Server{
		Addr:    localAddress,
		Handler: r,
	}
	return apiServer, nil
}

// Publisher notifies the panels this server streams to.
func (a *API) Publisher() realtime.Publisher {
	return a.hub
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	a.hub.Close()
	return a.httpServer.Shutdown(ctx)
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type messageEnvelope struct {
	Message any `json:"message"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("failed to encode/write response: %v", err)
	}
}

// writeError answers with the error text as message, which the panel shows to the user.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, model.ErrorToHttpStatus(err), messageEnvelope{Message: err.Error()})
}

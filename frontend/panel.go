package frontend

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/inoova/shipping-connector/pkg/connector/delivery_note"
	"github.com/inoova/shipping-connector/pkg/connector/i18n"
	"github.com/inoova/shipping-connector/pkg/connector/middleware"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/inoova/shipping-connector/pkg/connector/panel"
	"github.com/inoova/shipping-connector/pkg/connector/shipment"
	"github.com/sirupsen/logrus"
)

const PanelPathPrefix = "/app/delivery-note/"

var _templates = template.Must(template.ParseFS(Content, "templates/*.html"))

// Query parameters that carry the outcome of an action to the redirected page.
const (
	flashAlert          = "alert"
	flashAlertIndicator = "alert_indicator"
	flashTitle          = "msg_title"
	flashMessage        = "msg"
	flashMsgIndicator   = "msg_indicator"
)

// pageHost is the panel Host of one server rendered request. It records what
// the extension asked for so the response can show or follow it.
type pageHost struct {
	alert   *panel.Alert
	message *panel.Message
	openURL string
}

// flash encodes the alert and dialog of h into q.
func (h *pageHost) flash(q url.Values) {
	if h.alert != nil {
		q.Set(flashAlert, h.alert.Message)
		q.Set(flashAlertIndicator, h.alert.Indicator)
	}
	if h.message != nil {
		q.Set(flashTitle, h.message.Title)
		q.Set(flashMessage, h.message.Message)
		q.Set(flashMsgIndicator, h.message.Indicator)
	}
}

// hostFromFlash restores the alert and dialog a redirect carried in q.
func hostFromFlash(q url.Values) *pageHost {
	host := &pageHost{}
	if msg := q.Get(flashAlert); msg != "" {
		host.alert = &panel.Alert{Message: msg, Indicator: indicator(q.Get(flashAlertIndicator))}
	}
	if msg := q.Get(flashMessage); msg != "" {
		host.message = &panel.Message{Title: q.Get(flashTitle), Message: msg, Indicator: indicator(q.Get(flashMsgIndicator))}
	}
	return host
}

func indicator(color string) string {
	switch color {
	case panel.IndicatorBlue, panel.IndicatorGreen, panel.IndicatorRed:
		return color
	default:
		return ""
	}
}

// Freeze has no server side effect: the page script greys the panel while the form posts.
func (h *pageHost) Freeze(message string) {}
func (h *pageHost) Unfreeze()             {}

func (h *pageHost) ShowAlert(alert panel.Alert) { h.alert = &alert }

func (h *pageHost) MsgPrint(msg panel.Message) { h.message = &msg }

// ReloadDoc is answered by the redirect to the panel page, which reads the note again.
func (h *pageHost) ReloadDoc(ctx context.Context) error {
	return nil
}

func (h *pageHost) OpenURL(url string) { h.openURL = url }

type pageData struct {
	Lang      string
	Note      model.DeliveryNote
	View      panel.View
	Alert     *panel.Alert
	Message   *panel.Message
	APIKey    string
	PanelURL  string
	tr        *i18n.Translator
	actionURL func(panel.Action) string
}

func (d pageData) T(msg string, args ...any) string {
	return d.tr.T(msg, args...)
}

func (d pageData) ActionURL(action panel.Action) string {
	return d.actionURL(action)
}

// NewTab reports whether the button opens a page instead of changing the record.
func (d pageData) NewTab(action panel.Action) bool {
	return action == panel.ActionTrackPackage || action == panel.ActionDownloadLabel
}

func (d pageData) IsCreate(action panel.Action) bool {
	return action == panel.ActionCreateShipment
}

type PanelOption func(h *PanelHandler)

func WithDefaultLanguage(lang string) PanelOption {
	return func(h *PanelHandler) {
		h.defaultLanguage = lang
	}
}

type PanelHandler struct {
	notes           delivery_note.DeliveryNoteController
	shipments       shipment.Controller
	defaultLanguage string
}

func NewPanelHandler(notes delivery_note.DeliveryNoteController, shipments shipment.Controller, opts ...PanelOption) *PanelHandler {
	h := &PanelHandler{
		notes:           notes,
		shipments:       shipments,
		defaultLanguage: i18n.DefaultLanguage,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Show renders the Delivery Note panel. Route: GET /app/delivery-note/{name}
func (h *PanelHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := mux.Vars(r)["name"]

	note, err := h.notes.Get(ctx, name)
	if err != nil {
		http.Error(w, err.Error(), model.ErrorToHttpStatus(err))
		return
	}

	h.render(w, r, http.StatusOK, note, hostFromFlash(r.URL.Query()))
}

// Invoke runs a panel button. Route: POST /app/delivery-note/{name}/action/{action}
func (h *PanelHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	requester, _ := ctx.Value(middleware.REQUESTER).(string)

	note, err := h.notes.Get(ctx, vars["name"])
	if err != nil {
		http.Error(w, err.Error(), model.ErrorToHttpStatus(err))
		return
	}

	tr := h.translator(r)
	ext := panel.NewDeliveryNoteExtension(shipment.NewCaller(h.shipments, requester), panel.WithTranslator(tr))
	host := &pageHost{}
	err = ext.Invoke(ctx, host, note, panel.Action(vars["action"]))
	if errors.Is(err, model.ErrActionNotAllowed) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		logrus.Errorf("panel action %s on %s: %v", vars["action"], note.Name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if host.openURL != "" {
		http.Redirect(w, r, host.openURL, http.StatusSeeOther)
		return
	}

	q := panelQuery(tr.Language(), r.URL.Query().Get(middleware.APIKeyQueryParam))
	host.flash(q)
	http.Redirect(w, r, PanelURL(note.Name)+"?"+q.Encode(), http.StatusSeeOther)
}

// PanelURL is the path of the panel page of the named Delivery Note.
func PanelURL(name string) string {
	return PanelPathPrefix + url.PathEscape(name)
}

func (h *PanelHandler) render(w http.ResponseWriter, r *http.Request, status int, note model.DeliveryNote, host *pageHost) {
	tr := h.translator(r)
	apiKey := r.URL.Query().Get(middleware.APIKeyQueryParam)
	lang := tr.Language()

	data := pageData{
		Lang:     lang,
		Note:     note,
		View:     panel.NewDeliveryNoteExtension(nil, panel.WithTranslator(tr)).Refresh(note),
		Alert:    host.alert,
		Message:  host.message,
		APIKey:   apiKey,
		PanelURL: PanelURL(note.Name) + "?" + panelQuery(lang, apiKey).Encode(),
		tr:       tr,
		actionURL: func(action panel.Action) string {
			return PanelURL(note.Name) + "/action/" + string(action) + "?" + panelQuery(lang, apiKey).Encode()
		},
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := _templates.ExecuteTemplate(w, "delivery_note.html", data); err != nil {
		logrus.Warnf("failed to render panel of %s: %v", note.Name, err)
	}
}

// translator picks the language from ?lang=, then Accept-Language, then the default.
func (h *PanelHandler) translator(r *http.Request) *i18n.Translator {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = strings.TrimSpace(strings.SplitN(strings.SplitN(r.Header.Get("Accept-Language"), ",", 2)[0], ";", 2)[0])
	}
	if lang == "" {
		lang = h.defaultLanguage
	}

	tr, err := i18n.Load(lang)
	if err != nil {
		logrus.Warnf("failed to load %q translations: %v", lang, err)
		return i18n.English()
	}
	return tr
}

func panelQuery(lang, apiKey string) url.Values {
	q := url.Values{}
	q.Set("lang", lang)
	if apiKey != "" {
		q.Set(middleware.APIKeyQueryParam, apiKey)
	}
	return q
}

package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// serveRealtime streams doc_update events of one Delivery Note to an open panel.
func (a *API) serveRealtime(w http.ResponseWriter, r *http.Request) {
	a.hub.Serve(w, r, mux.Vars(r)["name"])
}

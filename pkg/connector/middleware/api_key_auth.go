package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/inoova/shipping-connector/pkg/connector/auth"
	"github.com/inoova/shipping-connector/pkg/connector/model"
)

const APIKeyQueryParam = "api_key"

type APIKeyAuth struct {
	auth auth.APIKeyAuthenticator
}

func NewAPIKeyAuth(auth auth.APIKeyAuthenticator) *APIKeyAuth {
	return &APIKeyAuth{
		auth: auth,
	}
}

func (a *APIKeyAuth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		apiKeyString := getAPIKeyString(r)
		if apiKeyString == "" {
			writeMessage(w, http.StatusUnauthorized, "missing API key")
			return
		}

		apiKey, err := a.auth.Authenticate(ctx, apiKeyString)
		if errors.Is(err, model.ErrAPIKeyError) {
			writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		} else if err != nil {
			writeMessage(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
			return
		}

		ctx = context.WithValue(ctx, APPLICATION_ID, apiKey.ID)
		ctx = context.WithValue(ctx, REQUESTER, apiKey.Name)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// getAPIKeyString accepts both "token ID:SECRET" and "Bearer ID:SECRET".
// Browsers cannot set headers on websocket and page requests, so the
// api_key query parameter is used when no Authorization header is sent.
func getAPIKeyString(r *http.Request) auth.APIKeyString {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return auth.APIKeyString(strings.TrimSpace(r.URL.Query().Get(APIKeyQueryParam)))
	}
	for _, scheme := range []string{"token ", "Bearer "} {
		if len(h) > len(scheme) && strings.EqualFold(h[:len(scheme)], scheme) {
			return auth.APIKeyString(strings.TrimSpace(h[len(scheme):]))
		}
	}
	return ""
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

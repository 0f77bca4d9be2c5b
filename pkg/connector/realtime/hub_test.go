package realtime_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/inoova/shipping-connector/pkg/connector/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublish(t *testing.T) {
	hub := realtime.NewHub()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, strings.TrimPrefix(r.URL.Path, "/ws/"))
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/MAT-DN-2024-00001"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Subscribers("MAT-DN-2024-00001") == 1 }, 5*time.Second, 10*time.Millisecond)

	hub.Publish("MAT-DN-2024-00002")
	hub.Publish("MAT-DN-2024-00001")

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var event realtime.Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, realtime.Event{Event: "doc_update", DocType: "Delivery Note", Name: "MAT-DN-2024-00001"}, event)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.Eventually(t, func() bool { return hub.Subscribers("MAT-DN-2024-00001") == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestHubPublishWithoutSubscribers(t *testing.T) {
	hub := realtime.NewHub()
	hub.Publish("MAT-DN-2024-00001")
	assert.Equal(t, 0, hub.Subscribers("MAT-DN-2024-00001"))
	hub.Close()
}

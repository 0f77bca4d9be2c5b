// Package realtime pushes document change notifications to open record views over websocket.
package realtime

import (
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/inoova/shipping-connector/pkg/connector/model"
	"github.com/sirupsen/logrus"
)

const (
	EventDocUpdate = "doc_update"

	sendBuffer = 16
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

type Event struct {
	Event   string `json:"event"`
	DocType string `json:"doctype"`
	Name    string `json:"name"`
}

// Publisher notifies viewers of a Delivery Note that it changed on the server.
type Publisher interface {
	Publish(name string)
}

type subscriber struct {
	send chan []byte
}

type Hub struct {
	mu          sync.Mutex
	subscribers map[string]map[*subscriber]struct{}
	wsUpgrader  websocket.Upgrader
}

type HubOption func(h *Hub)

// WithCheckOrigin replaces the same-origin check of the websocket upgrade.
func WithCheckOrigin(check func(r *http.Request) bool) HubOption {
	return func(h *Hub) {
		h.wsUpgrader.CheckOrigin = check
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		subscribers: make(map[string]map[*subscriber]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Publish sends a doc_update event for name to every subscriber of it.
// Subscribers that are not keeping up miss the event.
func (h *Hub) Publish(name string) {
	msg, err := json.Marshal(Event{Event: EventDocUpdate, DocType: model.DeliveryNoteDocType, Name: name})
	if err != nil {
		logrus.Errorf("failed to marshal realtime event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers[name] {
		select {
		case sub.send <- msg:
		default:
			logrus.Debugf("realtime subscriber of %s is slow, event dropped", name)
		}
	}
}

func (h *Hub) Subscribers(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[name])
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for name, subs := range h.subscribers {
		for sub := range subs {
			close(sub.send)
		}
		delete(h.subscribers, name)
	}
}

// Serve upgrades the request and streams events about name until the client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, name string) {
	c, err := h.wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Errorf("failed to upgrade websocket: %v", err)
		return
	}
	defer c.Close()

	sub := h.subscribe(name)
	defer h.unsubscribe(name, sub)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logrus.Debugf("realtime connection of %s closed: %v", name, err)
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			return
		case msg, ok := <-sub.send:
			_ = c.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				logrus.Warnf("failed to write realtime event: %v", err)
				return
			}
		case <-ticker.C:
			_ = c.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) subscribe(name string) *subscriber {
	sub := &subscriber{send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[name] == nil {
		h.subscribers[name] = make(map[*subscriber]struct{})
	}
	h.subscribers[name][sub] = struct{}{}
	return sub
}

func (h *Hub) unsubscribe(name string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.subscribers[name]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.send)
	if len(subs) == 0 {
		delete(h.subscribers, name)
	}
}

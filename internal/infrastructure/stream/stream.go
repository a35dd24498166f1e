// Package stream subscribes to the backend's update feed. The feed
// only announces that a listing or negotiation changed server-side; the
// subscriber hands each event to the application so it can refetch the
// authoritative record. Nothing here mutates negotiation state.
package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"nlistplanet/pkg/logger"
)

// Event is one update announcement from the backend.
type Event struct {
	Kind          string `json:"kind"`
	ListingID     string `json:"listing_id,omitempty"`
	NegotiationID string `json:"negotiation_id,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Handler receives decoded events. Called from the subscriber's read
// goroutine; implementations should hand off quickly.
type Handler func(Event)

// Subscriber maintains a websocket connection to the update feed,
// reconnecting with capped backoff when the connection drops.
type Subscriber struct {
	url     string
	tokens  interface{ AuthToken() string }
	handler Handler

	dialer         *websocket.Dialer
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// SubscriberOption configures a Subscriber.
type SubscriberOption func(*Subscriber)

// WithBackoff overrides the reconnect backoff bounds.
func WithBackoff(initial, max time.Duration) SubscriberOption {
	return func(s *Subscriber) {
		s.initialBackoff = initial
		s.maxBackoff = max
	}
}

// WithDialer sets a custom websocket dialer.
func WithDialer(d *websocket.Dialer) SubscriberOption {
	return func(s *Subscriber) {
		s.dialer = d
	}
}

func NewSubscriber(url string, tokens interface{ AuthToken() string }, handler Handler, opts ...SubscriberOption) *Subscriber {
	s := &Subscriber{
		url:            url,
		tokens:         tokens,
		handler:        handler,
		dialer:         websocket.DefaultDialer,
		initialBackoff: time.Second,
		maxBackoff:     30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run connects and reads events until the context is cancelled. Each
// dropped connection is retried with doubling backoff up to the cap.
func (s *Subscriber) Run(ctx context.Context) error {
	backoff := s.initialBackoff

	for {
		err := s.readLoop(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Warn("Update stream disconnected: %v; reconnecting in %s", err, backoff)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > s.maxBackoff {
			backoff = s.maxBackoff
		}
	}
}

func (s *Subscriber) readLoop(ctx context.Context) error {
	header := http.Header{}
	if token := s.tokens.AuthToken(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := s.dialer.DialContext(ctx, s.url, header)
	if err != nil {
		return err
	}
	defer conn.Close()
	logger.Info("Update stream connected: %s", s.url)

	// Unblock the read below when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			logger.Warn("Dropping malformed stream event: %v", err)
			continue
		}
		s.handler(event)
	}
}

package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) AuthToken() string { return string(s) }

// wsServer upgrades incoming connections and pushes the given messages.
func wsServer(t *testing.T, messages []string, gotAuth chan<- string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotAuth != nil {
			select {
			case gotAuth <- r.Header.Get("Authorization"):
			default:
			}
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		for _, m := range messages {
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(m)))
		}
		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestSubscriberReceivesEvents(t *testing.T) {
	gotAuth := make(chan string, 1)
	srv := wsServer(t, []string{
		`{"kind":"negotiation_updated","negotiation_id":"neg-1","status":"countered"}`,
		`not json`,
		`{"kind":"listing_updated","listing_id":"lst-1","status":"sold"}`,
	}, gotAuth)

	events := make(chan Event, 4)
	sub := NewSubscriber(wsURL(srv), staticToken("tok-1"), func(e Event) {
		events <- e
	}, WithBackoff(10*time.Millisecond, 50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sub.Run(ctx)

	first := <-events
	assert.Equal(t, "negotiation_updated", first.Kind)
	assert.Equal(t, "neg-1", first.NegotiationID)
	assert.Equal(t, "countered", first.Status)

	// The malformed frame is dropped, not fatal.
	second := <-events
	assert.Equal(t, "listing_updated", second.Kind)
	assert.Equal(t, "lst-1", second.ListingID)

	assert.Equal(t, "Bearer tok-1", <-gotAuth)
}

func TestSubscriberStopsOnCancel(t *testing.T) {
	srv := wsServer(t, nil, nil)

	sub := NewSubscriber(wsURL(srv), staticToken(""), func(Event) {},
		WithBackoff(10*time.Millisecond, 50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sub.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop on cancel")
	}
}

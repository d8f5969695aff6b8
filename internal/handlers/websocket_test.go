package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"person_registry/internal/auth"
	"person_registry/internal/models"
	"person_registry/internal/repository"
	"person_registry/internal/service"
)

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	u.Scheme = "ws"
	u.Path = "/ws"

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWebSocket_StreamsChangeEvents(t *testing.T) {
	feed := service.NewChangeFeed()
	router := newTestRouter(&service.Service{Feed: feed})

	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialWS(t, srv)

	// Give the handler a moment to subscribe before publishing.
	time.Sleep(50 * time.Millisecond)
	feed.Publish("person", service.ActionCreated, 42)

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if env.Type != "change" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}

	var ev service.ChangeEvent
	if err := json.Unmarshal(env.Data, &ev); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if ev.Entity != "person" || ev.Action != service.ActionCreated || ev.Key != 42 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.EventID == "" {
		t.Fatal("event must carry an identifier")
	}
}

func TestWebSocket_MutationsReachSubscribers(t *testing.T) {
	// Full stack: in-memory repository, real services, ws transport.
	svc := service.NewService(
		repository.NewMemoryRepository(10),
		auth.NewTokenIssuer("test-key", time.Hour),
	)
	router := newTestRouter(svc)

	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialWS(t, srv)
	time.Sleep(50 * time.Millisecond)

	created, err := svc.People.Create(context.Background(), &models.Person{
		FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "555 0100",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	type envelope struct {
		Type string              `json:"type"`
		Data service.ChangeEvent `json:"data"`
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if env.Data.Entity != "person" || env.Data.Action != service.ActionCreated || env.Data.Key != created.ID {
		t.Fatalf("unexpected event: %+v", env.Data)
	}
}

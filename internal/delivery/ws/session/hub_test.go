package ws_session

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/travisksimons/vibe-check-movies/internal/model"
)

type WsSessionHubSuite struct {
	suite.Suite
}

func newTestHub() *Hub {
	return New(slog.Default())
}

func newTestClient(hub *Hub, buffer int) *Client {
	return &Client{
		Hub:  hub,
		Send: make(chan []byte, buffer),
	}
}

func joinedEvent(name string) model.Event {
	return model.Event{
		Type:    model.EventParticipantJoined,
		Payload: map[string]any{"name": name},
	}
}

func decodeEvent(t provider.T, raw []byte) model.Event {
	var event model.Event
	assert.NoError(t, json.Unmarshal(raw, &event))
	return event
}

func (suite *WsSessionHubSuite) TestPublishReachesSubscribers(t provider.T) {
	t.Parallel()

	hub := newTestHub()
	first := newTestClient(hub, sendBuffer)
	second := newTestClient(hub, sendBuffer)
	elsewhere := newTestClient(hub, sendBuffer)

	hub.Subscribe(first, "abc123")
	hub.Subscribe(second, "abc123")
	hub.Subscribe(elsewhere, "zzz999")

	hub.Publish("abc123", joinedEvent("Ada"))

	for _, client := range []*Client{first, second} {
		event := decodeEvent(t, <-client.Send)
		assert.Equal(t, model.EventParticipantJoined, event.Type)
		payload, ok := event.Payload.(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "Ada", payload["name"])
	}
	assert.Empty(t, elsewhere.Send)
}

func (suite *WsSessionHubSuite) TestPublishSkipsSlowClients(t provider.T) {
	t.Parallel()

	hub := newTestHub()
	slow := newTestClient(hub, 1)
	healthy := newTestClient(hub, sendBuffer)

	hub.Subscribe(slow, "abc123")
	hub.Subscribe(healthy, "abc123")

	hub.Publish("abc123", joinedEvent("Ada"))
	hub.Publish("abc123", joinedEvent("Lin"))

	// The slow client keeps only the first event; the healthy one gets both.
	assert.Len(t, slow.Send, 1)
	assert.Len(t, healthy.Send, 2)

	event := decodeEvent(t, <-slow.Send)
	payload := event.Payload.(map[string]any)
	assert.Equal(t, "Ada", payload["name"])
}

func (suite *WsSessionHubSuite) TestResubscribeMovesClient(t provider.T) {
	t.Parallel()

	hub := newTestHub()
	client := newTestClient(hub, sendBuffer)

	hub.Subscribe(client, "abc123")
	hub.Subscribe(client, "zzz999")

	hub.Publish("abc123", joinedEvent("Ada"))
	assert.Empty(t, client.Send)

	hub.Publish("zzz999", joinedEvent("Lin"))
	assert.Len(t, client.Send, 1)
}

func (suite *WsSessionHubSuite) TestUnsubscribeStopsDelivery(t provider.T) {
	t.Parallel()

	hub := newTestHub()
	client := newTestClient(hub, sendBuffer)

	hub.Subscribe(client, "abc123")
	hub.Unsubscribe(client)

	hub.Publish("abc123", joinedEvent("Ada"))
	assert.Empty(t, client.Send)
}

func (suite *WsSessionHubSuite) TestRemoveClientClosesSend(t provider.T) {
	t.Parallel()

	hub := newTestHub()
	client := newTestClient(hub, sendBuffer)

	hub.Subscribe(client, "abc123")
	hub.RemoveClient(client)

	_, open := <-client.Send
	assert.False(t, open)

	// Publishing to the session the client left must not panic.
	hub.Publish("abc123", joinedEvent("Ada"))
}

func TestWsSessionHubSuite(t *testing.T) {
	suite.RunSuite(t, new(WsSessionHubSuite))
}

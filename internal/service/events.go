package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Actions carried by the change feed.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent describes one committed mutation.
type ChangeEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	Key        int64     `json:"key"`
}

// ChangeFeed fans change events out to subscribers (websocket connections).
// Delivery is best-effort: a subscriber that falls behind drops events
// rather than blocking mutations.
type ChangeFeed struct {
	mu   sync.RWMutex
	subs map[chan ChangeEvent]struct{}
}

const subscriberBuffer = 16

func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[chan ChangeEvent]struct{})}
}

// Subscribe registers a new subscriber channel. The caller must
// Unsubscribe when done.
func (f *ChangeFeed) Subscribe() chan ChangeEvent {
	ch := make(chan ChangeEvent, subscriberBuffer)
	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (f *ChangeFeed) Unsubscribe(ch chan ChangeEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[ch]; !ok {
		return
	}
	delete(f.subs, ch)
	close(ch)
}

// Publish delivers an event to every current subscriber without blocking.
func (f *ChangeFeed) Publish(entity, action string, key int64) {
	ev := ChangeEvent{
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Entity:     entity,
		Action:     action,
		Key:        key,
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for ch := range f.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

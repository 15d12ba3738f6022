// Package notify implements the in-process notification fanout. It maps a
// user identity to the set of live subscriber connections and pushes task
// lifecycle events to them. Delivery is best-effort: a user without live
// connections simply misses the event, and a slow connection never blocks
// the operation that triggered the notification.
package notify

import (
	"sync"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
)

// DefaultQueueSize is the per-subscriber outbound buffer used when the
// configured size is not positive.
const DefaultQueueSize = 16

var _ model.Notifier = (*Hub)(nil)

// Subscriber is one live connection of a user. Events are consumed from
// Events until the channel is closed by Hub.Unregister.
type Subscriber struct {
	userID uuid.UUID
	ch     chan model.Envelope
}

// UserID returns the identity the subscriber is bound to.
func (s *Subscriber) UserID() uuid.UUID {
	return s.userID
}

// Events returns the subscriber's outbound event stream.
func (s *Subscriber) Events() <-chan model.Envelope {
	return s.ch
}

// Hub is the connection registry. A user may hold several subscribers at
// once (multiple devices); registration and delivery are safe to run
// concurrently.
type Hub struct {
	mu        sync.RWMutex
	byUser    map[uuid.UUID]map[*Subscriber]struct{}
	queueSize int
	logger    *logger.Logger
}

// NewHub creates an empty hub with the given per-subscriber queue size.
func NewHub(queueSize int, logger *logger.Logger) *Hub {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Hub{
		byUser:    make(map[uuid.UUID]map[*Subscriber]struct{}),
		queueSize: queueSize,
		logger:    logger,
	}
}

// Register binds a new subscriber to the user and returns it.
func (h *Hub) Register(userID uuid.UUID) *Subscriber {
	sub := &Subscriber{
		userID: userID,
		ch:     make(chan model.Envelope, h.queueSize),
	}

	h.mu.Lock()
	subs, ok := h.byUser[userID]
	if !ok {
		subs = make(map[*Subscriber]struct{})
		h.byUser[userID] = subs
	}
	subs[sub] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("subscriber registered", "user_id", userID)
	return sub
}

// Unregister removes the subscriber and closes its event stream. Calling it
// again for the same subscriber is a no-op.
func (h *Hub) Unregister(sub *Subscriber) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.byUser[sub.userID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.byUser, sub.userID)
	}
	// Closing under the write lock: Notify sends hold the read lock, so no
	// send can race the close.
	close(sub.ch)
}

// Notify delivers the event to every live subscriber of the user. It never
// blocks: when a subscriber's queue is full the incoming event is dropped
// for that subscriber and logged.
func (h *Hub) Notify(userID uuid.UUID, event model.EventKind, payload any) {
	env := model.Envelope{Event: event, Data: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.byUser[userID] {
		select {
		case sub.ch <- env:
		default:
			h.logger.Warn("subscriber queue full, dropping event", "user_id", userID, "event", event)
		}
	}
}

// Connections reports the number of live subscribers for the user.
func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byUser[userID])
}

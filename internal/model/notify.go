package model

import "github.com/google/uuid"

// Notifier delivers lifecycle events to the live connections of a user.
// Delivery is best-effort and never blocks or fails the caller.
type Notifier interface {
	Notify(userID uuid.UUID, event EventKind, payload any)
}

// Envelope is the wire frame pushed to websocket subscribers.
type Envelope struct {
	Event EventKind `json:"event"`
	Data  any       `json:"data"`
}

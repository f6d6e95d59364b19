package interfaces

import "time"

// Event describes a service request change pushed to dashboard listeners.
type Event struct {
	Type             string    `json:"type"`
	ServiceRequestID string    `json:"service_request_id"`
	Status           string    `json:"status,omitempty"`
	At               time.Time `json:"at"`
}

// INotifier publishes change events to interested listeners (the websocket
// hub in production). Publish must not block the mutating operation; tests
// substitute a channel-backed implementation to await events
// deterministically.
type INotifier interface {
	Publish(event Event)
}

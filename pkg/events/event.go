package events

import "time"

// Event defines the contract for all core telemetry events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "CONTENT_DEGRADED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type codes published by the core.
const (
	// TypeContentDegraded fires when stored note content could not be
	// parsed and was replaced by an empty document on read.
	TypeContentDegraded = "CONTENT_DEGRADED"

	// TypeAttachmentSwept fires for each orphaned attachment removed by
	// the reference sweep.
	TypeAttachmentSwept = "ATTACHMENT_SWEPT"

	// TypeAttachmentSweepFailed fires when a sweep error was swallowed so
	// the enclosing note update could still succeed.
	TypeAttachmentSweepFailed = "ATTACHMENT_SWEEP_FAILED"
)

// BaseEvent is the plain implementation services publish.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Package notifier implements ports.StatusChangeNotifier sinks: a structured
// log line, a Kafka event, a metrics counter, and wrappers to fan out and to
// run sinks off the caller's goroutine.
package notifier

import (
	"time"

	"orderhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusChangedEvent is the payload published for every committed transition.
type StatusChangedEvent struct {
	EventID        string    `json:"eventId"`
	OrderID        string    `json:"orderId"`
	PartnerID      string    `json:"partnerId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	TotalAmount    string    `json:"totalAmount"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func NewStatusChangedEvent(o *order.Order, previous, current order.Status) StatusChangedEvent {
	return StatusChangedEvent{
		EventID:        uuid.NewString(),
		OrderID:        o.ID().String(),
		PartnerID:      o.PartnerID().String(),
		PreviousStatus: previous.String(),
		NewStatus:      current.String(),
		TotalAmount:    o.Total().String(),
		OccurredAt:     time.Now().UTC(),
	}
}

// Recorder counts delivery attempts per sink.
type Recorder interface {
	Notification(sink, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) Notification(string, string) {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}

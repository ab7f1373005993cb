package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/squad-service/internal/events"
)

// publishEvent emits a roster-change event. A nil dispatcher disables
// publication; delivery failures are the dispatcher's concern.
func publishEvent(ctx context.Context, d events.Dispatcher, eventType events.EventType, entityID, actorID int64, payload any) {
	if d == nil {
		return
	}
	_ = d.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

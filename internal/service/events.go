package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/ChrisRistoff/RecipeHub/internal/events"
)

func newEvent(eventType events.EventType, userID int64, payload interface{}) events.Event {
	return events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

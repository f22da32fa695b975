package application

import (
	"context"
	"time"

	"user-directory/internal/domain/entity"
)

const (
	EventUserCreated = "user.created"
	EventUserBanned  = "user.banned"
)

// UserEvent is the lifecycle message published to the events queue.
type UserEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent emits a lifecycle event fire-and-forget. Publish failures are
// logged and swallowed; telemetry never affects control flow.
func (s *Service) publishEvent(ctx context.Context, eventType string, u *entity.User) {
	if s.Events == nil {
		return
	}
	evt := UserEvent{
		Type:       eventType,
		UserID:     u.ID,
		OccurredAt: time.Now().UTC(),
	}
	if u.ExclusionReason != nil {
		evt.Reason = u.ExclusionReason.String()
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Events.PublishJSON(c, evt); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("event publish failed")
	}
}

package gateway

import (
	"context"

	"github.com/reveda-health/reveda-server/internal/pkg/constants"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
	natspkg "github.com/reveda-health/reveda-server/internal/pkg/nats"
)

// EventGW publishes authentication domain events to NATS
type EventGW struct {
	natsClient *natspkg.Client
}

// NewEventGW creates a new event gateway
func NewEventGW(natsClient *natspkg.Client) *EventGW {
	return &EventGW{natsClient: natsClient}
}

// UserEvent is the payload published for user lifecycle events
type UserEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// PublishUserCreated announces a newly created user
func (g *EventGW) PublishUserCreated(ctx context.Context, user *models.User) error {
	return g.natsClient.Publish(constants.SubjectUserCreated, UserEvent{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.RoleName,
	})
}

// PublishUserVerified announces a user passing verification
func (g *EventGW) PublishUserVerified(ctx context.Context, user *models.User) error {
	return g.natsClient.Publish(constants.SubjectUserVerified, UserEvent{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.RoleName,
	})
}

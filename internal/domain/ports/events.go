package ports

import (
	"context"

	"github.com/auvet/auvet-backend/internal/domain/events"
)

// EventPublisher publica eventos de alteração de funcionários
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

// NopPublisher descarta todos os eventos
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, events.Event) {}

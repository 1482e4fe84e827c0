package generator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
)

// Event types published on the configured bus
const (
	EventCharacterGenerated = "character.generated"
	EventCharacterDamaged   = "character.damaged"
)

// Event context keys
const (
	EventKeyProfession = "profession"
	EventKeyCategory   = "category"
	EventKeyAge        = "age"
)

// publishGenerated announces a finished character, preceded by one damage
// event per applied trauma category. Publish failures are logged only.
func (o *orchestrator) publishGenerated(ctx context.Context, char *deltagreen.Character, damage []DamageCategory) {
	if o.eventBus == nil {
		return
	}

	for _, category := range damage {
		event := events.NewGameEvent(EventCharacterDamaged, char, nil)
		event.Context().Set(EventKeyCategory, string(category))
		o.publish(ctx, event)
	}

	event := events.NewGameEvent(EventCharacterGenerated, char, nil)
	event.Context().Set(EventKeyProfession, char.ProfessionID)
	event.Context().Set(EventKeyAge, char.Age)
	o.publish(ctx, event)
}

func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"type", event.Type(),
			"error", err,
		)
	}
}

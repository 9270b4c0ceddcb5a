package acquisition

import (
	"atlas-parts/target"
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func acquiredEventProvider(t target.Model, m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.PartIndex()))
	value := &acquiredEvent{
		Target:     t,
		Type:       EventTypeAcquired,
		Category:   m.Category(),
		PartIndex:  m.PartIndex(),
		SessionId:  m.SessionId(),
		AcquiredAt: m.AcquiredAt(),
	}
	return producer.SingleMessageProvider(key, value)
}

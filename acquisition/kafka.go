package acquisition

import (
	"atlas-parts/target"
	"github.com/google/uuid"
	"time"
)

const (
	EnvEventTopicPartAcquired = "EVENT_TOPIC_PART_ACQUIRED"

	EventTypeAcquired = "ACQUIRED"
)

type acquiredEvent struct {
	Target     target.Model `json:"target"`
	Type       string       `json:"type"`
	Category   string       `json:"category"`
	PartIndex  uint32       `json:"partIndex"`
	SessionId  uuid.UUID    `json:"sessionId"`
	AcquiredAt time.Time    `json:"acquiredAt"`
}

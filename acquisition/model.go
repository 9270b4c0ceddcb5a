package acquisition

import (
	"github.com/google/uuid"
	"time"
)

// Model records the first time a part was observed as owned.
type Model struct {
	id         uint32
	targetId   uuid.UUID
	category   string
	partIndex  uint32
	sessionId  uuid.UUID
	acquiredAt time.Time
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) TargetId() uuid.UUID {
	return m.targetId
}

func (m Model) Category() string {
	return m.category
}

func (m Model) PartIndex() uint32 {
	return m.partIndex
}

func (m Model) SessionId() uuid.UUID {
	return m.sessionId
}

func (m Model) AcquiredAt() time.Time {
	return m.acquiredAt
}

func makeModel(e entity) (Model, error) {
	return Model{
		id:         e.ID,
		targetId:   e.TargetId,
		category:   e.Category,
		partIndex:  e.PartIndex,
		sessionId:  e.SessionId,
		acquiredAt: e.AcquiredAt,
	}, nil
}

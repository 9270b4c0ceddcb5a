package inventory

import (
	"atlas-parts/category"
	"github.com/google/uuid"
)

// Model is the set of part identifiers owned in a single category, in table order.
type Model struct {
	category    category.Model
	identifiers []uint32
}

func NewModel(c category.Model, identifiers []uint32) Model {
	ids := make([]uint32, len(identifiers))
	copy(ids, identifiers)
	return Model{category: c, identifiers: ids}
}

func (m Model) Category() category.Model {
	return m.category
}

func (m Model) Identifiers() []uint32 {
	res := make([]uint32, len(m.identifiers))
	copy(res, m.identifiers)
	return res
}

func (m Model) Len() int {
	return len(m.identifiers)
}

func (m Model) Contains(id uint32) bool {
	for _, i := range m.identifiers {
		if i == id {
			return true
		}
	}
	return false
}

// Snapshot is every category decoded against a single resolved base.
type Snapshot struct {
	sessionId uuid.UUID
	base      uint64
	owned     []Model
}

func NewSnapshot(sessionId uuid.UUID, base uint64, owned ...Model) Snapshot {
	ms := make([]Model, len(owned))
	copy(ms, owned)
	return Snapshot{sessionId: sessionId, base: base, owned: ms}
}

func (s Snapshot) SessionId() uuid.UUID {
	return s.sessionId
}

func (s Snapshot) Base() uint64 {
	return s.base
}

func (s Snapshot) Owned() []Model {
	res := make([]Model, len(s.owned))
	copy(res, s.owned)
	return res
}

func (s Snapshot) ByCategory(name string) (Model, bool) {
	for _, m := range s.owned {
		if m.Category().Name() == name {
			return m, true
		}
	}
	return Model{}, false
}

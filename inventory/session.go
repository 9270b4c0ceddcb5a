package inventory

import (
	"atlas-parts/category"
	"atlas-parts/layout"
	"atlas-parts/memory"
	"github.com/google/uuid"
	"sync"
)

// Session owns a memory source and the inventory table base resolved from it.
// All reads go through the source lock since seek and read share one cursor.
type Session struct {
	source   string
	reader   memory.Reader
	layout   layout.Model
	lock     *sync.Mutex
	resolved bool
	base     uint64
	id       uuid.UUID
}

func NewSession(source string, reader memory.Reader, layout layout.Model) *Session {
	return &Session{
		source: source,
		reader: reader,
		layout: layout,
		lock:   GetLockRegistry().GetBySource(source),
	}
}

func (s *Session) Source() string {
	return s.source
}

func (s *Session) Layout() layout.Model {
	return s.layout
}

func (s *Session) Categories() category.Registry {
	return s.layout.Categories()
}

// Id identifies the current base resolution. It is uuid.Nil until the base is resolved.
func (s *Session) Id() uuid.UUID {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.id
}

// Resolved reports whether a base is currently cached.
func (s *Session) Resolved() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.resolved
}

func (s *Session) baseLocked() (uint64, error) {
	if s.resolved {
		return s.base, nil
	}
	base, err := resolveBase(s.reader, s.layout)
	if err != nil {
		return 0, err
	}
	s.base = base
	s.resolved = true
	s.id = uuid.New()
	return base, nil
}

// Base returns the cached inventory table base, resolving it on first use.
func (s *Session) Base() (uint64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.baseLocked()
}

func (s *Session) Owned(c category.Model) (Model, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	base, err := s.baseLocked()
	if err != nil {
		return Model{}, err
	}
	ids, err := ownedIdentifiers(s.reader, s.layout, base, c)
	if err != nil {
		return Model{}, err
	}
	return NewModel(c, ids), nil
}

// Invalidate drops the cached base. The next read resolves it again.
func (s *Session) Invalidate() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.resolved = false
	s.base = 0
	s.id = uuid.Nil
}

// Reload resolves a fresh base and decodes every category against it. The
// cached base is only replaced when the whole snapshot decodes.
func (s *Session) Reload() (Snapshot, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	base, err := resolveBase(s.reader, s.layout)
	if err != nil {
		return Snapshot{}, err
	}
	cs := s.layout.Categories().All()
	owned := make([]Model, 0, len(cs))
	for _, c := range cs {
		ids, err := ownedIdentifiers(s.reader, s.layout, base, c)
		if err != nil {
			return Snapshot{}, err
		}
		owned = append(owned, NewModel(c, ids))
	}

	s.base = base
	s.resolved = true
	s.id = uuid.New()
	return Snapshot{sessionId: s.id, base: base, owned: owned}, nil
}

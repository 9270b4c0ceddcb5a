package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownIdentifier = errors.New("unknown part identifier")

// Entry is one position in a category's catalog. Placeholder positions carry no
// part data and exist only to keep indices aligned with the game's tables.
type Entry struct {
	category    string
	index       uint32
	placeholder bool
	name        string
	unlock      string
}

func NewEntry(category string, index uint32, name string, unlock string) Entry {
	return Entry{category: category, index: index, name: name, unlock: unlock}
}

func NewPlaceholder(category string, index uint32, label string) Entry {
	return Entry{category: category, index: index, placeholder: true, name: label}
}

func (e Entry) Category() string {
	return e.category
}

func (e Entry) Index() uint32 {
	return e.index
}

func (e Entry) Placeholder() bool {
	return e.placeholder
}

func (e Entry) Name() string {
	return e.name
}

func (e Entry) Unlock() string {
	return e.unlock
}

// Model is the read only part catalog keyed by category name.
type Model struct {
	entries map[string][]Entry
}

func NewModel(entries map[string][]Entry) Model {
	m := Model{entries: make(map[string][]Entry, len(entries))}
	for k, v := range entries {
		es := make([]Entry, len(v))
		copy(es, v)
		m.entries[strings.ToUpper(k)] = es
	}
	return m
}

func (m Model) Entries(category string) []Entry {
	es := m.entries[strings.ToUpper(category)]
	res := make([]Entry, len(es))
	copy(res, es)
	return res
}

func (m Model) Len(category string) int {
	return len(m.entries[strings.ToUpper(category)])
}

func (m Model) Lookup(category string, index uint32) (Entry, error) {
	es := m.entries[strings.ToUpper(category)]
	if uint64(index) >= uint64(len(es)) {
		return Entry{}, fmt.Errorf("%w: index [%d] outside catalog of [%d] for [%s]", ErrUnknownIdentifier, index, len(es), category)
	}
	e := es[index]
	if e.Placeholder() {
		return Entry{}, fmt.Errorf("%w: index [%d] of [%s] is a placeholder", ErrUnknownIdentifier, index, category)
	}
	return e, nil
}

package catalog

// Part is a catalog entry annotated with ownership.
type Part struct {
	Entry
	owned bool
}

func (p Part) Owned() bool {
	return p.owned
}

// DetailsFor resolves every identifier or fails on the first one the catalog does not know.
func DetailsFor(m Model) func(category string, ids []uint32) ([]Entry, error) {
	return func(category string, ids []uint32) ([]Entry, error) {
		res := make([]Entry, 0, len(ids))
		for _, id := range ids {
			e, err := m.Lookup(category, id)
			if err != nil {
				return nil, err
			}
			res = append(res, e)
		}
		return res, nil
	}
}

// Resolve splits identifiers into known entries and unresolved identifiers so one
// unknown part does not hide the rest.
func Resolve(m Model) func(category string, ids []uint32) ([]Entry, []uint32) {
	return func(category string, ids []uint32) ([]Entry, []uint32) {
		resolved := make([]Entry, 0, len(ids))
		unresolved := make([]uint32, 0)
		for _, id := range ids {
			e, err := m.Lookup(category, id)
			if err != nil {
				unresolved = append(unresolved, id)
				continue
			}
			resolved = append(resolved, e)
		}
		return resolved, unresolved
	}
}

// AllEntries returns every catalog position for the category, placeholders included.
func AllEntries(m Model) func(category string) []Entry {
	return func(category string) []Entry {
		return m.Entries(category)
	}
}

func ownedSet(owned []uint32) map[uint32]struct{} {
	res := make(map[uint32]struct{}, len(owned))
	for _, id := range owned {
		res[id] = struct{}{}
	}
	return res
}

// Missing returns the non placeholder entries whose index is not owned.
func Missing(m Model) func(category string, owned []uint32) []Entry {
	return func(category string, owned []uint32) []Entry {
		set := ownedSet(owned)
		res := make([]Entry, 0)
		for _, e := range m.Entries(category) {
			if e.Placeholder() {
				continue
			}
			if _, ok := set[e.Index()]; ok {
				continue
			}
			res = append(res, e)
		}
		return res
	}
}

// Parts returns every non placeholder entry flagged with ownership.
func Parts(m Model) func(category string, owned []uint32) []Part {
	return func(category string, owned []uint32) []Part {
		set := ownedSet(owned)
		res := make([]Part, 0)
		for _, e := range m.Entries(category) {
			if e.Placeholder() {
				continue
			}
			_, ok := set[e.Index()]
			res = append(res, Part{Entry: e, owned: ok})
		}
		return res
	}
}

package catalog

import (
	"errors"
	"testing"
)

const testCatalog = `{
	"LEGS": [
		"LEGS",
		{"NAME": "LN-SSVT", "UNLOCK": "Initial part"},
		{"NAME": "LN-1001", "UNLOCK": "Shop"},
		"Middleweight",
		{"NAME": "LN-D-8000R", "UNLOCK": "Clear mission 12"},
		{"NAME": "LF-205-SF", "UNLOCK": "Arena rank 10"}
	],
	"HEADS": [],
	"cores": [
		{"NAME": "CR-C90U3", "UNLOCK": "Initial part"}
	]
}`

func testModel(t *testing.T) Model {
	m, err := Parse([]byte(testCatalog))
	if err != nil {
		t.Fatalf("Failed to parse catalog: %v", err)
	}
	return m
}

func TestParsePlaceholders(t *testing.T) {
	m := testModel(t)
	es := AllEntries(m)("LEGS")
	if len(es) != 6 {
		t.Fatalf("Entry count expected=%d, got=%d", 6, len(es))
	}
	if !es[0].Placeholder() || !es[3].Placeholder() {
		t.Fatalf("Header rows must be tagged as placeholders.")
	}
	if es[4].Placeholder() || es[4].Name() != "LN-D-8000R" || es[4].Unlock() != "Clear mission 12" {
		t.Fatalf("Unexpected entry at index 4: %+v", es[4])
	}
	if es[4].Index() != 4 {
		t.Fatalf("Index expected=%d, got=%d", 4, es[4].Index())
	}
}

func TestParseNormalizesCategory(t *testing.T) {
	m := testModel(t)
	if m.Len("CORES") != 1 {
		t.Fatalf("Entry count expected=%d, got=%d", 1, m.Len("CORES"))
	}
}

func TestParseRejectsCaseDuplicates(t *testing.T) {
	data := `{"legs": [{"NAME": "LN-SSVT", "UNLOCK": "Initial part"}], "LEGS": []}`
	for i := 0; i < 10; i++ {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("Expected categories differing only by case to be rejected.")
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	if _, err := Parse([]byte(`{"LEGS": [42]}`)); err == nil {
		t.Fatalf("Expected numeric catalog position to be rejected.")
	}
}

func TestDetailsFor(t *testing.T) {
	m := testModel(t)
	ds, err := DetailsFor(m)("LEGS", []uint32{5, 1})
	if err != nil {
		t.Fatalf("Failed to resolve details: %v", err)
	}
	if ds[0].Name() != "LF-205-SF" || ds[1].Name() != "LN-SSVT" {
		t.Fatalf("Details must follow identifier order, got [%s, %s]", ds[0].Name(), ds[1].Name())
	}
}

func TestDetailsForOutOfRange(t *testing.T) {
	m := testModel(t)
	_, err := DetailsFor(m)("LEGS", []uint32{1, 60})
	if !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("Expected unknown identifier error, got %v", err)
	}
}

func TestDetailsForPlaceholder(t *testing.T) {
	m := testModel(t)
	_, err := DetailsFor(m)("LEGS", []uint32{3})
	if !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("Expected unknown identifier error for placeholder, got %v", err)
	}
}

func TestResolveAggregates(t *testing.T) {
	m := testModel(t)
	resolved, unresolved := Resolve(m)("LEGS", []uint32{1, 99, 4, 0})
	if len(resolved) != 2 {
		t.Fatalf("Resolved count expected=%d, got=%d", 2, len(resolved))
	}
	if len(unresolved) != 2 || unresolved[0] != 99 || unresolved[1] != 0 {
		t.Fatalf("Unresolved expected=[99 0], got=%v", unresolved)
	}
}

func TestMissingIsComplement(t *testing.T) {
	m := testModel(t)
	owned := []uint32{1, 5}
	missing := Missing(m)("LEGS", owned)

	seen := make(map[uint32]bool)
	for _, e := range missing {
		if e.Placeholder() {
			t.Fatalf("Missing must not contain placeholders.")
		}
		for _, o := range owned {
			if e.Index() == o {
				t.Fatalf("Missing must not contain owned index [%d].", o)
			}
		}
		seen[e.Index()] = true
	}
	for _, o := range owned {
		seen[o] = true
	}
	for _, e := range AllEntries(m)("LEGS") {
		if e.Placeholder() {
			continue
		}
		if !seen[e.Index()] {
			t.Fatalf("Index [%d] is neither owned nor missing.", e.Index())
		}
	}
	if len(missing) != 2 {
		t.Fatalf("Missing count expected=%d, got=%d", 2, len(missing))
	}
}

func TestMissingEmptyCategory(t *testing.T) {
	m := testModel(t)
	if len(Missing(m)("HEADS", nil)) != 0 {
		t.Fatalf("Empty catalog must yield no missing parts.")
	}
	if len(Missing(m)("BOOSTER", nil)) != 0 {
		t.Fatalf("Absent catalog must yield no missing parts.")
	}
}

func TestParts(t *testing.T) {
	m := testModel(t)
	ps := Parts(m)("LEGS", []uint32{4})
	if len(ps) != 4 {
		t.Fatalf("Part count expected=%d, got=%d", 4, len(ps))
	}
	for _, p := range ps {
		if p.Owned() != (p.Index() == 4) {
			t.Fatalf("Ownership of index [%d] expected=%t, got=%t", p.Index(), p.Index() == 4, p.Owned())
		}
	}
}

func TestSchema(t *testing.T) {
	s := Schema()
	if s.AdditionalProperties == nil || s.AdditionalProperties.Items == nil {
		t.Fatalf("Schema must describe category arrays.")
	}
	if len(s.AdditionalProperties.Items.OneOf) != 2 {
		t.Fatalf("Catalog positions expected=%d variants, got=%d", 2, len(s.AdditionalProperties.Items.OneOf))
	}
}

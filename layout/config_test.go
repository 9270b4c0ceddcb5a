package layout

import (
	"atlas-parts/category"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"testing"
)

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func TestDefaultConfiguration(t *testing.T) {
	c, err := Read(testLogger())("")
	if err != nil {
		t.Fatalf("Failed to read built in configuration: %v", err)
	}
	m, err := c.Lookup("")
	if err != nil {
		t.Fatalf("Failed to resolve default layout: %v", err)
	}
	if m.PointerAddress() != 0x09044C30 {
		t.Fatalf("PointerAddress expected=0x%X, got=0x%X", 0x09044C30, m.PointerAddress())
	}
	if m.BaseDisplacement() != 0x3AA4 {
		t.Fatalf("BaseDisplacement expected=0x%X, got=0x%X", 0x3AA4, m.BaseDisplacement())
	}
	if m.SlotStride() != 0x204 {
		t.Fatalf("SlotStride expected=0x%X, got=0x%X", 0x204, m.SlotStride())
	}
	if m.CountOffset() != 0x200 {
		t.Fatalf("CountOffset expected=0x%X, got=0x%X", 0x200, m.CountOffset())
	}
	if m.Categories().Len() != 14 {
		t.Fatalf("Category count expected=%d, got=%d", 14, m.Categories().Len())
	}
	legs, err := m.Categories().ByName(category.TypeLegs)
	if err != nil {
		t.Fatalf("Unable to locate LEGS: %v", err)
	}
	if legs.Ordinal() != 3 || legs.Total() != 61 {
		t.Fatalf("LEGS expected ordinal=3 total=61, got ordinal=%d total=%d", legs.Ordinal(), legs.Total())
	}
	if m.SlotOffset(0x1000, legs) != 0x1000+3*0x204 {
		t.Fatalf("SlotOffset expected=0x%X, got=0x%X", 0x1000+3*0x204, m.SlotOffset(0x1000, legs))
	}
}

func TestLookupUnknownTarget(t *testing.T) {
	c, err := Read(testLogger())("")
	if err != nil {
		t.Fatalf("Failed to read built in configuration: %v", err)
	}
	if _, err = c.Lookup("slp-eu"); err == nil {
		t.Fatalf("Expected lookup of unknown target to fail.")
	}
}

func TestExplicitOrdinals(t *testing.T) {
	data := []byte(`
targets:
  - key: test
    id: 0b5e2a4c-1f3d-4e6a-8b7c-9d0e1f2a3b4c
    pointerAddress: 0x100
    baseDisplacement: 0x10
    slotStride: 0x204
    maxOwned: 61
    categories:
      - { name: LEGS, ordinal: 3, total: 61 }
      - { name: HEADS, ordinal: 0, total: 21 }
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Failed to parse configuration: %v", err)
	}
	m, err := c.Lookup("test")
	if err != nil {
		t.Fatalf("Failed to resolve layout: %v", err)
	}
	if m.CountOffset() != 244 {
		t.Fatalf("CountOffset expected=%d, got=%d", 244, m.CountOffset())
	}
	legs, _ := m.Categories().ByName(category.TypeLegs)
	if legs.Ordinal() != 3 {
		t.Fatalf("Declared ordinal must not be inferred from order. expected=%d, got=%d", 3, legs.Ordinal())
	}
}

func TestBuildRejectsOverlappingCount(t *testing.T) {
	_, err := NewBuilder().
		SetSlotStride(0x204).
		SetMaxOwned(130).
		SetCountOffset(0x200).
		AddCategory(category.TypeHeads, 0, 21).
		Build()
	if err == nil {
		t.Fatalf("Expected identifier array overlapping the count field to be rejected.")
	}
}

func TestBuildRejectsCountOutsideStride(t *testing.T) {
	_, err := NewBuilder().
		SetSlotStride(0x100).
		SetMaxOwned(61).
		SetCountOffset(0x100).
		AddCategory(category.TypeHeads, 0, 21).
		Build()
	if err == nil {
		t.Fatalf("Expected count field outside the slot to be rejected.")
	}
}

func TestTargetRequiresId(t *testing.T) {
	for _, id := range []string{"", "00000000-0000-0000-0000-000000000000", "not-a-uuid"} {
		data := []byte(`
targets:
  - key: test
    id: "` + id + `"
    pointerAddress: 0x100
    baseDisplacement: 0x10
    slotStride: 0x204
    maxOwned: 61
    categories:
      - { name: HEADS, ordinal: 0, total: 21 }
`)
		c, err := Parse(data)
		if err != nil {
			t.Fatalf("Failed to parse configuration: %v", err)
		}
		if _, err = c.Lookup("test"); err == nil {
			t.Fatalf("Expected target with id [%s] to be rejected.", id)
		}
	}
}

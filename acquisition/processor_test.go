package acquisition_test

import (
	"atlas-parts/acquisition"
	"atlas-parts/category"
	"atlas-parts/inventory"
	"atlas-parts/kafka/producer"
	"atlas-parts/target"
	"context"
	"encoding/json"
	producer2 "github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"testing"
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	var migrators []func(db *gorm.DB) error
	migrators = append(migrators, acquisition.Migration)

	for _, migrator := range migrators {
		if err := migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
	}
	return db
}

func testTarget() target.Model {
	return target.New(uuid.New(), "Armored Core Silent Line Portable", "US", 1, 0)
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func testProducer(output *[]kafka.Message) producer.Provider {
	return func(token string) producer2.MessageProducer {
		return func(provider model.Provider[[]kafka.Message]) error {
			res, err := provider()
			if err != nil {
				return err
			}
			for _, r := range res {
				*output = append(*output, r)
			}
			return nil
		}
	}
}

func testSnapshot(owned map[string][]uint32) inventory.Snapshot {
	heads := category.NewModel(category.TypeHeads, 0, 21)
	legs := category.NewModel(category.TypeLegs, 3, 61)
	return inventory.NewSnapshot(uuid.New(), 0x08800000,
		inventory.NewModel(heads, owned[category.TypeHeads]),
		inventory.NewModel(legs, owned[category.TypeLegs]),
	)
}

func TestRecordSnapshot(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	tt := testTarget()
	var messages = make([]kafka.Message, 0)

	added, err := acquisition.RecordSnapshot(l, db, context.Background(), testProducer(&messages), tt)(testSnapshot(map[string][]uint32{
		category.TypeHeads: {1, 2},
		category.TypeLegs:  {7, 15},
	}))
	if err != nil {
		t.Fatalf("Failed to record snapshot: %v", err)
	}
	if len(added) != 4 {
		t.Fatalf("Added expected=%d, got=%d", 4, len(added))
	}
	if len(messages) != 4 {
		t.Fatalf("Messages expected=%d, got=%d", 4, len(messages))
	}

	var event map[string]interface{}
	if err = json.Unmarshal(messages[0].Value, &event); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	if event["type"] != acquisition.EventTypeAcquired || event["category"] != category.TypeHeads {
		t.Fatalf("Unexpected event: %v", event)
	}
}

func TestRecordSnapshotOnlyNewParts(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	tt := testTarget()
	var messages = make([]kafka.Message, 0)
	record := acquisition.RecordSnapshot(l, db, context.Background(), testProducer(&messages), tt)

	if _, err := record(testSnapshot(map[string][]uint32{category.TypeLegs: {7, 15}})); err != nil {
		t.Fatalf("Failed to record snapshot: %v", err)
	}
	added, err := record(testSnapshot(map[string][]uint32{category.TypeLegs: {7, 15, 22, 22}}))
	if err != nil {
		t.Fatalf("Failed to record snapshot: %v", err)
	}
	if len(added) != 1 || added[0].PartIndex() != 22 {
		t.Fatalf("Only part 22 should be new, got %d acquisitions.", len(added))
	}

	all, err := acquisition.GetByTarget(l, db, tt)
	if err != nil {
		t.Fatalf("Failed to retrieve acquisitions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Acquisitions expected=%d, got=%d", 3, len(all))
	}
	legs, err := acquisition.GetByCategory(l, db, tt)(category.TypeLegs)
	if err != nil {
		t.Fatalf("Failed to retrieve acquisitions: %v", err)
	}
	if len(legs) != 3 {
		t.Fatalf("LEGS acquisitions expected=%d, got=%d", 3, len(legs))
	}
}

func TestRecordSnapshotIsolatesTargets(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	var messages = make([]kafka.Message, 0)
	s := testSnapshot(map[string][]uint32{category.TypeHeads: {1}})

	if _, err := acquisition.RecordSnapshot(l, db, context.Background(), testProducer(&messages), testTarget())(s); err != nil {
		t.Fatalf("Failed to record snapshot: %v", err)
	}
	other := testTarget()
	added, err := acquisition.RecordSnapshot(l, db, context.Background(), testProducer(&messages), other)(s)
	if err != nil {
		t.Fatalf("Failed to record snapshot: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("Added expected=%d, got=%d", 1, len(added))
	}
}

func TestReset(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	tt := testTarget()
	var messages = make([]kafka.Message, 0)

	if err := acquisition.SnapshotRecorder(l, db, context.Background(), testProducer(&messages), tt)(testSnapshot(map[string][]uint32{category.TypeHeads: {1, 3}})); err != nil {
		t.Fatalf("Failed to record snapshot: %v", err)
	}
	if err := acquisition.Reset(l, db, tt); err != nil {
		t.Fatalf("Failed to reset: %v", err)
	}
	all, err := acquisition.GetByTarget(l, db, tt)
	if err != nil {
		t.Fatalf("Failed to retrieve acquisitions: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("Acquisitions expected=%d, got=%d", 0, len(all))
	}
}

func TestNilTargetIsolated(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	var messages = make([]kafka.Message, 0)
	s := testSnapshot(map[string][]uint32{category.TypeLegs: {7, 15}})

	other := testTarget()
	if _, err := acquisition.RecordSnapshot(l, db, context.Background(), testProducer(&messages), other)(s); err != nil {
		t.Fatalf("Failed to record snapshot: %v", err)
	}

	nilTarget := target.New(uuid.Nil, "Unnamed", "US", 1, 0)
	known, err := acquisition.GetByTarget(l, db, nilTarget)
	if err != nil {
		t.Fatalf("Failed to retrieve acquisitions: %v", err)
	}
	if len(known) != 0 {
		t.Fatalf("Acquisitions visible to nil target expected=%d, got=%d", 0, len(known))
	}
	legs, err := acquisition.GetByCategory(l, db, nilTarget)(category.TypeLegs)
	if err != nil {
		t.Fatalf("Failed to retrieve acquisitions: %v", err)
	}
	if len(legs) != 0 {
		t.Fatalf("LEGS acquisitions visible to nil target expected=%d, got=%d", 0, len(legs))
	}

	added, err := acquisition.RecordSnapshot(l, db, context.Background(), testProducer(&messages), nilTarget)(s)
	if err != nil {
		t.Fatalf("Failed to record snapshot: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("Added expected=%d, got=%d", 2, len(added))
	}
}

func TestResetLeavesOtherTargets(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	var messages = make([]kafka.Message, 0)
	s := testSnapshot(map[string][]uint32{category.TypeHeads: {1}})

	other := testTarget()
	if _, err := acquisition.RecordSnapshot(l, db, context.Background(), testProducer(&messages), other)(s); err != nil {
		t.Fatalf("Failed to record snapshot: %v", err)
	}
	nilTarget := target.New(uuid.Nil, "Unnamed", "US", 1, 0)
	if err := acquisition.Reset(l, db, nilTarget); err != nil {
		t.Fatalf("Failed to reset: %v", err)
	}
	all, err := acquisition.GetByTarget(l, db, other)
	if err != nil {
		t.Fatalf("Failed to retrieve acquisitions: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Acquisitions of other target expected=%d, got=%d", 1, len(all))
	}
}

package acquisition

import (
	"atlas-parts/database"
	"atlas-parts/inventory"
	"atlas-parts/kafka/producer"
	"atlas-parts/target"
	"context"
	"fmt"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"time"
)

func byTargetProvider(db *gorm.DB, t target.Model) model.Provider[[]Model] {
	return database.ModelSliceProvider[Model, entity](db)(getByTarget(t.Id), makeModel)
}

func GetByTarget(l logrus.FieldLogger, db *gorm.DB, t target.Model) ([]Model, error) {
	ms, err := byTargetProvider(db, t)()
	if err != nil {
		l.WithError(err).Errorf("Unable to retrieve acquisitions for target %s.", t.String())
		return nil, err
	}
	return ms, nil
}

func GetByCategory(l logrus.FieldLogger, db *gorm.DB, t target.Model) func(category string) ([]Model, error) {
	return func(category string) ([]Model, error) {
		ms, err := database.ModelSliceProvider[Model, entity](db)(getByCategory(t.Id, category), makeModel)()
		if err != nil {
			l.WithError(err).Errorf("Unable to retrieve acquisitions of [%s] for target %s.", category, t.String())
			return nil, err
		}
		return ms, nil
	}
}

func partKey(category string, index uint32) string {
	return fmt.Sprintf("%s:%d", category, index)
}

func foldKnown() func(ref map[string]struct{}, m Model) (map[string]struct{}, error) {
	return func(ref map[string]struct{}, m Model) (map[string]struct{}, error) {
		ref[partKey(m.Category(), m.PartIndex())] = struct{}{}
		return ref, nil
	}
}

func knownSupplier() (map[string]struct{}, error) {
	return make(map[string]struct{}), nil
}

// RecordSnapshot stores every owned part not previously observed for the target
// and announces each one. Returns the newly recorded acquisitions.
func RecordSnapshot(l logrus.FieldLogger, db *gorm.DB, ctx context.Context, p producer.Provider, t target.Model) func(s inventory.Snapshot) ([]Model, error) {
	return func(s inventory.Snapshot) ([]Model, error) {
		span, _ := opentracing.StartSpanFromContext(ctx, "record_snapshot")
		defer span.Finish()

		now := time.Now()
		var added []Model
		err := db.Transaction(func(tx *gorm.DB) error {
			known, err := model.Fold[Model, map[string]struct{}](byTargetProvider(tx, t), knownSupplier, foldKnown())()
			if err != nil {
				return err
			}
			for _, o := range s.Owned() {
				for _, id := range o.Identifiers() {
					key := partKey(o.Category().Name(), id)
					if _, ok := known[key]; ok {
						continue
					}
					m, err := create(tx, t.Id, o.Category().Name(), id, s.SessionId(), now)
					if err != nil {
						l.WithError(err).Errorf("Unable to record acquisition of [%s] part [%d].", o.Category().Name(), id)
						return err
					}
					known[key] = struct{}{}
					added = append(added, m)
				}
			}
			return nil
		})
		if err != nil {
			span.SetTag("error", true)
			return nil, err
		}

		l.Debugf("Recorded [%d] new acquisitions for session [%s].", len(added), s.SessionId().String())
		for _, m := range added {
			l.Infof("Acquired [%s] part [%d].", m.Category(), m.PartIndex())
			if err = p(EnvEventTopicPartAcquired)(acquiredEventProvider(t, m)); err != nil {
				l.WithError(err).Errorf("Unable to announce acquisition of [%s] part [%d].", m.Category(), m.PartIndex())
			}
		}
		return added, nil
	}
}

// SnapshotRecorder adapts RecordSnapshot to a reload listener.
func SnapshotRecorder(l logrus.FieldLogger, db *gorm.DB, ctx context.Context, p producer.Provider, t target.Model) model.Operator[inventory.Snapshot] {
	return func(s inventory.Snapshot) error {
		_, err := RecordSnapshot(l, db, ctx, p, t)(s)
		return err
	}
}

// Reset forgets every acquisition recorded for the target.
func Reset(l logrus.FieldLogger, db *gorm.DB, t target.Model) error {
	err := deleteByTarget(db, t.Id)
	if err != nil {
		l.WithError(err).Errorf("Unable to reset acquisitions for target %s.", t.String())
		return err
	}
	l.Infof("Reset acquisitions for target %s.", t.String())
	return nil
}

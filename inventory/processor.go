package inventory

import (
	"atlas-parts/catalog"
	"context"
	"errors"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

func byCategoryProvider(l logrus.FieldLogger, s *Session) func(categoryName string) model.Provider[Model] {
	return func(categoryName string) model.Provider[Model] {
		c, err := s.Categories().ByName(categoryName)
		if err != nil {
			l.WithError(err).Errorf("Category [%s] is not part of layout for %s.", categoryName, s.Layout().Target().String())
			return model.ErrorProvider[Model](err)
		}
		return func() (Model, error) {
			return s.Owned(c)
		}
	}
}

func missingTransformer(cm catalog.Model) model.Transformer[Model, []catalog.Entry] {
	return func(m Model) ([]catalog.Entry, error) {
		return catalog.Missing(cm)(m.Category().Name(), m.Identifiers()), nil
	}
}

func partsTransformer(cm catalog.Model) model.Transformer[Model, []catalog.Part] {
	return func(m Model) ([]catalog.Part, error) {
		return catalog.Parts(cm)(m.Category().Name(), m.Identifiers()), nil
	}
}

// GetOwned decodes the owned part identifiers for a category. Decoder errors are
// returned as is, a corrupt count is never truncated.
func GetOwned(l logrus.FieldLogger, ctx context.Context, s *Session) func(categoryName string) (Model, error) {
	return func(categoryName string) (Model, error) {
		span, _ := opentracing.StartSpanFromContext(ctx, "get_owned")
		span.SetTag("category", categoryName)
		defer span.Finish()

		m, err := byCategoryProvider(l, s)(categoryName)()
		if err != nil {
			span.SetTag("error", true)
			l.WithError(err).Errorf("Unable to decode owned parts for category [%s].", categoryName)
			return Model{}, err
		}
		l.Debugf("Decoded [%d] owned parts for category [%s].", m.Len(), categoryName)
		return m, nil
	}
}

// OwnedWithRecovery reloads the session and retries once when the owned count
// indicates the cached base went stale.
func OwnedWithRecovery(l logrus.FieldLogger, ctx context.Context, s *Session) func(categoryName string) (Model, error) {
	return func(categoryName string) (Model, error) {
		m, err := GetOwned(l, ctx, s)(categoryName)
		if err == nil || !errors.Is(err, ErrCorruptLayout) {
			return m, err
		}
		l.Infof("Owned count for category [%s] out of range, reloading inventory table base.", categoryName)
		if _, err = Reload(l, ctx, s); err != nil {
			return Model{}, err
		}
		return GetOwned(l, ctx, s)(categoryName)
	}
}

// GetMissing returns the catalog entries of a category that are not owned.
func GetMissing(l logrus.FieldLogger, ctx context.Context, s *Session, cm catalog.Model) func(categoryName string) ([]catalog.Entry, error) {
	return func(categoryName string) ([]catalog.Entry, error) {
		span, _ := opentracing.StartSpanFromContext(ctx, "get_missing")
		span.SetTag("category", categoryName)
		defer span.Finish()

		es, err := model.Map(byCategoryProvider(l, s)(categoryName), missingTransformer(cm))()
		if err != nil {
			span.SetTag("error", true)
			l.WithError(err).Errorf("Unable to compute missing parts for category [%s].", categoryName)
			return nil, err
		}
		return es, nil
	}
}

// GetParts returns every catalog entry of a category flagged with ownership.
func GetParts(l logrus.FieldLogger, ctx context.Context, s *Session, cm catalog.Model) func(categoryName string) ([]catalog.Part, error) {
	return func(categoryName string) ([]catalog.Part, error) {
		span, _ := opentracing.StartSpanFromContext(ctx, "get_parts")
		span.SetTag("category", categoryName)
		defer span.Finish()

		ps, err := model.Map(byCategoryProvider(l, s)(categoryName), partsTransformer(cm))()
		if err != nil {
			span.SetTag("error", true)
			l.WithError(err).Errorf("Unable to list parts for category [%s].", categoryName)
			return nil, err
		}
		return ps, nil
	}
}

// GetOwnedDetails resolves owned identifiers against the catalog, reporting unknown ones separately.
func GetOwnedDetails(l logrus.FieldLogger, ctx context.Context, s *Session, cm catalog.Model) func(categoryName string) ([]catalog.Entry, []uint32, error) {
	return func(categoryName string) ([]catalog.Entry, []uint32, error) {
		m, err := GetOwned(l, ctx, s)(categoryName)
		if err != nil {
			return nil, nil, err
		}
		resolved, unresolved := catalog.Resolve(cm)(m.Category().Name(), m.Identifiers())
		if len(unresolved) > 0 {
			l.Warnf("Category [%s] has [%d] owned identifiers missing from the catalog: %v.", categoryName, len(unresolved), unresolved)
		}
		return resolved, unresolved, nil
	}
}

// Reload re-resolves the inventory table base and decodes every category. On
// failure the previously cached base is kept.
func Reload(l logrus.FieldLogger, ctx context.Context, s *Session) (Snapshot, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "reload")
	defer span.Finish()

	ss, err := s.Reload()
	if err != nil {
		span.SetTag("error", true)
		l.WithError(err).Errorf("Unable to reload inventory from [%s].", s.Source())
		return Snapshot{}, err
	}
	span.SetTag("session", ss.SessionId().String())
	l.Infof("Reloaded inventory from [%s]. session [%s] base [0x%X].", s.Source(), ss.SessionId().String(), ss.Base())
	return ss, nil
}

// Invalidate drops the cached base so the next query resolves it again.
func Invalidate(l logrus.FieldLogger, s *Session) {
	l.Debugf("Invalidating inventory table base for [%s].", s.Source())
	s.Invalidate()
}

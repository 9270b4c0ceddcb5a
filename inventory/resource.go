package inventory

import (
	"atlas-parts/catalog"
	"atlas-parts/category"
	"atlas-parts/memory"
	"atlas-parts/rest"
	"errors"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"net/http"
)

const (
	GetCategories  = "get_categories"
	GetOwnedParts  = "get_owned_parts"
	GetMissingPart = "get_missing_parts"
	GetAllParts    = "get_all_parts"
	ReloadBase     = "reload_inventory"
	InvalidateBase = "invalidate_inventory"
)

func InitResource(si jsonapi.ServerInformation) func(s *Session, cm catalog.Model, listeners ...model.Operator[Snapshot]) server.RouteInitializer {
	return func(s *Session, cm catalog.Model, listeners ...model.Operator[Snapshot]) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			register := rest.RegisterHandler(l)(si)

			cr := router.PathPrefix("/categories").Subrouter()
			cr.HandleFunc("", register(GetCategories, handleGetCategories(s))).Methods(http.MethodGet)
			cr.HandleFunc("/{category}/owned", register(GetOwnedParts, handleGetOwned(s, cm))).Methods(http.MethodGet)
			cr.HandleFunc("/{category}/missing", register(GetMissingPart, handleGetMissing(s, cm))).Methods(http.MethodGet)
			cr.HandleFunc("/{category}/parts", register(GetAllParts, handleGetParts(s, cm))).Methods(http.MethodGet)

			ir := router.PathPrefix("/inventory").Subrouter()
			ir.HandleFunc("/reload", register(ReloadBase, handleReload(s, listeners...))).Methods(http.MethodPost)
			ir.HandleFunc("/base", register(InvalidateBase, handleInvalidate(s))).Methods(http.MethodDelete)
		}
	}
}

// statusFor maps decoder failures to a response code. A corrupt count signals a
// stale base, so the caller is told to reload.
func statusFor(err error) int {
	switch {
	case errors.Is(err, category.ErrInvalidCategory):
		return http.StatusNotFound
	case errors.Is(err, ErrCorruptLayout):
		return http.StatusConflict
	case errors.Is(err, memory.ErrMemoryAccess):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func handleGetCategories(s *Session) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			res, err := model.TransformAll(s.Categories().All(), category.Transform)
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			server.Marshal[[]category.RestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	}
}

func handleGetOwned(s *Session, cm catalog.Model) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCategory(d.Logger(), s.Categories(), func(ct category.Model) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				owned := GetOwned(d.Logger(), d.Context(), s)
				if r.URL.Query().Get("recover") == "true" {
					owned = OwnedWithRecovery(d.Logger(), d.Context(), s)
				}
				m, err := owned(ct.Name())
				if err != nil {
					w.WriteHeader(statusFor(err))
					return
				}

				resolved, unresolved := catalog.Resolve(cm)(ct.Name(), m.Identifiers())
				res, err := model.TransformAll(resolved, catalog.TransformOwned)
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				unknown, err := model.TransformAll(unresolved, catalog.TransformUnknown(ct.Name()))
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				if len(unknown) > 0 {
					d.Logger().Warnf("Reporting [%d] owned parts of [%s] as unknown.", len(unknown), ct.Name())
				}
				server.Marshal[[]catalog.RestModel](d.Logger())(w)(c.ServerInformation())(append(res, unknown...))
			}
		})
	}
}

func handleGetMissing(s *Session, cm catalog.Model) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCategory(d.Logger(), s.Categories(), func(ct category.Model) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				es, err := GetMissing(d.Logger(), d.Context(), s, cm)(ct.Name())
				if err != nil {
					w.WriteHeader(statusFor(err))
					return
				}
				res, err := model.TransformAll(es, catalog.Transform)
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				server.Marshal[[]catalog.RestModel](d.Logger())(w)(c.ServerInformation())(res)
			}
		})
	}
}

func handleGetParts(s *Session, cm catalog.Model) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseCategory(d.Logger(), s.Categories(), func(ct category.Model) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				ps, err := GetParts(d.Logger(), d.Context(), s, cm)(ct.Name())
				if err != nil {
					w.WriteHeader(statusFor(err))
					return
				}
				res, err := model.TransformAll(ps, catalog.TransformPart)
				if err != nil {
					d.Logger().WithError(err).Errorf("Creating REST model.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				server.Marshal[[]catalog.RestModel](d.Logger())(w)(c.ServerInformation())(res)
			}
		})
	}
}

func handleReload(s *Session, listeners ...model.Operator[Snapshot]) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ss, err := Reload(d.Logger(), d.Context(), s)
			if err != nil {
				w.WriteHeader(statusFor(err))
				return
			}
			for _, listener := range listeners {
				if err = listener(ss); err != nil {
					d.Logger().WithError(err).Errorf("Unable to process snapshot for session [%s].", ss.SessionId().String())
				}
			}
			res, err := TransformSnapshot(s.Layout().Target().Title)(ss)
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			server.Marshal[SnapshotRestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	}
}

func handleInvalidate(s *Session) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			Invalidate(d.Logger(), s)
			w.WriteHeader(http.StatusAccepted)
		}
	}
}

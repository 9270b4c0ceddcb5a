package acquisition

import (
	"atlas-parts/rest"
	"atlas-parts/target"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"net/http"
	"strings"
)

const (
	GetAcquisitions   = "get_acquisitions"
	ResetAcquisitions = "reset_acquisitions"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB, t target.Model) server.RouteInitializer {
	return func(db *gorm.DB, t target.Model) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			register := rest.RegisterHandler(l)(si)
			r := router.PathPrefix("/acquisitions").Subrouter()
			r.HandleFunc("", register(GetAcquisitions, handleGetAcquisitions(db, t))).Methods(http.MethodGet)
			r.HandleFunc("", register(ResetAcquisitions, handleResetAcquisitions(db, t))).Methods(http.MethodDelete)
		}
	}
}

func handleGetAcquisitions(db *gorm.DB, t target.Model) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var ms []Model
			var err error
			if val := r.URL.Query().Get("category"); val != "" {
				ms, err = GetByCategory(d.Logger(), db, t)(strings.ToUpper(val))
			} else {
				ms, err = GetByTarget(d.Logger(), db, t)
			}
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			res, err := model.TransformAll(ms, Transform)
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			server.Marshal[[]RestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	}
}

func handleResetAcquisitions(db *gorm.DB, t target.Model) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if err := Reset(d.Logger(), db, t); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

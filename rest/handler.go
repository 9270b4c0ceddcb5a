package rest

import (
	"atlas-parts/category"
	"context"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/sirupsen/logrus"
	"net/http"
)

type HandlerDependency struct {
	l    logrus.FieldLogger
	ctx  context.Context
	span opentracing.Span
}

func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

func (h HandlerDependency) Context() context.Context {
	return h.ctx
}

func (h HandlerDependency) Span() opentracing.Span {
	return h.span
}

type HandlerContext struct {
	si jsonapi.ServerInformation
}

func (h HandlerContext) ServerInformation() jsonapi.ServerInformation {
	return h.si
}

type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

type SpanHandler func(logrus.FieldLogger, context.Context, opentracing.Span) http.HandlerFunc

// RetrieveSpan continues a trace carried in the request headers, or starts a new one.
func RetrieveSpan(l logrus.FieldLogger, name string, next SpanHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var span opentracing.Span
		wireContext, err := opentracing.GlobalTracer().Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header))
		if err != nil {
			span = opentracing.StartSpan(name)
		} else {
			span = opentracing.StartSpan(name, ext.RPCServerOption(wireContext))
		}
		defer span.Finish()

		ctx := opentracing.ContextWithSpan(r.Context(), span)
		next(l, ctx, span)(w, r.WithContext(ctx))
	}
}

func RegisterHandler(l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(handlerName string, handler GetHandler) http.HandlerFunc {
			return RetrieveSpan(l, handlerName, func(sl logrus.FieldLogger, ctx context.Context, span opentracing.Span) http.HandlerFunc {
				fl := sl.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
				return handler(&HandlerDependency{l: fl, ctx: ctx, span: span}, &HandlerContext{si: si})
			})
		}
	}
}

type CategoryHandler func(c category.Model) http.HandlerFunc

func ParseCategory(l logrus.FieldLogger, registry category.Registry, next CategoryHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		val, ok := mux.Vars(r)["category"]
		if !ok {
			l.Errorf("Unable to properly parse category from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		c, err := registry.ByName(val)
		if err != nil {
			l.WithError(err).Errorf("Category [%s] is not known.", val)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		next(c)(w, r)
	}
}

package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// HandlerDependency carries the logger and request context for a handler
type HandlerDependency struct {
	l   logrus.FieldLogger
	ctx context.Context
}

// Logger returns the handler logger
func (d *HandlerDependency) Logger() logrus.FieldLogger {
	return d.l
}

// Context returns the handler context
func (d *HandlerDependency) Context() context.Context {
	return d.ctx
}

// HandlerContext carries server information for response marshaling
type HandlerContext struct {
	si jsonapi.ServerInformation
}

// ServerInformation returns the JSON:API server information
func (c *HandlerContext) ServerInformation() jsonapi.ServerInformation {
	return c.si
}

// GetHandler produces an http.HandlerFunc from handler dependencies
type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

// InputHandler produces an http.HandlerFunc from handler dependencies and a parsed request body
type InputHandler[M any] func(d *HandlerDependency, c *HandlerContext, model M) http.HandlerFunc

// ParseInput decodes the request body before invoking the wrapped handler
func ParseInput[M any](d *HandlerDependency, c *HandlerContext, next InputHandler[M]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var model M
		if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
			d.l.WithError(err).Error("Unable to decode request body.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(d, c, model)(w, r)
	}
}

// RegisterHandler wraps a handler with span and tenant propagation
func RegisterHandler(l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(handlerName string, handler GetHandler) http.HandlerFunc {
			return retrieveSpan(handlerName, func(span opentracing.Span) http.HandlerFunc {
				fl := l.WithField("originator", handlerName)
				return parseTenant(fl, func(tl logrus.FieldLogger, ctx context.Context) http.HandlerFunc {
					return handler(&HandlerDependency{l: tl, ctx: ctx}, &HandlerContext{si: si})
				})
			})
		}
	}
}

// RegisterInputHandler wraps an input handler with span, tenant, and body parsing
func RegisterInputHandler[M any](l logrus.FieldLogger) func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
	return func(si jsonapi.ServerInformation) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
		return func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
			return retrieveSpan(handlerName, func(span opentracing.Span) http.HandlerFunc {
				fl := l.WithField("originator", handlerName)
				return parseTenant(fl, func(tl logrus.FieldLogger, ctx context.Context) http.HandlerFunc {
					return ParseInput[M](&HandlerDependency{l: tl, ctx: ctx}, &HandlerContext{si: si}, handler)
				})
			})
		}
	}
}

func retrieveSpan(name string, next func(span opentracing.Span) http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sctx, _ := opentracing.GlobalTracer().Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(r.Header))
		span := opentracing.StartSpan(name, opentracing.ChildOf(sctx))
		defer span.Finish()
		next(span)(w, r)
	}
}

func parseTenant(l logrus.FieldLogger, next func(l logrus.FieldLogger, ctx context.Context) http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantId, err := uuid.Parse(r.Header.Get("TENANT_ID"))
		if err != nil {
			l.WithError(err).Error("Unable to parse tenant id from header.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		region := r.Header.Get("REGION")
		majorVersion, err := strconv.Atoi(r.Header.Get("MAJOR_VERSION"))
		if err != nil {
			l.WithError(err).Error("Unable to parse major version from header.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		minorVersion, err := strconv.Atoi(r.Header.Get("MINOR_VERSION"))
		if err != nil {
			l.WithError(err).Error("Unable to parse minor version from header.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		t, err := tenant.Create(tenantId, region, uint16(majorVersion), uint16(minorVersion))
		if err != nil {
			l.WithError(err).Error("Unable to create tenant from header values.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		tl := l.WithField("tenant", t.Id().String())
		next(tl, tenant.WithContext(r.Context(), t))(w, r)
	}
}

// ParseWarriorId extracts the warrior id path variable before invoking the wrapped handler
func ParseWarriorId(l logrus.FieldLogger, next func(warriorId uint32) http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		value, err := strconv.ParseUint(vars["warriorId"], 10, 32)
		if err != nil {
			l.WithError(err).Error("Unable to parse warriorId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(value))(w, r)
	}
}

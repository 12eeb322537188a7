package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"OnlineStore/pkg/kit"
)

const (
	msgProductNotFound = "Product not found"
	msgMissingFields   = "Missing required fields"
	msgInvalidFields   = "Invalid field values"
	msgBadBody         = "Invalid request body"
	msgNothingToUpdate = "Nothing to update"
	msgRouteNotFound   = "API route not found"
	msgInternal        = "Internal server error"
)

var validate = newRequestValidator()

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Routes returns the product API, meant to be mounted under the API prefix.
// Anything it does not know answers 404 "API route not found".
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.StripSlashes)

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	r.Get("/products", s.list)
	r.Post("/products", s.create)
	r.Get("/products/{id}", s.get)
	r.Patch("/products/{id}", s.update)
	r.Delete("/products/{id}", s.delete)

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	kit.WriteError(w, r, http.StatusNotFound, msgRouteNotFound)
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.internalError(w, r, "list products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.internalError(w, r, "get product failed", err, zap.String("id", id))
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, msgProductNotFound)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.logger().Debug("create: bad body", zap.Error(err))
		kit.WriteError(w, r, http.StatusBadRequest, msgBadBody)
		return
	}
	if err := validate.create(&req); err != nil {
		s.writeValidationError(w, r, err)
		return
	}

	p, err := s.Store.Create(r.Context(), req.toNewProduct())
	if err != nil {
		s.internalError(w, r, "create product failed", err)
		return
	}

	s.logger().Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// An unknown id wins over any problem with the payload.
	_, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.internalError(w, r, "get product failed", err, zap.String("id", id))
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, msgProductNotFound)
		return
	}

	var req patchReq
	if err := decodeJSON(w, r, &req); err != nil {
		s.logger().Debug("update: bad body", zap.Error(err), zap.String("id", id))
		kit.WriteError(w, r, http.StatusBadRequest, msgBadBody)
		return
	}
	if err := validate.patch(&req); err != nil {
		s.writeValidationError(w, r, err)
		return
	}

	p, err := s.Store.Update(r.Context(), id, req.toPatch())
	if err != nil {
		s.writeStoreError(w, r, "update product failed", id, err)
		return
	}

	s.logger().Info("product updated", zap.String("id", p.ID))
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.Store.Delete(r.Context(), id); err != nil {
		s.writeStoreError(w, r, "delete product failed", id, err)
		return
	}

	s.logger().Info("product deleted", zap.String("id", id))
	kit.NoContent(w)
}

func (s *Server) writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errMissingFields):
		kit.WriteError(w, r, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, errInvalidFields):
		kit.WriteError(w, r, http.StatusBadRequest, msgInvalidFields)
	default:
		s.internalError(w, r, "validate request failed", err)
	}
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, msg, id string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, msgProductNotFound)
	case errors.Is(err, ErrNoChanges):
		kit.WriteError(w, r, http.StatusBadRequest, msgNothingToUpdate)
	default:
		s.internalError(w, r, msg, err, zap.String("id", id))
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.Error(err),
		zap.String("request_id", chimw.GetReqID(r.Context())),
	)
	s.logger().Error(msg, fields...)
	kit.WriteError(w, r, http.StatusInternalServerError, msgInternal)
}

// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/middleware"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/request"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/respond"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/sec"
)

// # Handler Implementation

// Handler implements the HTTP layer for categories.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the category endpoints.
//
//   - Public: list and get.
//   - Administration: create and delete, [sec.RoleAdmin] only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.create)
		admin.Delete("/{id}", handler.delete)
	})

	return router
}

// GET /api/categories.
func (handler *Handler) list(writer http.ResponseWriter, req *http.Request) {
	listings, err := handler.service.List(req.Context())
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, listings)
}

// GET /api/categories/{id}.
func (handler *Handler) get(writer http.ResponseWriter, req *http.Request) {
	id, err := request.Int64Param(req, "id", resource)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	listing, err := handler.service.Get(req.Context(), id)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, listing)
}

/*
POST /api/categories.

Request:
  - Body: NewCategory

Response:
  - 201: Listing
  - 409: name already taken
*/
func (handler *Handler) create(writer http.ResponseWriter, req *http.Request) {
	var input NewCategory
	if err := request.DecodeJSON(writer, req, &input); err != nil {
		respond.Error(writer, req, err)
		return
	}

	listing, err := handler.service.Create(req.Context(), input)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.Created(writer, listing)
}

/*
DELETE /api/categories/{id}.

Response:
  - 204: deleted
  - 409: still referenced by books
*/
func (handler *Handler) delete(writer http.ResponseWriter, req *http.Request) {
	id, err := request.Int64Param(req, "id", resource)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	if err := handler.service.Delete(req.Context(), id); err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.NoContent(writer)
}

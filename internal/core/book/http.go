// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/apperr"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/middleware"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/request"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/respond"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/sec"
	"github.com/NavodCaldera/online-bookstore-sub000/pkg/convert"
)

// # Handler Implementation

// Handler implements the HTTP layer of the catalog.
type Handler struct {
	service   *Service
	inventory *Inventory
}

// NewHandler constructs a new book [Handler].
func NewHandler(service *Service, inventory *Inventory) *Handler {
	return &Handler{service: service, inventory: inventory}
}

// Routes returns a [chi.Router] configured with the catalog endpoints.
//
//   - Discovery (Public): search, featured list, single book.
//   - Inventory (Restricted): requires [sec.RoleSeller] or above.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.search)
	router.Get("/featured", handler.featured)
	router.Get("/{id}", handler.getBook)

	router.Group(func(seller chi.Router) {
		seller.Use(middleware.RequireRole(sec.RoleSeller))

		seller.Post("/", handler.createBook)
		seller.Patch("/{id}/availability", handler.setAvailability)
	})

	return router
}

// # Discovery Endpoints

/*
GET /api/books.

Request (all optional, malformed values fall back to defaults):
  - page, limit (alias pageSize)
  - category, search, minPrice, maxPrice, condition, language, availability
  - sortBy: title, author, price, rating, created_at, published_year
  - sortOrder: ASC, DESC

Response:
  - 200: paginated []Summary
*/
func (handler *Handler) search(writer http.ResponseWriter, req *http.Request) {
	result, err := handler.service.Search(req.Context(), RawParamsFromQuery(req.URL.Query()))
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.Paginated(writer, result)
}

/*
GET /api/books/featured.

Request:
  - limit: int in [1, 24], default 8
*/
func (handler *Handler) featured(writer http.ResponseWriter, req *http.Request) {
	limit := convert.ToIntD(req.URL.Query().Get("limit"), DefaultFeaturedLimit)

	items, err := handler.service.Featured(req.Context(), limit)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, items)
}

// GET /api/books/{id}.
func (handler *Handler) getBook(writer http.ResponseWriter, req *http.Request) {
	id, err := request.Int64Param(req, "id", "Book")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	summary, err := handler.service.GetBook(req.Context(), id)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, summary)
}

// # Inventory Endpoints

/*
POST /api/books.

Request:
  - Body: NewBook

Response:
  - 201: Summary
*/
func (handler *Handler) createBook(writer http.ResponseWriter, req *http.Request) {
	claims, err := request.RequiredClaims(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	var input NewBook
	if err := request.DecodeJSON(writer, req, &input); err != nil {
		respond.Error(writer, req, err)
		return
	}

	summary, err := handler.inventory.CreateBook(req.Context(), claims, input)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.Created(writer, summary)
}

/*
PATCH /api/books/{id}/availability.

Request:
  - Body: {"availability": bool}
*/
func (handler *Handler) setAvailability(writer http.ResponseWriter, req *http.Request) {
	claims, err := request.RequiredClaims(req)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	id, err := request.Int64Param(req, "id", "Book")
	if err != nil {
		respond.Error(writer, req, err)
		return
	}

	var body struct {
		Availability *bool `json:"availability"`
	}
	if err := request.DecodeJSON(writer, req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}
	if body.Availability == nil {
		respond.Error(writer, req, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: "availability", Message: "This field is required"}))
		return
	}

	summary, err := handler.inventory.SetAvailability(req.Context(), claims, id, *body.Availability)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, summary)
}

// Copyright (c) 2026 PageTurn. All rights reserved.
// Author: PageTurn backend team

package newsletter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/request"
	"github.com/NavodCaldera/online-bookstore-sub000/internal/platform/respond"
)

// Handler implements the HTTP layer for newsletter subscriptions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new newsletter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the public subscription endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/subscribe", handler.subscribe)
	router.Get("/confirm", handler.confirm)
	router.Post("/unsubscribe", handler.unsubscribe)

	return router
}

type emailBody struct {
	Email string `json:"email"`
}

/*
POST /api/newsletter/subscribe.

Request:
  - Body: {"email": string}

Response:
  - 202: confirmation email sent
  - 409: already subscribed
*/
func (handler *Handler) subscribe(writer http.ResponseWriter, req *http.Request) {
	var body emailBody
	if err := request.DecodeJSON(writer, req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	if err := handler.service.Subscribe(req.Context(), body.Email); err != nil {
		respond.Error(writer, req, err)
		return
	}

	respond.JSON(writer, http.StatusAccepted, respond.SuccessEnvelope{
		Success: true,
		Data:    map[string]string{"message": "Check your inbox to confirm the subscription"},
	})
}

// GET /api/newsletter/confirm?token=.
func (handler *Handler) confirm(writer http.ResponseWriter, req *http.Request) {
	subscription, err := handler.service.Confirm(req.Context(), req.URL.Query().Get("token"))
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, subscription)
}

// POST /api/newsletter/unsubscribe.
func (handler *Handler) unsubscribe(writer http.ResponseWriter, req *http.Request) {
	var body emailBody
	if err := request.DecodeJSON(writer, req, &body); err != nil {
		respond.Error(writer, req, err)
		return
	}

	subscription, err := handler.service.Unsubscribe(req.Context(), body.Email)
	if err != nil {
		respond.Error(writer, req, err)
		return
	}
	respond.OK(writer, subscription)
}

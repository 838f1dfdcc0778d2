// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/telugucine/internal/platform/apperr"
	"github.com/taibuivan/telugucine/internal/platform/middleware"
	"github.com/taibuivan/telugucine/internal/platform/respond"
	"github.com/taibuivan/telugucine/internal/platform/sec"
	"github.com/taibuivan/telugucine/pkg/convert"
)

// Handler exposes audits to administrators.
type Handler struct {
	service *Service
}

// NewHandler constructs an audit [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the admin audit endpoints. Every route requires [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/duplicates", handler.duplicates)
	return router
}

// duplicates runs an audit synchronously. Query overrides: similarity (0..1]
// and limit (max under-matches).
func (handler *Handler) duplicates(writer http.ResponseWriter, request *http.Request) {
	options := handler.service.Options()
	query := request.URL.Query()

	if raw := query.Get("similarity"); raw != "" {
		similarity := convert.ToFloat64(raw)
		if !(similarity > 0 && similarity <= 1) {
			respond.Error(writer, request, apperr.ValidationError("similarity must be in (0, 1]",
				apperr.FieldError{Field: "similarity", Message: "Must be greater than 0 and at most 1"}))
			return
		}
		options.Similarity = float32(similarity)
	}

	options.MaxUnderMatches = convert.ToIntD(query.Get("limit"), options.MaxUnderMatches)
	if options.MaxUnderMatches < 1 {
		respond.Error(writer, request, apperr.ValidationError("limit must be positive",
			apperr.FieldError{Field: "limit", Message: "Must be a positive integer"}))
		return
	}

	report, err := handler.service.RunWith(request.Context(), options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, report)
}

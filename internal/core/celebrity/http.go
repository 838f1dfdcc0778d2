// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package celebrity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/telugucine/internal/platform/middleware"
	requestutil "github.com/taibuivan/telugucine/internal/platform/request"
	"github.com/taibuivan/telugucine/internal/platform/respond"
	"github.com/taibuivan/telugucine/internal/platform/sec"
	"github.com/taibuivan/telugucine/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for celebrity profiles.
type Handler struct {
	service *Service
}

// NewHandler constructs a new celebrity [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the celebrity endpoints.
//
//   - Discovery (Public): curated listing, profile and filmography by slug.
//   - Curation (Restricted): [sec.RoleEditor] writes; deletion and alias
//     reconciliation require [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCelebrities)
	router.Get("/{slug}", handler.getProfile)
	router.Get("/{slug}/filmography", handler.getFilmography)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))

		editor.Post("/", handler.createCelebrity)
		editor.Patch("/{id}", handler.updateCelebrity)

		editor.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireRole(sec.RoleAdmin))

			admin.Delete("/{id}", handler.deleteCelebrity)
			admin.Post("/{id}/reconcile", handler.reconcile)
		})
	})

	return router
}

func (handler *Handler) listCelebrities(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}

	celebrities, total, err := handler.service.ListCelebrities(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, celebrities, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	celebrity, err := handler.service.Profile(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, celebrity)
}

func (handler *Handler) getFilmography(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.Filmography(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) createCelebrity(writer http.ResponseWriter, request *http.Request) {
	var input Celebrity
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCelebrity(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCelebrity(writer http.ResponseWriter, request *http.Request) {
	var input Celebrity
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCelebrity(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCelebrity(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCelebrity(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) reconcile(writer http.ResponseWriter, request *http.Request) {
	aliases, err := handler.service.Reconcile(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, aliases)
}

// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/telugucine/internal/platform/middleware"
	requestutil "github.com/taibuivan/telugucine/internal/platform/request"
	"github.com/taibuivan/telugucine/internal/platform/respond"
	"github.com/taibuivan/telugucine/internal/platform/sec"
	"github.com/taibuivan/telugucine/pkg/convert"
	"github.com/taibuivan/telugucine/pkg/pagination"
	querytool "github.com/taibuivan/telugucine/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for the movie catalogue.
type Handler struct {
	service *Service
}

// NewHandler constructs a new movie [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the movie endpoints.
//
//   - Discovery (Public): listing and lookup by UUID or slug.
//   - Curation (Restricted): requires [sec.RoleEditor]; deletion requires [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listMovies)
	router.Get("/{identifier}", handler.getMovie)

	router.Group(func(editor chi.Router) {
		editor.Use(middleware.RequireRole(sec.RoleEditor))

		editor.Post("/", handler.createMovie)
		editor.Patch("/{id}", handler.updateMovie)

		editor.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteMovie)
	})

	return router
}

func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	query := request.URL.Query()

	filter := Filter{
		Query:  query.Get("q"),
		Year:   convert.ToInt(query.Get("year")),
		Genres: querytool.StringSlice(query.Get("genre")),
		Person: query.Get("person"),
	}

	movies, total, err := handler.service.ListMovies(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, movies, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	movie, err := handler.service.GetMovie(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var input Movie
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateMovie(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	var input Movie
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateMovie(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteMovie(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

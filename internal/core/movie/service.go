// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/telugucine/internal/platform/validate"
	"github.com/taibuivan/telugucine/pkg/slug"
	"github.com/taibuivan/telugucine/pkg/uuid"
)

// earliestReleaseYear is the year of the first Telugu talkie.
const earliestReleaseYear = 1931

// # Service Layer

// Service orchestrates the business logic for the movie catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a new [Service] with its repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// # Movie Lookups

// ListMovies retrieves a paginated and filtered collection of movies.
func (service *Service) ListMovies(context context.Context, filter Filter, limit, offset int) ([]*Movie, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetMovie fetches a single movie by UUID or SEO slug.

Parameters:
  - context: context.Context
  - identifier: string (UUID or Slug)

Returns:
  - *Movie: The hydrated domain entity
  - error: ErrNotFound if no match is found
*/
func (service *Service) GetMovie(context context.Context, identifier string) (*Movie, error) {
	if isUUID(identifier) {
		return service.repo.FindByID(context, identifier)
	}
	return service.repo.FindBySlug(context, identifier)
}

// # Movie Management

/*
CreateMovie validates and persists a new movie.

Description: Generates a UUID v7 identity and, when absent, a slug built
from the title and release year ("baahubali-2015").
*/
func (service *Service) CreateMovie(context context.Context, movie *Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New()
	}

	normalize(movie)

	if movie.Slug == "" {
		movie.Slug = slugFor(movie)
	}

	if err := service.validate(movie); err != nil {
		return err
	}

	if err := service.repo.Create(context, movie); err != nil {
		return err
	}

	service.logger.Info("movie_created",
		slog.String("movie_id", movie.ID),
		slog.String("title", movie.Title),
	)
	return nil
}

// UpdateMovie replaces the mutable attributes of an existing movie.
func (service *Service) UpdateMovie(context context.Context, id string, movie *Movie) error {
	movie.ID = id

	normalize(movie)

	if movie.Slug == "" {
		movie.Slug = slugFor(movie)
	}

	if err := service.validate(movie); err != nil {
		return err
	}

	if err := service.repo.Update(context, movie); err != nil {
		return err
	}

	service.logger.Info("movie_updated", slog.String("movie_id", movie.ID))
	return nil
}

// DeleteMovie soft-deletes a movie.
func (service *Service) DeleteMovie(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("movie_deleted", slog.String("movie_id", id))
	return nil
}

// # Helpers

func (service *Service) validate(movie *Movie) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, movie.Title).MaxLen(FieldTitle, movie.Title, 300)
	validator.Slug(FieldSlug, movie.Slug)

	if movie.ReleaseYear != nil {
		validator.Range(FieldReleaseYear, *movie.ReleaseYear, earliestReleaseYear, service.now().Year()+5)
	}

	if movie.PosterURL != nil {
		validator.URL(FieldPosterURL, *movie.PosterURL)
	}

	if movie.TMDBID != nil {
		validator.Custom(FieldTMDBID, *movie.TMDBID <= 0, "Must be a positive integer")
	}

	validator.Custom(FieldGenres, len(movie.Genres) > 10, "At most 10 genres")

	for _, credit := range CreditFields {
		if value := credit.Value(movie); value != nil {
			validator.MaxLen(string(credit.Field), *value, 500)
		}
	}

	return validator.Err()
}

// normalize trims credit values, storing blank ones as NULL, and trims genres.
func normalize(movie *Movie) {
	movie.Title = strings.TrimSpace(movie.Title)

	genres := make([]string, 0, len(movie.Genres))
	for _, genre := range movie.Genres {
		if genre = strings.TrimSpace(genre); genre != "" {
			genres = append(genres, genre)
		}
	}
	movie.Genres = genres

	for _, target := range []**string{
		&movie.Director, &movie.Hero, &movie.Heroine,
		&movie.MusicDirector, &movie.Producer, &movie.Writer,
	} {
		if *target == nil {
			continue
		}
		trimmed := strings.TrimSpace(**target)
		if trimmed == "" {
			*target = nil
			continue
		}
		*target = &trimmed
	}
}

func slugFor(movie *Movie) string {
	if movie.ReleaseYear == nil {
		return slug.From(movie.Title)
	}
	return slug.From(fmt.Sprintf("%s %d", movie.Title, *movie.ReleaseYear))
}

// isUUID performs a quick format check on an identifier string.
func isUUID(s string) bool {
	return len(s) == 36 && s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-'
}

// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package movietest provides an in-memory [movie.Repository] for tests.
//
// It mirrors the PostgreSQL semantics that callers rely on: soft-deleted rows
// are invisible, FindByCredit is a case-insensitive substring match over the
// six credit columns ordered by release year then ID, and Scan pages by ID.
package movietest

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/taibuivan/telugucine/internal/core/movie"
	"github.com/taibuivan/telugucine/internal/platform/apperr"
	"github.com/taibuivan/telugucine/internal/platform/dberr"
)

// Repository is a mutex-guarded map of movies keyed by ID.
type Repository struct {
	mu     sync.Mutex
	movies map[string]*movie.Movie

	// CreditQueries records every FindByCredit fragment, in call order.
	CreditQueries []string
}

// New returns a repository seeded with copies of movies.
func New(movies ...*movie.Movie) *Repository {
	repository := &Repository{movies: make(map[string]*movie.Movie, len(movies))}
	for _, m := range movies {
		clone := *m
		repository.movies[m.ID] = &clone
	}
	return repository
}

func (repository *Repository) List(_ context.Context, filter movie.Filter, limit, offset int) ([]*movie.Movie, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var matched []*movie.Movie
	for _, m := range repository.sorted() {
		if filter.Query != "" && !containsFold(m.Title, filter.Query) {
			continue
		}
		if filter.Year > 0 && m.Year() != filter.Year {
			continue
		}
		if len(filter.Genres) > 0 && !slices.ContainsFunc(filter.Genres, func(genre string) bool {
			return slices.Contains(m.Genres, genre)
		}) {
			continue
		}
		if filter.Person != "" && !creditContains(m, filter.Person) {
			continue
		}
		matched = append(matched, m)
	}

	total := len(matched)
	if offset >= total {
		return []*movie.Movie{}, total, nil
	}
	end := min(offset+limit, total)
	return matched[offset:end], total, nil
}

func (repository *Repository) FindByID(_ context.Context, id string) (*movie.Movie, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if m, ok := repository.movies[id]; ok && m.DeletedAt == nil {
		clone := *m
		return &clone, nil
	}
	return nil, dberr.ErrNotFound
}

func (repository *Repository) FindBySlug(_ context.Context, slug string) (*movie.Movie, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, m := range repository.movies {
		if m.Slug == slug && m.DeletedAt == nil {
			clone := *m
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *Repository) Create(_ context.Context, m *movie.Movie) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.movies {
		if existing.ID == m.ID || existing.Slug == m.Slug {
			return apperr.Conflict("Resource already exists")
		}
	}
	clone := *m
	repository.movies[m.ID] = &clone
	return nil
}

func (repository *Repository) Update(_ context.Context, m *movie.Movie) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.movies[m.ID]
	if !ok || existing.DeletedAt != nil {
		return dberr.ErrNotFound
	}
	clone := *m
	repository.movies[m.ID] = &clone
	return nil
}

func (repository *Repository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.movies[id]
	if !ok || existing.DeletedAt != nil {
		return dberr.ErrNotFound
	}
	delete(repository.movies, id)
	return nil
}

func (repository *Repository) FindByCredit(_ context.Context, fragment string, limit int) ([]*movie.Movie, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.CreditQueries = append(repository.CreditQueries, fragment)

	fragment = strings.TrimSpace(fragment)
	result := []*movie.Movie{}
	if fragment == "" {
		return result, nil
	}

	for _, m := range repository.sorted() {
		if len(result) == limit {
			break
		}
		if creditContains(m, fragment) {
			result = append(result, m)
		}
	}
	return result, nil
}

func (repository *Repository) Scan(_ context.Context, afterID string, batch int) ([]*movie.Movie, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	ids := make([]string, 0, len(repository.movies))
	for id := range repository.movies {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	result := []*movie.Movie{}
	for _, id := range ids {
		if len(result) == batch {
			break
		}
		if afterID != "" && id <= afterID {
			continue
		}
		clone := *repository.movies[id]
		result = append(result, &clone)
	}
	return result, nil
}

// sorted returns copies ordered by release year (unknown last) then ID.
func (repository *Repository) sorted() []*movie.Movie {
	movies := make([]*movie.Movie, 0, len(repository.movies))
	for _, m := range repository.movies {
		if m.DeletedAt != nil {
			continue
		}
		clone := *m
		movies = append(movies, &clone)
	}

	slices.SortFunc(movies, func(a, b *movie.Movie) int {
		switch {
		case a.ReleaseYear == nil && b.ReleaseYear != nil:
			return 1
		case a.ReleaseYear != nil && b.ReleaseYear == nil:
			return -1
		case a.Year() != b.Year():
			return a.Year() - b.Year()
		}
		return strings.Compare(a.ID, b.ID)
	})
	return movies
}

func creditContains(m *movie.Movie, fragment string) bool {
	for _, credit := range movie.CreditFields {
		if value := credit.Value(m); value != nil && containsFold(*value, fragment) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

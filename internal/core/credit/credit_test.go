// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credit_test

import (
	"github.com/taibuivan/telugucine/internal/core/movie"
)

// credits is a shorthand for building test movies.
type credits struct {
	director, hero, heroine, music, producer, writer string
}

func film(id string, year int, c credits) *movie.Movie {
	m := &movie.Movie{ID: id, Title: "Movie " + id, Slug: "movie-" + id}
	if year > 0 {
		m.ReleaseYear = &year
	}
	m.Director = optional(c.director)
	m.Hero = optional(c.hero)
	m.Heroine = optional(c.heroine)
	m.MusicDirector = optional(c.music)
	m.Producer = optional(c.producer)
	m.Writer = optional(c.writer)
	return m
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ids(movies []*movie.Movie) []string {
	result := make([]string, 0, len(movies))
	for _, m := range movies {
		result = append(result, m.ID)
	}
	return result
}

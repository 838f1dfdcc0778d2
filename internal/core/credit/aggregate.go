// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credit

import (
	"slices"

	"github.com/taibuivan/telugucine/internal/core/movie"
)

// # Filmography

// RoleBucket holds the movies crediting a person in one role.
type RoleBucket struct {
	Role   movie.Field    `json:"role"`
	Movies []*movie.Movie `json:"movies"`
}

// Filmography groups a person's movies by role. Buckets always follow
// [movie.CreditFields] order and are never nil.
type Filmography struct {
	Person  string       `json:"person"`
	Buckets []RoleBucket `json:"roles"`
}

// NewFilmography returns a filmography with six empty buckets.
func NewFilmography(personName string) Filmography {
	buckets := make([]RoleBucket, 0, len(movie.CreditFields))
	for _, credit := range movie.CreditFields {
		buckets = append(buckets, RoleBucket{Role: credit.Field, Movies: []*movie.Movie{}})
	}
	return Filmography{Person: personName, Buckets: buckets}
}

// Bucket returns the movies credited in role, or nil for an unknown role.
func (f Filmography) Bucket(role movie.Field) []*movie.Movie {
	for _, bucket := range f.Buckets {
		if bucket.Role == role {
			return bucket.Movies
		}
	}
	return nil
}

// Counts returns the number of movies per role.
func (f Filmography) Counts() map[movie.Field]int {
	counts := make(map[movie.Field]int, len(f.Buckets))
	for _, bucket := range f.Buckets {
		counts[bucket.Role] = len(bucket.Movies)
	}
	return counts
}

// Total returns the number of distinct movies across all roles.
// A movie credited as both director and writer counts once.
func (f Filmography) Total() int {
	return len(f.distinct())
}

// SortByYear orders every bucket by release year. Movies with an unknown
// year go last in both directions; equal years keep their input order.
func (f Filmography) SortByYear(desc bool) {
	for _, bucket := range f.Buckets {
		slices.SortStableFunc(bucket.Movies, func(a, b *movie.Movie) int {
			switch {
			case a.ReleaseYear == nil && b.ReleaseYear == nil:
				return 0
			case a.ReleaseYear == nil:
				return 1
			case b.ReleaseYear == nil:
				return -1
			case desc:
				return b.Year() - a.Year()
			}
			return a.Year() - b.Year()
		})
	}
}

// distinct returns every bucketed movie once, first occurrence first.
func (f Filmography) distinct() []*movie.Movie {
	var movies []*movie.Movie
	seen := newMovieSet()
	for _, bucket := range f.Buckets {
		for _, m := range bucket.Movies {
			if seen.add(m) {
				movies = append(movies, m)
			}
		}
	}
	return movies
}

// # Aggregation

/*
Aggregate builds a per-role filmography for personName.

Description: Every record goes through [MatchMovie]; each matched field
appends the record to that role's bucket. A record lands in several buckets
when it credits the person in several roles, but at most once per bucket.
Buckets keep input order. altNames are accepted as spellings of the same
person; the filmography is still labelled with personName.

Records are assumed to be a loose superset (e.g. a substring query); this is
where false positives such as "Ram" inside "Ram Charan" are filtered out.
*/
func Aggregate(records []*movie.Movie, personName string, altNames ...string) Filmography {
	filmography := NewFilmography(personName)

	seen := make([]*movieSet, len(filmography.Buckets))
	for i := range seen {
		seen[i] = newMovieSet()
	}

	for _, record := range records {
		if record == nil {
			continue
		}

		for i, result := range MatchMovie(record, personName, altNames...) {
			if !result.Matched {
				continue
			}
			if seen[i].add(record) {
				filmography.Buckets[i].Movies = append(filmography.Buckets[i].Movies, record)
			}
		}
	}

	return filmography
}

// movieSet dedups movies by ID, or by pointer identity when the ID is empty.
type movieSet struct {
	ids      map[string]struct{}
	pointers map[*movie.Movie]struct{}
}

func newMovieSet() *movieSet {
	return &movieSet{ids: map[string]struct{}{}, pointers: map[*movie.Movie]struct{}{}}
}

// add records m and reports whether it was new.
func (s *movieSet) add(m *movie.Movie) bool {
	if m.ID != "" {
		if _, ok := s.ids[m.ID]; ok {
			return false
		}
		s.ids[m.ID] = struct{}{}
		return true
	}

	if _, ok := s.pointers[m]; ok {
		return false
	}
	s.pointers[m] = struct{}{}
	return true
}

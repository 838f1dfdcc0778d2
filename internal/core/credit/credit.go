// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package credit resolves people against the free-text credit columns of movies.

Movie rows carry no person foreign key: a director or hero is a string, possibly
several names joined by commas, spelled however the ingesting script spelled it.
This package turns that text into profile data in three steps:

  - Resolve: a URL slug ("teja") plus a small candidate sample becomes the
    canonical name string observed in a credit field ("Teja").
  - Matches: decides whether one credit field value really credits a name
    (comma co-credits, initials, subset/superset word sets).
  - Aggregate: folds a broad candidate set into per-role filmography buckets.

Every function here is pure and total: no I/O, no errors, no shared state.
Malformed input (nil movies, empty fields, empty slices) degrades to "no match".
Fetching candidates is the caller's job (see [movie.Repository.FindByCredit]).
*/
package credit

import "github.com/taibuivan/telugucine/internal/core/movie"

// Phase identifies which resolution tier produced a [Resolution].
type Phase string

const (
	// PhaseExact means the compacted field equals the compacted slug.
	PhaseExact Phase = "exact"

	// PhaseBoundary means the compacted field starts or ends with the compacted slug.
	PhaseBoundary Phase = "boundary"
)

// MatchResult reports whether one credit field of a movie credits a person.
type MatchResult struct {
	Field   movie.Field `json:"field"`
	Matched bool        `json:"matched"`
}

// DefaultResolveOrder is the field order used by [Resolve] unless overridden.
var DefaultResolveOrder = []movie.Field{
	movie.FieldDirector,
	movie.FieldMusicDirector,
	movie.FieldWriter,
	movie.FieldHero,
	movie.FieldHeroine,
	movie.FieldProducer,
}

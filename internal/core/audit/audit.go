// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package audit reports credit spellings that the resolver and matcher treat as
different people, or that the loose credit query over-fetches.

A run walks the whole catalogue once and produces three lists:

  - Exact variants: spellings with the same compacted key
    ("S. S. Rajamouli" / "SS Rajamouli"). Slug resolution already treats them as
    one person; filmographies do not.
  - Near variants: distinct keys whose Jaro-Winkler similarity passes the
    threshold ("keeravani" / "keeravaani"). Usually typos.
  - Under-matches: credit values sharing a whole word with a spelling, and
    containing it, that [credit.Matches] rejects ("Ram" inside "Ram Charan").
    Most are correct rejections; the list is for editorial review.

Reports feed the alias index: an editor adds the variants as alternate names
and reconciles the profile.
*/
package audit

import (
	"time"

	"github.com/taibuivan/telugucine/internal/core/movie"
)

// Spelling is one raw comma token as it appears in credit columns.
type Spelling struct {
	Name   string        `json:"name"`
	Movies int           `json:"movies"` // Distinct movies crediting this spelling
	Fields []movie.Field `json:"fields"` // Roles it appears in, role order
}

// ExactGroup holds spellings sharing one compacted key.
type ExactGroup struct {
	Key       string     `json:"key"`
	Spellings []Spelling `json:"spellings"`
}

// NearPair links two compacted keys that are probably the same person.
type NearPair struct {
	Similarity float32  `json:"similarity"`
	Left       Spelling `json:"left"`
	Right      Spelling `json:"right"`
}

// UnderMatch is a credit value the loose query hits for Name but the matcher rejects.
type UnderMatch struct {
	Name         string      `json:"name"`
	Value        string      `json:"value"`
	Field        movie.Field `json:"field"`
	Movies       int         `json:"movies"`
	ExampleID    string      `json:"example_movie_id"`
	ExampleTitle string      `json:"example_movie_title"`
}

// Report is the outcome of one audit run.
type Report struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	Duration      time.Duration `json:"duration_ns"`
	MoviesScanned int           `json:"movies_scanned"`
	Spellings     int           `json:"spellings"`
	Threshold     float32       `json:"threshold"`

	ExactGroups []ExactGroup `json:"exact_groups"`
	NearPairs   []NearPair   `json:"near_pairs"`

	UnderMatches          []UnderMatch `json:"under_matches"`
	UnderMatchesTruncated bool         `json:"under_matches_truncated"`
}

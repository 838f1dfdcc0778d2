// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credit

import (
	"slices"

	"github.com/taibuivan/telugucine/internal/core/movie"
)

// Stats summarises a [Filmography] for profile badges and audit reports.
type Stats struct {
	Total       int                 `json:"total"`
	Counts      map[movie.Field]int `json:"counts"`
	PrimaryRole movie.Field         `json:"primary_role,omitempty"`
	FirstYear   int                 `json:"first_year,omitempty"`
	LastYear    int                 `json:"last_year,omitempty"`
	Decades     []int               `json:"decades"`
}

// Summary computes [Stats] for f.
//
// PrimaryRole is the largest bucket, ties going to the earlier role in
// [movie.CreditFields] order; it is empty for an empty filmography. Years and
// decades consider distinct movies with a known release year only.
func Summary(f Filmography) Stats {
	stats := Stats{
		Counts:  f.Counts(),
		Decades: []int{},
	}

	largest := 0
	for _, bucket := range f.Buckets {
		if len(bucket.Movies) > largest {
			largest = len(bucket.Movies)
			stats.PrimaryRole = bucket.Role
		}
	}

	movies := f.distinct()
	stats.Total = len(movies)

	for _, m := range movies {
		if m.ReleaseYear == nil {
			continue
		}

		year := *m.ReleaseYear
		if stats.FirstYear == 0 || year < stats.FirstYear {
			stats.FirstYear = year
		}
		if year > stats.LastYear {
			stats.LastYear = year
		}

		decade := year - year%10
		if !slices.Contains(stats.Decades, decade) {
			stats.Decades = append(stats.Decades, decade)
		}
	}

	slices.Sort(stats.Decades)
	return stats
}

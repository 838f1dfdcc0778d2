// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credit

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/telugucine/internal/core/movie"
	"github.com/taibuivan/telugucine/pkg/slug"
)

// # Tie-break Policy

// TieBreak chooses between several matches found in the same phase.
type TieBreak string

const (
	// TieBreakFirst returns the first match in candidate order, then field order.
	TieBreakFirst TieBreak = "first"

	// TieBreakLongest returns the longest raw value among all matches of the
	// winning phase. Equal lengths fall back to [TieBreakFirst] order.
	TieBreakLongest TieBreak = "longest"
)

// ParseTieBreak maps a config string onto a [TieBreak], defaulting to first.
func ParseTieBreak(s string) TieBreak {
	if TieBreak(strings.ToLower(strings.TrimSpace(s))) == TieBreakLongest {
		return TieBreakLongest
	}
	return TieBreakFirst
}

// # Options

type resolveOptions struct {
	fields   []movie.Field
	tieBreak TieBreak
}

// ResolveOption customises [Resolve].
type ResolveOption func(*resolveOptions)

// WithFieldOrder overrides [DefaultResolveOrder]. Unknown fields are ignored.
func WithFieldOrder(fields ...movie.Field) ResolveOption {
	return func(options *resolveOptions) {
		valid := make([]movie.Field, 0, len(fields))
		for _, field := range fields {
			if field.IsValid() {
				valid = append(valid, field)
			}
		}
		if len(valid) > 0 {
			options.fields = valid
		}
	}
}

// ParseFieldOrder maps config names ("director", "hero", ...) onto credit
// fields. An empty list yields nil, which keeps [DefaultResolveOrder].
func ParseFieldOrder(names []string) ([]movie.Field, error) {
	var fields []movie.Field
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		field := movie.Field(name)
		if !field.IsValid() {
			return nil, fmt.Errorf("credit: unknown field %q", name)
		}
		if slices.Contains(fields, field) {
			return nil, fmt.Errorf("credit: field %q listed twice", name)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// WithTieBreak selects the tie-break policy.
func WithTieBreak(tieBreak TieBreak) ResolveOption {
	return func(options *resolveOptions) {
		options.tieBreak = tieBreak
	}
}

// # Resolver

// Resolution is the outcome of a successful [Resolve].
type Resolution struct {
	// Name is the raw credit value, with its original casing and punctuation.
	Name    string      `json:"name"`
	Phase   Phase       `json:"phase"`
	Field   movie.Field `json:"field"`
	MovieID string      `json:"movie_id"`
}

/*
Resolve determines the canonical person name a URL slug refers to.

Description: Two ordered phases, first phase with any match wins:

 1. Exact: Compact(field) == Compact(slug).
 2. Boundary (only when phase 1 matched nothing across all candidates):
    Compact(field) starts or ends with Compact(slug).

Within a phase candidates are visited in order, and fields in the configured
order (director, music director, writer, hero, heroine, producer by default).
With [TieBreakFirst] the first hit is returned.

A slug or field whose compacted form is empty never matches. No candidates,
or no match in either phase, returns ok == false.
*/
func Resolve(slugText string, candidates []*movie.Movie, opts ...ResolveOption) (Resolution, bool) {
	options := resolveOptions{fields: DefaultResolveOrder, tieBreak: TieBreakFirst}
	for _, opt := range opts {
		opt(&options)
	}

	key := slug.Compact(slugText)
	if key == "" || len(candidates) == 0 {
		return Resolution{}, false
	}

	phases := []struct {
		phase Phase
		test  func(field string) bool
	}{
		{PhaseExact, func(field string) bool { return field == key }},
		{PhaseBoundary, func(field string) bool {
			return strings.HasPrefix(field, key) || strings.HasSuffix(field, key)
		}},
	}

	for _, phase := range phases {
		if resolution, ok := scan(candidates, options, phase.phase, phase.test); ok {
			return resolution, true
		}
	}

	return Resolution{}, false
}

// scan runs one phase over every candidate and field.
func scan(candidates []*movie.Movie, options resolveOptions, phase Phase, test func(string) bool) (Resolution, bool) {
	var best Resolution
	found := false

	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}

		for _, field := range options.fields {
			raw := candidate.Credit(field)
			compacted := slug.Compact(raw)
			if compacted == "" || !test(compacted) {
				continue
			}

			hit := Resolution{Name: raw, Phase: phase, Field: field, MovieID: candidate.ID}
			if options.tieBreak != TieBreakLongest {
				return hit, true
			}

			if !found || utf8.RuneCountInString(strings.TrimSpace(raw)) > utf8.RuneCountInString(strings.TrimSpace(best.Name)) {
				best = hit
				found = true
			}
		}
	}

	return best, found
}

/*
CanonicalToken narrows a resolved multi-credit value to the single name the
slug refers to.

Description: [Resolve] returns the raw field value, which for co-credits is
the whole comma list ("Chiranjeevi, Mohan Babu"). CanonicalToken returns the
comma token whose compacted form equals the compacted slug, else the first
token it starts or ends with, else raw unchanged.
*/
func CanonicalToken(raw, slugText string) string {
	if !strings.Contains(raw, ",") {
		return raw
	}

	key := slug.Compact(slugText)
	if key == "" {
		return raw
	}

	tokens := splitCredits(raw)
	for _, token := range tokens {
		if slug.Compact(token) == key {
			return token
		}
	}
	for _, token := range tokens {
		compacted := slug.Compact(token)
		if compacted != "" && (strings.HasPrefix(compacted, key) || strings.HasSuffix(compacted, key)) {
			return token
		}
	}
	return raw
}

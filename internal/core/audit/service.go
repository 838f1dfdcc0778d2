// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/hbollon/go-edlib"

	"github.com/taibuivan/telugucine/internal/core/credit"
	"github.com/taibuivan/telugucine/internal/core/movie"
	"github.com/taibuivan/telugucine/internal/platform/constants"
	"github.com/taibuivan/telugucine/internal/platform/metrics"
	"github.com/taibuivan/telugucine/pkg/slice"
	"github.com/taibuivan/telugucine/pkg/slug"
)

// # Configuration

// Options tunes an audit run.
type Options struct {
	BatchSize       int     // Movies per keyset page
	Similarity      float32 // Minimum Jaro-Winkler similarity for near variants
	MaxLengthDiff   int     // Keys differing in length by more are never compared
	MaxUnderMatches int     // Cap on reported under-matches
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		BatchSize:       constants.DefaultAuditBatchSize,
		Similarity:      constants.DefaultAuditSimilarity,
		MaxLengthDiff:   3,
		MaxUnderMatches: 500,
	}
}

// # Service Layer

// Service runs duplicate-name audits over the movie catalogue.
type Service struct {
	movies  movie.Repository
	options Options
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs an audit [Service].
func NewService(movies movie.Repository, options Options, logger *slog.Logger) *Service {
	return &Service{movies: movies, options: options, logger: logger, now: time.Now}
}

// Options returns the configured defaults, for callers that override a field per run.
func (service *Service) Options() Options {
	return service.options
}

/*
Run scans the catalogue and builds a [Report] using the configured options.

Description: Movies are read in keyset pages; cancellation is checked between
pages and between near-variant comparisons, returning ctx.Err().
*/
func (service *Service) Run(ctx context.Context) (*Report, error) {
	return service.RunWith(ctx, service.options)
}

// RunWith is [Service.Run] with explicit options.
func (service *Service) RunWith(ctx context.Context, options Options) (*Report, error) {
	if options.BatchSize < 1 {
		options.BatchSize = constants.DefaultAuditBatchSize
	}

	started := service.now()
	index := newIndex()

	afterID := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch, err := service.movies.Scan(ctx, afterID, options.BatchSize)
		if err != nil {
			return nil, err
		}

		for _, m := range batch {
			index.add(m)
		}

		if len(batch) < options.BatchSize {
			break
		}
		afterID = batch[len(batch)-1].ID
	}

	exactGroups := index.exactGroups()

	nearPairs, err := index.nearPairs(ctx, options)
	if err != nil {
		return nil, err
	}

	underMatches, truncated := index.underMatches(options.MaxUnderMatches)

	duration := service.now().Sub(started)
	metrics.RecordAudit(index.movies, duration)

	service.logger.Info("audit_completed",
		slog.Int("movies", index.movies),
		slog.Int("spellings", len(index.spellings)),
		slog.Int("exact_groups", len(exactGroups)),
		slog.Int("near_pairs", len(nearPairs)),
		slog.Int("under_matches", len(underMatches)),
		slog.Duration("duration", duration),
	)

	return &Report{
		GeneratedAt:           started.UTC(),
		Duration:              duration,
		MoviesScanned:         index.movies,
		Spellings:             len(index.spellings),
		Threshold:             options.Similarity,
		ExactGroups:           exactGroups,
		NearPairs:             nearPairs,
		UnderMatches:          underMatches,
		UnderMatchesTruncated: truncated,
	}, nil
}

// # Index

type spellingUsage struct {
	name      string
	key       string
	movies    int
	lastMovie *movie.Movie
	fields    [len(movie.CreditFields)]bool
}

func (usage *spellingUsage) spelling() Spelling {
	fields := []movie.Field{}
	for i, used := range usage.fields {
		if used {
			fields = append(fields, movie.CreditFields[i].Field)
		}
	}
	return Spelling{Name: usage.name, Movies: usage.movies, Fields: fields}
}

type valueUsage struct {
	value   string
	field   movie.Field
	movies  int
	example *movie.Movie
}

// index accumulates spellings and raw credit values across the scan.
type index struct {
	movies    int
	spellings map[string]*spellingUsage // by raw spelling
	byKey     map[string][]*spellingUsage
	values    map[valueKey]*valueUsage
	words     map[string][]*valueUsage // lowercase word -> values containing it
}

type valueKey struct {
	value string
	field movie.Field
}

func newIndex() *index {
	return &index{
		spellings: map[string]*spellingUsage{},
		byKey:     map[string][]*spellingUsage{},
		values:    map[valueKey]*valueUsage{},
		words:     map[string][]*valueUsage{},
	}
}

func (idx *index) add(m *movie.Movie) {
	idx.movies++

	for fieldIndex, creditField := range movie.CreditFields {
		raw := creditField.Value(m)
		if raw == nil || strings.TrimSpace(*raw) == "" {
			continue
		}
		value := strings.TrimSpace(*raw)

		idx.addValue(value, creditField.Field, m)

		for _, token := range strings.Split(value, ",") {
			idx.addSpelling(strings.TrimSpace(token), fieldIndex, m)
		}
	}
}

func (idx *index) addValue(value string, field movie.Field, m *movie.Movie) {
	key := valueKey{value: value, field: field}
	usage, ok := idx.values[key]
	if !ok {
		usage = &valueUsage{value: value, field: field, example: m}
		idx.values[key] = usage

		seen := map[string]bool{}
		for _, word := range strings.Fields(strings.ToLower(strings.ReplaceAll(value, ",", " "))) {
			if !seen[word] {
				seen[word] = true
				idx.words[word] = append(idx.words[word], usage)
			}
		}
	}
	usage.movies++
}

func (idx *index) addSpelling(name string, fieldIndex int, m *movie.Movie) {
	key := slug.Compact(name)
	if key == "" {
		return
	}

	usage, ok := idx.spellings[name]
	if !ok {
		usage = &spellingUsage{name: name, key: key}
		idx.spellings[name] = usage
		idx.byKey[key] = append(idx.byKey[key], usage)
	}

	if usage.lastMovie != m {
		usage.lastMovie = m
		usage.movies++
	}
	usage.fields[fieldIndex] = true
}

// # Findings

// exactGroups returns keys with two or more spellings, most credited first.
func (idx *index) exactGroups() []ExactGroup {
	groups := []ExactGroup{}
	for key, usages := range idx.byKey {
		if len(usages) < 2 {
			continue
		}

		sorted := sortedUsages(usages)
		spellings := make([]Spelling, 0, len(sorted))
		for _, usage := range sorted {
			spellings = append(spellings, usage.spelling())
		}
		groups = append(groups, ExactGroup{Key: key, Spellings: spellings})
	}

	slices.SortFunc(groups, func(a, b ExactGroup) int {
		return cmp.Or(
			cmp.Compare(totalMovies(b.Spellings), totalMovies(a.Spellings)),
			strings.Compare(a.Key, b.Key),
		)
	})
	return groups
}

/*
nearPairs compares every pair of distinct keys within MaxLengthDiff of each
other and keeps those at or above the similarity threshold. Each key is
represented by its most credited spelling.
*/
func (idx *index) nearPairs(ctx context.Context, options Options) ([]NearPair, error) {
	keys := make([]string, 0, len(idx.byKey))
	for key := range idx.byKey {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return cmp.Or(cmp.Compare(len(a), len(b)), strings.Compare(a, b))
	})

	pairs := []NearPair{}
	for i, left := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, right := range keys[i+1:] {
			if len(right)-len(left) > options.MaxLengthDiff {
				break
			}

			similarity := edlib.JaroWinklerSimilarity(left, right)
			if similarity < options.Similarity {
				continue
			}

			pairs = append(pairs, NearPair{
				Similarity: similarity,
				Left:       sortedUsages(idx.byKey[left])[0].spelling(),
				Right:      sortedUsages(idx.byKey[right])[0].spelling(),
			})
		}
	}

	slices.SortFunc(pairs, func(a, b NearPair) int {
		return cmp.Or(
			cmp.Compare(b.Similarity, a.Similarity),
			strings.Compare(a.Left.Name, b.Left.Name),
			strings.Compare(a.Right.Name, b.Right.Name),
		)
	})
	return pairs, nil
}

/*
underMatches finds credit values that contain a spelling and share its rarest
word, yet fail [credit.Matches]. Values are looked up through the word index,
so substrings inside longer words ("ram" in "Sriram") are not reported.
*/
func (idx *index) underMatches(limit int) ([]UnderMatch, bool) {
	names := make([]string, 0, len(idx.spellings))
	for name := range idx.spellings {
		names = append(names, name)
	}
	slices.Sort(names)

	found := []UnderMatch{}
	truncated := false

names:
	for _, name := range names {
		lowered := strings.ToLower(name)
		words := strings.Fields(lowered)
		if len(words) == 0 {
			continue
		}

		rarest := slices.MinFunc(words, func(a, b string) int {
			return cmp.Compare(len(idx.words[a]), len(idx.words[b]))
		})

		for _, usage := range idx.words[rarest] {
			if !strings.Contains(strings.ToLower(usage.value), lowered) || credit.Matches(usage.value, name) {
				continue
			}

			if len(found) == limit {
				truncated = true
				break names
			}

			found = append(found, UnderMatch{
				Name:         name,
				Value:        usage.value,
				Field:        usage.field,
				Movies:       usage.movies,
				ExampleID:    usage.example.ID,
				ExampleTitle: usage.example.Title,
			})
		}
	}

	slices.SortStableFunc(found, func(a, b UnderMatch) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.Value, b.Value), strings.Compare(string(a.Field), string(b.Field)))
	})
	return found, truncated
}

// # Helpers

// sortedUsages orders spellings by movie count, then name.
func sortedUsages(usages []*spellingUsage) []*spellingUsage {
	sorted := slices.Clone(usages)
	slices.SortFunc(sorted, func(a, b *spellingUsage) int {
		return cmp.Or(cmp.Compare(b.movies, a.movies), strings.Compare(a.name, b.name))
	})
	return sorted
}

func totalMovies(spellings []Spelling) int {
	return slice.Reduce(spellings, 0, func(total int, spelling Spelling) int { return total + spelling.Movies })
}

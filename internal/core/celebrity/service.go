// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package celebrity

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/telugucine/internal/core/credit"
	"github.com/taibuivan/telugucine/internal/core/movie"
	"github.com/taibuivan/telugucine/internal/platform/apperr"
	"github.com/taibuivan/telugucine/internal/platform/constants"
	"github.com/taibuivan/telugucine/internal/platform/ctxutil"
	"github.com/taibuivan/telugucine/internal/platform/dberr"
	"github.com/taibuivan/telugucine/internal/platform/metrics"
	"github.com/taibuivan/telugucine/internal/platform/validate"
	"github.com/taibuivan/telugucine/pkg/slice"
	"github.com/taibuivan/telugucine/pkg/slug"
	"github.com/taibuivan/telugucine/pkg/uuid"
)

// # Configuration

// Options tunes resolution and filmography building.
type Options struct {
	SampleSize       int           // Candidate movies fetched for fuzzy resolution
	FilmographyLimit int           // Candidate movies fetched for a filmography
	CacheTTL         time.Duration // Lifetime of cached resolutions
	TieBreak         credit.TieBreak
	FieldOrder       []movie.Field // Resolver field priority; empty keeps the default
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		SampleSize:       constants.DefaultResolveSampleSize,
		FilmographyLimit: constants.DefaultFilmographyLimit,
		CacheTTL:         constants.DefaultResolveCacheTTL,
		TieBreak:         credit.TieBreakFirst,
		FieldOrder:       credit.DefaultResolveOrder,
	}
}

// # Service Layer

// Service orchestrates profile lookup, name resolution and filmographies.
type Service struct {
	repo    Repository
	aliases AliasRepository
	movies  movie.Repository
	cache   ResolveCache
	options Options
	logger  *slog.Logger
}

// NewService wires a [Service]. A nil cache disables resolution caching.
func NewService(repo Repository, aliases AliasRepository, movies movie.Repository, cache ResolveCache, options Options, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		aliases: aliases,
		movies:  movies,
		cache:   cache,
		options: options,
		logger:  logger,
	}
}

// # Profile Lookups

// ListCelebrities retrieves a page of curated profiles.
func (service *Service) ListCelebrities(context context.Context, filter Filter, limit, offset int) ([]*Celebrity, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

// GetCelebrity fetches a curated profile by ID.
func (service *Service) GetCelebrity(context context.Context, id string) (*Celebrity, error) {
	return service.repo.FindByID(context, id)
}

/*
Profile returns the person a slug refers to.

Description: A curated row with that slug wins. Otherwise the slug is resolved
(alias index, cache, credit columns) and, when no curated row owns the name, a
profile is synthesized from the canonical credit spelling. Synthesized
profiles have no ID.

Returns:
  - *Celebrity: Curated or synthesized profile
  - error: apperr NOT_FOUND when nothing credits the slug
*/
func (service *Service) Profile(context context.Context, slugText string) (*Celebrity, error) {
	celebrity, err := service.repo.FindBySlug(context, slugText)
	if err == nil {
		return celebrity, nil
	}
	if !errors.Is(err, dberr.ErrNotFound) {
		return nil, err
	}

	resolved, err := service.resolve(context, slugText)
	if err != nil {
		return nil, err
	}
	if resolved.celebrity != nil {
		return resolved.celebrity, nil
	}

	return &Celebrity{
		Slug:    slug.From(resolved.name),
		Name:    resolved.name,
		NameAlt: []string{},
	}, nil
}

// ResolveName returns the canonical credit spelling a slug refers to.
func (service *Service) ResolveName(context context.Context, slugText string) (string, error) {
	resolved, err := service.resolve(context, slugText)
	if err != nil {
		return "", err
	}
	return resolved.name, nil
}

/*
Filmography builds the per-role filmography of the person behind a slug.

Description: Resolves the profile, refetches every movie loosely crediting the
canonical name or one of its alternate spellings (bounded by
Options.FilmographyLimit), confirms credits with [credit.Aggregate], and sorts
each role newest first.
*/
func (service *Service) Filmography(context context.Context, slugText string) (*FilmographyPage, error) {
	celebrity, err := service.Profile(context, slugText)
	if err != nil {
		return nil, err
	}

	candidates, err := service.candidates(context, celebrity)
	if err != nil {
		return nil, err
	}

	filmography := credit.Aggregate(candidates, celebrity.Name, celebrity.NameAlt...)
	filmography.SortByYear(true)
	stats := credit.Summary(filmography)

	metrics.RecordFilmography(stats.Total)
	ctxutil.GetLogger(context).Debug("filmography_built",
		slog.String("name", celebrity.Name),
		slog.Int("candidates", len(candidates)),
		slog.Int("movies", stats.Total),
	)

	return &FilmographyPage{Celebrity: celebrity, Filmography: filmography, Stats: stats}, nil
}

// candidates runs one loose credit query per search fragment of the profile's
// names and merges the results by movie ID, up to Options.FilmographyLimit.
func (service *Service) candidates(context context.Context, celebrity *Celebrity) ([]*movie.Movie, error) {
	limit := service.options.FilmographyLimit
	names := append([]string{celebrity.Name}, celebrity.NameAlt...)

	var merged []*movie.Movie
	seen := map[string]struct{}{}

	for _, fragment := range credit.SearchFragments(names...) {
		if len(merged) >= limit {
			break
		}

		found, err := service.movies.FindByCredit(context, fragment, limit)
		if err != nil {
			return nil, err
		}

		for _, m := range found {
			if _, ok := seen[m.ID]; ok || len(merged) >= limit {
				continue
			}
			seen[m.ID] = struct{}{}
			merged = append(merged, m)
		}
	}
	return merged, nil
}

// # Resolution

type resolution struct {
	name      string
	celebrity *Celebrity // Set when the alias index answered
}

/*
resolve runs the lookup chain for a slug.

  - Empty compacted slug: NOT_FOUND without touching storage.
  - Alias index: reconciled spellings map straight to a curated row.
  - Cache: previously resolved names.
  - Credit sample: FindByCredit on the de-hyphenated slug (first word as a
    fallback) fed into [credit.Resolve].

Cache and alias failures are logged and skipped; the credit sample is the
source of truth.
*/
func (service *Service) resolve(context context.Context, slugText string) (resolution, error) {
	logger := ctxutil.GetLogger(context)

	key := slug.Compact(slugText)
	if key == "" {
		metrics.RecordResolution(metrics.OutcomeMiss)
		return resolution{}, apperr.NotFound("Celebrity")
	}

	// 1. Alias index
	celebrity, err := service.aliases.FindByAlias(context, key)
	switch {
	case err == nil:
		metrics.RecordResolution(metrics.OutcomeAlias)
		return resolution{name: celebrity.Name, celebrity: celebrity}, nil
	case !errors.Is(err, dberr.ErrNotFound):
		logger.Warn("alias_lookup_failed", slog.String("key", key), slog.Any("error", err))
	}

	// 2. Cache
	if service.cache != nil {
		name, found, err := service.cache.Get(context, key)
		if err != nil {
			logger.Warn("resolve_cache_get_failed", slog.String("key", key), slog.Any("error", err))
		}
		if found {
			metrics.RecordResolution(metrics.OutcomeCache)
			return resolution{name: name}, nil
		}
	}

	// 3. Credit sample
	candidates, err := service.sample(context, slugText)
	if err != nil {
		return resolution{}, err
	}

	resolved, found := credit.Resolve(slugText, candidates,
		credit.WithTieBreak(service.options.TieBreak),
		credit.WithFieldOrder(service.options.FieldOrder...),
	)
	if !found {
		metrics.RecordResolution(metrics.OutcomeMiss)
		logger.Debug("celebrity_unresolved", slog.String("slug", slugText), slog.Int("candidates", len(candidates)))
		return resolution{}, apperr.NotFound("Celebrity")
	}

	name := credit.CanonicalToken(resolved.Name, slugText)
	metrics.RecordResolution(string(resolved.Phase))
	logger.Info("celebrity_resolved",
		slog.String("slug", slugText),
		slog.String("name", name),
		slog.String("phase", string(resolved.Phase)),
		slog.String("field", string(resolved.Field)),
	)

	if service.cache != nil {
		if err := service.cache.Set(context, key, name, service.options.CacheTTL); err != nil {
			logger.Warn("resolve_cache_set_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return resolution{name: name}, nil
}

// sample fetches resolution candidates for a slug. "ravi-teja" queries
// "ravi teja", then "ravi" when the full phrase finds nothing.
func (service *Service) sample(context context.Context, slugText string) ([]*movie.Movie, error) {
	fragment := strings.Join(strings.Fields(strings.ReplaceAll(slugText, "-", " ")), " ")
	if fragment == "" {
		return []*movie.Movie{}, nil
	}

	candidates, err := service.movies.FindByCredit(context, fragment, service.options.SampleSize)
	if err != nil || len(candidates) > 0 {
		return candidates, err
	}

	if first, _, multiword := strings.Cut(fragment, " "); multiword {
		return service.movies.FindByCredit(context, first, service.options.SampleSize)
	}
	return candidates, nil
}

// # Curation

// CreateCelebrity validates, persists and indexes a new profile.
func (service *Service) CreateCelebrity(context context.Context, celebrity *Celebrity) error {
	celebrity.ID = uuid.New()
	prepare(celebrity)

	if err := validateCelebrity(celebrity); err != nil {
		return err
	}

	if err := service.repo.Create(context, celebrity); err != nil {
		return err
	}

	if _, err := service.index(context, celebrity, nil); err != nil {
		return err
	}

	service.logger.Info("celebrity_created",
		slog.String("celebrity_id", celebrity.ID),
		slog.String("name", celebrity.Name),
	)
	return nil
}

// UpdateCelebrity replaces the mutable attributes of a profile and re-indexes it.
func (service *Service) UpdateCelebrity(context context.Context, id string, celebrity *Celebrity) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	celebrity.ID = id
	prepare(celebrity)

	if err := validateCelebrity(celebrity); err != nil {
		return err
	}

	if err := service.repo.Update(context, celebrity); err != nil {
		return err
	}

	if _, err := service.index(context, celebrity, aliasKeys(existing)); err != nil {
		return err
	}

	service.logger.Info("celebrity_updated", slog.String("celebrity_id", id))
	return nil
}

// DeleteCelebrity soft-deletes a profile and evicts its cached resolutions.
func (service *Service) DeleteCelebrity(context context.Context, id string) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.evict(context, aliasKeys(existing))
	service.logger.Warn("celebrity_deleted", slog.String("celebrity_id", id))
	return nil
}

/*
Reconcile rebuilds the alias index of a curated profile.

Description: Compacts the name, slug and every alternate name, stores the
distinct non-empty keys for the celebrity, and evicts cached resolutions for
those keys so the next lookup is answered by the index.

Returns:
  - []Alias: The aliases now owned by the celebrity
  - error: NOT_FOUND for an unknown ID, or storage errors
*/
func (service *Service) Reconcile(context context.Context, id string) ([]Alias, error) {
	celebrity, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	aliases, err := service.index(context, celebrity, nil)
	if err != nil {
		return nil, err
	}

	service.logger.Info("celebrity_reconciled",
		slog.String("celebrity_id", id),
		slog.Int("aliases", len(aliases)),
	)
	return aliases, nil
}

// index replaces the aliases of celebrity and evicts the old and new keys.
func (service *Service) index(context context.Context, celebrity *Celebrity, previousKeys []string) ([]Alias, error) {
	aliases := AliasesFor(celebrity)
	if err := service.aliases.ReplaceAliases(context, celebrity.ID, aliases); err != nil {
		return nil, err
	}

	keys := slice.Map(aliases, func(alias Alias) string { return alias.Key })
	service.evict(context, append(keys, previousKeys...))
	return aliases, nil
}

func (service *Service) evict(context context.Context, keys []string) {
	if service.cache == nil || len(keys) == 0 {
		return
	}
	if err := service.cache.Delete(context, keys...); err != nil {
		ctxutil.GetLogger(context).Warn("resolve_cache_evict_failed", slog.Any("error", err))
	}
}

// # Helpers

// AliasesFor derives the distinct compacted keys of a profile, in name,
// slug, alternate-name order. Keys that compact to nothing are skipped.
func AliasesFor(celebrity *Celebrity) []Alias {
	seen := map[string]struct{}{}
	aliases := []Alias{}

	add := func(text string, source AliasSource) {
		key := slug.Compact(text)
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		aliases = append(aliases, Alias{Key: key, CelebrityID: celebrity.ID, Source: source})
	}

	add(celebrity.Name, AliasSourceName)
	add(celebrity.Slug, AliasSourceSlug)
	for _, alternate := range celebrity.NameAlt {
		add(alternate, AliasSourceNameAlt)
	}
	return aliases
}

func aliasKeys(celebrity *Celebrity) []string {
	return slice.Map(AliasesFor(celebrity), func(alias Alias) string { return alias.Key })
}

// prepare trims input and fills the slug from the name.
func prepare(celebrity *Celebrity) {
	celebrity.Name = strings.TrimSpace(celebrity.Name)
	celebrity.Slug = strings.TrimSpace(celebrity.Slug)
	if celebrity.Slug == "" {
		celebrity.Slug = slug.From(celebrity.Name)
	}

	celebrity.NameAlt = slice.Filter(
		slice.Map(celebrity.NameAlt, strings.TrimSpace),
		func(alternate string) bool { return alternate != "" },
	)
	if celebrity.NameAlt == nil {
		celebrity.NameAlt = []string{}
	}
}

func validateCelebrity(celebrity *Celebrity) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, celebrity.Name).MaxLen(FieldName, celebrity.Name, 200)
	validator.Slug(FieldSlug, celebrity.Slug)

	for _, alternate := range celebrity.NameAlt {
		validator.MaxLen(FieldNameAlt, alternate, 200)
	}

	if celebrity.ImageURL != nil {
		validator.URL(FieldImageURL, *celebrity.ImageURL)
	}

	return validator.Err()
}

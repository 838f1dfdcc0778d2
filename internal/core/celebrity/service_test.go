// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package celebrity_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/telugucine/internal/core/celebrity"
	"github.com/taibuivan/telugucine/internal/core/celebrity/celebritytest"
	"github.com/taibuivan/telugucine/internal/core/credit"
	"github.com/taibuivan/telugucine/internal/core/movie"
	"github.com/taibuivan/telugucine/internal/core/movie/movietest"
	"github.com/taibuivan/telugucine/internal/platform/apperr"
	"github.com/taibuivan/telugucine/pkg/pointer"
)

// # Fixtures

type fixture struct {
	service     *celebrity.Service
	celebrities *celebritytest.Repository
	movies      *movietest.Repository
	cache       *celebritytest.Cache
}

func newFixture(t *testing.T, options celebrity.Options, movies []*movie.Movie, celebrities ...*celebrity.Celebrity) *fixture {
	t.Helper()

	f := &fixture{
		celebrities: celebritytest.New(celebrities...),
		movies:      movietest.New(movies...),
		cache:       celebritytest.NewCache(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.service = celebrity.NewService(f.celebrities, f.celebrities, f.movies, f.cache, options, logger)
	return f
}

func film(id string, year int, director, hero, producer, writer string) *movie.Movie {
	m := &movie.Movie{ID: id, Title: id, Slug: id, ReleaseYear: pointer.To(year)}
	if director != "" {
		m.Director = pointer.To(director)
	}
	if hero != "" {
		m.Hero = pointer.To(hero)
	}
	if producer != "" {
		m.Producer = pointer.To(producer)
	}
	if writer != "" {
		m.Writer = pointer.To(writer)
	}
	return m
}

// tejaCatalogue is what a loose "%teja%" query returns.
func tejaCatalogue() []*movie.Movie {
	return []*movie.Movie{
		film("chitram", 2000, "Teja", "Uday Kiran", "", ""),
		film("vikramarkudu", 2006, "S. S. Rajamouli", "Ravi Teja", "", ""),
		film("jayam", 2002, "Teja", "Nithiin", "", "Teja"),
		film("nuvvu-nenu", 2001, "", "Uday Kiran", "Teja, Ramoji Rao", ""),
	}
}

func nagarjuna() *celebrity.Celebrity {
	return &celebrity.Celebrity{
		ID:      "0190c0de-0000-7000-8000-000000000001",
		Slug:    "nagarjuna-akkineni",
		Name:    "Akkineni Nagarjuna",
		NameAlt: []string{"Nag", "King Nagarjuna"},
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, code, appErr.Code)
}

// # Resolution

/*
TestService_ResolveName covers the credit-sample path and its fragment fallback.
*/
func TestService_ResolveName(t *testing.T) {
	ctx := context.Background()

	t.Run("exact_over_boundary", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue())

		name, err := f.service.ResolveName(ctx, "teja")

		require.NoError(t, err)
		assert.Equal(t, "Teja", name)
		assert.Equal(t, []string{"teja"}, f.movies.CreditQueries)
	})

	t.Run("first_word_fallback", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue())

		name, err := f.service.ResolveName(ctx, "s-s-rajamouli")

		require.NoError(t, err)
		assert.Equal(t, "S. S. Rajamouli", name)
		assert.Equal(t, []string{"s s rajamouli", "s"}, f.movies.CreditQueries)
	})

	t.Run("co_credit_narrowed_to_token", func(t *testing.T) {
		movies := []*movie.Movie{film("gharana-bullodu", 1995, "", "Chiranjeevi, Mohan Babu", "", "")}
		f := newFixture(t, celebrity.DefaultOptions(), movies)

		name, err := f.service.ResolveName(ctx, "mohan-babu")

		require.NoError(t, err)
		assert.Equal(t, "Mohan Babu", name)
	})

	t.Run("tie_break_longest", func(t *testing.T) {
		movies := []*movie.Movie{
			film("chirutha", 2007, "", "Ram Charan", "", ""),
			film("rakta-charitra", 2010, "Ram Gopal Varma", "", "", ""),
		}
		options := celebrity.DefaultOptions()
		options.TieBreak = credit.TieBreakLongest
		f := newFixture(t, options, movies)

		name, err := f.service.ResolveName(ctx, "ram")

		require.NoError(t, err)
		assert.Equal(t, "Ram Gopal Varma", name)
	})

	t.Run("not_found", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue())

		_, err := f.service.ResolveName(ctx, "prabhas")

		assertCode(t, err, "NOT_FOUND")
		assert.False(t, f.cache.Has("prabhas"))
	})

	t.Run("empty_slug_skips_storage", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue())

		_, err := f.service.ResolveName(ctx, "--")

		assertCode(t, err, "NOT_FOUND")
		assert.Empty(t, f.movies.CreditQueries)
	})
}

/*
TestService_ResolveName_Cache verifies that resolutions are cached with the
configured TTL and that cache failures never fail a lookup.
*/
func TestService_ResolveName_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("second_lookup_hits_cache", func(t *testing.T) {
		options := celebrity.DefaultOptions()
		options.CacheTTL = 15 * time.Minute
		f := newFixture(t, options, tejaCatalogue())

		_, err := f.service.ResolveName(ctx, "teja")
		require.NoError(t, err)
		name, err := f.service.ResolveName(ctx, "Teja")
		require.NoError(t, err)

		assert.Equal(t, "Teja", name)
		assert.Len(t, f.movies.CreditQueries, 1)
		assert.Equal(t, 15*time.Minute, f.cache.TTLs["teja"])
	})

	t.Run("cache_down", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue())
		f.cache.Err = celebritytest.ErrCacheDown

		name, err := f.service.ResolveName(ctx, "teja")

		require.NoError(t, err)
		assert.Equal(t, "Teja", name)
	})

	t.Run("nil_cache", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		repository := celebritytest.New()
		service := celebrity.NewService(repository, repository, movietest.New(tejaCatalogue()...), nil, celebrity.DefaultOptions(), logger)

		name, err := service.ResolveName(ctx, "teja")

		require.NoError(t, err)
		assert.Equal(t, "Teja", name)
	})
}

/*
TestService_ResolveName_Alias verifies that reconciled spellings bypass the
credit sample entirely.
*/
func TestService_ResolveName_Alias(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, celebrity.DefaultOptions(), nil, nagarjuna())

	_, err := f.service.Reconcile(ctx, nagarjuna().ID)
	require.NoError(t, err)

	name, err := f.service.ResolveName(ctx, "nag")

	require.NoError(t, err)
	assert.Equal(t, "Akkineni Nagarjuna", name)
	assert.Empty(t, f.movies.CreditQueries)

	t.Run("alias_store_error_falls_through", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue())
		f.celebrities.AliasErr = errors.New("connection reset")

		name, err := f.service.ResolveName(ctx, "teja")

		require.NoError(t, err)
		assert.Equal(t, "Teja", name)
	})
}

// # Profiles

/*
TestService_Profile covers curated, aliased and synthesized profiles.
*/
func TestService_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("curated_by_slug", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), nil, nagarjuna())

		profile, err := f.service.Profile(ctx, "nagarjuna-akkineni")

		require.NoError(t, err)
		assert.True(t, profile.Curated())
		assert.Equal(t, "Akkineni Nagarjuna", profile.Name)
	})

	t.Run("curated_by_alias", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), nil, nagarjuna())
		_, err := f.service.Reconcile(ctx, nagarjuna().ID)
		require.NoError(t, err)

		profile, err := f.service.Profile(ctx, "king-nagarjuna")

		require.NoError(t, err)
		assert.Equal(t, nagarjuna().ID, profile.ID)
	})

	t.Run("synthesized_from_credits", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue())

		profile, err := f.service.Profile(ctx, "teja")

		require.NoError(t, err)
		assert.False(t, profile.Curated())
		assert.Equal(t, "Teja", profile.Name)
		assert.Equal(t, "teja", profile.Slug)
		assert.NotNil(t, profile.NameAlt)
	})

	t.Run("unknown", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue())

		_, err := f.service.Profile(ctx, "prabhas")

		assertCode(t, err, "NOT_FOUND")
	})
}

/*
TestService_Filmography checks aggregation, newest-first ordering and stats.
*/
func TestService_Filmography(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, celebrity.DefaultOptions(), tejaCatalogue())

	page, err := f.service.Filmography(ctx, "teja")

	require.NoError(t, err)
	assert.Equal(t, "Teja", page.Celebrity.Name)
	assert.Equal(t, 3, page.Stats.Total)
	assert.Equal(t, movie.FieldDirector, page.Stats.PrimaryRole)

	directed := page.Filmography.Bucket(movie.FieldDirector)
	require.Len(t, directed, 2)
	assert.Equal(t, "jayam", directed[0].ID)
	assert.Equal(t, "chitram", directed[1].ID)
	assert.Empty(t, page.Filmography.Bucket(movie.FieldHero))

	t.Run("limit_is_forwarded", func(t *testing.T) {
		options := celebrity.DefaultOptions()
		options.FilmographyLimit = 1
		f := newFixture(t, options, tejaCatalogue())

		page, err := f.service.Filmography(ctx, "teja")

		require.NoError(t, err)
		assert.Equal(t, 1, page.Stats.Total)
	})
}

/*
TestService_ResolveName_FieldOrder checks that the configured field priority
reaches the resolver.
*/
func TestService_ResolveName_FieldOrder(t *testing.T) {
	ctx := context.Background()
	catalogue := []*movie.Movie{film("jayam", 2002, "Teja", "Nithiin", "", "TEJA")}

	f := newFixture(t, celebrity.DefaultOptions(), catalogue)
	name, err := f.service.ResolveName(ctx, "teja")
	require.NoError(t, err)
	assert.Equal(t, "Teja", name)

	options := celebrity.DefaultOptions()
	options.FieldOrder = []movie.Field{movie.FieldWriter, movie.FieldDirector}
	f = newFixture(t, options, catalogue)
	name, err = f.service.ResolveName(ctx, "teja")
	require.NoError(t, err)
	assert.Equal(t, "TEJA", name)
}

/*
TestService_Filmography_CuratedAlternateNames checks that a curated profile
keeps every movie the uncurated path finds, including alternate spellings.
*/
func TestService_Filmography_CuratedAlternateNames(t *testing.T) {
	ctx := context.Background()
	catalogue := []*movie.Movie{
		film("shiva", 1989, "Ram Gopal Varma", "Nagarjuna", "", ""),
		film("manam", 2014, "Vikram Kumar", "Akkineni Nagarjuna", "", ""),
		film("rajanna", 2011, "", "", "King Nagarjuna", ""),
		film("mahanati", 2018, "Nag Ashwin", "", "", ""),
	}

	t.Run("uncurated", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), catalogue)

		page, err := f.service.Filmography(ctx, "nagarjuna")

		require.NoError(t, err)
		assert.Len(t, page.Filmography.Bucket(movie.FieldHero), 2)
	})

	t.Run("curated", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), catalogue, nagarjuna())
		_, err := f.service.Reconcile(ctx, nagarjuna().ID)
		require.NoError(t, err)

		page, err := f.service.Filmography(ctx, "nagarjuna-akkineni")

		require.NoError(t, err)
		assert.Equal(t, "Akkineni Nagarjuna", page.Celebrity.Name)
		assert.Equal(t, []string{"manam", "shiva"}, movieIDs(page.Filmography.Bucket(movie.FieldHero)))
		assert.Equal(t, []string{"rajanna"}, movieIDs(page.Filmography.Bucket(movie.FieldProducer)))
		assert.Empty(t, page.Filmography.Bucket(movie.FieldDirector))
		assert.Equal(t, 3, page.Stats.Total)
		assert.Contains(t, f.movies.CreditQueries, "Nagarjuna")
	})

	t.Run("alias_slug", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), catalogue, nagarjuna())
		_, err := f.service.Reconcile(ctx, nagarjuna().ID)
		require.NoError(t, err)

		page, err := f.service.Filmography(ctx, "king-nagarjuna")

		require.NoError(t, err)
		assert.Len(t, page.Filmography.Bucket(movie.FieldHero), 2)
	})
}

func movieIDs(movies []*movie.Movie) []string {
	ids := make([]string, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}
	return ids
}

// # Curation

/*
TestService_Reconcile checks alias derivation and cache eviction.
*/
func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, celebrity.DefaultOptions(), nil, nagarjuna())
	require.NoError(t, f.cache.Set(ctx, "nag", "Nag", time.Hour))

	aliases, err := f.service.Reconcile(ctx, nagarjuna().ID)

	require.NoError(t, err)
	require.Len(t, aliases, 4)
	assert.Equal(t, celebrity.Alias{Key: "akkineninagarjuna", CelebrityID: nagarjuna().ID, Source: celebrity.AliasSourceName}, aliases[0])
	assert.Equal(t, celebrity.AliasSourceSlug, aliases[1].Source)
	assert.Equal(t, []string{"akkineninagarjuna", "kingnagarjuna", "nag", "nagarjunaakkineni"}, f.celebrities.AliasKeys(nagarjuna().ID))
	assert.False(t, f.cache.Has("nag"))

	t.Run("unknown_id", func(t *testing.T) {
		_, err := f.service.Reconcile(ctx, "0190c0de-0000-7000-8000-00000000ffff")
		assertCode(t, err, "NOT_FOUND")
	})
}

/*
TestAliasesFor checks dedup and empty-key skipping.
*/
func TestAliasesFor(t *testing.T) {
	aliases := celebrity.AliasesFor(&celebrity.Celebrity{
		ID:      "id",
		Name:    "Teja",
		Slug:    "teja",
		NameAlt: []string{"TEJA", "...", "తేజ", "Jasti Dharma Teja"},
	})

	keys := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		keys = append(keys, alias.Key)
	}
	assert.Equal(t, []string{"teja", "jastidharmateja"}, keys)
}

/*
TestService_CreateCelebrity covers validation, slug generation and indexing.
*/
func TestService_CreateCelebrity(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), nil)
		input := &celebrity.Celebrity{Name: "  S. S. Rajamouli ", NameAlt: []string{" Jakkanna ", ""}}

		require.NoError(t, f.service.CreateCelebrity(ctx, input))

		assert.NotEmpty(t, input.ID)
		assert.Equal(t, "S. S. Rajamouli", input.Name)
		assert.Equal(t, "s-s-rajamouli", input.Slug)
		assert.Equal(t, []string{"Jakkanna"}, input.NameAlt)

		resolved, err := f.service.ResolveName(ctx, "ss-rajamouli")
		require.NoError(t, err)
		assert.Equal(t, "S. S. Rajamouli", resolved)
	})

	t.Run("missing_name", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), nil)

		err := f.service.CreateCelebrity(ctx, &celebrity.Celebrity{Name: " "})

		assertCode(t, err, "VALIDATION_ERROR")
	})

	t.Run("bad_image_url", func(t *testing.T) {
		f := newFixture(t, celebrity.DefaultOptions(), nil)

		err := f.service.CreateCelebrity(ctx, &celebrity.Celebrity{Name: "Teja", ImageURL: pointer.To("not a url")})

		assertCode(t, err, "VALIDATION_ERROR")
	})
}

/*
TestService_UpdateCelebrity checks that renames drop the old alias keys.
*/
func TestService_UpdateCelebrity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, celebrity.DefaultOptions(), nil, nagarjuna())
	_, err := f.service.Reconcile(ctx, nagarjuna().ID)
	require.NoError(t, err)

	update := &celebrity.Celebrity{Name: "Nagarjuna Akkineni", Slug: "nagarjuna"}
	require.NoError(t, f.service.UpdateCelebrity(ctx, nagarjuna().ID, update))

	assert.Equal(t, []string{"nagarjuna", "nagarjunaakkineni"}, f.celebrities.AliasKeys(nagarjuna().ID))

	_, err = f.service.ResolveName(ctx, "nag")
	assertCode(t, err, "NOT_FOUND")

	t.Run("unknown_id", func(t *testing.T) {
		err := f.service.UpdateCelebrity(ctx, "missing", &celebrity.Celebrity{Name: "X"})
		assertCode(t, err, "NOT_FOUND")
	})
}

/*
TestService_DeleteCelebrity checks that deleted profiles stop resolving.
*/
func TestService_DeleteCelebrity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, celebrity.DefaultOptions(), nil, nagarjuna())
	_, err := f.service.Reconcile(ctx, nagarjuna().ID)
	require.NoError(t, err)
	require.NoError(t, f.cache.Set(ctx, "nag", "Akkineni Nagarjuna", time.Hour))

	require.NoError(t, f.service.DeleteCelebrity(ctx, nagarjuna().ID))

	assert.False(t, f.cache.Has("nag"))
	_, err = f.service.ResolveName(ctx, "nag")
	assertCode(t, err, "NOT_FOUND")

	err = f.service.DeleteCelebrity(ctx, nagarjuna().ID)
	assertCode(t, err, "NOT_FOUND")
}

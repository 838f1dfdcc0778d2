// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package credit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/telugucine/internal/core/credit"
	"github.com/taibuivan/telugucine/internal/core/movie"
)

/*
TestAggregate_Teja replays the substring-candidate set for "Teja" and checks
that Ravi Teja's films are filtered out.
*/
func TestAggregate_Teja(t *testing.T) {
	records := []*movie.Movie{
		film("chitram", 2000, credits{director: "Teja", hero: "Uday Kiran"}),
		film("vikramarkudu", 2006, credits{hero: "Ravi Teja", director: "S. S. Rajamouli"}),
		film("jayam", 2002, credits{director: "Teja", writer: "Teja"}),
		film("nuvvu-nenu", 2001, credits{producer: "Teja, Ramoji Rao"}),
	}

	filmography := credit.Aggregate(records, "Teja")

	assert.Equal(t, "Teja", filmography.Person)
	assert.Equal(t, []string{"chitram", "jayam"}, ids(filmography.Bucket(movie.FieldDirector)))
	assert.Equal(t, []string{"jayam"}, ids(filmography.Bucket(movie.FieldWriter)))
	assert.Equal(t, []string{"nuvvu-nenu"}, ids(filmography.Bucket(movie.FieldProducer)))
	assert.Empty(t, filmography.Bucket(movie.FieldHero))
	assert.Equal(t, 3, filmography.Total())
}

/*
TestAggregate_Nagarjuna checks word-set matching across roles.
*/
func TestAggregate_Nagarjuna(t *testing.T) {
	records := []*movie.Movie{
		film("shiva", 1989, credits{hero: "Akkineni Nagarjuna", director: "Ram Gopal Varma"}),
		film("manmadhudu", 2002, credits{hero: "Nagarjuna"}),
		film("soggade", 2016, credits{hero: "Nagarjuna", producer: "Akkineni Nagarjuna, Amala"}),
		film("unrelated", 2010, credits{hero: "Naga Chaitanya"}),
	}

	filmography := credit.Aggregate(records, "Nagarjuna")

	assert.Equal(t, []string{"shiva", "manmadhudu", "soggade"}, ids(filmography.Bucket(movie.FieldHero)))
	assert.Equal(t, []string{"soggade"}, ids(filmography.Bucket(movie.FieldProducer)))
	assert.Equal(t, 3, filmography.Total())
	assert.Equal(t, map[movie.Field]int{
		movie.FieldHero:          3,
		movie.FieldHeroine:       0,
		movie.FieldDirector:      0,
		movie.FieldMusicDirector: 0,
		movie.FieldProducer:      1,
		movie.FieldWriter:        0,
	}, filmography.Counts())
}

/*
TestAggregate_AlternateNames checks that every spelling of a profile fills
the buckets, labelled with the primary name.
*/
func TestAggregate_AlternateNames(t *testing.T) {
	records := []*movie.Movie{
		film("shiva", 1989, credits{hero: "Nagarjuna"}),
		film("manam", 2014, credits{hero: "Akkineni Nagarjuna"}),
		film("rajanna", 2011, credits{producer: "King Nagarjuna"}),
		film("mahanati", 2018, credits{director: "Nag Ashwin"}),
	}

	filmography := credit.Aggregate(records, "Akkineni Nagarjuna", "Nag", "King Nagarjuna")

	assert.Equal(t, "Akkineni Nagarjuna", filmography.Person)
	assert.Equal(t, []string{"shiva", "manam"}, ids(filmography.Bucket(movie.FieldHero)))
	assert.Equal(t, []string{"rajanna"}, ids(filmography.Bucket(movie.FieldProducer)))
	assert.Empty(t, filmography.Bucket(movie.FieldDirector))
}

/*
TestAggregate_EmptyBuckets checks that every role exists and renders as [] in JSON.
*/
func TestAggregate_EmptyBuckets(t *testing.T) {
	for name, records := range map[string][]*movie.Movie{
		"nil_records":   nil,
		"no_matches":    {film("1", 2000, credits{hero: "Prabhas"})},
		"nil_record":    {nil},
		"empty_credits": {film("2", 2000, credits{})},
	} {
		t.Run(name, func(t *testing.T) {
			filmography := credit.Aggregate(records, "Teja")

			require.Len(t, filmography.Buckets, len(movie.CreditFields))
			for i, bucket := range filmography.Buckets {
				assert.Equal(t, movie.CreditFields[i].Field, bucket.Role)
				assert.NotNil(t, bucket.Movies)
				assert.Empty(t, bucket.Movies)
			}
			assert.Zero(t, filmography.Total())

			payload, err := json.Marshal(filmography)
			require.NoError(t, err)
			assert.Contains(t, string(payload), `"movies":[]`)
			assert.NotContains(t, string(payload), `null`)
		})
	}

	t.Run("empty_person_name", func(t *testing.T) {
		records := []*movie.Movie{film("1", 2000, credits{director: "Teja"})}
		assert.Zero(t, credit.Aggregate(records, "").Total())
	})
}

/*
TestAggregate_Dedup checks that a record appears once per bucket.
*/
func TestAggregate_Dedup(t *testing.T) {
	jayam := film("jayam", 2002, credits{director: "Teja"})

	t.Run("same_id_twice", func(t *testing.T) {
		copyOfJayam := *jayam
		filmography := credit.Aggregate([]*movie.Movie{jayam, &copyOfJayam}, "Teja")

		assert.Len(t, filmography.Bucket(movie.FieldDirector), 1)
	})

	t.Run("empty_id_same_pointer", func(t *testing.T) {
		draft := film("", 2002, credits{director: "Teja"})
		filmography := credit.Aggregate([]*movie.Movie{draft, draft}, "Teja")

		assert.Len(t, filmography.Bucket(movie.FieldDirector), 1)
	})

	t.Run("empty_id_distinct_records", func(t *testing.T) {
		first := film("", 2002, credits{director: "Teja"})
		second := film("", 2003, credits{director: "Teja"})
		filmography := credit.Aggregate([]*movie.Movie{first, second}, "Teja")

		assert.Len(t, filmography.Bucket(movie.FieldDirector), 2)
		assert.Equal(t, 2, filmography.Total())
	})

	t.Run("multi_role_counts_once_in_total", func(t *testing.T) {
		both := film("both", 2002, credits{director: "Teja", writer: "Teja", producer: "Teja"})
		filmography := credit.Aggregate([]*movie.Movie{both}, "Teja")

		assert.Len(t, filmography.Bucket(movie.FieldDirector), 1)
		assert.Len(t, filmography.Bucket(movie.FieldWriter), 1)
		assert.Len(t, filmography.Bucket(movie.FieldProducer), 1)
		assert.Equal(t, 1, filmography.Total())
	})
}

/*
TestFilmography_SortByYear checks both directions and unknown years.
*/
func TestFilmography_SortByYear(t *testing.T) {
	records := []*movie.Movie{
		film("b", 2005, credits{director: "Teja"}),
		film("unknown", 0, credits{director: "Teja"}),
		film("a", 2000, credits{director: "Teja"}),
		film("c", 2010, credits{director: "Teja"}),
	}

	filmography := credit.Aggregate(records, "Teja")
	assert.Equal(t, []string{"b", "unknown", "a", "c"}, ids(filmography.Bucket(movie.FieldDirector)))

	filmography.SortByYear(true)
	assert.Equal(t, []string{"c", "b", "a", "unknown"}, ids(filmography.Bucket(movie.FieldDirector)))

	filmography.SortByYear(false)
	assert.Equal(t, []string{"a", "b", "c", "unknown"}, ids(filmography.Bucket(movie.FieldDirector)))
}

/*
TestSummary checks totals, primary role, year span and decades.
*/
func TestSummary(t *testing.T) {
	records := []*movie.Movie{
		film("chitram", 2000, credits{director: "Teja"}),
		film("jayam", 2002, credits{director: "Teja", writer: "Teja"}),
		film("nijam", 2003, credits{director: "Teja"}),
		film("old", 1997, credits{writer: "Teja"}),
		film("undated", 0, credits{producer: "Teja"}),
	}

	stats := credit.Summary(credit.Aggregate(records, "Teja"))

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, movie.FieldDirector, stats.PrimaryRole)
	assert.Equal(t, 3, stats.Counts[movie.FieldDirector])
	assert.Equal(t, 2, stats.Counts[movie.FieldWriter])
	assert.Equal(t, 1997, stats.FirstYear)
	assert.Equal(t, 2003, stats.LastYear)
	assert.Equal(t, []int{1990, 2000}, stats.Decades)

	t.Run("tie_goes_to_earlier_role", func(t *testing.T) {
		tied := []*movie.Movie{
			film("1", 2000, credits{writer: "Teja"}),
			film("2", 2001, credits{hero: "Teja"}),
		}
		assert.Equal(t, movie.FieldHero, credit.Summary(credit.Aggregate(tied, "Teja")).PrimaryRole)
	})

	t.Run("empty", func(t *testing.T) {
		empty := credit.Summary(credit.Aggregate(nil, "Teja"))

		assert.Zero(t, empty.Total)
		assert.Empty(t, empty.PrimaryRole)
		assert.NotNil(t, empty.Decades)
		assert.Zero(t, empty.FirstYear)
	})
}

// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movie defines the catalogue entity for Telugu films.

A movie credits its people through six free-text columns (director, hero,
heroine, music director, producer, writer). Each column may be empty, hold a
single name, or hold several names joined by commas. There is no person
foreign key on the row; the credit package resolves names against these
columns.
*/
package movie

import (
	"time"

	"github.com/taibuivan/telugucine/pkg/pointer"
)

// # Credit Fields

// Field identifies one of the six free-text person columns of a [Movie].
type Field string

const (
	FieldDirector      Field = "director"
	FieldHero          Field = "hero"
	FieldHeroine       Field = "heroine"
	FieldMusicDirector Field = "music_director"
	FieldProducer      Field = "producer"
	FieldWriter        Field = "writer"
)

// CreditField pairs a [Field] with a typed accessor into [Movie].
type CreditField struct {
	Field Field
	Value func(*Movie) *string
}

// CreditFields lists every credit column in role order (the order role
// buckets are reported in).
var CreditFields = [...]CreditField{
	{FieldHero, func(m *Movie) *string { return m.Hero }},
	{FieldHeroine, func(m *Movie) *string { return m.Heroine }},
	{FieldDirector, func(m *Movie) *string { return m.Director }},
	{FieldMusicDirector, func(m *Movie) *string { return m.MusicDirector }},
	{FieldProducer, func(m *Movie) *string { return m.Producer }},
	{FieldWriter, func(m *Movie) *string { return m.Writer }},
}

// IsValid reports whether f is one of the six credit fields.
func (f Field) IsValid() bool {
	_, ok := f.index()
	return ok
}

// Credit returns the raw value of field f on m, or "" when absent.
func (m *Movie) Credit(f Field) string {
	index, ok := f.index()
	if !ok {
		return ""
	}
	return pointer.Val(CreditFields[index].Value(m))
}

func (f Field) index() (int, bool) {
	for i, credit := range CreditFields {
		if credit.Field == f {
			return i, true
		}
	}
	return 0, false
}

// # Core Entities

// Movie is a single film in the catalogue.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	ReleaseYear *int     `json:"release_year,omitempty"`
	Genres      []string `json:"genres"`
	PosterURL   *string  `json:"poster_url,omitempty"`
	TMDBID      *int     `json:"tmdb_id,omitempty"` // The Movie Database identifier

	// # Credits (free text, comma-separated for co-credits)
	Director      *string `json:"director"`
	Hero          *string `json:"hero"`
	Heroine       *string `json:"heroine"`
	MusicDirector *string `json:"music_director"`
	Producer      *string `json:"producer"`
	Writer        *string `json:"writer"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // nil = active; non-nil = soft-deleted
}

// Year returns the release year or 0 when unknown.
func (m *Movie) Year() int {
	return pointer.Val(m.ReleaseYear)
}

// # Query Parameters

// Filter holds the parameters for a paginated movie search.
type Filter struct {
	Query  string   // Case-insensitive substring match on title
	Year   int      // Exact release year; 0 = any
	Genres []string // Any-of genre membership
	Person string   // Loose substring match on any credit column
}

// # Field Identifiers (validation)

const (
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldReleaseYear = "release_year"
	FieldPosterURL   = "poster_url"
	FieldTMDBID      = "tmdb_id"
	FieldGenres      = "genres"
)

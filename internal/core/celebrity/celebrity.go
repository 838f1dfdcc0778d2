// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package celebrity serves person profiles and filmographies.

A celebrity may exist as a curated row (bio, image, alternate spellings) or
only implicitly, as a name appearing in movie credit columns. Both kinds are
addressed by URL slug. Lookup order for a slug:

  - Curated row with that slug.
  - Alias index: compacted spellings reconciled onto a curated row.
  - Resolution cache, then fuzzy resolution over a credit-column sample.

The alias index turns repeated fuzzy work into one indexed lookup once an
editor reconciles a profile.
*/
package celebrity

import (
	"time"

	"github.com/taibuivan/telugucine/internal/core/credit"
)

// # Core Entities

// Celebrity is a curated person profile.
type Celebrity struct {
	ID        string     `json:"id,omitempty"`
	Slug      string     `json:"slug"`
	Name      string     `json:"name"`
	NameAlt   []string   `json:"name_alt"`
	Bio       *string    `json:"bio,omitempty"`
	ImageURL  *string    `json:"image_url,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
	UpdatedAt time.Time  `json:"updated_at,omitzero"`
	DeletedAt *time.Time `json:"-"`
}

// Curated reports whether c is backed by a database row.
func (c *Celebrity) Curated() bool {
	return c.ID != ""
}

// AliasSource records which attribute an alias key was derived from.
type AliasSource string

const (
	AliasSourceName    AliasSource = "name"
	AliasSourceSlug    AliasSource = "slug"
	AliasSourceNameAlt AliasSource = "name_alt"
)

// Alias maps one compacted spelling onto a celebrity.
type Alias struct {
	Key         string      `json:"key"`
	CelebrityID string      `json:"celebrity_id"`
	Source      AliasSource `json:"source"`
}

// FilmographyPage is the payload of a profile's filmography view.
type FilmographyPage struct {
	Celebrity   *Celebrity         `json:"celebrity"`
	Filmography credit.Filmography `json:"filmography"`
	Stats       credit.Stats       `json:"stats"`
}

// # Query Parameters

// Filter holds the parameters for a paginated celebrity search.
type Filter struct {
	Query string // Case-insensitive match on name and alternate names
}

// # Field Identifiers (validation)

const (
	FieldName     = "name"
	FieldNameAlt  = "name_alt"
	FieldSlug     = "slug"
	FieldBio      = "bio"
	FieldImageURL = "image_url"
)

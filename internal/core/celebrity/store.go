// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package celebrity

import (
	"context"
	"time"
)

// Repository is the persistence contract for curated profiles.
type Repository interface {
	List(context context.Context, filter Filter, limit, offset int) ([]*Celebrity, int, error)
	FindByID(context context.Context, id string) (*Celebrity, error)
	FindBySlug(context context.Context, slug string) (*Celebrity, error)
	Create(context context.Context, celebrity *Celebrity) error
	Update(context context.Context, celebrity *Celebrity) error
	Delete(context context.Context, id string) error
}

// AliasRepository maintains the compacted-spelling index.
type AliasRepository interface {
	// FindByAlias returns the active celebrity owning key, or dberr.ErrNotFound.
	FindByAlias(context context.Context, key string) (*Celebrity, error)

	// ReplaceAliases swaps every alias of celebrityID for aliases. A key owned
	// by another celebrity is reassigned.
	ReplaceAliases(context context.Context, celebrityID string, aliases []Alias) error
}

// ResolveCache memoises slug resolutions, keyed by compacted slug.
type ResolveCache interface {
	Get(context context.Context, key string) (name string, found bool, err error)
	Set(context context.Context, key, name string, ttl time.Duration) error
	Delete(context context.Context, keys ...string) error
}

// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package celebritytest provides in-memory celebrity stores for tests.
package celebritytest

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/telugucine/internal/core/celebrity"
	"github.com/taibuivan/telugucine/internal/platform/apperr"
	"github.com/taibuivan/telugucine/internal/platform/dberr"
)

// # Profiles and Aliases

// Repository implements [celebrity.Repository] and [celebrity.AliasRepository].
type Repository struct {
	mu          sync.Mutex
	celebrities map[string]*celebrity.Celebrity
	aliases     map[string]celebrity.Alias

	// AliasErr, when set, is returned by FindByAlias.
	AliasErr error
}

// New returns a repository seeded with copies of celebrities. Aliases start empty.
func New(celebrities ...*celebrity.Celebrity) *Repository {
	repository := &Repository{
		celebrities: map[string]*celebrity.Celebrity{},
		aliases:     map[string]celebrity.Alias{},
	}
	for _, c := range celebrities {
		clone := *c
		repository.celebrities[c.ID] = &clone
	}
	return repository
}

func (repository *Repository) List(_ context.Context, filter celebrity.Filter, limit, offset int) ([]*celebrity.Celebrity, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	matched := []*celebrity.Celebrity{}
	for _, c := range repository.active() {
		if filter.Query != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Query)) {
			continue
		}
		matched = append(matched, c)
	}

	total := len(matched)
	if offset >= total {
		return []*celebrity.Celebrity{}, total, nil
	}
	return matched[offset:min(offset+limit, total)], total, nil
}

func (repository *Repository) FindByID(_ context.Context, id string) (*celebrity.Celebrity, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if c, ok := repository.celebrities[id]; ok && c.DeletedAt == nil {
		clone := *c
		return &clone, nil
	}
	return nil, dberr.ErrNotFound
}

func (repository *Repository) FindBySlug(_ context.Context, slug string) (*celebrity.Celebrity, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, c := range repository.active() {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *Repository) Create(_ context.Context, c *celebrity.Celebrity) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, existing := range repository.celebrities {
		if existing.ID == c.ID || (existing.Slug == c.Slug && existing.DeletedAt == nil) {
			return apperr.Conflict("Resource already exists")
		}
	}

	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	clone := *c
	repository.celebrities[c.ID] = &clone
	return nil
}

func (repository *Repository) Update(_ context.Context, c *celebrity.Celebrity) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.celebrities[c.ID]
	if !ok || existing.DeletedAt != nil {
		return dberr.ErrNotFound
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now()
	clone := *c
	repository.celebrities[c.ID] = &clone
	return nil
}

func (repository *Repository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	existing, ok := repository.celebrities[id]
	if !ok || existing.DeletedAt != nil {
		return dberr.ErrNotFound
	}

	now := time.Now()
	existing.DeletedAt = &now
	return nil
}

func (repository *Repository) FindByAlias(_ context.Context, key string) (*celebrity.Celebrity, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.AliasErr != nil {
		return nil, repository.AliasErr
	}

	alias, ok := repository.aliases[key]
	if !ok {
		return nil, dberr.ErrNotFound
	}

	c, ok := repository.celebrities[alias.CelebrityID]
	if !ok || c.DeletedAt != nil {
		return nil, dberr.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (repository *Repository) ReplaceAliases(_ context.Context, celebrityID string, aliases []celebrity.Alias) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for key, alias := range repository.aliases {
		if alias.CelebrityID == celebrityID {
			delete(repository.aliases, key)
		}
	}
	for _, alias := range aliases {
		alias.CelebrityID = celebrityID
		repository.aliases[alias.Key] = alias
	}
	return nil
}

// AliasKeys returns the sorted alias keys owned by celebrityID.
func (repository *Repository) AliasKeys(celebrityID string) []string {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	keys := []string{}
	for key, alias := range repository.aliases {
		if alias.CelebrityID == celebrityID {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

// active returns copies of non-deleted celebrities ordered by name.
func (repository *Repository) active() []*celebrity.Celebrity {
	result := []*celebrity.Celebrity{}
	for _, c := range repository.celebrities {
		if c.DeletedAt == nil {
			clone := *c
			result = append(result, &clone)
		}
	}
	slices.SortFunc(result, func(a, b *celebrity.Celebrity) int { return strings.Compare(a.Name, b.Name) })
	return result
}

// # Resolution Cache

// ErrCacheDown is a ready-made failure for [Cache.Err].
var ErrCacheDown = errors.New("cache unavailable")

// Cache implements [celebrity.ResolveCache] with a plain map; TTLs are recorded, not enforced.
type Cache struct {
	mu      sync.Mutex
	entries map[string]string

	// TTLs holds the TTL passed on the last Set of each key.
	TTLs map[string]time.Duration

	// Err, when set, fails every operation.
	Err error
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: map[string]string{}, TTLs: map[string]time.Duration{}}
}

func (cache *Cache) Get(_ context.Context, key string) (string, bool, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.Err != nil {
		return "", false, cache.Err
	}
	name, ok := cache.entries[key]
	return name, ok, nil
}

func (cache *Cache) Set(_ context.Context, key, name string, ttl time.Duration) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.Err != nil {
		return cache.Err
	}
	cache.entries[key] = name
	cache.TTLs[key] = ttl
	return nil
}

func (cache *Cache) Delete(_ context.Context, keys ...string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	if cache.Err != nil {
		return cache.Err
	}
	for _, key := range keys {
		delete(cache.entries, key)
	}
	return nil
}

// Has reports whether key is cached.
func (cache *Cache) Has(key string) bool {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	_, ok := cache.entries[key]
	return ok
}

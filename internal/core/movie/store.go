// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import "context"

// Repository is the persistence contract for the movie catalogue.
type Repository interface {
	List(context context.Context, filter Filter, limit, offset int) ([]*Movie, int, error)
	FindByID(context context.Context, id string) (*Movie, error)
	FindBySlug(context context.Context, slug string) (*Movie, error)
	Create(context context.Context, movie *Movie) error
	Update(context context.Context, movie *Movie) error
	Delete(context context.Context, id string) error

	// FindByCredit returns movies where any credit column contains fragment
	// (case-insensitive), ordered by release year then ID. It is a loose
	// pre-filter; callers confirm credits with the credit package.
	FindByCredit(context context.Context, fragment string, limit int) ([]*Movie, error)

	// Scan returns up to batch movies with ID greater than afterID, in ID order.
	// An empty afterID starts from the beginning.
	Scan(context context.Context, afterID string, batch int) ([]*Movie, error)
}

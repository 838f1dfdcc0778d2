// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/telugucine/internal/platform/database/schema"
	"github.com/taibuivan/telugucine/internal/platform/dberr"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed movie store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// selectColumns is the shared projection, aliased to table "m".
var selectColumns = func() string {
	columns := schema.CoreMovie.Columns()
	for i, column := range columns {
		columns[i] = "m." + column
	}
	return strings.Join(columns, ", ")
}()

/*
List returns a filtered, paginated slice of movies and the total count.

Description: Uses COUNT(*) OVER() so the total is computed in the same
round-trip as the page.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Movie, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s m
		WHERE m.%s IS NULL
	`, selectColumns, schema.CoreMovie.Table, schema.CoreMovie.DeletedAt))

	// Title search
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.%s ILIKE $%d", schema.CoreMovie.Title, argID))
		args = append(args, likePattern(filter.Query))
		argID++
	}

	// Release year
	if filter.Year > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.%s = $%d", schema.CoreMovie.ReleaseYear, argID))
		args = append(args, filter.Year)
		argID++
	}

	// Genre overlap (any of)
	if len(filter.Genres) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.%s && $%d", schema.CoreMovie.Genres, argID))
		args = append(args, filter.Genres)
		argID++
	}

	// Loose credit search
	if filter.Person != "" {
		queryBuilder.WriteString(" AND " + creditPredicate(argID))
		args = append(args, likePattern(filter.Person))
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY m.%s DESC NULLS LAST, m.%s ASC LIMIT $%d OFFSET $%d",
		schema.CoreMovie.ReleaseYear, schema.CoreMovie.Title, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_movies")
	}
	defer rows.Close()

	var movies []*Movie
	total := 0
	for rows.Next() {
		movie := &Movie{}
		destinations := append(scanTargets(movie), &total)
		if err := rows.Scan(destinations...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_movie")
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_movies")
	}

	return movies, total, nil
}

// FindByID fetches a single active movie by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Movie, error) {
	return repository.findOne(context, schema.CoreMovie.ID, id, "get_movie")
}

// FindBySlug fetches a single active movie by its URL slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Movie, error) {
	return repository.findOne(context, schema.CoreMovie.Slug, slug, "get_movie_by_slug")
}

func (repository *PostgresRepository) findOne(context context.Context, column, value, action string) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s m WHERE m.%s = $1 AND m.%s IS NULL`,
		selectColumns, schema.CoreMovie.Table, column, schema.CoreMovie.DeletedAt,
	)

	movie := &Movie{}
	if err := repository.pool.QueryRow(context, query, value).Scan(scanTargets(movie)...); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return movie, nil
}

// Create inserts a new movie. The caller assigns ID and Slug.
func (repository *PostgresRepository) Create(context context.Context, movie *Movie) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CoreMovie.Table,
		schema.CoreMovie.ID, schema.CoreMovie.Title, schema.CoreMovie.Slug, schema.CoreMovie.ReleaseYear,
		schema.CoreMovie.Genres, schema.CoreMovie.PosterURL, schema.CoreMovie.TMDBID,
		schema.CoreMovie.Director, schema.CoreMovie.Hero, schema.CoreMovie.Heroine,
		schema.CoreMovie.MusicDirector, schema.CoreMovie.Producer, schema.CoreMovie.Writer,
		schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
		schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		movie.ID, movie.Title, movie.Slug, movie.ReleaseYear, movie.Genres, movie.PosterURL, movie.TMDBID,
		movie.Director, movie.Hero, movie.Heroine, movie.MusicDirector, movie.Producer, movie.Writer,
	).Scan(&movie.CreatedAt, &movie.UpdatedAt)

	return dberr.Wrap(err, "create_movie")
}

// Update overwrites every mutable column of an active movie.
func (repository *PostgresRepository) Update(context context.Context, movie *Movie) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
		    %s = $8, %s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s, %s
	`,
		schema.CoreMovie.Table,
		schema.CoreMovie.Title, schema.CoreMovie.Slug, schema.CoreMovie.ReleaseYear,
		schema.CoreMovie.Genres, schema.CoreMovie.PosterURL, schema.CoreMovie.TMDBID,
		schema.CoreMovie.Director, schema.CoreMovie.Hero, schema.CoreMovie.Heroine,
		schema.CoreMovie.MusicDirector, schema.CoreMovie.Producer, schema.CoreMovie.Writer,
		schema.CoreMovie.UpdatedAt,
		schema.CoreMovie.ID, schema.CoreMovie.DeletedAt,
		schema.CoreMovie.CreatedAt, schema.CoreMovie.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		movie.ID, movie.Title, movie.Slug, movie.ReleaseYear, movie.Genres, movie.PosterURL, movie.TMDBID,
		movie.Director, movie.Hero, movie.Heroine, movie.MusicDirector, movie.Producer, movie.Writer,
	).Scan(&movie.CreatedAt, &movie.UpdatedAt)

	return dberr.Wrap(err, "update_movie")
}

// Delete soft-deletes a movie.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CoreMovie.Table, schema.CoreMovie.DeletedAt, schema.CoreMovie.ID, schema.CoreMovie.DeletedAt,
	)

	command, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_movie")
	}

	if command.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

/*
FindByCredit is the loose pre-filter feeding slug resolution and filmography
aggregation: any credit column ILIKE %fragment%.

Description: Ordering is deterministic (release year, then ID) because the
resolver's first-candidate-wins tie-break depends on candidate order.
*/
func (repository *PostgresRepository) FindByCredit(context context.Context, fragment string, limit int) ([]*Movie, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return []*Movie{}, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s m
		WHERE m.%s IS NULL AND %s
		ORDER BY m.%s ASC NULLS LAST, m.%s ASC
		LIMIT $2
	`,
		selectColumns, schema.CoreMovie.Table, schema.CoreMovie.DeletedAt, creditPredicate(1),
		schema.CoreMovie.ReleaseYear, schema.CoreMovie.ID,
	)

	rows, err := repository.pool.Query(context, query, likePattern(fragment), limit)
	if err != nil {
		return nil, dberr.Wrap(err, "find_movies_by_credit")
	}
	return collect(rows, "find_movies_by_credit")
}

// Scan walks the catalogue with keyset pagination on the primary key.
func (repository *PostgresRepository) Scan(context context.Context, afterID string, batch int) ([]*Movie, error) {
	var queryBuilder strings.Builder
	args := []any{batch}

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s
		FROM %s m
		WHERE m.%s IS NULL
	`, selectColumns, schema.CoreMovie.Table, schema.CoreMovie.DeletedAt))

	// Keyset cursor
	if afterID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.%s > $2", schema.CoreMovie.ID))
		args = append(args, afterID)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY m.%s ASC LIMIT $1", schema.CoreMovie.ID))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_movies")
	}
	return collect(rows, "scan_movies")
}

// # Helpers

func collect(rows pgx.Rows, action string) ([]*Movie, error) {
	defer rows.Close()

	movies := []*Movie{}
	for rows.Next() {
		movie := &Movie{}
		if err := rows.Scan(scanTargets(movie)...); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return movies, nil
}

// scanTargets returns destinations in [schema.CoreMovieTable.Columns] order.
func scanTargets(movie *Movie) []any {
	return []any{
		&movie.ID, &movie.Title, &movie.Slug, &movie.ReleaseYear, &movie.Genres, &movie.PosterURL, &movie.TMDBID,
		&movie.Director, &movie.Hero, &movie.Heroine, &movie.MusicDirector, &movie.Producer, &movie.Writer,
		&movie.CreatedAt, &movie.UpdatedAt,
	}
}

// creditPredicate ORs an ILIKE over every credit column against placeholder $argID.
func creditPredicate(argID int) string {
	columns := schema.CoreMovie.CreditColumns()
	clauses := make([]string, len(columns))
	for i, column := range columns {
		clauses[i] = fmt.Sprintf("m.%s ILIKE $%d", column, argID)
	}
	return "(" + strings.Join(clauses, " OR ") + ")"
}

// likePattern escapes LIKE wildcards in s and wraps it in %...%.
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + escaped + "%"
}

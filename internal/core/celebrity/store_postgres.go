// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package celebrity

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

// PostgresRepository implements [Repository] and [AliasRepository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed celebrity store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// selectColumns is the shared projection, aliased to table "c".
var selectColumns = func() string {
	columns := schema.CoreCelebrity.Columns()
	for i, column := range columns {
		columns[i] = "c." + column
	}
	return strings.Join(columns, ", ")
}()

// List returns a page of active celebrities ordered by name.
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Celebrity, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s c
		WHERE c.%s IS NULL
	`, selectColumns, schema.CoreCelebrity.Table, schema.CoreCelebrity.DeletedAt))

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (c.%s ILIKE $%d OR array_to_string(c.%s, ' ') ILIKE $%d)",
			schema.CoreCelebrity.Name, argID, schema.CoreCelebrity.NameAlt, argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY c.%s ASC LIMIT $%d OFFSET $%d", schema.CoreCelebrity.Name, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_celebrities")
	}
	defer rows.Close()

	celebrities := []*Celebrity{}
	total := 0
	for rows.Next() {
		celebrity := &Celebrity{}
		if err := rows.Scan(append(scanTargets(celebrity), &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_celebrity")
		}
		celebrities = append(celebrities, celebrity)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_celebrities")
	}
	return celebrities, total, nil
}

// FindByID fetches a single active celebrity by primary key.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Celebrity, error) {
	return repository.findOne(context, schema.CoreCelebrity.ID, id, "get_celebrity")
}

// FindBySlug fetches a single active celebrity by URL slug.
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Celebrity, error) {
	return repository.findOne(context, schema.CoreCelebrity.Slug, slug, "get_celebrity_by_slug")
}

func (repository *PostgresRepository) findOne(context context.Context, column, value, action string) (*Celebrity, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.%s = $1 AND c.%s IS NULL`,
		selectColumns, schema.CoreCelebrity.Table, column, schema.CoreCelebrity.DeletedAt,
	)

	celebrity := &Celebrity{}
	if err := repository.pool.QueryRow(context, query, value).Scan(scanTargets(celebrity)...); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return celebrity, nil
}

// Create inserts a new celebrity. The caller assigns ID and Slug.
func (repository *PostgresRepository) Create(context context.Context, celebrity *Celebrity) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CoreCelebrity.Table,
		schema.CoreCelebrity.ID, schema.CoreCelebrity.Slug, schema.CoreCelebrity.Name, schema.CoreCelebrity.NameAlt,
		schema.CoreCelebrity.Bio, schema.CoreCelebrity.ImageURL, schema.CoreCelebrity.CreatedAt, schema.CoreCelebrity.UpdatedAt,
		schema.CoreCelebrity.CreatedAt, schema.CoreCelebrity.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		celebrity.ID, celebrity.Slug, celebrity.Name, celebrity.NameAlt, celebrity.Bio, celebrity.ImageURL,
	).Scan(&celebrity.CreatedAt, &celebrity.UpdatedAt)

	return dberr.Wrap(err, "create_celebrity")
}

// Update overwrites the mutable columns of an active celebrity.
func (repository *PostgresRepository) Update(context context.Context, celebrity *Celebrity) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s, %s
	`,
		schema.CoreCelebrity.Table,
		schema.CoreCelebrity.Slug, schema.CoreCelebrity.Name, schema.CoreCelebrity.NameAlt,
		schema.CoreCelebrity.Bio, schema.CoreCelebrity.ImageURL, schema.CoreCelebrity.UpdatedAt,
		schema.CoreCelebrity.ID, schema.CoreCelebrity.DeletedAt,
		schema.CoreCelebrity.CreatedAt, schema.CoreCelebrity.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		celebrity.ID, celebrity.Slug, celebrity.Name, celebrity.NameAlt, celebrity.Bio, celebrity.ImageURL,
	).Scan(&celebrity.CreatedAt, &celebrity.UpdatedAt)

	return dberr.Wrap(err, "update_celebrity")
}

// Delete soft-deletes a celebrity. Its aliases stop resolving immediately
// because alias lookups join on active rows only.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.CoreCelebrity.Table, schema.CoreCelebrity.DeletedAt, schema.CoreCelebrity.ID, schema.CoreCelebrity.DeletedAt,
	)

	command, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_celebrity")
	}

	if command.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Alias Index

// FindByAlias resolves a compacted spelling to its active celebrity.
func (repository *PostgresRepository) FindByAlias(context context.Context, key string) (*Celebrity, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s a
		JOIN %s c ON c.%s = a.%s
		WHERE a.%s = $1 AND c.%s IS NULL
	`,
		selectColumns,
		schema.CoreCelebrityAlias.Table,
		schema.CoreCelebrity.Table, schema.CoreCelebrity.ID, schema.CoreCelebrityAlias.CelebrityID,
		schema.CoreCelebrityAlias.AliasKey, schema.CoreCelebrity.DeletedAt,
	)

	celebrity := &Celebrity{}
	if err := repository.pool.QueryRow(context, query, key).Scan(scanTargets(celebrity)...); err != nil {
		return nil, dberr.Wrap(err, "find_celebrity_by_alias")
	}
	return celebrity, nil
}

/*
ReplaceAliases rewrites the alias set of one celebrity.

Description: Clear and insert inside a single transaction. Inserts are queued
on a [pgx.Batch]; a key already owned by another celebrity moves to this one.
*/
func (repository *PostgresRepository) ReplaceAliases(context context.Context, celebrityID string, aliases []Alias) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_replace_aliases")
	}
	defer transaction.Rollback(context)

	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreCelebrityAlias.Table, schema.CoreCelebrityAlias.CelebrityID,
	)
	if _, err := transaction.Exec(context, clearQuery, celebrityID); err != nil {
		return dberr.Wrap(err, "clear_aliases")
	}

	if len(aliases) > 0 {
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s
		`,
			schema.CoreCelebrityAlias.Table,
			schema.CoreCelebrityAlias.AliasKey, schema.CoreCelebrityAlias.CelebrityID,
			schema.CoreCelebrityAlias.Source, schema.CoreCelebrityAlias.CreatedAt,
			schema.CoreCelebrityAlias.AliasKey,
			schema.CoreCelebrityAlias.CelebrityID, schema.CoreCelebrityAlias.CelebrityID,
			schema.CoreCelebrityAlias.Source, schema.CoreCelebrityAlias.Source,
		)

		batch := &pgx.Batch{}
		for _, alias := range aliases {
			batch.Queue(insertQuery, alias.Key, celebrityID, string(alias.Source))
		}

		if err := transaction.SendBatch(context, batch).Close(); err != nil {
			return dberr.Wrap(err, "insert_aliases")
		}
	}

	return dberr.Wrap(transaction.Commit(context), "commit_replace_aliases")
}

// # Helpers

// scanTargets returns destinations in [schema.CoreCelebrityTable.Columns] order.
func scanTargets(celebrity *Celebrity) []any {
	return []any{
		&celebrity.ID, &celebrity.Slug, &celebrity.Name, &celebrity.NameAlt,
		&celebrity.Bio, &celebrity.ImageURL, &celebrity.CreatedAt, &celebrity.UpdatedAt,
	}
}

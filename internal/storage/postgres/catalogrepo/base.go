// Package catalogrepo provides PostgreSQL implementations for catalog
// repositories. Embed Base in specific catalog repositories.
package catalogrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storecore/internal/core/apperror"
	"storecore/internal/domain"
	"storecore/internal/storage/postgres"
)

// Base provides common CRUD operations for catalog entities. All reads are
// scoped to live rows (deleted_at IS NULL); transaction control lives in the
// service layer, the repository just picks up whatever querier is bound to
// the context.
type Base[T domain.Record] struct {
	txm        *postgres.TxManager
	tableName  string
	selectCols []string
	searchCols []string
	newFn      func() T
}

// NewBase creates a new base catalog repository. searchCols are the columns
// the keyword filter matches against.
func NewBase[T domain.Record](
	txm *postgres.TxManager,
	tableName string,
	selectCols []string,
	searchCols []string,
	newFn func() T,
) *Base[T] {
	return &Base[T]{
		txm:        txm,
		tableName:  tableName,
		selectCols: selectCols,
		searchCols: searchCols,
		newFn:      newFn,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *Base[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *Base[T]) querier(ctx context.Context) postgres.Querier {
	return r.txm.GetQuerier(ctx)
}

// baseSelect creates a SELECT builder scoped to live rows.
func (r *Base[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(squirrel.Eq{"deleted_at": nil})
}

// Create inserts a new entity using its "db" tags and stamps the
// store-assigned id.
func (r *Base[T]) Create(ctx context.Context, e T) error {
	data := postgres.StructToMap(e)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	// The store assigns ids; never insert one.
	filtered := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	q := r.Builder().
		Insert(r.tableName).
		SetMap(filtered).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return fmt.Errorf("insert %s: %w", r.tableName, err)
	}
	e.SetEntityID(id)

	return nil
}

// FindByID retrieves a live entity by id.
func (r *Base[T]) FindByID(ctx context.Context, id int64) (T, error) {
	return r.FindOneBy(ctx, "id", id)
}

// FindOneBy retrieves a live entity by exact match on column.
func (r *Base[T]) FindOneBy(ctx context.Context, column string, value any) (T, error) {
	e := r.newFn()

	q := r.baseSelect().
		Where(squirrel.Eq{column: value}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return e, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.querier(ctx), e, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return e, apperror.NewNotFound(r.tableName, value)
		}
		return e, fmt.Errorf("find %s by %s: %w", r.tableName, column, err)
	}

	return e, nil
}

// FindAllByIDs retrieves the live subset of ids.
func (r *Base[T]) FindAllByIDs(ctx context.Context, ids []int64) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}

	q := r.baseSelect().
		Where(squirrel.Eq{"id": ids})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := []T{}
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("find %s by ids: %w", r.tableName, err)
	}

	return items, nil
}

// Update persists the full row by id.
func (r *Base[T]) Update(ctx context.Context, e T) error {
	data := postgres.StructToMap(e)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	filtered := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if col == "id" {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	q := r.Builder().
		Update(r.tableName).
		SetMap(filtered).
		Where(squirrel.Eq{"id": e.EntityID(), "deleted_at": nil})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, e.EntityID())
	}

	return nil
}

// SoftDelete marks one live row deleted.
func (r *Base[T]) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	q := r.Builder().
		Update(r.tableName).
		Set("deleted_at", at).
		Where(squirrel.Eq{"id": id, "deleted_at": nil})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build soft delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, id)
	}

	return nil
}

// SoftDeleteAll marks the live subset of ids deleted, returning the ids
// actually affected.
func (r *Base[T]) SoftDeleteAll(ctx context.Context, ids []int64, at time.Time) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	q := r.Builder().
		Update(r.tableName).
		Set("deleted_at", at).
		Where(squirrel.Eq{"id": ids, "deleted_at": nil}).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build soft delete batch: %w", err)
	}

	rows, err := r.querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("soft delete %s batch: %w", r.tableName, err)
	}
	defer rows.Close()

	deleted := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan deleted id: %w", err)
		}
		deleted = append(deleted, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("soft delete %s batch: %w", r.tableName, err)
	}

	return deleted, nil
}

// List retrieves one page of live rows with keyword filtering and sorting.
func (r *Base[T]) List(ctx context.Context, query domain.ListQuery) (domain.ListResult[T], error) {
	result := domain.ListResult[T]{
		Items: []T{},
		Page:  query.Page,
		Size:  query.Size,
	}

	q := r.baseSelect()

	if query.Keyword != "" {
		pattern := "%" + query.Keyword + "%"
		or := squirrel.Or{}
		for _, col := range r.searchCols {
			or = append(or, squirrel.ILike{col: pattern})
		}
		q = q.Where(or)
	}

	// Count total before pagination
	countQ := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub")

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count %s: %w", r.tableName, err)
	}

	if orderBy, ok := r.resolveOrderBy(query.SortColumn, query.SortDir); ok {
		q = q.OrderBy(orderBy)
	}

	q = q.Limit(uint64(query.Size)).Offset(uint64(query.Offset()))

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list %s: %w", r.tableName, err)
	}

	return result, nil
}

// resolveOrderBy maps the requested sort column to an ORDER BY clause.
// Unknown columns produce no ordering at all rather than an error.
func (r *Base[T]) resolveOrderBy(column string, dir domain.SortDirection) (string, bool) {
	if column == "" {
		return "", false
	}
	for _, col := range r.selectCols {
		if col == column {
			direction := "ASC"
			if dir == domain.SortDesc {
				direction = "DESC"
			}
			return col + " " + direction, true
		}
	}
	return "", false
}

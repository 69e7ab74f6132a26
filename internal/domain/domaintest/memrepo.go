// Package domaintest provides in-memory test doubles for the domain layer.
package domaintest

import (
	"context"
	"sort"
	"strings"
	"time"

	"storecore/internal/core/apperror"
	"storecore/internal/domain"
)

// TxManager is a pass-through tx.Manager for service tests. It tracks scope
// nesting the way the real manager does.
type TxManager struct {
	depth int
}

// Do runs fn directly, failing on nested scopes.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// ReadOnly runs fn directly, failing on nested scopes.
func (m *TxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.depth > 0 {
		return errDepth
	}
	m.depth++
	defer func() { m.depth-- }()
	return fn(ctx)
}

var errDepth = apperror.NewInternal(nil).WithDetail("reason", "nested scope")

// MemRepo is an in-memory domain.CatalogRepository. Rows are kept in
// insertion order so listings are deterministic.
type MemRepo[T domain.Record] struct {
	// EntityName is used in not-found errors.
	EntityName string

	// Clone copies an entity so stored rows never alias caller values.
	Clone func(T) T

	// MatchKeyword reports whether an entity matches a list keyword.
	MatchKeyword func(e T, keyword string) bool

	// SortLess maps sortable column names to comparison functions.
	SortLess map[string]func(a, b T) bool

	// UpdateCalls counts Update invocations.
	UpdateCalls int

	seq   int64
	order []int64
	rows  map[int64]T
}

func (r *MemRepo[T]) ensure() {
	if r.rows == nil {
		r.rows = make(map[int64]T)
	}
}

func (r *MemRepo[T]) notFound(id any) error {
	return apperror.NewNotFound(r.EntityName, id)
}

// Create stores a clone of e and stamps the next id.
func (r *MemRepo[T]) Create(_ context.Context, e T) error {
	r.ensure()
	r.seq++
	e.SetEntityID(r.seq)
	r.rows[r.seq] = r.Clone(e)
	r.order = append(r.order, r.seq)
	return nil
}

// FindByID retrieves a clone of the live row.
func (r *MemRepo[T]) FindByID(_ context.Context, id int64) (T, error) {
	r.ensure()
	var zero T
	e, ok := r.rows[id]
	if !ok || e.IsDeleted() {
		return zero, r.notFound(id)
	}
	return r.Clone(e), nil
}

// FindFirst retrieves a clone of the first live row matching pred.
func (r *MemRepo[T]) FindFirst(pred func(T) bool) (T, error) {
	r.ensure()
	for _, id := range r.order {
		e := r.rows[id]
		if !e.IsDeleted() && pred(e) {
			return r.Clone(e), nil
		}
	}
	var zero T
	return zero, r.notFound("matching query")
}

// FindAllByIDs retrieves the live subset of ids.
func (r *MemRepo[T]) FindAllByIDs(_ context.Context, ids []int64) ([]T, error) {
	r.ensure()
	items := []T{}
	for _, id := range ids {
		if e, ok := r.rows[id]; ok && !e.IsDeleted() {
			items = append(items, r.Clone(e))
		}
	}
	return items, nil
}

// Update replaces the live row with a clone of e.
func (r *MemRepo[T]) Update(_ context.Context, e T) error {
	r.ensure()
	r.UpdateCalls++
	current, ok := r.rows[e.EntityID()]
	if !ok || current.IsDeleted() {
		return r.notFound(e.EntityID())
	}
	r.rows[e.EntityID()] = r.Clone(e)
	return nil
}

// SoftDelete marks the live row deleted.
func (r *MemRepo[T]) SoftDelete(_ context.Context, id int64, at time.Time) error {
	r.ensure()
	e, ok := r.rows[id]
	if !ok || e.IsDeleted() {
		return r.notFound(id)
	}
	e.MarkDeleted(at)
	return nil
}

// SoftDeleteAll marks the live subset of ids deleted.
func (r *MemRepo[T]) SoftDeleteAll(_ context.Context, ids []int64, at time.Time) ([]int64, error) {
	r.ensure()
	deleted := []int64{}
	for _, id := range ids {
		if e, ok := r.rows[id]; ok && !e.IsDeleted() {
			e.MarkDeleted(at)
			deleted = append(deleted, id)
		}
	}
	return deleted, nil
}

// List pages live rows with keyword filtering and sorting. Unknown sort
// columns leave the insertion order untouched.
func (r *MemRepo[T]) List(_ context.Context, q domain.ListQuery) (domain.ListResult[T], error) {
	r.ensure()

	matched := []T{}
	for _, id := range r.order {
		e := r.rows[id]
		if e.IsDeleted() {
			continue
		}
		if q.Keyword != "" && r.MatchKeyword != nil && !r.MatchKeyword(e, q.Keyword) {
			continue
		}
		matched = append(matched, e)
	}

	if less, ok := r.SortLess[q.SortColumn]; ok {
		sort.SliceStable(matched, func(i, j int) bool {
			if q.SortDir == domain.SortDesc {
				return less(matched[j], matched[i])
			}
			return less(matched[i], matched[j])
		})
	}

	result := domain.ListResult[T]{
		Items:      []T{},
		TotalCount: int64(len(matched)),
		Page:       q.Page,
		Size:       q.Size,
	}

	start := q.Offset()
	if start >= len(matched) {
		return result, nil
	}
	end := start + q.Size
	if end > len(matched) {
		end = len(matched)
	}
	for _, e := range matched[start:end] {
		result.Items = append(result.Items, r.Clone(e))
	}

	return result, nil
}

// ContainsFold reports whether s contains substr case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

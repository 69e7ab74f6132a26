// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"strings"
	"time"

	"storecore/internal/core/entity"
)

// Record is the contract every stored entity satisfies (via entity.Base).
type Record interface {
	entity.Validatable

	EntityID() int64
	SetEntityID(id int64)
	StampCreated(now time.Time)
	Touch(now time.Time)
	MarkDeleted(now time.Time)
	IsDeleted() bool
}

// --- Listing ---

// SortDirection is the listing sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection maps a raw direction string to a SortDirection.
// Only a case-insensitive "desc" selects descending; anything else,
// including garbage, means ascending.
func ParseSortDirection(raw string) SortDirection {
	if strings.EqualFold(raw, string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// ListQuery contains keyword search, sorting and pagination for listings.
// Page is 1-indexed.
type ListQuery struct {
	Keyword    string
	Page       int
	Size       int
	SortColumn string
	SortDir    SortDirection
}

// Normalize clamps pagination to usable values.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = 50
	}
	if q.SortDir == "" {
		q.SortDir = SortAsc
	}
	return q
}

// Offset returns the row offset for the query's page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

// ListResult contains one page of a listing.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
}

// TotalPages derives the page count from TotalCount and Size.
func (r ListResult[T]) TotalPages() int64 {
	if r.Size <= 0 {
		return 0
	}
	return (r.TotalCount + int64(r.Size) - 1) / int64(r.Size)
}

// --- Bulk deletion ---

// BulkDeleteResult reconciles a bulk soft-delete request against storage.
// AlreadyDeletedIDs is reserved: soft-deleted rows are invisible to lookups,
// so they currently land in NotExistedIDs.
type BulkDeleteResult struct {
	DeletedIDs        []int64 `json:"deletedIds"`
	NotExistedIDs     []int64 `json:"notExistedIds"`
	AlreadyDeletedIDs []int64 `json:"alreadyDeletedIds"`
}

// --- Repository ---

// CatalogRepository defines storage operations for catalog entities.
// Every read is scoped to live rows; soft-deleted rows do not exist as far
// as callers are concerned. Transaction control lives above this interface.
type CatalogRepository[T Record] interface {
	// Create inserts a new row and stamps the store-assigned id.
	Create(ctx context.Context, e T) error

	// FindByID retrieves a live row by id.
	FindByID(ctx context.Context, id int64) (T, error)

	// FindAllByIDs retrieves the live subset of ids; absent ids are simply
	// not in the result.
	FindAllByIDs(ctx context.Context, ids []int64) ([]T, error)

	// Update persists the full row by id.
	Update(ctx context.Context, e T) error

	// SoftDelete marks one live row deleted.
	SoftDelete(ctx context.Context, id int64, at time.Time) error

	// SoftDeleteAll marks the live subset of ids deleted and returns the
	// ids actually affected.
	SoftDeleteAll(ctx context.Context, ids []int64, at time.Time) ([]int64, error)

	// List retrieves one page of live rows.
	List(ctx context.Context, q ListQuery) (ListResult[T], error)
}

// EqualPtr compares two optional values, treating nil as "unset".
func EqualPtr[V comparable](a, b *V) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
	BeforeDelete HookEvent = "before_delete"
	AfterDelete  HookEvent = "after_delete"
)

// Hook is a function that runs at a specific lifecycle point.
type Hook[T any] func(ctx context.Context, e T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, e T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"storecore/internal/domain"
)

// --- Listing ---

// ListRequest contains keyword search, sorting and pagination parameters.
type ListRequest struct {
	Keyword    string `form:"keyword"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Size       int    `form:"size" binding:"omitempty,min=1,max=100"`
	SortColumn string `form:"sort_column"`
	SortDir    string `form:"sort_dir"`
}

// ToQuery converts the request to a domain list query.
func (r ListRequest) ToQuery() domain.ListQuery {
	return domain.ListQuery{
		Keyword:    r.Keyword,
		Page:       r.Page,
		Size:       r.Size,
		SortColumn: r.SortColumn,
		SortDir:    domain.ParseSortDirection(r.SortDir),
	}.Normalize()
}

// PaginationResponse contains pagination metadata.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// ListResponse wraps list results with pagination.
type ListResponse[T any] struct {
	Data       []T                `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// NewListResponse maps a domain list result into a response, converting
// each item with fn.
func NewListResponse[E any, T any](r domain.ListResult[E], fn func(E) T) ListResponse[T] {
	data := make([]T, len(r.Items))
	for i, item := range r.Items {
		data[i] = fn(item)
	}
	return ListResponse[T]{
		Data: data,
		Pagination: PaginationResponse{
			Page:       r.Page,
			Size:       r.Size,
			TotalItems: r.TotalCount,
			TotalPages: r.TotalPages(),
		},
	}
}

// --- Bulk deletion ---

// DeleteAllRequest carries the ids to soft-delete.
type DeleteAllRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

// BulkDeleteResponse reports the outcome of a bulk soft-delete.
type BulkDeleteResponse struct {
	DeletedIDs        []int64 `json:"deletedIds"`
	NotExistedIDs     []int64 `json:"notExistedIds"`
	AlreadyDeletedIDs []int64 `json:"alreadyDeletedIds"`
}

// NewBulkDeleteResponse maps a domain bulk delete result.
func NewBulkDeleteResponse(r domain.BulkDeleteResult) BulkDeleteResponse {
	return BulkDeleteResponse{
		DeletedIDs:        r.DeletedIDs,
		NotExistedIDs:     r.NotExistedIDs,
		AlreadyDeletedIDs: r.AlreadyDeletedIDs,
	}
}

// --- Common responses ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"esupport-inventory/internal/repository"
)

// ResponseHelper provides common response utilities and context management
type ResponseHelper struct {
	defaultPageSize int
}

// NewResponseHelper creates a ResponseHelper paging by defaultPageSize
func NewResponseHelper(defaultPageSize int) *ResponseHelper {
	if defaultPageSize < MinPageSize || defaultPageSize > MaxPageSize {
		defaultPageSize = DefaultPageSize
	}
	return &ResponseHelper{defaultPageSize: defaultPageSize}
}

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

// PaginationParams holds pagination parameters
type PaginationParams struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Offset   int `json:"offset"`
	Limit    int `json:"limit"`
}

// PaginationMeta holds pagination metadata for responses
type PaginationMeta struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

// Default pagination constants
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
	MinPageSize     = 1
)

// ParsePaginationParams reads page and page_size. Out of range values fall back to the defaults.
func (rh *ResponseHelper) ParsePaginationParams(r *http.Request) PaginationParams {
	query := r.URL.Query()

	page := 1
	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	pageSize := rh.defaultPageSize
	if pageSizeStr := query.Get("page_size"); pageSizeStr != "" {
		if ps, err := strconv.Atoi(pageSizeStr); err == nil {
			if ps >= MinPageSize && ps <= MaxPageSize {
				pageSize = ps
			}
		}
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	}
}

// ParseListQuery builds the repository list query from the search term q,
// the panel's declared filter keys and the pagination parameters.
func (rh *ResponseHelper) ParseListQuery(r *http.Request, filterKeys []string, params PaginationParams) repository.ListQuery {
	query := r.URL.Query()

	filters := make(map[string]string, len(filterKeys))
	for _, key := range filterKeys {
		if value := strings.TrimSpace(query.Get(key)); value != "" {
			filters[key] = value
		}
	}

	return repository.ListQuery{
		Search:  strings.TrimSpace(query.Get("q")),
		Filters: filters,
		Offset:  params.Offset,
		Limit:   params.Limit,
	}
}

// CalculatePaginationMeta calculates pagination metadata
func (rh *ResponseHelper) CalculatePaginationMeta(params PaginationParams, totalItems int64) PaginationMeta {
	totalPages := int((totalItems + int64(params.PageSize) - 1) / int64(params.PageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	hasNext := params.Page < totalPages
	hasPrevious := params.Page > 1

	var nextPage, previousPage *int
	if hasNext {
		next := params.Page + 1
		nextPage = &next
	}
	if hasPrevious {
		prev := params.Page - 1
		previousPage = &prev
	}

	return PaginationMeta{
		Page:         params.Page,
		PageSize:     params.PageSize,
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		HasNext:      hasNext,
		HasPrevious:  hasPrevious,
		NextPage:     nextPage,
		PreviousPage: previousPage,
	}
}

// CreateRequestContext creates a context with timeout and optional request ID
func (rh *ResponseHelper) CreateRequestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), timeout)

	if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
		ctx = context.WithValue(ctx, RequestIDKey, requestID)
	}

	return ctx, cancel
}

// GetRequestIDFromContext extracts request ID from context
func (rh *ResponseHelper) GetRequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// CreatePaginatedListResponseData creates response data for paginated list
// operations. The items are stored under itemsKey.
func (rh *ResponseHelper) CreatePaginatedListResponseData(itemsKey string, items interface{}, pagination PaginationMeta, q repository.ListQuery, additionalData map[string]interface{}) map[string]interface{} {
	data := map[string]interface{}{
		itemsKey:     items,
		"pagination": pagination,
		"search":     q.Search,
		"filters":    q.Filters,
	}

	for key, value := range additionalData {
		data[key] = value
	}

	return data
}

// CreateHealthCheckData creates health check response data
func (rh *ResponseHelper) CreateHealthCheckData() map[string]interface{} {
	return map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"service":   "esupport-inventory",
		"status":    "healthy",
	}
}

package httpapi

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// PostSummary is one entry of the blog API post listing.
type PostSummary struct {
	Id          openapi_types.UUID `json:"id"`
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	Excerpt     string             `json:"excerpt"`
	Status      string             `json:"status"`
	AuthorId    openapi_types.UUID `json:"authorId"`
	AuthorName  *string            `json:"authorName,omitempty"`
	PublishedAt time.Time          `json:"publishedAt"`
	CreatedAt   time.Time          `json:"createdAt"`
	ViewCount   int                `json:"viewCount"`
}

// PaginationMeta describes the page the listing belongs to.
type PaginationMeta struct {
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
}

// PaginatedPosts is the GET /api/v1/posts response body.
type PaginatedPosts struct {
	Data []PostSummary  `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// ErrorResponse is the API error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

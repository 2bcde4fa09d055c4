// Package stock searches stock photo providers.
package stock

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination=mock/mock_searcher.go -package=mock vetpost/backend/internal/service/stock Searcher

// Searcher runs a photo search against a provider.
type Searcher interface {
	// Name returns the provider name.
	Name() string
	Search(ctx context.Context, q Query) (Page, error)
}

// Query parameters for a photo search.
type Query struct {
	Term          string
	PerPage       int
	Orientation   string
	ContentFilter string
}

// Photo is a provider-neutral search hit.
type Photo struct {
	ID string
	// Type is the media type reported by the provider; empty when the
	// provider only serves photos and does not report it.
	Type           string
	AltDescription *string
	Description    *string
	Tags           []string
	ThumbnailURL   string
	PageURL        string
	AuthorName     string
}

// Page is one page of search results.
type Page struct {
	Total      int
	TotalPages int
	Photos     []Photo
}

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

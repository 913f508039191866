package usecase

import (
	"context"

	"bookrepo/internal/entity"
)

// SortKey selects the field book listings are ordered by.
type SortKey string

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortByTitle     SortKey = "TITLE"
	SortByCreatedAt SortKey = "CREATED_AT"

	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

// ParseSortKey maps a query value to a sort key. Anything but CREATED_AT,
// including an empty value, falls back to the title.
func ParseSortKey(s string) SortKey {
	if SortKey(s) == SortByCreatedAt {
		return SortByCreatedAt
	}
	return SortByTitle
}

// ParseSortDirection maps a query value to a direction. Anything but DESC,
// including an empty value, falls back to ascending.
func ParseSortDirection(s string) SortDirection {
	if SortDirection(s) == Descending {
		return Descending
	}
	return Ascending
}

// ListParams carries the ordering choices for listing books.
type ListParams struct {
	Sort      SortKey
	Direction SortDirection
}

// BookRepository defines the contract for book storage.
type BookRepository interface {
	// List returns every book ordered according to p.
	List(ctx context.Context, p ListParams) ([]entity.Book, error)
	// Search returns the books matching term, in default list order.
	Search(ctx context.Context, term string) ([]entity.Book, error)
	// GetByID returns the book with the given id or a NotFoundError.
	GetByID(ctx context.Context, id string) (entity.Book, error)
	// Create stores b under a fresh id and returns the stored record.
	Create(ctx context.Context, b entity.Book) (entity.Book, error)
	// Update replaces the book with the given id and returns the result.
	Update(ctx context.Context, id string, b entity.Book) (entity.Book, error)
	// Delete removes the book with the given id.
	Delete(ctx context.Context, id string) (bool, error)
}

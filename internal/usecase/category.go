package usecase

import (
	"context"

	"bookrepo/internal/entity"
)

// CategoryRepository defines the contract for category storage.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (entity.Category, error)
	// Create stores c under a fresh id. A duplicate name yields an
	// AlreadyExistsError and leaves the collection untouched.
	Create(ctx context.Context, c entity.Category) (entity.Category, error)
	Update(ctx context.Context, id string, c entity.Category) (entity.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}

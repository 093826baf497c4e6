package repository

import (
	"context"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
)

// PropertyRepository persists properties. Images live in PropertyImageRepository.
type PropertyRepository interface {
	FindAll(ctx context.Context) ([]*entity.Property, error)

	// FindByID returns NOT_FOUND when id matches nothing.
	FindByID(ctx context.Context, id string) (*entity.Property, error)

	// Search returns one page of matches and the total match count.
	Search(ctx context.Context, filter entity.PropertyFilter, page entity.PaginationParams) ([]*entity.Property, int64, error)

	// CountByOwner counts properties referencing ownerID.
	CountByOwner(ctx context.Context, ownerID string) (int64, error)

	// Create stores property and sets its ID.
	Create(ctx context.Context, property *entity.Property) error

	// Update replaces the stored property. Unknown IDs are a no-op.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes the property. Unknown IDs are a no-op.
	Delete(ctx context.Context, id string) error

	// StatsByStatus groups properties by status with count and price sum.
	StatsByStatus(ctx context.Context) ([]entity.StatusCount, error)

	// StatsByType groups properties by type, largest group first.
	StatsByType(ctx context.Context) ([]entity.TypeCount, error)
}

package repository

import (
	"context"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
)

// OwnerRepository persists owners.
type OwnerRepository interface {
	// FindAll returns every owner, in no guaranteed order.
	FindAll(ctx context.Context) ([]*entity.Owner, error)

	// FindByID returns NOT_FOUND when id matches nothing.
	FindByID(ctx context.Context, id string) (*entity.Owner, error)

	// FindByDNI matches dni exactly. NOT_FOUND when absent.
	FindByDNI(ctx context.Context, dni string) (*entity.Owner, error)

	// Create stores owner and sets its ID.
	Create(ctx context.Context, owner *entity.Owner) error

	// Update replaces the stored owner. Unknown IDs are a no-op.
	Update(ctx context.Context, owner *entity.Owner) error

	// Delete removes the owner. Unknown IDs are a no-op.
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int64, error)
}

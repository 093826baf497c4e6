package repository

import (
	"context"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
)

// PropertyImageRepository persists the image side table keyed by property.
type PropertyImageRepository interface {
	// FindByPropertyID returns the first image of the property, or nil, nil.
	FindByPropertyID(ctx context.Context, propertyID string) (*entity.PropertyImage, error)

	// FindByPropertyIDs returns the first image of each property that has one.
	FindByPropertyIDs(ctx context.Context, propertyIDs []string) (map[string]*entity.PropertyImage, error)

	// Create stores image and sets its ID.
	Create(ctx context.Context, image *entity.PropertyImage) error

	// Update replaces the stored image keyed by its ID.
	Update(ctx context.Context, image *entity.PropertyImage) error

	// DeleteByPropertyID removes every image of the property and reports how many.
	DeleteByPropertyID(ctx context.Context, propertyID string) (int64, error)
}

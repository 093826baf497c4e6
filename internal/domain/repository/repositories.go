package repository

import "context"

// Repositories groups every repository the use cases need.
type Repositories struct {
	Owner         OwnerRepository
	Property      PropertyRepository
	PropertyImage PropertyImageRepository
	// Ping checks the backing store. Nil means always healthy.
	Ping func(ctx context.Context) error
}

// NewRepositories creates the repository collection.
func NewRepositories(
	ownerRepo OwnerRepository,
	propertyRepo PropertyRepository,
	imageRepo PropertyImageRepository,
) *Repositories {
	return &Repositories{
		Owner:         ownerRepo,
		Property:      propertyRepo,
		PropertyImage: imageRepo,
	}
}

// Package mocks holds testify mocks of the domain ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/event"
)

// OwnerRepository is a mock implementation of repository.OwnerRepository
type OwnerRepository struct {
	mock.Mock
}

func (m *OwnerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Owner), args.Error(1)
}

func (m *OwnerRepository) FindByID(ctx context.Context, id string) (*entity.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Owner), args.Error(1)
}

func (m *OwnerRepository) FindByDNI(ctx context.Context, dni string) (*entity.Owner, error) {
	args := m.Called(ctx, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Owner), args.Error(1)
}

func (m *OwnerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *OwnerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *OwnerRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *OwnerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// PropertyRepository is a mock implementation of repository.PropertyRepository
type PropertyRepository struct {
	mock.Mock
}

func (m *PropertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Property), args.Error(1)
}

func (m *PropertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Property), args.Error(1)
}

func (m *PropertyRepository) Search(ctx context.Context, filter entity.PropertyFilter, page entity.PaginationParams) ([]*entity.Property, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Property), args.Get(1).(int64), args.Error(2)
}

func (m *PropertyRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *PropertyRepository) Update(ctx context.Context, property *entity.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *PropertyRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PropertyRepository) StatsByStatus(ctx context.Context) ([]entity.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StatusCount), args.Error(1)
}

func (m *PropertyRepository) StatsByType(ctx context.Context) ([]entity.TypeCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TypeCount), args.Error(1)
}

// PropertyImageRepository is a mock implementation of repository.PropertyImageRepository
type PropertyImageRepository struct {
	mock.Mock
}

func (m *PropertyImageRepository) FindByPropertyID(ctx context.Context, propertyID string) (*entity.PropertyImage, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PropertyImage), args.Error(1)
}

func (m *PropertyImageRepository) FindByPropertyIDs(ctx context.Context, propertyIDs []string) (map[string]*entity.PropertyImage, error) {
	args := m.Called(ctx, propertyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*entity.PropertyImage), args.Error(1)
}

func (m *PropertyImageRepository) Create(ctx context.Context, image *entity.PropertyImage) error {
	return m.Called(ctx, image).Error(0)
}

func (m *PropertyImageRepository) Update(ctx context.Context, image *entity.PropertyImage) error {
	return m.Called(ctx, image).Error(0)
}

func (m *PropertyImageRepository) DeleteByPropertyID(ctx context.Context, propertyID string) (int64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

// Publisher is a mock implementation of event.Publisher
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, e event.Event) error {
	return m.Called(ctx, e).Error(0)
}

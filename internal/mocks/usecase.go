package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/dto"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
)

// OwnerUseCase is a mock implementation of owner.UseCase
type OwnerUseCase struct {
	mock.Mock
}

func (m *OwnerUseCase) ListOwners(ctx context.Context) ([]*entity.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Owner), args.Error(1)
}

func (m *OwnerUseCase) GetOwnerByID(ctx context.Context, id string) (*entity.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Owner), args.Error(1)
}

func (m *OwnerUseCase) GetOwnerByDNI(ctx context.Context, dni string) (*entity.Owner, error) {
	args := m.Called(ctx, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Owner), args.Error(1)
}

func (m *OwnerUseCase) CreateOwner(ctx context.Context, fields entity.OwnerFields) (*entity.Owner, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Owner), args.Error(1)
}

func (m *OwnerUseCase) UpdateOwner(ctx context.Context, id string, fields entity.OwnerFields) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *OwnerUseCase) DeleteOwner(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// PropertyUseCase is a mock implementation of property.UseCase
type PropertyUseCase struct {
	mock.Mock
}

func (m *PropertyUseCase) ListProperties(ctx context.Context) ([]*entity.PropertyWithImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PropertyWithImage), args.Error(1)
}

func (m *PropertyUseCase) GetProperty(ctx context.Context, id string) (*entity.PropertyWithImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PropertyWithImage), args.Error(1)
}

func (m *PropertyUseCase) CreateProperty(ctx context.Context, fields entity.PropertyFields, image *dto.PropertyImageRequest) (*entity.PropertyWithImage, error) {
	args := m.Called(ctx, fields, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PropertyWithImage), args.Error(1)
}

func (m *PropertyUseCase) UpdateProperty(ctx context.Context, id string, fields entity.PropertyFields, image *dto.PropertyImageRequest) (*entity.PropertyWithImage, error) {
	args := m.Called(ctx, id, fields, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PropertyWithImage), args.Error(1)
}

func (m *PropertyUseCase) DeleteProperty(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PropertyUseCase) SearchProperties(ctx context.Context, filter entity.PropertyFilter, page entity.PaginationParams) ([]*entity.PropertyWithImage, entity.PaginationMeta, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, entity.PaginationMeta{}, args.Error(2)
	}
	return args.Get(0).([]*entity.PropertyWithImage), args.Get(1).(entity.PaginationMeta), args.Error(2)
}

// DashboardUseCase is a mock implementation of dashboard.UseCase
type DashboardUseCase struct {
	mock.Mock
}

func (m *DashboardUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatsResponse), args.Error(1)
}

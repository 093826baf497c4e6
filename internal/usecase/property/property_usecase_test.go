package property_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/dto"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/event"
	"github.com/Luuchoh/Propiedades-premium/internal/mocks"
	"github.com/Luuchoh/Propiedades-premium/internal/usecase/property"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

type fixture struct {
	properties *mocks.PropertyRepository
	images     *mocks.PropertyImageRepository
	publisher  *mocks.Publisher
	logs       *observer.ObservedLogs
	uc         property.UseCase
}

func newFixture() *fixture {
	core, logs := observer.New(zapcore.DebugLevel)
	f := &fixture{
		properties: new(mocks.PropertyRepository),
		images:     new(mocks.PropertyImageRepository),
		publisher:  new(mocks.Publisher),
		logs:       logs,
	}
	f.uc = property.NewUseCase(f.properties, f.images, f.publisher, zap.New(core))
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	f.properties.AssertExpectations(t)
	f.images.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func casaX() entity.PropertyFields {
	return entity.PropertyFields{
		OwnerID:          "o1",
		Name:             "Casa X",
		Type:             "Casa",
		Address:          "Calle 10 #20-30, Medellín",
		Description:      "Casa amplia",
		Price:            100000,
		Rooms:            3,
		Bathrooms:        2,
		Area:             120,
		YearConstruction: 2010,
		AnnualTax:        1200,
		MonthlyExpenses:  300,
		Features:         []string{"Piscina", "Jardín"},
	}
}

func notFound() error {
	return apperrors.NewAppError(apperrors.ErrNotFound, "property not found", nil)
}

func assignPropertyID(id string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*entity.Property).ID = id
	}
}

func assignImageID(id string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*entity.PropertyImage).ID = id
	}
}

func TestUseCase_CreateProperty(t *testing.T) {
	ctx := context.Background()
	disabled := false

	t.Run("stores property then image", func(t *testing.T) {
		f := newFixture()
		f.properties.On("Create", ctx, mock.AnythingOfType("*entity.Property")).Run(assignPropertyID("p1")).Return(nil)
		f.images.On("Create", ctx, mock.MatchedBy(func(img *entity.PropertyImage) bool {
			return img.PropertyID == "p1" && img.File == "data:image/png;base64,AAA" && !img.Enable
		})).Run(assignImageID("i1")).Return(nil)
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(e event.Event) bool {
			return e.Type == event.PropertyCreated && e.AggregateID == "p1"
		})).Return(nil)

		got, err := f.uc.CreateProperty(ctx, casaX(), &dto.PropertyImageRequest{File: "data:image/png;base64,AAA", Enable: &disabled})

		require.NoError(t, err)
		assert.Equal(t, "p1", got.ID)
		assert.Equal(t, entity.PropertyStatusAvailable, got.Status)
		assert.False(t, got.PartialWrite)
		require.NotNil(t, got.Image)
		assert.Equal(t, "i1", got.Image.ID)
		f.assertExpectations(t)
	})

	t.Run("image record is created even without an image payload", func(t *testing.T) {
		f := newFixture()
		f.properties.On("Create", ctx, mock.Anything).Run(assignPropertyID("p1")).Return(nil)
		f.images.On("Create", ctx, mock.MatchedBy(func(img *entity.PropertyImage) bool {
			return img.PropertyID == "p1" && img.File == "" && img.Enable
		})).Return(nil)
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

		got, err := f.uc.CreateProperty(ctx, casaX(), nil)

		require.NoError(t, err)
		require.NotNil(t, got.Image)
		assert.True(t, got.Image.Enable)
		f.assertExpectations(t)
	})

	t.Run("image write retried once", func(t *testing.T) {
		f := newFixture()
		f.properties.On("Create", ctx, mock.Anything).Run(assignPropertyID("p1")).Return(nil)
		f.images.On("Create", ctx, mock.Anything).Return(apperrors.New("write failed")).Once()
		f.images.On("Create", ctx, mock.Anything).Run(assignImageID("i1")).Return(nil).Once()
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

		got, err := f.uc.CreateProperty(ctx, casaX(), &dto.PropertyImageRequest{File: "f"})

		require.NoError(t, err)
		assert.False(t, got.PartialWrite)
		require.NotNil(t, got.Image)
		assert.Equal(t, "i1", got.Image.ID)
		f.images.AssertNumberOfCalls(t, "Create", 2)
		f.assertExpectations(t)
	})

	t.Run("both image writes fail gives a partial write", func(t *testing.T) {
		f := newFixture()
		f.properties.On("Create", ctx, mock.Anything).Run(assignPropertyID("p1")).Return(nil)
		f.images.On("Create", ctx, mock.Anything).Return(apperrors.New("write failed")).Twice()
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

		got, err := f.uc.CreateProperty(ctx, casaX(), &dto.PropertyImageRequest{File: "f"})

		require.NoError(t, err)
		assert.Equal(t, "p1", got.ID)
		assert.Nil(t, got.Image)
		assert.True(t, got.PartialWrite)

		errorLogs := f.logs.FilterLevelExact(zapcore.ErrorLevel).All()
		require.Len(t, errorLogs, 1)
		assert.Equal(t, "p1", errorLogs[0].ContextMap()["property_id"])
		f.assertExpectations(t)
	})

	t.Run("property write failure stores nothing else", func(t *testing.T) {
		f := newFixture()
		f.properties.On("Create", ctx, mock.Anything).
			Return(apperrors.NewAppError(apperrors.ErrUnavailable, "store unreachable", nil))

		got, err := f.uc.CreateProperty(ctx, casaX(), nil)

		assert.Nil(t, got)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrUnavailable))
		f.images.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid status is rejected before any write", func(t *testing.T) {
		f := newFixture()
		fields := casaX()
		fields.Status = "Alquilado"

		_, err := f.uc.CreateProperty(ctx, fields, nil)

		assert.True(t, apperrors.IsCode(err, apperrors.ErrInvalidArgument))
		f.properties.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUseCase_GetProperty(t *testing.T) {
	ctx := context.Background()

	t.Run("missing image yields placeholder", func(t *testing.T) {
		f := newFixture()
		f.properties.On("FindByID", ctx, "p1").Return(&entity.Property{ID: "p1"}, nil)
		f.images.On("FindByPropertyID", ctx, "p1").Return(nil, nil)

		got, err := f.uc.GetProperty(ctx, "p1")

		require.NoError(t, err)
		require.NotNil(t, got.Image)
		assert.Equal(t, "p1", got.Image.PropertyID)
		assert.Empty(t, got.Image.File)
		f.assertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture()
		f.properties.On("FindByID", ctx, "nope").Return(nil, notFound())

		_, err := f.uc.GetProperty(ctx, "nope")

		assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
	})
}

func TestUseCase_ListProperties_BatchedJoin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	props := []*entity.Property{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}
	f.properties.On("FindAll", ctx).Return(props, nil)
	f.images.On("FindByPropertyIDs", ctx, []string{"p1", "p2", "p3"}).Return(map[string]*entity.PropertyImage{
		"p2": {ID: "i2", PropertyID: "p2", File: "two", Enable: true},
	}, nil)

	got, err := f.uc.ListProperties(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "two", got[1].Image.File)
	assert.Empty(t, got[0].Image.File)
	assert.Equal(t, "p3", got[2].Image.PropertyID)
	f.images.AssertNumberOfCalls(t, "FindByPropertyIDs", 1)
	f.assertExpectations(t)
}

func TestUseCase_ListProperties_Empty(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.properties.On("FindAll", ctx).Return([]*entity.Property{}, nil)

	got, err := f.uc.ListProperties(ctx)

	require.NoError(t, err)
	assert.Empty(t, got)
	f.images.AssertNotCalled(t, "FindByPropertyIDs", mock.Anything, mock.Anything)
}

func TestUseCase_UpdateProperty(t *testing.T) {
	ctx := context.Background()
	enabled := true

	stored := func() *entity.Property {
		p := entity.NewProperty(casaX(), entity.Now())
		p.ID = "p1"
		return p
	}

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture()
		f.properties.On("FindByID", ctx, "p1").Return(nil, notFound())

		_, err := f.uc.UpdateProperty(ctx, "p1", casaX(), nil)

		assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
		f.properties.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("replaces fields and updates the existing image keeping enable", func(t *testing.T) {
		f := newFixture()
		current := stored()
		before := current.UpdatedAt
		fields := casaX()
		fields.Price = 250000
		fields.Status = entity.PropertyStatusSold

		f.properties.On("FindByID", ctx, "p1").Return(current, nil)
		f.properties.On("Update", ctx, mock.MatchedBy(func(p *entity.Property) bool {
			return p.Price == 250000 && p.Status == entity.PropertyStatusSold && p.UpdatedAt.After(before)
		})).Return(nil)
		f.images.On("FindByPropertyID", ctx, "p1").Return(&entity.PropertyImage{ID: "i1", PropertyID: "p1", File: "old", Enable: false}, nil)
		f.images.On("Update", ctx, &entity.PropertyImage{ID: "i1", PropertyID: "p1", File: "new", Enable: false}).Return(nil)
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

		got, err := f.uc.UpdateProperty(ctx, "p1", fields, &dto.PropertyImageRequest{File: "new"})

		require.NoError(t, err)
		assert.Equal(t, int64(250000), got.Price)
		assert.Equal(t, "new", got.Image.File)
		assert.False(t, got.Image.Enable)
		f.assertExpectations(t)
	})

	t.Run("explicit image id and enable win", func(t *testing.T) {
		f := newFixture()
		f.properties.On("FindByID", ctx, "p1").Return(stored(), nil)
		f.properties.On("Update", ctx, mock.Anything).Return(nil)
		f.images.On("FindByPropertyID", ctx, "p1").Return(&entity.PropertyImage{ID: "i1", PropertyID: "p1", Enable: false}, nil)
		f.images.On("Update", ctx, &entity.PropertyImage{ID: "i9", PropertyID: "p1", File: "x", Enable: true}).Return(nil)
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

		got, err := f.uc.UpdateProperty(ctx, "p1", casaX(), &dto.PropertyImageRequest{IDPropertyImage: "i9", File: "x", Enable: &enabled})

		require.NoError(t, err)
		assert.Equal(t, "i9", got.Image.ID)
		f.assertExpectations(t)
	})

	t.Run("creates the image when none exists", func(t *testing.T) {
		f := newFixture()
		f.properties.On("FindByID", ctx, "p1").Return(stored(), nil)
		f.properties.On("Update", ctx, mock.Anything).Return(nil)
		f.images.On("FindByPropertyID", ctx, "p1").Return(nil, nil)
		f.images.On("Create", ctx, mock.MatchedBy(func(img *entity.PropertyImage) bool {
			return img.PropertyID == "p1" && img.File == "x" && img.Enable
		})).Run(assignImageID("i2")).Return(nil)
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

		got, err := f.uc.UpdateProperty(ctx, "p1", casaX(), &dto.PropertyImageRequest{File: "x"})

		require.NoError(t, err)
		assert.Equal(t, "i2", got.Image.ID)
		f.assertExpectations(t)
	})

	t.Run("no image payload leaves the image untouched", func(t *testing.T) {
		f := newFixture()
		f.properties.On("FindByID", ctx, "p1").Return(stored(), nil)
		f.properties.On("Update", ctx, mock.Anything).Return(nil)
		f.images.On("FindByPropertyID", ctx, "p1").Return(nil, nil)
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

		got, err := f.uc.UpdateProperty(ctx, "p1", casaX(), nil)

		require.NoError(t, err)
		assert.Equal(t, "p1", got.Image.PropertyID)
		f.images.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		f.images.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUseCase_DeleteProperty(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades to images", func(t *testing.T) {
		f := newFixture()
		f.properties.On("FindByID", ctx, "p1").Return(&entity.Property{ID: "p1"}, nil)
		f.properties.On("Delete", ctx, "p1").Return(nil)
		f.images.On("DeleteByPropertyID", ctx, "p1").Return(int64(1), nil)
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(e event.Event) bool {
			return e.Type == event.PropertyDeleted
		})).Return(nil)

		require.NoError(t, f.uc.DeleteProperty(ctx, "p1"))
		f.assertExpectations(t)
	})

	t.Run("image cascade failure is logged only", func(t *testing.T) {
		f := newFixture()
		f.properties.On("FindByID", ctx, "p1").Return(&entity.Property{ID: "p1"}, nil)
		f.properties.On("Delete", ctx, "p1").Return(nil)
		f.images.On("DeleteByPropertyID", ctx, "p1").Return(int64(0), apperrors.New("boom"))
		f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

		require.NoError(t, f.uc.DeleteProperty(ctx, "p1"))
		assert.Equal(t, 1, f.logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture()
		f.properties.On("FindByID", ctx, "p1").Return(nil, notFound())

		err := f.uc.DeleteProperty(ctx, "p1")

		assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
		f.properties.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func ptr(v int64) *int64 { return &v }

func TestUseCase_SearchProperties(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults and clamps the limit", func(t *testing.T) {
		f := newFixture()
		wantFilter := entity.PropertyFilter{City: "medellín", SortBy: entity.SortByDate, SortOrder: entity.SortDesc}
		wantPage := entity.PaginationParams{Page: 1, Limit: 100}
		f.properties.On("Search", ctx, wantFilter, wantPage).Return([]*entity.Property{{ID: "p1"}}, int64(250), nil)
		f.images.On("FindByPropertyIDs", ctx, []string{"p1"}).Return(map[string]*entity.PropertyImage{}, nil)

		items, meta, err := f.uc.SearchProperties(ctx, entity.PropertyFilter{City: "medellín"}, entity.PaginationParams{Limit: 500})

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, entity.PaginationMeta{Page: 1, Limit: 100, Total: 250, TotalPages: 3}, meta)
		f.assertExpectations(t)
	})

	tests := []struct {
		name   string
		filter entity.PropertyFilter
		page   entity.PaginationParams
		field  string
	}{
		{name: "price range inverted", filter: entity.PropertyFilter{PriceMin: ptr(500), PriceMax: ptr(100)}, field: "priceMin"},
		{name: "negative price", filter: entity.PropertyFilter{PriceMax: ptr(-1)}, field: "priceMax"},
		{name: "negative bedrooms", filter: entity.PropertyFilter{MinRooms: ptr(-2)}, field: "bedrooms"},
		{name: "unknown status", filter: entity.PropertyFilter{Status: "Alquilado"}, field: "status"},
		{name: "unknown sort", filter: entity.PropertyFilter{SortBy: "rooms"}, field: "sortBy"},
		{name: "unknown order", filter: entity.PropertyFilter{SortOrder: "up"}, field: "sortOrder"},
		{name: "negative page", page: entity.PaginationParams{Page: -1}, field: "page"},
		{name: "page beyond addressable offset", page: entity.PaginationParams{Page: math.MaxInt / 10, Limit: 100}, field: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, _, err := f.uc.SearchProperties(ctx, tt.filter, tt.page)

			require.True(t, apperrors.IsCode(err, apperrors.ErrInvalidArgument))
			var appErr *apperrors.AppError
			require.True(t, apperrors.As(err, &appErr))
			details, ok := appErr.Details().([]apperrors.FieldError)
			require.True(t, ok)
			require.NotEmpty(t, details)
			assert.Equal(t, tt.field, details[0].Field)
			f.properties.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

package property

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/dto"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/event"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// imageWriteAttempts bounds the image insert: the first try plus one retry.
const imageWriteAttempts = 2

// UseCase is the property service contract. Every read joins the image.
type UseCase interface {
	// ListProperties returns every property with its image or a placeholder.
	ListProperties(ctx context.Context) ([]*entity.PropertyWithImage, error)

	// GetProperty returns NOT_FOUND when absent.
	GetProperty(ctx context.Context, id string) (*entity.PropertyWithImage, error)

	// CreateProperty stores the property and then its image. When the image
	// cannot be stored the result has a nil image and PartialWrite set.
	CreateProperty(ctx context.Context, fields entity.PropertyFields, image *dto.PropertyImageRequest) (*entity.PropertyWithImage, error)

	// UpdateProperty replaces every field of an existing property and
	// updates, or creates, its image when one is supplied.
	UpdateProperty(ctx context.Context, id string, fields entity.PropertyFields, image *dto.PropertyImageRequest) (*entity.PropertyWithImage, error)

	// DeleteProperty removes the property and its images.
	DeleteProperty(ctx context.Context, id string) error

	// SearchProperties returns one filtered, sorted page.
	SearchProperties(ctx context.Context, filter entity.PropertyFilter, page entity.PaginationParams) ([]*entity.PropertyWithImage, entity.PaginationMeta, error)
}

type useCase struct {
	propertyRepo repository.PropertyRepository
	imageRepo    repository.PropertyImageRepository
	publisher    event.Publisher
	logger       *zap.Logger
	now          func() time.Time
}

// NewUseCase creates the property use case.
func NewUseCase(
	propertyRepo repository.PropertyRepository,
	imageRepo repository.PropertyImageRepository,
	publisher event.Publisher,
	logger *zap.Logger,
) UseCase {
	return &useCase{
		propertyRepo: propertyRepo,
		imageRepo:    imageRepo,
		publisher:    publisher,
		logger:       logger,
		now:          entity.Now,
	}
}

func (uc *useCase) ListProperties(ctx context.Context) ([]*entity.PropertyWithImage, error) {
	properties, err := uc.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list properties")
	}
	return uc.joinImages(ctx, properties)
}

func (uc *useCase) GetProperty(ctx context.Context, id string) (*entity.PropertyWithImage, error) {
	property, err := uc.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image, err := uc.imageRepo.FindByPropertyID(ctx, property.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load property image")
	}

	return entity.JoinImage(property, image), nil
}

func (uc *useCase) CreateProperty(ctx context.Context, fields entity.PropertyFields, image *dto.PropertyImageRequest) (*entity.PropertyWithImage, error) {
	if err := validateStatus(fields.Status); err != nil {
		return nil, err
	}

	property := entity.NewProperty(fields, uc.now())
	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, apperrors.Wrap(err, "failed to create property")
	}

	var (
		file   string
		enable *bool
	)
	if image != nil {
		file, enable = image.File, image.Enable
	}

	result := &entity.PropertyWithImage{Property: property}
	img := entity.NewPropertyImage(property.ID, file, enable)
	if err := uc.createImage(ctx, img); err != nil {
		uc.logger.Error("Property stored without image, manual reconciliation required",
			zap.String("property_id", property.ID),
			zap.Error(err))
		result.PartialWrite = true
	} else {
		result.Image = img
	}

	uc.logger.Info("Property created",
		zap.String("property_id", property.ID),
		zap.String("owner_id", property.OwnerID),
		zap.Bool("partial_write", result.PartialWrite))
	uc.publish(ctx, event.PropertyCreated, property.ID, dto.NewPropertyResponse(result))

	return result, nil
}

func (uc *useCase) UpdateProperty(ctx context.Context, id string, fields entity.PropertyFields, image *dto.PropertyImageRequest) (*entity.PropertyWithImage, error) {
	if err := validateStatus(fields.Status); err != nil {
		return nil, err
	}

	property, err := uc.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	property.Replace(fields, uc.now())
	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, apperrors.Wrap(err, "failed to update property")
	}

	current, err := uc.imageRepo.FindByPropertyID(ctx, property.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load property image")
	}

	result := entity.JoinImage(property, current)
	if image != nil {
		img, err := uc.saveImage(ctx, property.ID, current, image)
		if err != nil {
			uc.logger.Error("Property updated but image write failed",
				zap.String("property_id", property.ID),
				zap.Error(err))
			result.Image = nil
			result.PartialWrite = true
		} else {
			result.Image = img
		}
	}

	uc.publish(ctx, event.PropertyUpdated, property.ID, dto.NewPropertyResponse(result))
	return result, nil
}

func (uc *useCase) DeleteProperty(ctx context.Context, id string) error {
	if _, err := uc.propertyRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := uc.propertyRepo.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, "failed to delete property")
	}

	removed, err := uc.imageRepo.DeleteByPropertyID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete images of removed property",
			zap.String("property_id", id),
			zap.Error(err))
	}

	uc.logger.Info("Property deleted", zap.String("property_id", id), zap.Int64("images_removed", removed))
	uc.publish(ctx, event.PropertyDeleted, id, nil)
	return nil
}

func (uc *useCase) SearchProperties(ctx context.Context, filter entity.PropertyFilter, page entity.PaginationParams) ([]*entity.PropertyWithImage, entity.PaginationMeta, error) {
	if fieldErrs := validateSearch(filter, page); len(fieldErrs) > 0 {
		return nil, entity.PaginationMeta{}, apperrors.NewValidationError(fieldErrs)
	}

	filter = filter.WithDefaults()
	page.Normalize()

	properties, total, err := uc.propertyRepo.Search(ctx, filter, page)
	if err != nil {
		return nil, entity.PaginationMeta{}, apperrors.Wrap(err, "failed to search properties")
	}

	items, err := uc.joinImages(ctx, properties)
	if err != nil {
		return nil, entity.PaginationMeta{}, err
	}

	return items, entity.NewPaginationMeta(page.Page, page.Limit, total), nil
}

// joinImages loads every image in one batch and pairs it with its property.
func (uc *useCase) joinImages(ctx context.Context, properties []*entity.Property) ([]*entity.PropertyWithImage, error) {
	ids := make([]string, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}

	images := map[string]*entity.PropertyImage{}
	if len(ids) > 0 {
		var err error
		images, err = uc.imageRepo.FindByPropertyIDs(ctx, ids)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to load property images")
		}
	}

	out := make([]*entity.PropertyWithImage, 0, len(properties))
	for _, p := range properties {
		out = append(out, entity.JoinImage(p, images[p.ID]))
	}
	return out, nil
}

func (uc *useCase) createImage(ctx context.Context, img *entity.PropertyImage) error {
	var err error
	for attempt := 1; attempt <= imageWriteAttempts; attempt++ {
		if err = uc.imageRepo.Create(ctx, img); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		uc.logger.Warn("Image write failed",
			zap.String("property_id", img.PropertyID),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}
	return err
}

// saveImage updates the image named by req, else the property's current
// image, else creates one. A nil Enable keeps the stored value.
func (uc *useCase) saveImage(ctx context.Context, propertyID string, current *entity.PropertyImage, req *dto.PropertyImageRequest) (*entity.PropertyImage, error) {
	imageID := req.IDPropertyImage
	if imageID == "" && current != nil {
		imageID = current.ID
	}

	if imageID == "" {
		img := entity.NewPropertyImage(propertyID, req.File, req.Enable)
		if err := uc.createImage(ctx, img); err != nil {
			return nil, err
		}
		return img, nil
	}

	enable := true
	if current != nil {
		enable = current.Enable
	}
	if req.Enable != nil {
		enable = *req.Enable
	}

	img := &entity.PropertyImage{
		ID:         imageID,
		PropertyID: propertyID,
		File:       req.File,
		Enable:     enable,
	}
	if err := uc.imageRepo.Update(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (uc *useCase) publish(ctx context.Context, eventType event.Type, aggregateID string, payload interface{}) {
	e := event.New(eventType, aggregateID, payload, uc.now())
	if err := uc.publisher.Publish(ctx, e); err != nil {
		uc.logger.Warn("Failed to publish event",
			zap.String("event_type", string(eventType)),
			zap.String("aggregate_id", aggregateID),
			zap.Error(err))
	}
}

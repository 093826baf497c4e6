package owner

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

// UseCase is the owner service contract.
type UseCase interface {
	// ListOwners returns every owner.
	ListOwners(ctx context.Context) ([]*entity.Owner, error)

	// GetOwnerByID returns NOT_FOUND when absent.
	GetOwnerByID(ctx context.Context, id string) (*entity.Owner, error)

	// GetOwnerByDNI matches the DNI exactly, without normalizing punctuation.
	GetOwnerByDNI(ctx context.Context, dni string) (*entity.Owner, error)

	// CreateOwner fails with CONFLICT when the DNI is taken.
	CreateOwner(ctx context.Context, fields entity.OwnerFields) (*entity.Owner, error)

	// UpdateOwner replaces every field of an existing owner.
	UpdateOwner(ctx context.Context, id string, fields entity.OwnerFields) error

	// DeleteOwner fails with CONFLICT while properties reference the owner.
	DeleteOwner(ctx context.Context, id string) error
}

type useCase struct {
	ownerRepo    repository.OwnerRepository
	propertyRepo repository.PropertyRepository
	publisher    event.Publisher
	logger       *zap.Logger
	now          func() time.Time
}

// NewUseCase creates the owner use case.
func NewUseCase(
	ownerRepo repository.OwnerRepository,
	propertyRepo repository.PropertyRepository,
	publisher event.Publisher,
	logger *zap.Logger,
) UseCase {
	return &useCase{
		ownerRepo:    ownerRepo,
		propertyRepo: propertyRepo,
		publisher:    publisher,
		logger:       logger,
		now:          entity.Now,
	}
}

func (uc *useCase) ListOwners(ctx context.Context) ([]*entity.Owner, error) {
	owners, err := uc.ownerRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list owners")
	}
	return owners, nil
}

func (uc *useCase) GetOwnerByID(ctx context.Context, id string) (*entity.Owner, error) {
	return uc.ownerRepo.FindByID(ctx, id)
}

func (uc *useCase) GetOwnerByDNI(ctx context.Context, dni string) (*entity.Owner, error) {
	return uc.ownerRepo.FindByDNI(ctx, dni)
}

func (uc *useCase) CreateOwner(ctx context.Context, fields entity.OwnerFields) (*entity.Owner, error) {
	if err := uc.ensureDNIFree(ctx, fields.DNI, ""); err != nil {
		return nil, err
	}

	owner := entity.NewOwner(fields, uc.now())
	if err := uc.ownerRepo.Create(ctx, owner); err != nil {
		return nil, apperrors.Wrap(err, "failed to create owner")
	}

	uc.logger.Info("Owner created", zap.String("owner_id", owner.ID), zap.String("dni", owner.DNI))
	uc.publish(ctx, event.OwnerCreated, owner.ID, dto.NewOwnerResponse(owner))

	return owner, nil
}

func (uc *useCase) UpdateOwner(ctx context.Context, id string, fields entity.OwnerFields) error {
	owner, err := uc.ownerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if fields.DNI != owner.DNI {
		if err := uc.ensureDNIFree(ctx, fields.DNI, owner.ID); err != nil {
			return err
		}
	}

	owner.Replace(fields, uc.now())
	if err := uc.ownerRepo.Update(ctx, owner); err != nil {
		return apperrors.Wrap(err, "failed to update owner")
	}

	uc.publish(ctx, event.OwnerUpdated, owner.ID, dto.NewOwnerResponse(owner))
	return nil
}

func (uc *useCase) DeleteOwner(ctx context.Context, id string) error {
	if _, err := uc.ownerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := uc.propertyRepo.CountByOwner(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to count owner properties")
	}
	if count > 0 {
		return apperrors.NewAppError(apperrors.ErrConflict, "el propietario tiene propiedades asociadas", nil).
			WithDetails(map[string]int64{"properties": count})
	}

	if err := uc.ownerRepo.Delete(ctx, id); err != nil {
		return apperrors.Wrap(err, "failed to delete owner")
	}

	uc.publish(ctx, event.OwnerDeleted, id, nil)
	return nil
}

// ensureDNIFree returns CONFLICT when another owner than selfID holds dni.
func (uc *useCase) ensureDNIFree(ctx context.Context, dni, selfID string) error {
	existing, err := uc.ownerRepo.FindByDNI(ctx, dni)
	switch {
	case apperrors.IsCode(err, apperrors.ErrNotFound):
		return nil
	case err != nil:
		return apperrors.Wrap(err, "failed to check dni")
	case existing.ID == selfID:
		return nil
	}

	return apperrors.NewAppError(apperrors.ErrConflict, "ya existe un propietario con el DNI "+dni, nil)
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

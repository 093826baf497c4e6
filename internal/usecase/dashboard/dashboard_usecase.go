package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/dto"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// UseCase computes the agent dashboard figures.
type UseCase interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type useCase struct {
	ownerRepo    repository.OwnerRepository
	propertyRepo repository.PropertyRepository
	printer      *message.Printer
	logger       *zap.Logger
}

// NewUseCase creates the dashboard use case. Amounts are formatted for Spanish readers.
func NewUseCase(ownerRepo repository.OwnerRepository, propertyRepo repository.PropertyRepository, logger *zap.Logger) UseCase {
	return &useCase{
		ownerRepo:    ownerRepo,
		propertyRepo: propertyRepo,
		printer:      message.NewPrinter(language.Spanish),
		logger:       logger,
	}
}

func (uc *useCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	byStatus, err := uc.propertyRepo.StatsByStatus(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to aggregate properties by status")
	}

	byType, err := uc.propertyRepo.StatsByType(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to aggregate properties by type")
	}

	owners, err := uc.ownerRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count owners")
	}

	resp := &dto.StatsResponse{
		TotalOwners:      owners,
		PropertiesByType: make([]dto.PropertyTypeCount, 0, len(byType)),
	}

	portfolio := decimal.Zero
	for _, s := range byStatus {
		resp.TotalProperties += s.Count
		portfolio = portfolio.Add(decimal.NewFromInt(s.TotalPrice))

		switch s.Status {
		case entity.PropertyStatusAvailable:
			resp.AvailableProperties += s.Count
		case entity.PropertyStatusReserved:
			resp.ReservedProperties += s.Count
		case entity.PropertyStatusSold:
			resp.SoldProperties += s.Count
		default:
			uc.logger.Warn("Unknown property status in store", zap.String("status", string(s.Status)))
		}
	}

	for _, t := range byType {
		resp.PropertiesByType = append(resp.PropertiesByType, dto.PropertyTypeCount{
			PropertyType: t.PropertyType,
			Count:        t.Count,
		})
	}

	average := decimal.Zero
	if resp.TotalProperties > 0 {
		average = portfolio.Div(decimal.NewFromInt(resp.TotalProperties)).Round(2)
	}

	resp.PortfolioValue = portfolio.String()
	resp.AveragePrice = average.StringFixed(2)
	resp.PortfolioValueFormatted = uc.printer.Sprintf("$ %d", portfolio.IntPart())

	return resp, nil
}

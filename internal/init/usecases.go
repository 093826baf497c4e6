package init

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	handler "github.com/Luuchoh/Propiedades-premium/internal/adapter/handler/http"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/event"
	"github.com/Luuchoh/Propiedades-premium/internal/domain/repository"
	"github.com/Luuchoh/Propiedades-premium/internal/usecase/dashboard"
	"github.com/Luuchoh/Propiedades-premium/internal/usecase/owner"
	"github.com/Luuchoh/Propiedades-premium/internal/usecase/property"
)

// UseCases holds every use case of the service.
type UseCases struct {
	Owner     owner.UseCase
	Property  property.UseCase
	Dashboard dashboard.UseCase
}

// NewUseCases wires the use cases over repos.
func NewUseCases(repos *repository.Repositories, publisher event.Publisher, logger *zap.Logger) *UseCases {
	return &UseCases{
		Owner:     owner.NewUseCase(repos.Owner, repos.Property, publisher, logger),
		Property:  property.NewUseCase(repos.Property, repos.PropertyImage, publisher, logger),
		Dashboard: dashboard.NewUseCase(repos.Owner, repos.Property, logger),
	}
}

// RegisterRoutes mounts every API handler on e.
func (u *UseCases) RegisterRoutes(logger *zap.Logger) func(e *echo.Echo) {
	return func(e *echo.Echo) {
		handler.NewOwnerHandler(u.Owner, logger).RegisterRoutes(e)
		handler.NewPropertyHandler(u.Property, logger).RegisterRoutes(e)
		handler.NewDashboardHandler(u.Dashboard).RegisterRoutes(e)
	}
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/dto"
	"github.com/Luuchoh/Propiedades-premium/internal/usecase/property"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// PropertyHandler serves the /api/Property routes.
type PropertyHandler struct {
	propertyUseCase property.UseCase
	logger          *zap.Logger
}

func NewPropertyHandler(propertyUseCase property.UseCase, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
		logger:          logger,
	}
}

// RegisterRoutes mounts the property routes on e.
func (h *PropertyHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/Property")
	g.GET("/GetAllProperties", h.GetAllProperties)
	g.GET("/SearchProperties", h.SearchProperties)
	g.POST("/GetOnePropertyByID", h.GetOnePropertyByID)
	g.POST("/CreateProperty", h.CreateProperty)
	g.PUT("/UpdateProperty", h.UpdateProperty)
	g.DELETE("/DeleteProperty", h.DeleteProperty)
}

func (h *PropertyHandler) GetAllProperties(c echo.Context) error {
	items, err := h.propertyUseCase.ListProperties(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewPropertyResponses(items))
}

func (h *PropertyHandler) GetOnePropertyByID(c echo.Context) error {
	var req dto.IDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.propertyUseCase.GetProperty(c.Request().Context(), req.MongoGeneralID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewPropertyResponse(p))
}

// CreateProperty answers 201 even when only the property was stored; the
// body then carries a null image and partialWrite.
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req dto.PropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.propertyUseCase.CreateProperty(c.Request().Context(), req.Fields(), req.Image)
	if err != nil {
		return err
	}

	h.logger.Info("Property created",
		zap.String("property_id", p.ID),
		zap.Bool("partial_write", p.PartialWrite))
	return c.JSON(http.StatusCreated, dto.NewPropertyResponse(p))
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	var req dto.UpdatePropertyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.propertyUseCase.UpdateProperty(c.Request().Context(), req.IDProperty, req.Fields(), req.Image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewPropertyResponse(p))
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	var req dto.IDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.propertyUseCase.DeleteProperty(c.Request().Context(), req.MongoGeneralID); err != nil {
		return err
	}

	h.logger.Info("Property deleted", zap.String("property_id", req.MongoGeneralID))
	return c.NoContent(http.StatusNoContent)
}

func (h *PropertyHandler) SearchProperties(c echo.Context) error {
	var req dto.SearchPropertiesRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.FromHTTPError(err)
	}

	filter, page, fieldErrs := req.Parse()
	if len(fieldErrs) > 0 {
		return apperrors.NewValidationError(fieldErrs)
	}

	items, meta, err := h.propertyUseCase.SearchProperties(c.Request().Context(), filter, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.PaginatedPropertiesResponse{
		Data:       dto.NewPropertyResponses(items),
		Pagination: meta,
	})
}

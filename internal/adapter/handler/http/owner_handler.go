package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/dto"
	"github.com/Luuchoh/Propiedades-premium/internal/usecase/owner"
)

// OwnerHandler serves the /api/Owner routes.
type OwnerHandler struct {
	ownerUseCase owner.UseCase
	logger       *zap.Logger
}

func NewOwnerHandler(ownerUseCase owner.UseCase, logger *zap.Logger) *OwnerHandler {
	return &OwnerHandler{
		ownerUseCase: ownerUseCase,
		logger:       logger,
	}
}

// RegisterRoutes mounts the owner routes on e.
func (h *OwnerHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/Owner")
	g.GET("/GetAllOwners", h.GetAllOwners)
	g.POST("/GetOneOwnerById", h.GetOneOwnerByID)
	g.POST("/GetOneOwnerByDNI", h.GetOneOwnerByDNI)
	g.POST("/CreateOwner", h.CreateOwner)
	g.PUT("/UpdateOwner", h.UpdateOwner)
	g.DELETE("/DeleteOwner", h.DeleteOwner)
}

func (h *OwnerHandler) GetAllOwners(c echo.Context) error {
	owners, err := h.ownerUseCase.ListOwners(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewOwnerResponses(owners))
}

func (h *OwnerHandler) GetOneOwnerByID(c echo.Context) error {
	var req dto.IDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o, err := h.ownerUseCase.GetOwnerByID(c.Request().Context(), req.MongoGeneralID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewOwnerResponse(o))
}

func (h *OwnerHandler) GetOneOwnerByDNI(c echo.Context) error {
	var req dto.DNIRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o, err := h.ownerUseCase.GetOwnerByDNI(c.Request().Context(), req.DNI)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewOwnerResponse(o))
}

func (h *OwnerHandler) CreateOwner(c echo.Context) error {
	var req dto.OwnerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	o, err := h.ownerUseCase.CreateOwner(c.Request().Context(), req.Fields())
	if err != nil {
		return err
	}

	h.logger.Info("Owner created", zap.String("owner_id", o.ID))
	return c.JSON(http.StatusCreated, dto.NewOwnerResponse(o))
}

func (h *OwnerHandler) UpdateOwner(c echo.Context) error {
	var req dto.UpdateOwnerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.ownerUseCase.UpdateOwner(c.Request().Context(), req.IDOwner, req.Fields()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OwnerHandler) DeleteOwner(c echo.Context) error {
	var req dto.IDRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.ownerUseCase.DeleteOwner(c.Request().Context(), req.MongoGeneralID); err != nil {
		return err
	}

	h.logger.Info("Owner deleted", zap.String("owner_id", req.MongoGeneralID))
	return c.NoContent(http.StatusNoContent)
}

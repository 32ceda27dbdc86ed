package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexus-inventory/inventory-system/internal/api/metrics"
	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

type AreaHandler struct {
	service ports.AreaService
}

func NewAreaHandler(service ports.AreaService) *AreaHandler {
	return &AreaHandler{service: service}
}

// List returns every area.
//
// @Summary      List areas
// @Tags         areas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  areaResponse
// @Router       /v1/areas [get]
func (h *AreaHandler) List(c echo.Context) error {
	areas, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAreaListResponse(areas))
}

// Create adds an area. Admin only.
//
// @Summary      Create an area
// @Tags         areas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveAreaRequest  true  "Area details"
// @Success      201   {object}  areaResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/areas [post]
func (h *AreaHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req saveAreaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	area, err := h.service.Create(c.Request().Context(), ports.SaveAreaInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}, actor)
	if err != nil {
		return err
	}

	metrics.RecordsWrittenTotal.WithLabelValues("areas").Inc()
	return c.JSON(http.StatusCreated, toAreaResponse(area))
}

// Update rewrites an existing area. Admin only.
//
// @Summary      Update an area
// @Tags         areas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Area id"
// @Param        body  body      saveAreaRequest  true  "Area details"
// @Success      200   {object}  areaResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/areas/{id} [put]
func (h *AreaHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req saveAreaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	area, err := h.service.Update(c.Request().Context(), ports.SaveAreaInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}, actor)
	if err != nil {
		return err
	}

	metrics.RecordsWrittenTotal.WithLabelValues("areas").Inc()
	return c.JSON(http.StatusOK, toAreaResponse(area))
}

// Delete removes an area. Admin only. Items pointing at the deleted area
// keep their area_id and list as "N/A" in exports.
//
// @Summary      Delete an area
// @Tags         areas
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Area id"
// @Success      204  "deleted"
// @Failure      403  {object}  errorResponse
// @Router       /v1/areas/{id} [delete]
func (h *AreaHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}

	metrics.RecordsDeletedTotal.WithLabelValues("areas").Inc()
	return c.NoContent(http.StatusNoContent)
}

type areaResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func toAreaResponse(a *domain.Area) areaResponse {
	return areaResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Image:       a.Image,
	}
}

func toAreaListResponse(areas []domain.Area) []areaResponse {
	out := make([]areaResponse, len(areas))
	for i := range areas {
		out[i] = toAreaResponse(&areas[i])
	}
	return out
}

type saveAreaRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"`
}

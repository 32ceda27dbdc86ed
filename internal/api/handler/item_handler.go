package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexus-inventory/inventory-system/internal/api/metrics"
	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

// ItemHandler serves the inventory listing and its admin-gated mutations,
// plus the two export formats.
type ItemHandler struct {
	service ports.ItemService
	export  ports.ExportService
}

func NewItemHandler(service ports.ItemService, export ports.ExportService) *ItemHandler {
	return &ItemHandler{service: service, export: export}
}

func itemFilterFromQuery(c echo.Context) ports.ItemFilter {
	return ports.ItemFilter{
		Search: c.QueryParam("search"),
		Status: domain.ItemStatus(c.QueryParam("status")),
		AreaID: c.QueryParam("area_id"),
	}
}

// List returns the filtered inventory.
//
// @Summary      List items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        search   query  string  false  "Substring over name, code and category"
// @Param        status   query  string  false  "Exact status"  Enums(SERVICE, MAINTENANCE, OUT_OF_SERVICE)
// @Param        area_id  query  string  false  "Exact area id"
// @Success      200  {array}  itemResponse
// @Router       /v1/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), itemFilterFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemListResponse(items))
}

// Create adds an item. Admin only.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveItemRequest  true  "Item details"
// @Success      201   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	return h.save(c, "")
}

// Update rewrites an existing item. Admin only.
//
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Item id"
// @Param        body  body      saveItemRequest  true  "Item details"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	return h.save(c, c.Param("id"))
}

func (h *ItemHandler) save(c echo.Context, id string) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req saveItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Save(c.Request().Context(), ports.SaveItemInput{
		ID:          id,
		Code:        req.Code,
		Name:        req.Name,
		Category:    req.Category,
		Status:      domain.ItemStatus(req.Status),
		Description: req.Description,
		AreaID:      req.AreaID,
		Image:       req.Image,
	}, actor)
	if err != nil {
		return err
	}

	metrics.RecordsWrittenTotal.WithLabelValues("items").Inc()
	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	return c.JSON(status, toItemResponse(item))
}

// Delete removes an item. Admin only.
//
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      204  "deleted"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}

	metrics.RecordsDeletedTotal.WithLabelValues("items").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ExportCSV downloads the filtered inventory as CSV.
//
// @Summary      Export items as CSV
// @Tags         items
// @Produce      text/csv
// @Security     BearerAuth
// @Param        search   query  string  false  "Substring over name, code and category"
// @Param        status   query  string  false  "Exact status"
// @Param        area_id  query  string  false  "Exact area id"
// @Success      200  {string}  string  "CSV payload"
// @Router       /v1/items/export/csv [get]
func (h *ItemHandler) ExportCSV(c echo.Context) error {
	data, err := h.export.CSV(c.Request().Context(), itemFilterFromQuery(c))
	if err != nil {
		return err
	}

	metrics.ExportsTotal.WithLabelValues("csv").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="inventory.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

// ExportPDF downloads the filtered inventory as a PDF report.
//
// @Summary      Export items as PDF
// @Tags         items
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        search   query  string  false  "Substring over name, code and category"
// @Param        status   query  string  false  "Exact status"
// @Param        area_id  query  string  false  "Exact area id"
// @Success      200  {string}  string  "PDF payload"
// @Router       /v1/items/export/pdf [get]
func (h *ItemHandler) ExportPDF(c echo.Context) error {
	data, err := h.export.PDF(c.Request().Context(), itemFilterFromQuery(c))
	if err != nil {
		return err
	}

	metrics.ExportsTotal.WithLabelValues("pdf").Inc()
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="inventory.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", data)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexus-inventory/inventory-system/internal/core/domain"
	"github.com/nexus-inventory/inventory-system/internal/core/ports"
)

type LogHandler struct {
	service ports.LogService
}

func NewLogHandler(service ports.LogService) *LogHandler {
	return &LogHandler{service: service}
}

// Recent returns the newest audit entries, optionally narrowed by a text
// search or an action kind. Any authenticated user may read the log.
//
// @Summary      Recent audit log
// @Tags         logs
// @Produce      json
// @Security     BearerAuth
// @Param        search  query  string  false  "Substring over username and details"
// @Param        action  query  string  false  "Exact action"  Enums(CREATE, UPDATE, DELETE, LOGIN)
// @Success      200  {array}   logResponse
// @Router       /v1/logs [get]
func (h *LogHandler) Recent(c echo.Context) error {
	logs, err := h.service.Recent(c.Request().Context(), ports.LogFilter{
		Search: c.QueryParam("search"),
		Action: domain.LogAction(c.QueryParam("action")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLogListResponse(logs))
}

type logResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

func toLogListResponse(logs []domain.Log) []logResponse {
	out := make([]logResponse, len(logs))
	for i, l := range logs {
		out[i] = logResponse{
			ID:        l.ID,
			UserID:    l.UserID,
			Username:  l.Username,
			Action:    string(l.Action),
			Details:   l.Details,
			Timestamp: l.Timestamp,
		}
	}
	return out
}

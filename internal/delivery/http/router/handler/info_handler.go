package handler

import (
	"net/http"

	"lounas/config"
	"lounas/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// InfoHandler serves static restaurant information from configuration.
type InfoHandler struct {
	cfg *config.Config
}

// NewInfoHandler is the constructor for InfoHandler, injected by Fx.
func NewInfoHandler(cfg *config.Config) *InfoHandler {
	return &InfoHandler{cfg: cfg}
}

type transportLocationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TransportInfo returns how to reach the restaurant. The content is operator
// configuration, not database state.
func (h *InfoHandler) TransportInfo(c echo.Context) error {
	locations := []transportLocationResponse{}
	if h.cfg != nil && h.cfg.Transport != nil {
		for _, loc := range h.cfg.Transport.Locations {
			locations = append(locations, transportLocationResponse{
				Title:       loc.Title,
				Description: loc.Description,
			})
		}
	}

	return response.Success(c, http.StatusOK, map[string]any{"locations": locations}, "")
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

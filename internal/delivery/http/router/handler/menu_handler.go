package handler

import (
	"log/slog"
	"net/http"

	"lounas/internal/delivery/http/middleware"
	"lounas/internal/delivery/http/response"
	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// MenuHandler holds dependencies for menu calendar handlers.
type MenuHandler struct {
	uc     usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.MenuUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{uc: uc, logger: logger}
}

type menuDayResponse struct {
	ID      string        `json:"id,omitempty"`
	Date    string        `json:"date"`
	Weekday string        `json:"weekday"`
	Dishes  []entity.Dish `json:"dishes"`
}

type weekResponse struct {
	WeekStart string            `json:"weekStart"`
	WeekEnd   string            `json:"weekEnd"`
	Days      []menuDayResponse `json:"days"`
}

func toMenuDayResponse(day *entity.MenuDay) menuDayResponse {
	id := ""
	if day.ID != uuid.Nil {
		id = day.ID.String()
	}

	return menuDayResponse{
		ID:      id,
		Date:    day.Date.Format(dateLayout),
		Weekday: day.Weekday,
		Dishes:  day.Dishes,
	}
}

// GetWeek returns the Monday-to-Sunday menu projection.
func (h *MenuHandler) GetWeek(c echo.Context) error {
	week, err := h.uc.GetWeek(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	days := make([]menuDayResponse, 0, len(week.Days))
	for _, day := range week.Days {
		days = append(days, toMenuDayResponse(day))
	}

	return response.Success(c, http.StatusOK, weekResponse{
		WeekStart: week.WeekStart.Format(dateLayout),
		WeekEnd:   week.WeekEnd.Format(dateLayout),
		Days:      days,
	}, "")
}

// GetToday returns the menu for the current date.
func (h *MenuHandler) GetToday(c echo.Context) error {
	day, err := h.uc.GetToday(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMenuDayResponse(day), "")
}

// GetDay returns the menu for one calendar date given as a path parameter.
func (h *MenuHandler) GetDay(c echo.Context) error {
	day, err := h.uc.GetDay(c.Request().Context(), c.Param("date"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMenuDayResponse(day), "")
}

// UpsertDay replaces the whole menu document for one date.
func (h *MenuHandler) UpsertDay(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.UpsertDayInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	day, err := h.uc.UpsertDay(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": day.ID.String()}, "Menu stored")
}

// DeleteDay removes a stored menu day by id.
func (h *MenuHandler) DeleteDay(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	if err := h.uc.DeleteDay(c.Request().Context(), identity, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"}, "Menu removed")
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lounas/internal/delivery/http/middleware"
	"lounas/internal/delivery/http/response"
	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnnouncementHandler holds dependencies for announcement handlers.
type AnnouncementHandler struct {
	uc     usecase.AnnouncementUsecase
	logger *slog.Logger
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler, injected by Fx.
func NewAnnouncementHandler(uc usecase.AnnouncementUsecase, logger *slog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{uc: uc, logger: logger}
}

type announcementResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func toAnnouncementResponses(announcements []*entity.Announcement) []announcementResponse {
	resp := make([]announcementResponse, 0, len(announcements))
	for _, a := range announcements {
		resp = append(resp, announcementResponse{
			ID:        a.ID.String(),
			Title:     a.Title,
			Content:   a.Content,
			Active:    a.Active,
			CreatedAt: a.CreatedAt,
		})
	}

	return resp
}

// ListActive returns the announcements shown on the front page.
func (h *AnnouncementHandler) ListActive(c echo.Context) error {
	announcements, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAnnouncementResponses(announcements), "")
}

// ListAll returns every announcement for the admin.
func (h *AnnouncementHandler) ListAll(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	announcements, err := h.uc.ListAll(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAnnouncementResponses(announcements), "")
}

// Create publishes a new announcement.
func (h *AnnouncementHandler) Create(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.CreateAnnouncementInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid announcement input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	announcement, err := h.uc.Create(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": announcement.ID.String()}, "Announcement created")
}

// Toggle flips one announcement's active flag.
func (h *AnnouncementHandler) Toggle(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	active, err := h.uc.Toggle(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"active": active}, "Announcement updated")
}

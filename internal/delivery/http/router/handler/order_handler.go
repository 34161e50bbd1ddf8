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

// OrderHandler holds dependencies for order ledger handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type orderResponse struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id,omitempty"`
	Items      []entity.OrderItem `json:"items"`
	Status     string             `json:"status"`
	PickupTime *time.Time         `json:"pickup_time,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// toOrderResponse maps an order for its owner; the user id is implied.
func toOrderResponse(order *entity.Order) orderResponse {
	return orderResponse{
		ID:         order.ID.String(),
		Items:      order.Items,
		Status:     order.Status.String(),
		PickupTime: order.PickupTime,
		CreatedAt:  order.CreatedAt,
	}
}

// toAdminOrderResponse additionally exposes who placed the order.
func toAdminOrderResponse(order *entity.Order) orderResponse {
	resp := toOrderResponse(order)
	resp.UserID = order.UserID.String()

	return resp
}

// Create places a new pickup order for the authenticated caller.
func (h *OrderHandler) Create(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.Create(c.Request().Context(), identity, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": order.ID.String()}, "Order placed")
}

// ListMine returns the caller's own orders, newest first.
func (h *OrderHandler) ListMine(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	orders, err := h.uc.ListOwn(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, resp, "")
}

// ListAll returns the full order ledger for the admin.
func (h *OrderHandler) ListAll(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	orders, err := h.uc.ListAll(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toAdminOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, resp, "")
}

// UpdateStatus moves one order to a new status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a valid UUID")
	}

	var input updateStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), identity, id, input.Status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Order updated")
}

package impl

import (
	"context"
	"fmt"
	"log/slog"

	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/domain/repository"
	"lounas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// Create places a new order for the calling customer. Items are copied into
// the ledger as snapshots and the order starts out pending.
func (srv *orderService) Create(ctx context.Context, identity usecase.Identity, input usecase.CreateOrderInput) (*entity.Order, error) {
	items, err := buildOrderItems(input.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:     identity.UserID,
		Items:      items,
		Status:     entity.StatusPending,
		PickupTime: input.PickupTime,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireSession(ctx, repoFactory, identity); err != nil {
			return err
		}

		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("order placed",
		slog.String("orderID", order.ID.String()),
		slog.String("userID", order.UserID.String()),
		slog.Int("items", len(order.Items)),
	)

	return order, nil
}

// ListOwn returns the caller's own orders, newest first. The ledger is never
// filtered by status; customers see their full history.
func (srv *orderService) ListOwn(ctx context.Context, identity usecase.Identity) ([]*entity.Order, error) {
	return srv.orderRepo.FindByUserID(ctx, identity.UserID)
}

// ListAll returns the full ledger, newest first.
func (srv *orderService) ListAll(ctx context.Context, identity usecase.Identity) ([]*entity.Order, error) {
	if !identity.IsAdmin() {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("admin role required")
	}

	return srv.orderRepo.FindAll(ctx)
}

// UpdateStatus moves an order to the given status. Any recognized status is
// reachable from any other, so the admin can always correct a mistake. The
// admin check shares the transaction with the update.
func (srv *orderService) UpdateStatus(ctx context.Context, identity usecase.Identity, id uuid.UUID, status string) error {
	next := entity.OrderStatus(status)
	if !next.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown order status %q", status))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory, identity); err != nil {
			return err
		}

		return repoFactory.OrderRepo().UpdateStatus(ctx, id, next)
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("order does not exist")
		}

		return err
	}

	srv.logger.Info("order status updated",
		slog.String("orderID", id.String()),
		slog.String("status", next.String()),
	)

	return nil
}

// buildOrderItems validates customer input and converts it into ledger
// snapshots. A zero quantity means the client omitted it and defaults to one.
func buildOrderItems(inputs []usecase.OrderItemInput) ([]entity.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("an order needs at least one item")
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	for i, in := range inputs {
		if in.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("item %d is missing a name", i))
		}
		if in.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("item %q has a negative price", in.Name))
		}

		quantity := in.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("item %q has a negative quantity", in.Name))
		}

		items = append(items, entity.OrderItem{
			Name:     in.Name,
			Price:    in.Price,
			Quantity: quantity,
		})
	}

	return items, nil
}

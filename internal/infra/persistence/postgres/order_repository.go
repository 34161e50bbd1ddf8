package postgres

import (
	"context"
	"encoding/json"

	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/domain/repository"
	"lounas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order. Items are stored as a JSONB snapshot so the
// insert is a single atomic statement.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		// A dangling session can outlive its user row. The insert then trips
		// the user foreign key, which callers treat as a dead credential.
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUnauthorized.WrapMessage("ordering user no longer exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByUserID retrieves all orders owned by one user, newest first.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user id")
	}

	return toOrderDomainList(orderMs)
}

// FindAll retrieves the full ledger, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel

	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all orders")
	}

	return toOrderDomainList(orderMs)
}

// UpdateStatus sets the order's status unconditionally. The RowsAffected
// check is what distinguishes a missing order from a successful update.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomainList(orderMs []*model.OrderModel) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func toOrderDomain(orderM *model.OrderModel) (*entity.Order, error) {
	var items []entity.OrderItem
	if err := json.Unmarshal(orderM.Items, &items); err != nil {
		return nil, errors.Wrap(err, "failed to decode order items document")
	}

	return &entity.Order{
		ID:         orderM.ID,
		UserID:     orderM.UserID,
		Items:      items,
		Status:     entity.OrderStatus(orderM.Status),
		PickupTime: orderM.PickupTime,
		CreatedAt:  orderM.CreatedAt,
	}, nil
}

func fromOrderDomain(order *entity.Order) (*model.OrderModel, error) {
	raw, err := json.Marshal(order.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order items document")
	}

	return &model.OrderModel{
		ID:         order.ID,
		UserID:     order.UserID,
		Items:      raw,
		Status:     order.Status.String(),
		PickupTime: order.PickupTime,
		CreatedAt:  order.CreatedAt,
	}, nil
}

package impl

import (
	"context"
	"testing"

	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/domain/repository"
	mockRepo "lounas/internal/mocks/repository"
	"lounas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: &mockRepo.StubTransactionManager{Factory: factory},
		OrderRepo: orderRepo,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     service,
		factory:     factory,
		orderRepo:   orderRepo,
		sessionRepo: sessionRepo,
	}
}

func customerIdentity() usecase.Identity {
	return usecase.Identity{
		SessionID: uuid.New(),
		UserID:    uuid.New(),
		Role:      entity.RoleCustomer,
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.factory.On("OrderRepo").Return(txOrderRepo)

	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(liveSessionFor(identity), nil)

	orderID := uuid.New()
	txOrderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			order := args.Get(1).(*entity.Order)
			assert.Equal(t, identity.UserID, order.UserID)
			assert.Equal(t, entity.StatusPending, order.Status)
			require.Len(t, order.Items, 2)
			// Omitted quantity defaults to one.
			assert.Equal(t, 1, order.Items[0].Quantity)
			assert.Equal(t, 3, order.Items[1].Quantity)
			order.ID = orderID
		}).
		Return(nil)

	order, err := fx.service.Create(ctx, identity, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{Name: "Chicken Pasta", Price: 10.5},
			{Name: "Veggie Soup", Price: 9.0, Quantity: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_Create_RejectsEmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Create(context.Background(), customerIdentity(), usecase.CreateOrderInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.factory.AssertNotCalled(t, "OrderRepo")
}

func TestOrderService_Create_RevokedSessionBlocksWrite(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(nil, repository.ErrSessionNotFound)

	_, err := fx.service.Create(ctx, identity, usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{Name: "Chicken Pasta", Price: 10.5}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	fx.factory.AssertNotCalled(t, "OrderRepo")
}

func TestOrderService_ListOwn_ScopesToCaller(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	own := []*entity.Order{{ID: uuid.New(), UserID: identity.UserID}}
	fx.orderRepo.On("FindByUserID", ctx, identity.UserID).Return(own, nil)

	orders, err := fx.service.ListOwn(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, own, orders)
}

func TestOrderService_ListAll_RequiresAdmin(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.ListAll(context.Background(), customerIdentity())

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	fx.orderRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestOrderService_ListAll_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	all := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}
	fx.orderRepo.On("FindAll", ctx).Return(all, nil)

	orders, err := fx.service.ListAll(ctx, adminIdentity())

	require.NoError(t, err)
	assert.Equal(t, all, orders)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	identity := adminIdentity()
	id := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.factory.On("OrderRepo").Return(txOrderRepo)

	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(liveSessionFor(identity), nil)
	txOrderRepo.On("UpdateStatus", ctx, id, entity.StatusReady).Return(nil)

	require.NoError(t, fx.service.UpdateStatus(ctx, identity, id, "ready"))
}

func TestOrderService_UpdateStatus_AllowsAnyDirection(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	identity := adminIdentity()
	id := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.factory.On("OrderRepo").Return(txOrderRepo)

	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(liveSessionFor(identity), nil)

	// A completed order can be reopened; there is no transition graph.
	txOrderRepo.On("UpdateStatus", ctx, id, entity.StatusPending).Return(nil)

	require.NoError(t, fx.service.UpdateStatus(ctx, identity, id, "pending"))
}

func TestOrderService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.UpdateStatus(context.Background(), adminIdentity(), uuid.New(), "teleported")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.factory.AssertNotCalled(t, "OrderRepo")
}

func TestOrderService_UpdateStatus_MissingOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	identity := adminIdentity()
	id := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.factory.On("OrderRepo").Return(txOrderRepo)

	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(liveSessionFor(identity), nil)
	txOrderRepo.On("UpdateStatus", ctx, id, entity.StatusConfirmed).
		Return(repository.ErrOrderNotFound)

	err := fx.service.UpdateStatus(ctx, identity, id, "confirmed")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_UpdateStatus_CustomerRejected(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(liveSessionFor(identity), nil)

	err := fx.service.UpdateStatus(ctx, identity, uuid.New(), "ready")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	fx.factory.AssertNotCalled(t, "OrderRepo")
}

// Package usecase provides hand-written test doubles for the usecase
// interfaces, used by the HTTP handler tests.
package usecase

import (
	"context"

	"lounas/internal/domain/entity"
	"lounas/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock bound to the test's lifecycle.
func NewMockAuthUsecase(t mockTestingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	var output *usecase.AuthOutput
	if v := args.Get(0); v != nil {
		output = v.(*usecase.AuthOutput)
	}

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	var output *usecase.AuthOutput
	if v := args.Get(0); v != nil {
		output = v.(*usecase.AuthOutput)
	}

	return output, args.Error(1)
}

func (m *MockAuthUsecase) AdminLogin(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)

	var output *usecase.AuthOutput
	if v := args.Get(0); v != nil {
		output = v.(*usecase.AuthOutput)
	}

	return output, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAuthUsecase) Resolve(ctx context.Context, token string) (*usecase.Identity, error) {
	args := m.Called(ctx, token)

	var identity *usecase.Identity
	if v := args.Get(0); v != nil {
		identity = v.(*usecase.Identity)
	}

	return identity, args.Error(1)
}

func (m *MockAuthUsecase) BootstrapAdmin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockMenuUsecase is a mock implementation of usecase.MenuUsecase.
type MockMenuUsecase struct {
	mock.Mock
}

// NewMockMenuUsecase creates a mock bound to the test's lifecycle.
func NewMockMenuUsecase(t mockTestingT) *MockMenuUsecase {
	m := &MockMenuUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMenuUsecase) GetDay(ctx context.Context, date string) (*entity.MenuDay, error) {
	args := m.Called(ctx, date)

	var day *entity.MenuDay
	if v := args.Get(0); v != nil {
		day = v.(*entity.MenuDay)
	}

	return day, args.Error(1)
}

func (m *MockMenuUsecase) GetToday(ctx context.Context) (*entity.MenuDay, error) {
	args := m.Called(ctx)

	var day *entity.MenuDay
	if v := args.Get(0); v != nil {
		day = v.(*entity.MenuDay)
	}

	return day, args.Error(1)
}

func (m *MockMenuUsecase) GetWeek(ctx context.Context) (*usecase.WeekOutput, error) {
	args := m.Called(ctx)

	var week *usecase.WeekOutput
	if v := args.Get(0); v != nil {
		week = v.(*usecase.WeekOutput)
	}

	return week, args.Error(1)
}

func (m *MockMenuUsecase) UpsertDay(ctx context.Context, identity usecase.Identity, input usecase.UpsertDayInput) (*entity.MenuDay, error) {
	args := m.Called(ctx, identity, input)

	var day *entity.MenuDay
	if v := args.Get(0); v != nil {
		day = v.(*entity.MenuDay)
	}

	return day, args.Error(1)
}

func (m *MockMenuUsecase) DeleteDay(ctx context.Context, identity usecase.Identity, id uuid.UUID) error {
	return m.Called(ctx, identity, id).Error(0)
}

// MockOrderUsecase is a mock implementation of usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

// NewMockOrderUsecase creates a mock bound to the test's lifecycle.
func NewMockOrderUsecase(t mockTestingT) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderUsecase) Create(ctx context.Context, identity usecase.Identity, input usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, identity, input)

	var order *entity.Order
	if v := args.Get(0); v != nil {
		order = v.(*entity.Order)
	}

	return order, args.Error(1)
}

func (m *MockOrderUsecase) ListOwn(ctx context.Context, identity usecase.Identity) ([]*entity.Order, error) {
	args := m.Called(ctx, identity)

	var orders []*entity.Order
	if v := args.Get(0); v != nil {
		orders = v.([]*entity.Order)
	}

	return orders, args.Error(1)
}

func (m *MockOrderUsecase) ListAll(ctx context.Context, identity usecase.Identity) ([]*entity.Order, error) {
	args := m.Called(ctx, identity)

	var orders []*entity.Order
	if v := args.Get(0); v != nil {
		orders = v.([]*entity.Order)
	}

	return orders, args.Error(1)
}

func (m *MockOrderUsecase) UpdateStatus(ctx context.Context, identity usecase.Identity, id uuid.UUID, status string) error {
	return m.Called(ctx, identity, id, status).Error(0)
}

// MockAnnouncementUsecase is a mock implementation of usecase.AnnouncementUsecase.
type MockAnnouncementUsecase struct {
	mock.Mock
}

// NewMockAnnouncementUsecase creates a mock bound to the test's lifecycle.
func NewMockAnnouncementUsecase(t mockTestingT) *MockAnnouncementUsecase {
	m := &MockAnnouncementUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnnouncementUsecase) ListActive(ctx context.Context) ([]*entity.Announcement, error) {
	args := m.Called(ctx)

	var announcements []*entity.Announcement
	if v := args.Get(0); v != nil {
		announcements = v.([]*entity.Announcement)
	}

	return announcements, args.Error(1)
}

func (m *MockAnnouncementUsecase) ListAll(ctx context.Context, identity usecase.Identity) ([]*entity.Announcement, error) {
	args := m.Called(ctx, identity)

	var announcements []*entity.Announcement
	if v := args.Get(0); v != nil {
		announcements = v.([]*entity.Announcement)
	}

	return announcements, args.Error(1)
}

func (m *MockAnnouncementUsecase) Create(ctx context.Context, identity usecase.Identity, input usecase.CreateAnnouncementInput) (*entity.Announcement, error) {
	args := m.Called(ctx, identity, input)

	var announcement *entity.Announcement
	if v := args.Get(0); v != nil {
		announcement = v.(*entity.Announcement)
	}

	return announcement, args.Error(1)
}

func (m *MockAnnouncementUsecase) Toggle(ctx context.Context, identity usecase.Identity, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, identity, id)

	return args.Bool(0), args.Error(1)
}

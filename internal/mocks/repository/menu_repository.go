package repository

import (
	"context"
	"time"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMenuRepository is a mock implementation of repository.MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

// NewMockMenuRepository creates a mock bound to the test's lifecycle.
func NewMockMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMenuRepository {
	m := &MockMenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMenuRepository) FindByDate(ctx context.Context, date time.Time) (*entity.MenuDay, error) {
	args := m.Called(ctx, date)

	var day *entity.MenuDay
	if v := args.Get(0); v != nil {
		day = v.(*entity.MenuDay)
	}

	return day, args.Error(1)
}

func (m *MockMenuRepository) FindRange(ctx context.Context, from, to time.Time) ([]*entity.MenuDay, error) {
	args := m.Called(ctx, from, to)

	var days []*entity.MenuDay
	if v := args.Get(0); v != nil {
		days = v.([]*entity.MenuDay)
	}

	return days, args.Error(1)
}

func (m *MockMenuRepository) Upsert(ctx context.Context, day *entity.MenuDay) error {
	args := m.Called(ctx, day)

	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

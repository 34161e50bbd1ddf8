package repository

import (
	"context"

	"lounas/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock bound to the test's lifecycle.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) SessionRepo() repository.SessionRepository {
	return m.Called().Get(0).(repository.SessionRepository)
}

func (m *MockRepositoryFactory) MenuRepo() repository.MenuRepository {
	return m.Called().Get(0).(repository.MenuRepository)
}

func (m *MockRepositoryFactory) OrderRepo() repository.OrderRepository {
	return m.Called().Get(0).(repository.OrderRepository)
}

func (m *MockRepositoryFactory) AnnouncementRepo() repository.AnnouncementRepository {
	return m.Called().Get(0).(repository.AnnouncementRepository)
}

// StubTransactionManager runs every callback against one fixed factory with
// no real transaction underneath. The callback's error passes through
// untouched, which is exactly the contract services rely on.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (s *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.Factory)
}

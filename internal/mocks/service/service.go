// Package service provides hand-written test doubles for the domain service
// interfaces.
package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock bound to the test's lifecycle.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// MockSessionTokenSource is a mock implementation of service.SessionTokenSource.
type MockSessionTokenSource struct {
	mock.Mock
}

// NewMockSessionTokenSource creates a mock bound to the test's lifecycle.
func NewMockSessionTokenSource(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionTokenSource {
	m := &MockSessionTokenSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionTokenSource) Generate() (string, string, error) {
	args := m.Called()

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockSessionTokenSource) Hash(token string) string {
	return m.Called(token).String(0)
}

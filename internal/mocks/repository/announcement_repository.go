package repository

import (
	"context"

	"lounas/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAnnouncementRepository is a mock implementation of repository.AnnouncementRepository.
type MockAnnouncementRepository struct {
	mock.Mock
}

// NewMockAnnouncementRepository creates a mock bound to the test's lifecycle.
func NewMockAnnouncementRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAnnouncementRepository {
	m := &MockAnnouncementRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	args := m.Called(ctx, announcement)

	return args.Error(0)
}

func (m *MockAnnouncementRepository) FindActive(ctx context.Context) ([]*entity.Announcement, error) {
	args := m.Called(ctx)

	var announcements []*entity.Announcement
	if v := args.Get(0); v != nil {
		announcements = v.([]*entity.Announcement)
	}

	return announcements, args.Error(1)
}

func (m *MockAnnouncementRepository) FindAll(ctx context.Context) ([]*entity.Announcement, error) {
	args := m.Called(ctx)

	var announcements []*entity.Announcement
	if v := args.Get(0); v != nil {
		announcements = v.([]*entity.Announcement)
	}

	return announcements, args.Error(1)
}

func (m *MockAnnouncementRepository) Toggle(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

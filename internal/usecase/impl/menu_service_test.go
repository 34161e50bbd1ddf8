package impl

import (
	"context"
	"testing"
	"time"

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

type menuServiceFixtures struct {
	service     usecase.MenuUsecase
	factory     *mockRepo.MockRepositoryFactory
	menuRepo    *mockRepo.MockMenuRepository
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestMenuService(t *testing.T) menuServiceFixtures {
	factory := mockRepo.NewMockRepositoryFactory(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	service := NewMenuService(MenuServiceParams{
		TxManager: &mockRepo.StubTransactionManager{Factory: factory},
		MenuRepo:  menuRepo,
		Logger:    newDiscardLogger(),
	})

	return menuServiceFixtures{
		service:     service,
		factory:     factory,
		menuRepo:    menuRepo,
		sessionRepo: sessionRepo,
	}
}

func adminIdentity() usecase.Identity {
	return usecase.Identity{
		SessionID: uuid.New(),
		UserID:    uuid.New(),
		Role:      entity.RoleAdmin,
	}
}

func liveSessionFor(identity usecase.Identity) *entity.Session {
	return &entity.Session{
		ID:        identity.SessionID,
		UserID:    identity.UserID,
		Role:      identity.Role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestMenuService_GetDay_ReturnsStoredMenu(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	stored := &entity.MenuDay{
		ID:      uuid.New(),
		Date:    date,
		Weekday: "Monday",
		Dishes:  []entity.Dish{{Name: "Veggie Soup", Price: 9.0}},
	}

	fx.menuRepo.On("FindByDate", ctx, date).Return(stored, nil)

	day, err := fx.service.GetDay(ctx, "2026-03-02")

	require.NoError(t, err)
	assert.Equal(t, stored, day)
}

func TestMenuService_GetDay_AbsentDateIsEmptyDay(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	fx.menuRepo.On("FindByDate", ctx, date).Return(nil, repository.ErrMenuDayNotFound)

	day, err := fx.service.GetDay(ctx, "2026-03-03")

	require.NoError(t, err)
	assert.Equal(t, date, day.Date)
	assert.Equal(t, "Tuesday", day.Weekday)
	assert.Empty(t, day.Dishes)
}

func TestMenuService_GetDay_BadDateFormat(t *testing.T) {
	fx := createTestMenuService(t)

	_, err := fx.service.GetDay(context.Background(), "03/02/2026")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.menuRepo.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
}

func TestMenuService_GetWeek_ReturnsOnlyStoredDays(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	weekStart, weekEnd := weekSpan(time.Now().UTC())
	monday := &entity.MenuDay{
		ID:      uuid.New(),
		Date:    weekStart,
		Weekday: weekStart.Weekday().String(),
		Dishes:  []entity.Dish{{Name: "Chicken Pasta", Price: 10.5}},
	}
	wednesday := &entity.MenuDay{
		ID:      uuid.New(),
		Date:    weekStart.AddDate(0, 0, 2),
		Weekday: weekStart.AddDate(0, 0, 2).Weekday().String(),
		Dishes:  []entity.Dish{{Name: "Beef Lasagna", Price: 11.0}},
	}

	fx.menuRepo.On("FindRange", ctx, weekStart, weekEnd).
		Return([]*entity.MenuDay{monday, wednesday}, nil)

	week, err := fx.service.GetWeek(ctx)

	require.NoError(t, err)
	assert.Equal(t, weekStart, week.WeekStart)
	assert.Equal(t, weekEnd, week.WeekEnd)

	// Dates without a stored menu stay out of the projection.
	require.Len(t, week.Days, 2)
	assert.Equal(t, monday, week.Days[0])
	assert.Equal(t, wednesday, week.Days[1])
}

func TestMenuService_GetWeek_EmptyWeekHasNoDays(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	weekStart, weekEnd := weekSpan(time.Now().UTC())
	fx.menuRepo.On("FindRange", ctx, weekStart, weekEnd).
		Return(nil, nil)

	week, err := fx.service.GetWeek(ctx)

	require.NoError(t, err)
	assert.NotNil(t, week.Days)
	assert.Empty(t, week.Days)
}

func TestMenuService_UpsertDay_Success(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	identity := adminIdentity()

	txMenuRepo := mockRepo.NewMockMenuRepository(t)
	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.factory.On("MenuRepo").Return(txMenuRepo)

	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(liveSessionFor(identity), nil)

	storedID := uuid.New()
	txMenuRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.MenuDay")).
		Run(func(args mock.Arguments) {
			day := args.Get(1).(*entity.MenuDay)
			assert.Equal(t, "Monday", day.Weekday)
			require.Len(t, day.Dishes, 1)
			assert.Equal(t, []entity.DietTag{entity.DietVegan}, day.Dishes[0].Diet)
			day.ID = storedID
		}).
		Return(nil)

	day, err := fx.service.UpsertDay(ctx, identity, usecase.UpsertDayInput{
		Date: "2026-03-02",
		Dishes: []usecase.DishInput{
			{Name: "Vegan Curry", Price: 9.8, Diet: []string{"Ve"}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, storedID, day.ID)
}

func TestMenuService_UpsertDay_RevokedSessionBlocksWrite(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	identity := adminIdentity()

	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(nil, repository.ErrSessionNotFound)

	_, err := fx.service.UpsertDay(ctx, identity, usecase.UpsertDayInput{
		Date:   "2026-03-02",
		Dishes: []usecase.DishInput{{Name: "Vegan Curry", Price: 9.8}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	fx.factory.AssertNotCalled(t, "MenuRepo")
}

func TestMenuService_UpsertDay_CustomerSessionRejected(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	identity := usecase.Identity{
		SessionID: uuid.New(),
		UserID:    uuid.New(),
		Role:      entity.RoleCustomer,
	}

	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(liveSessionFor(identity), nil)

	_, err := fx.service.UpsertDay(ctx, identity, usecase.UpsertDayInput{
		Date:   "2026-03-02",
		Dishes: []usecase.DishInput{{Name: "Vegan Curry", Price: 9.8}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestMenuService_UpsertDay_RejectsUnknownDietTag(t *testing.T) {
	fx := createTestMenuService(t)

	_, err := fx.service.UpsertDay(context.Background(), adminIdentity(), usecase.UpsertDayInput{
		Date: "2026-03-02",
		Dishes: []usecase.DishInput{
			{Name: "Mystery Dish", Price: 5, Diet: []string{"X"}},
		},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMenuService_UpsertDay_RejectsNegativePrice(t *testing.T) {
	fx := createTestMenuService(t)

	_, err := fx.service.UpsertDay(context.Background(), adminIdentity(), usecase.UpsertDayInput{
		Date:   "2026-03-02",
		Dishes: []usecase.DishInput{{Name: "Free Lunch", Price: -1}},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMenuService_DeleteDay_Success(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	identity := adminIdentity()
	id := uuid.New()

	txMenuRepo := mockRepo.NewMockMenuRepository(t)
	fx.factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.factory.On("MenuRepo").Return(txMenuRepo)

	fx.sessionRepo.On("FindByID", ctx, identity.SessionID).
		Return(liveSessionFor(identity), nil)
	txMenuRepo.On("Delete", ctx, id).Return(nil)

	require.NoError(t, fx.service.DeleteDay(ctx, identity, id))
}

func TestWeekSpan(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "midweek",
			now:       time.Date(2026, 3, 4, 13, 45, 0, 0, time.UTC), // Wednesday
			wantStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday maps to itself",
			now:       time.Date(2026, 3, 2, 0, 0, 1, 0, time.UTC),
			wantStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the ending week",
			now:       time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := weekSpan(tt.now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

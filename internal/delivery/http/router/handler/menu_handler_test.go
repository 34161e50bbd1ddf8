package handler

import (
	"net/http"
	"testing"
	"time"

	"lounas/internal/domain/entity"
	mockUsecase "lounas/internal/mocks/usecase"
	"lounas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMenuHandler_GetWeek(t *testing.T) {
	uc := mockUsecase.NewMockMenuUsecase(t)
	h := NewMenuHandler(uc, newDiscardLogger())

	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 6)
	wednesday := weekStart.AddDate(0, 0, 2)

	days := []*entity.MenuDay{
		{
			ID:      uuid.New(),
			Date:    weekStart,
			Weekday: "Monday",
			Dishes:  []entity.Dish{{Name: "Chicken Pasta", Price: 10.5}},
		},
		{
			ID:      uuid.New(),
			Date:    wednesday,
			Weekday: "Wednesday",
			Dishes:  []entity.Dish{{Name: "Beef Lasagna", Price: 11.0}},
		},
	}

	uc.On("GetWeek", mock.Anything).Return(&usecase.WeekOutput{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Days:      days,
	}, nil)

	rec := serveJSON(t, http.MethodGet, "/api/menu/week", "", nil, h.GetWeek)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "2026-03-02", data["weekStart"])
	assert.Equal(t, "2026-03-08", data["weekEnd"])

	// Only stored days appear; the gap between Monday and Wednesday stays a gap.
	respDays := data["days"].([]any)
	require.Len(t, respDays, 2)

	monday := respDays[0].(map[string]any)
	assert.Equal(t, days[0].ID.String(), monday["id"])
	assert.Equal(t, "Monday", monday["weekday"])
	assert.Equal(t, "2026-03-04", respDays[1].(map[string]any)["date"])
}

func TestMenuHandler_GetToday_EmptyDay(t *testing.T) {
	uc := mockUsecase.NewMockMenuUsecase(t)
	h := NewMenuHandler(uc, newDiscardLogger())

	date := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	uc.On("GetToday", mock.Anything).Return(&entity.MenuDay{
		Date:    date,
		Weekday: "Saturday",
		Dishes:  []entity.Dish{},
	}, nil)

	rec := serveJSON(t, http.MethodGet, "/api/menu/today", "", nil, h.GetToday)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "2026-03-07", data["date"])
	assert.Empty(t, data["dishes"])
}

func TestMenuHandler_UpsertDay_Success(t *testing.T) {
	uc := mockUsecase.NewMockMenuUsecase(t)
	h := NewMenuHandler(uc, newDiscardLogger())
	identity := testAdminIdentity()

	dayID := uuid.New()
	uc.On("UpsertDay", mock.Anything, identity, mock.AnythingOfType("usecase.UpsertDayInput")).
		Run(func(args mock.Arguments) {
			input := args.Get(2).(usecase.UpsertDayInput)
			assert.Equal(t, "2026-03-02", input.Date)
			require.Len(t, input.Dishes, 1)
		}).
		Return(&entity.MenuDay{ID: dayID}, nil)

	rec := serveJSON(t, http.MethodPost, "/api/admin/menu",
		`{"date":"2026-03-02","dishes":[{"name":"Vegan Curry","price":9.8,"diet":["Ve"]}]}`,
		withIdentity(identity), h.UpsertDay)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, dayID.String(), data["id"])
}

func TestMenuHandler_UpsertDay_MissingDate(t *testing.T) {
	uc := mockUsecase.NewMockMenuUsecase(t)
	h := NewMenuHandler(uc, newDiscardLogger())

	rec := serveJSON(t, http.MethodPost, "/api/admin/menu",
		`{"dishes":[{"name":"Vegan Curry","price":9.8}]}`,
		withIdentity(testAdminIdentity()), h.UpsertDay)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "UpsertDay", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenuHandler_DeleteDay_Success(t *testing.T) {
	uc := mockUsecase.NewMockMenuUsecase(t)
	h := NewMenuHandler(uc, newDiscardLogger())
	identity := testAdminIdentity()
	dayID := uuid.New()

	uc.On("DeleteDay", mock.Anything, identity, dayID).Return(nil)

	rec := serveJSON(t, http.MethodDelete, "/api/admin/menu/"+dayID.String(), "",
		func(c echo.Context) {
			c.Set("identity", identity)
			c.SetParamNames("id")
			c.SetParamValues(dayID.String())
		}, h.DeleteDay)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "deleted", data["status"])
}

package postgres

import (
	"context"
	"encoding/json"
	"time"

	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/domain/repository"
	"lounas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// menuRepository implements the domain.MenuRepository interface using GORM.
// Dishes travel as one JSONB document per day, so every write below is a
// single atomic statement.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// FindByDate retrieves the menu for one calendar date.
func (repo *menuRepository) FindByDate(ctx context.Context, date time.Time) (*entity.MenuDay, error) {
	var dayM model.MenuDayModel

	err := repo.db.WithContext(ctx).
		Where("date = ?", entity.DateOnly(date)).
		First(&dayM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuDayNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu day by date")
	}

	return toMenuDayDomain(&dayM)
}

// FindRange retrieves all stored days between from and to inclusive, ordered
// by date ascending. Dates without a record are simply absent.
func (repo *menuRepository) FindRange(ctx context.Context, from, to time.Time) ([]*entity.MenuDay, error) {
	var dayMs []*model.MenuDayModel

	err := repo.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", entity.DateOnly(from), entity.DateOnly(to)).
		Order("date ASC").
		Find(&dayMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find menu days in range")
	}

	days := make([]*entity.MenuDay, 0, len(dayMs))
	for _, dayM := range dayMs {
		day, err := toMenuDayDomain(dayM)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, nil
}

// Upsert inserts the day or replaces the existing record for the same date
// wholesale. The ON CONFLICT clause keeps the replace a single statement, so
// concurrent writers resolve to last-write-wins with no partial documents.
func (repo *menuRepository) Upsert(ctx context.Context, day *entity.MenuDay) error {
	dayM, err := fromMenuDayDomain(day)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"weekday", "dishes", "updated_at"}),
		}).
		Create(dayM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert menu day")
	}

	// On conflict Postgres still returns the surviving row, so the id here
	// is the stored record's id in both the insert and replace cases.
	day.ID = dayM.ID

	return nil
}

// Delete removes the day with the given id. Deleting a missing id is a no-op
// success, so repeated deletes converge on the same state.
func (repo *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.MenuDayModel{}, "id = ?", id).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete menu day")
	}

	return nil
}

func toMenuDayDomain(dayM *model.MenuDayModel) (*entity.MenuDay, error) {
	var dishes []entity.Dish
	if err := json.Unmarshal(dayM.Dishes, &dishes); err != nil {
		return nil, errors.Wrap(err, "failed to decode dishes document")
	}

	return &entity.MenuDay{
		ID:      dayM.ID,
		Date:    entity.DateOnly(dayM.Date),
		Weekday: dayM.Weekday,
		Dishes:  dishes,
	}, nil
}

func fromMenuDayDomain(day *entity.MenuDay) (*model.MenuDayModel, error) {
	dishes := day.Dishes
	if dishes == nil {
		dishes = []entity.Dish{}
	}

	raw, err := json.Marshal(dishes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode dishes document")
	}

	return &model.MenuDayModel{
		ID:      day.ID,
		Date:    entity.DateOnly(day.Date),
		Weekday: day.Weekday,
		Dishes:  raw,
	}, nil
}

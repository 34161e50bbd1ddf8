package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lounas/internal/domain/entity"
	domainerrors "lounas/internal/domain/errors"
	"lounas/internal/domain/repository"
	"lounas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// menuService implements the MenuUsecase interface.
type menuService struct {
	txManager repository.TransactionManager
	menuRepo  repository.MenuRepository
	logger    *slog.Logger
}

// MenuServiceParams holds dependencies for menuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	MenuRepo  repository.MenuRepository
	Logger    *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		txManager: params.TxManager,
		menuRepo:  params.MenuRepo,
		logger:    params.Logger,
	}
}

// GetDay returns the menu for one calendar date. A date with no stored menu
// is presented as a day with an empty dish list rather than an error, so the
// calendar always renders.
func (srv *menuService) GetDay(ctx context.Context, date string) (*entity.MenuDay, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	stored, err := srv.menuRepo.FindByDate(ctx, day)
	if err != nil {
		if errors.Is(err, repository.ErrMenuDayNotFound) {
			return emptyMenuDay(day), nil
		}

		return nil, err
	}

	return stored, nil
}

// GetToday returns the menu for the current date.
func (srv *menuService) GetToday(ctx context.Context) (*entity.MenuDay, error) {
	return srv.GetDay(ctx, time.Now().UTC().Format(dateLayout))
}

// GetWeek returns the Monday-to-Sunday projection around the current date.
// Only dates with a stored menu appear in the slice, in calendar order.
// Clients read an absent date as a day without service.
func (srv *menuService) GetWeek(ctx context.Context) (*usecase.WeekOutput, error) {
	weekStart, weekEnd := weekSpan(time.Now().UTC())

	stored, err := srv.menuRepo.FindRange(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	if stored == nil {
		stored = []*entity.MenuDay{}
	}

	return &usecase.WeekOutput{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Days:      stored,
	}, nil
}

// UpsertDay wholesale-replaces the menu document for one date. The admin
// check runs inside the same transaction as the write.
func (srv *menuService) UpsertDay(ctx context.Context, identity usecase.Identity, input usecase.UpsertDayInput) (*entity.MenuDay, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	dishes, err := buildDishes(input.Dishes)
	if err != nil {
		return nil, err
	}

	day := &entity.MenuDay{
		Date:    date,
		Weekday: date.Weekday().String(),
		Dishes:  dishes,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory, identity); err != nil {
			return err
		}

		return repoFactory.MenuRepo().Upsert(ctx, day)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("menu day stored",
		slog.String("date", input.Date),
		slog.Int("dishes", len(day.Dishes)),
	)

	return day, nil
}

// DeleteDay removes a stored day by id. Deleting an id that no longer exists
// succeeds, so a double-submitted delete is harmless.
func (srv *menuService) DeleteDay(ctx context.Context, identity usecase.Identity, id uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := requireAdmin(ctx, repoFactory, identity); err != nil {
			return err
		}

		return repoFactory.MenuRepo().Delete(ctx, id)
	})
}

func parseDate(date string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("date must use the %s layout", dateLayout))
	}

	return parsed, nil
}

// buildDishes validates admin input and converts it into domain dishes.
func buildDishes(inputs []usecase.DishInput) ([]entity.Dish, error) {
	dishes := make([]entity.Dish, 0, len(inputs))
	for i, in := range inputs {
		if in.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("dish %d is missing a name", i))
		}
		if in.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("dish %q has a negative price", in.Name))
		}

		diet := make([]entity.DietTag, 0, len(in.Diet))
		for _, tag := range in.Diet {
			dietTag := entity.DietTag(tag)
			if !dietTag.IsValid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("dish %q has unknown diet tag %q", in.Name, tag))
			}
			diet = append(diet, dietTag)
		}

		allergens := in.Allergens
		if allergens == nil {
			allergens = []string{}
		}

		dishes = append(dishes, entity.Dish{
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Diet:        diet,
			Allergens:   allergens,
		})
	}

	return dishes, nil
}

// weekSpan returns the Monday and Sunday of the week containing now, both at
// midnight UTC.
func weekSpan(now time.Time) (time.Time, time.Time) {
	today := entity.DateOnly(now)

	// time.Weekday counts Sunday as 0; shift so Monday is the week start.
	offset := (int(today.Weekday()) + 6) % 7
	weekStart := today.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 6)

	return weekStart, weekEnd
}

func emptyMenuDay(date time.Time) *entity.MenuDay {
	return &entity.MenuDay{
		Date:    date,
		Weekday: date.Weekday().String(),
		Dishes:  []entity.Dish{},
	}
}

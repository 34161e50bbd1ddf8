// Command seedmenu fills the current week's menu calendar with sample dishes.
// It is meant for local development and demos; running it twice simply
// replaces the same five weekdays again.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"lounas/config"
	"lounas/internal/domain/entity"
	logs "lounas/internal/infra/log"
	"lounas/internal/infra/persistence/postgres"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(cfg)
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := postgres.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	menuRepo := postgres.NewMenuRepository(db)

	monday, _ := weekdaySpan(time.Now().UTC())
	menus := sampleMenus()

	logger.Info("Inserting sample menu for this week")
	for i, dishes := range menus {
		date := monday.AddDate(0, 0, i)
		day := &entity.MenuDay{
			Date:    date,
			Weekday: date.Weekday().String(),
			Dishes:  dishes,
		}

		if err := menuRepo.Upsert(ctx, day); err != nil {
			logger.Error("Failed to store menu day",
				slog.String("date", date.Format("2006-01-02")),
				slog.Any("error", err),
			)
			os.Exit(1)
		}

		logger.Info("Stored menu day",
			slog.String("date", date.Format("2006-01-02")),
			slog.String("weekday", day.Weekday),
		)
	}

	logger.Info("Done, the week's menu is seeded")
}

// weekdaySpan returns Monday and Friday of the week containing now.
func weekdaySpan(now time.Time) (time.Time, time.Time) {
	today := entity.DateOnly(now)
	offset := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -offset)

	return monday, monday.AddDate(0, 0, 4)
}

// sampleMenus returns one dish list per weekday, Monday through Friday.
func sampleMenus() [][]entity.Dish {
	return [][]entity.Dish{
		{
			{
				Name:        "Chicken Pasta",
				Description: "Creamy chicken pasta with parmesan",
				Price:       10.50,
				Diet:        []entity.DietTag{entity.DietLactoseFree},
				Allergens:   []string{"gluten", "milk"},
			},
			{
				Name:        "Veggie Soup",
				Description: "Tomato and lentil soup served with bread",
				Price:       9.00,
				Diet:        []entity.DietTag{entity.DietVegetarian, entity.DietVegan},
				Allergens:   []string{"gluten"},
			},
		},
		{
			{
				Name:        "Beef Lasagna",
				Description: "Classic lasagna with salad",
				Price:       11.00,
				Diet:        []entity.DietTag{entity.DietLactoseFree},
				Allergens:   []string{"gluten", "milk"},
			},
			{
				Name:        "Vegan Curry",
				Description: "Chickpea and vegetable curry with rice",
				Price:       9.80,
				Diet:        []entity.DietTag{entity.DietVegan},
				Allergens:   []string{},
			},
		},
		{
			{
				Name:        "Salmon with Potatoes",
				Description: "Oven baked salmon, dill sauce and potatoes",
				Price:       11.50,
				Diet:        []entity.DietTag{entity.DietGlutenFree, entity.DietLactoseFree},
				Allergens:   []string{"fish", "milk"},
			},
			{
				Name:        "Feta Salad",
				Description: "Green salad with feta cheese and seeds",
				Price:       9.50,
				Diet:        []entity.DietTag{entity.DietVegetarian, entity.DietGlutenFree},
				Allergens:   []string{"milk", "sesame"},
			},
		},
		{
			{
				Name:        "Meatballs and Mashed Potatoes",
				Description: "Finnish style meatballs with lingonberry jam",
				Price:       10.90,
				Diet:        []entity.DietTag{entity.DietLactoseFree},
				Allergens:   []string{"milk", "gluten", "egg"},
			},
			{
				Name:        "Veggie Burger",
				Description: "Plant-based burger with fries",
				Price:       10.50,
				Diet:        []entity.DietTag{entity.DietVegan},
				Allergens:   []string{"gluten", "sesame"},
			},
		},
		{
			{
				Name:        "Pizza Buffet",
				Description: "Selection of pizzas, including vegetarian option",
				Price:       11.90,
				Diet:        []entity.DietTag{entity.DietLactoseFree, entity.DietVegetarian},
				Allergens:   []string{"gluten", "milk"},
			},
			{
				Name:        "Caesar Salad",
				Description: "Chicken Caesar salad with croutons",
				Price:       10.20,
				Diet:        []entity.DietTag{entity.DietLactoseFree},
				Allergens:   []string{"milk", "gluten", "egg", "fish"},
			},
		},
	}
}

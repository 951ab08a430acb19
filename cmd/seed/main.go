package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/caterstock/caterstock-backend/pkg/config"
	"github.com/caterstock/caterstock-backend/pkg/db"
	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
	"github.com/caterstock/caterstock-backend/pkg/logger"
)

type seedGood struct {
	name          string
	unit          string
	category      enums.GoodCategory
	discipline    enums.Discipline
	thresholdLow  int
	thresholdHigh int
	quantity      int
	level         enums.ObservationLevel
}

// seedGoods is the starter catalog for a fresh install. The numeric quantities
// intentionally include a couple of low readings so the dashboard has something
// to show.
var seedGoods = []seedGood{
	{name: "Eggs", unit: "pcs", category: enums.GoodCategoryFood, discipline: enums.DisciplineNumericThreshold, thresholdLow: 5, thresholdHigh: 50, quantity: 3},
	{name: "Milk", unit: "bottles", category: enums.GoodCategoryFood, discipline: enums.DisciplineNumericThreshold, thresholdLow: 3, thresholdHigh: 20, quantity: 15},
	{name: "Bread", unit: "loaves", category: enums.GoodCategoryFood, discipline: enums.DisciplineNumericThreshold, thresholdLow: 2, thresholdHigh: 15, quantity: 8},
	{name: "Rice", unit: "kg", category: enums.GoodCategoryFood, discipline: enums.DisciplineNumericThreshold, thresholdLow: 5, thresholdHigh: 30, quantity: 20},
	{name: "Chicken", unit: "kg", category: enums.GoodCategoryFood, discipline: enums.DisciplineNumericThreshold, thresholdLow: 2, thresholdHigh: 10, quantity: 5},
	{name: "Vegetables", unit: "kg", category: enums.GoodCategoryFood, discipline: enums.DisciplineNumericThreshold, thresholdLow: 3, thresholdHigh: 15, quantity: 10},
	{name: "Seasoning", unit: "bottles", category: enums.GoodCategoryFood, discipline: enums.DisciplineNumericThreshold, thresholdLow: 1, thresholdHigh: 10, quantity: 7},
	{name: "Paper towels", unit: "rolls", category: enums.GoodCategorySupplies, discipline: enums.DisciplineThreeLevel, level: enums.ObservationLevelSufficient},
	{name: "Oolong tea", unit: "bottles", category: enums.GoodCategoryDrink, discipline: enums.DisciplineThreeLevel, level: enums.ObservationLevelLow},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	conn := dbClient.DB().WithContext(ctx)

	var userCount, goodCount int64
	if err := conn.Model(&models.User{}).Count(&userCount).Error; err != nil {
		logg.Error(ctx, "failed to inspect users table", err)
		os.Exit(1)
	}
	if err := conn.Model(&models.Good{}).Count(&goodCount).Error; err != nil {
		logg.Error(ctx, "failed to inspect goods table", err)
		os.Exit(1)
	}
	if userCount > 0 || goodCount > 0 {
		logg.Info(ctx, "seed data already present, nothing to do")
		return
	}

	admin := &models.User{Name: "Manager", Role: enums.UserRoleAdmin}
	worker := &models.User{Name: "Staff", Role: enums.UserRoleWorker}
	if err := conn.Create(admin).Error; err != nil {
		logg.Error(ctx, "failed to create admin user", err)
		os.Exit(1)
	}
	if err := conn.Create(worker).Error; err != nil {
		logg.Error(ctx, "failed to create worker user", err)
		os.Exit(1)
	}

	now := time.Now().UTC()

	for _, seed := range seedGoods {
		good := &models.Good{
			Name:       seed.name,
			Unit:       seed.unit,
			Category:   seed.category,
			Discipline: seed.discipline,
		}
		if seed.discipline == enums.DisciplineNumericThreshold {
			lo, hi := seed.thresholdLow, seed.thresholdHigh
			good.ThresholdLow = &lo
			good.ThresholdHigh = &hi
		}
		if err := conn.Create(good).Error; err != nil {
			logg.Error(logg.WithGoodID(ctx, good.Name), "failed to create good", err)
			os.Exit(1)
		}

		observation := &models.Observation{
			GoodID:     good.ID,
			RecordedBy: admin.ID,
			RecordedAt: now,
		}
		switch seed.discipline {
		case enums.DisciplineNumericThreshold:
			quantity := seed.quantity
			observation.Quantity = &quantity
		case enums.DisciplineThreeLevel:
			level := seed.level
			observation.Level = &level
		}
		if err := conn.Create(observation).Error; err != nil {
			logg.Error(logg.WithGoodID(ctx, good.ID.String()), "failed to create initial observation", err)
			os.Exit(1)
		}
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"users": 2,
		"goods": len(seedGoods),
	})
	logg.Info(ctx, "seed data created")
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/diasporahq/diaspora-backend/internal/config"
	"github.com/diasporahq/diaspora-backend/internal/db"
	"github.com/diasporahq/diaspora-backend/internal/model"
	"github.com/diasporahq/diaspora-backend/internal/repository"
	"github.com/diasporahq/diaspora-backend/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load("configuration")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(&model.Item{}, &model.User{}, &model.ModeSwitchLog{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	var count int64
	if err := conn.Model(&model.Item{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if count > 0 && os.Getenv("FORCE_SEED") != "true" {
		log.Printf("items already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	svc := service.NewItemService(repository.NewItemRepository(conn))
	for _, sub := range sampleSubmissions() {
		item, err := svc.Create(ctx, sub)
		if err != nil {
			return fmt.Errorf("seed item %q: %w", sub.Description, err)
		}
		log.Printf("seeded item %s (%s -> %s)", item.ID, item.OriginCountry, item.DestinationCountry)
	}
	return nil
}

func sampleSubmissions() []*service.ItemSubmission {
	price := func(v float64) *float64 { return &v }
	pickup := func(v bool) *bool { return &v }
	return []*service.ItemSubmission{
		{
			Description:        "Box of household documents",
			Weight:             1.2,
			Dimensions:         model.Dimensions{Length: 30, Width: 22, Height: 5},
			OriginCountry:      "Nigeria",
			DestinationCountry: "Canada",
			Price:              price(25),
		},
		{
			Description:        "Sealed spice assortment",
			Weight:             3.5,
			Dimensions:         model.Dimensions{Length: 40, Width: 30, Height: 20},
			OriginCountry:      "Ghana",
			DestinationCountry: "United Kingdom",
			Price:              price(60),
			PickupRequired:     pickup(true),
		},
		{
			Description:        "Framed family photographs",
			Weight:             2.0,
			Dimensions:         model.Dimensions{Length: 50, Width: 40, Height: 8},
			OriginCountry:      "Kenya",
			DestinationCountry: "United States",
		},
	}
}

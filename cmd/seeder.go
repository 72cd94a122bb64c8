package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	itineraryDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/itinerary"
	"github.com/yuchingtw/trip-companion/internal/itinerary/gormstore"
	"github.com/yuchingtw/trip-companion/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the bundled trip itinerary",
	Long:  `Load the embedded trip dataset into the schedule database. Without --clear, an already-populated schedule is left alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(cfg.Database, db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if cfg.Database.Driver == "sqlite" {
			if err := gormDB.AutoMigrate(&itineraryDatamodel.Day{}, &itineraryDatamodel.Event{}); err != nil {
				log.Fatalf("failed to migrate schedule schema: %v", err)
			}
		}

		var existing int64
		if err := gormDB.Model(&itineraryDatamodel.Day{}).Count(&existing).Error; err != nil {
			log.Fatalf("failed to inspect schedule: %v", err)
		}
		if existing > 0 && !clearData {
			fmt.Printf("schedule already has %d days; use --clear to replace it\n", existing)
			return
		}

		trip, err := seed.Load()
		if err != nil {
			log.Fatalf("failed to load bundled trip data: %v", err)
		}

		repo := gormstore.NewScheduleRepository(gormDB)
		if err := repo.Replace(ctx, trip.Days); err != nil {
			log.Fatalf("failed to seed schedule: %v", err)
		}

		eventCount := 0
		for _, day := range trip.Days {
			eventCount += len(day.Events)
		}
		fmt.Printf("Seeded %d days with %d events\n", len(trip.Days), eventCount)
	},
}

package gormstore

import (
	"context"

	"gorm.io/gorm"

	itineraryDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/itinerary"
	"github.com/yuchingtw/trip-companion/internal/itinerary"
)

// ScheduleRepository implements itinerary.Repository using GORM. The
// schedule is stored as day and event rows but read and written only as
// a whole snapshot.
type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) itinerary.Repository {
	return &ScheduleRepository{db: db}
}

// Load reads the full schedule ordered by day position, events ordered
// by their stored timeline position.
func (r *ScheduleRepository) Load(ctx context.Context) ([]itinerary.Day, error) {
	var days []itineraryDatamodel.Day
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("position ASC").
		Find(&days).Error
	if err != nil {
		return nil, err
	}
	return itinerary.FromDataModelSlice(days), nil
}

// Replace swaps the stored schedule for the given one in a single
// transaction. Event positions are re-derived from timeline order on
// the way in.
func (r *ScheduleRepository) Replace(ctx context.Context, days []itinerary.Day) error {
	rows := itinerary.ToDataModelSlice(days)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&itineraryDatamodel.Event{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&itineraryDatamodel.Day{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

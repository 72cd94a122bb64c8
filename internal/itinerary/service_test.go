package itinerary_test

import (
	"context"
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/yuchingtw/trip-companion/internal"
	"github.com/yuchingtw/trip-companion/internal/itinerary"
)

// Mock repository for testing
type mockScheduleRepository struct {
	days         []itinerary.Day
	replaced     [][]itinerary.Day
	loadError    error
	replaceError error
}

func (m *mockScheduleRepository) Load(ctx context.Context) ([]itinerary.Day, error) {
	if m.loadError != nil {
		return nil, m.loadError
	}
	return m.days, nil
}

func (m *mockScheduleRepository) Replace(ctx context.Context, days []itinerary.Day) error {
	if m.replaceError != nil {
		return m.replaceError
	}
	m.replaced = append(m.replaced, days)
	m.days = days
	return nil
}

var _ = Describe("ItineraryService", func() {
	var (
		service *itinerary.Service
		repo    *mockScheduleRepository
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo = &mockScheduleRepository{
			days: []itinerary.Day{
				{Position: 1, Date: "3/28", Title: "Arrival", Events: []itinerary.Event{
					{ID: "evt_1", Time: "22:15", Description: "Arrive TRV"},
					{Time: "23:30", Description: "Check in", LocationID: "safire_residency"},
				}},
				{Position: 2, Date: "3/29", Title: "Varkala", Events: []itinerary.Event{
					{ID: "evt_2", Time: "05:00", Description: "Temple"},
				}},
			},
		}
		service = itinerary.NewService(repo, logger)
		Expect(service.Reload(ctx)).To(Succeed())
	})

	Describe("Reload", func() {
		It("backfills ids for legacy events", func() {
			day, err := service.Day(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(day.Events[1].ID).To(Equal("evt_d1p1"))
			Expect(day.Events[0].ID).To(Equal("evt_1"))
		})

		It("surfaces load failures", func() {
			repo.loadError = errors.New("db down")
			Expect(service.Reload(ctx)).ToNot(Succeed())
		})
	})

	Describe("Day", func() {
		It("returns ErrDayNotFound for an unknown position", func() {
			_, err := service.Day(ctx, 99)
			Expect(err).To(MatchError(internal.ErrDayNotFound))
		})
	})

	Describe("AddEvent", func() {
		It("persists the full new schedule and updates the served state", func() {
			resp, err := service.AddEvent(ctx, 2, itinerary.EventFormDTO{
				Time: "08:00", Description: "Breakfast",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Changed).To(BeTrue())
			Expect(resp.Day.Events).To(HaveLen(2))
			Expect(repo.replaced).To(HaveLen(1))

			day, err := service.Day(ctx, 2)
			Expect(err).ToNot(HaveOccurred())
			Expect(day.Events).To(HaveLen(2))
		})

		It("persists nothing for an empty form", func() {
			resp, err := service.AddEvent(ctx, 2, itinerary.EventFormDTO{Time: "08:00"})
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Changed).To(BeFalse())
			Expect(repo.replaced).To(BeEmpty())
		})

		It("keeps the old state when saving fails", func() {
			repo.replaceError = errors.New("db down")
			_, err := service.AddEvent(ctx, 2, itinerary.EventFormDTO{Time: "08:00", Description: "Breakfast"})
			Expect(err).To(HaveOccurred())

			day, derr := service.Day(ctx, 2)
			Expect(derr).ToNot(HaveOccurred())
			Expect(day.Events).To(HaveLen(1))
		})

		It("rejects an unknown day", func() {
			_, err := service.AddEvent(ctx, 99, itinerary.EventFormDTO{Time: "08:00", Description: "x"})
			Expect(err).To(MatchError(internal.ErrDayNotFound))
		})
	})

	Describe("EditEvent", func() {
		It("keeps id and locationId across the edit", func() {
			resp, err := service.EditEvent(ctx, 1, "evt_d1p1", itinerary.EventFormDTO{
				Time: "23:45", Description: "Check in late",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Changed).To(BeTrue())

			edited := resp.Day.Events[1]
			Expect(edited.ID).To(Equal("evt_d1p1"))
			Expect(edited.LocationID).To(Equal("safire_residency"))
			Expect(edited.Description).To(Equal("Check in late"))
		})

		It("reports changed=false without persisting when nothing matches", func() {
			resp, err := service.EditEvent(ctx, 1, "evt_nope", itinerary.EventFormDTO{
				Time: "10:00", Description: "x",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Changed).To(BeFalse())
			Expect(repo.replaced).To(BeEmpty())
		})
	})

	Describe("DeleteEvent", func() {
		It("removes the event and persists the new schedule", func() {
			resp, err := service.DeleteEvent(ctx, 1, "evt_1")
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Changed).To(BeTrue())
			Expect(resp.Day.Events).To(HaveLen(1))
			Expect(repo.replaced).To(HaveLen(1))
		})

		It("is a no-op for an unknown id", func() {
			resp, err := service.DeleteEvent(ctx, 1, "evt_nope")
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Changed).To(BeFalse())
			Expect(repo.replaced).To(BeEmpty())
		})
	})
})

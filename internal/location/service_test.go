package location_test

import (
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/yuchingtw/trip-companion/internal"
	locationDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/location"
	"github.com/yuchingtw/trip-companion/internal/location"
)

var _ = Describe("LocationService", func() {
	var service *location.Service

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := location.NewStaticRepository(map[string]locationDatamodel.Detail{
			"varkala_cliff": {
				ID:          "varkala_cliff",
				Title:       "Varkala Cliff & Beach",
				Description: "Red cliff beach with sunset views.",
				MapURL:      "https://maps.google.com/?q=Varkala+Cliff",
			},
			"kathakali": {
				ID:           "kathakali",
				Title:        "Kathakali Centre",
				OpeningHours: "17:00 - 21:00",
			},
		})
		service = location.NewService(repo, logger)
	})

	It("resolves a known id to its detail", func() {
		detail, err := service.GetLocation("varkala_cliff")
		Expect(err).ToNot(HaveOccurred())
		Expect(detail.Title).To(Equal("Varkala Cliff & Beach"))
	})

	It("returns ErrLocationNotFound for an unknown id", func() {
		_, err := service.GetLocation("nowhere")
		Expect(err).To(MatchError(internal.ErrLocationNotFound))
	})

	It("lists all locations sorted by id", func() {
		details, err := service.GetAllLocations()
		Expect(err).ToNot(HaveOccurred())
		Expect(details).To(HaveLen(2))
		Expect(details[0].ID).To(Equal("kathakali"))
		Expect(details[1].ID).To(Equal("varkala_cliff"))
	})
})

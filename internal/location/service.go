package location

import (
	"log/slog"
	"sort"

	internal "github.com/yuchingtw/trip-companion/internal"
	locationDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/location"
)

type RepositoryAPI interface {
	GetAll() ([]locationDatamodel.Detail, error)
	GetByID(id string) (*locationDatamodel.Detail, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetLocation resolves a locationId from the itinerary to its full
// reference entry.
func (s *Service) GetLocation(id string) (*locationDatamodel.Detail, error) {
	detail, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get location from repository", "location_id", id, "error", err)
		return nil, err
	}
	if detail == nil {
		return nil, internal.ErrLocationNotFound
	}
	return detail, nil
}

// GetAllLocations returns every known location sorted by id.
func (s *Service) GetAllLocations() ([]locationDatamodel.Detail, error) {
	details, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list locations from repository", "error", err)
		return nil, err
	}

	sort.Slice(details, func(i, j int) bool {
		return details[i].ID < details[j].ID
	})
	return details, nil
}

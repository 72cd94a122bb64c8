package location

import (
	locationDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/location"
)

// StaticRepository serves location details from a fixed in-process map,
// the shape they ship in with the bundled trip data. Lookups never fail
// with an error; a missing id is just a nil result.
type StaticRepository struct {
	details map[string]locationDatamodel.Detail
}

func NewStaticRepository(details map[string]locationDatamodel.Detail) *StaticRepository {
	if details == nil {
		details = map[string]locationDatamodel.Detail{}
	}
	return &StaticRepository{details: details}
}

func (r *StaticRepository) GetAll() ([]locationDatamodel.Detail, error) {
	out := make([]locationDatamodel.Detail, 0, len(r.details))
	for _, d := range r.details {
		out = append(out, d)
	}
	return out, nil
}

func (r *StaticRepository) GetByID(id string) (*locationDatamodel.Detail, error) {
	d, ok := r.details[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

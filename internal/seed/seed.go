package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/yuchingtw/trip-companion/internal/core/datamodel/location"
	"github.com/yuchingtw/trip-companion/internal/itinerary"
)

//go:embed trip.json
var tripJSON []byte

// Trip is the bundled starter dataset: the itinerary day list and the
// location reference entries its events link to.
type Trip struct {
	Days      []itinerary.Day            `json:"days"`
	Locations map[string]location.Detail `json:"locations"`
}

// Load parses the embedded dataset.
func Load() (Trip, error) {
	var t Trip
	if err := json.Unmarshal(tripJSON, &t); err != nil {
		return Trip{}, fmt.Errorf("failed to parse embedded trip data: %w", err)
	}
	return t, nil
}

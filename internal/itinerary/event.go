package itinerary

import (
	"sort"

	itineraryDatamodel "github.com/yuchingtw/trip-companion/internal/core/datamodel/itinerary"
)

// Event is one timeline entry. Time is "HH:MM" in 24-hour form, which
// makes plain string comparison the sort key. LocationID links the
// entry to a location detail page; it is carried forward across edits
// and never comes from the edit form.
type Event struct {
	ID          string `json:"id,omitempty"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Note        string `json:"note,omitempty"`
	IsHighlight bool   `json:"isHighlight,omitempty"`
	LocationID  string `json:"locationId,omitempty"`
}

// Day is one trip day with its event timeline. Position identifies the
// day; the timeline is kept sorted by time at all times.
type Day struct {
	Position            int     `json:"position"`
	Date                string  `json:"date"`
	Weekday             string  `json:"weekday"`
	Title               string  `json:"title"`
	Accommodation       string  `json:"accommodation,omitempty"`
	AccommodationMapURL string  `json:"accommodationMapUrl,omitempty"`
	MapURL              string  `json:"mapUrl,omitempty"`
	Events              []Event `json:"events"`
}

// sortEvents orders a timeline by time, stable so same-time events keep
// their relative order.
func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
}

// cloneEvents copies a timeline so transforms never mutate the slice a
// caller may still hold.
func cloneEvents(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

func FromDataModel(d itineraryDatamodel.Day) Day {
	day := Day{
		Position:            d.Position,
		Date:                d.Date,
		Weekday:             d.Weekday,
		Title:               d.Title,
		Accommodation:       d.Accommodation,
		AccommodationMapURL: d.AccommodationMapURL,
		MapURL:              d.MapURL,
		Events:              make([]Event, 0, len(d.Events)),
	}
	for _, e := range d.Events {
		day.Events = append(day.Events, Event{
			ID:          e.EventID,
			Time:        e.Time,
			Description: e.Description,
			Note:        e.Note,
			IsHighlight: e.IsHighlight,
			LocationID:  e.LocationID,
		})
	}
	return day
}

func ToDataModel(d Day) itineraryDatamodel.Day {
	day := itineraryDatamodel.Day{
		Position:            d.Position,
		Date:                d.Date,
		Weekday:             d.Weekday,
		Title:               d.Title,
		Accommodation:       d.Accommodation,
		AccommodationMapURL: d.AccommodationMapURL,
		MapURL:              d.MapURL,
		Events:              make([]itineraryDatamodel.Event, 0, len(d.Events)),
	}
	for i, e := range d.Events {
		day.Events = append(day.Events, itineraryDatamodel.Event{
			Position:    i,
			EventID:     e.ID,
			Time:        e.Time,
			Description: e.Description,
			Note:        e.Note,
			IsHighlight: e.IsHighlight,
			LocationID:  e.LocationID,
		})
	}
	return day
}

func FromDataModelSlice(days []itineraryDatamodel.Day) []Day {
	out := make([]Day, 0, len(days))
	for _, d := range days {
		out = append(out, FromDataModel(d))
	}
	return out
}

func ToDataModelSlice(days []Day) []itineraryDatamodel.Day {
	out := make([]itineraryDatamodel.Day, 0, len(days))
	for _, d := range days {
		out = append(out, ToDataModel(d))
	}
	return out
}

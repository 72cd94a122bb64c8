package itinerary

import (
	"fmt"
	"strings"
	"time"
)

// DefaultAddTime is the prefilled time when a day has no events yet.
const DefaultAddTime = "09:00"

// NewEventID mints an event id from the creation instant. Ids are
// opaque strings to everything downstream; only creation knows the
// shape.
func NewEventID(now time.Time) string {
	return fmt.Sprintf("evt_%d", now.UnixMilli())
}

// SyntheticEventID is the deterministic id assigned to a legacy event
// that was stored without one, derived from its day and timeline
// position at load time.
func SyntheticEventID(dayPosition, eventPosition int) string {
	return fmt.Sprintf("evt_d%dp%d", dayPosition, eventPosition)
}

// BackfillEventIDs assigns synthetic ids to id-less events so that id
// matching works across the whole schedule. Events that already carry
// an id keep it.
func BackfillEventIDs(days []Day) []Day {
	out := make([]Day, len(days))
	for i, day := range days {
		day.Events = cloneEvents(day.Events)
		for j := range day.Events {
			if day.Events[j].ID == "" {
				day.Events[j].ID = SyntheticEventID(day.Position, j)
			}
		}
		out[i] = day
	}
	return out
}

// AddTimeFor returns the prefill time for a new event on a day: the
// last event's time, or the default when the day is empty.
func AddTimeFor(day Day) string {
	if len(day.Events) == 0 {
		return DefaultAddTime
	}
	return day.Events[len(day.Events)-1].Time
}

// AddEvent appends a new event to the day and re-sorts the timeline.
// An empty description is a silent no-op: the day comes back unchanged
// and changed is false. An empty time takes the day's prefill time.
func AddEvent(day Day, form EventFormDTO, id string) (Day, bool) {
	description := strings.TrimSpace(form.Description)
	if description == "" {
		return day, false
	}

	eventTime := strings.TrimSpace(form.Time)
	if eventTime == "" {
		eventTime = AddTimeFor(day)
	}

	events := cloneEvents(day.Events)
	events = append(events, Event{
		ID:          id,
		Time:        eventTime,
		Description: description,
		Note:        strings.TrimSpace(form.Note),
		IsHighlight: form.IsHighlight,
	})
	sortEvents(events)

	day.Events = events
	return day, true
}

// EditEvent rewrites one event's fields, keeping its id and locationId,
// then re-sorts. The target is found by id first; when the id is
// unknown the pre-edit time+description pair is the fallback key, for
// callers that picked the event up before it had an id. No match is a
// silent no-op.
func EditEvent(day Day, targetID string, form EventFormDTO) (Day, bool) {
	description := strings.TrimSpace(form.Description)
	if description == "" {
		return day, false
	}

	idx := -1
	for i, e := range day.Events {
		if targetID != "" && e.ID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 && (form.PrevTime != "" || form.PrevDescription != "") {
		for i, e := range day.Events {
			if e.Time == form.PrevTime && e.Description == form.PrevDescription {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return day, false
	}

	eventTime := strings.TrimSpace(form.Time)
	if eventTime == "" {
		eventTime = day.Events[idx].Time
	}

	events := cloneEvents(day.Events)
	events[idx] = Event{
		ID:          events[idx].ID,
		LocationID:  events[idx].LocationID,
		Time:        eventTime,
		Description: description,
		Note:        strings.TrimSpace(form.Note),
		IsHighlight: form.IsHighlight,
	}
	sortEvents(events)

	day.Events = events
	return day, true
}

// DeleteEvent removes the event with the given id. At most one event
// goes away; an unknown id leaves the day untouched.
func DeleteEvent(day Day, id string) (Day, bool) {
	for i, e := range day.Events {
		if e.ID == id {
			events := cloneEvents(day.Events)
			day.Events = append(events[:i], events[i+1:]...)
			return day, true
		}
	}
	return day, false
}

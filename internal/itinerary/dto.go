package itinerary

// EventFormDTO is the add/edit form for a timeline entry. PrevTime and
// PrevDescription are only read on edits: they identify the target when
// the client never learned the event's id.
type EventFormDTO struct {
	Time            string `json:"time"`
	Description     string `json:"description"`
	Note            string `json:"note"`
	IsHighlight     bool   `json:"is_highlight"`
	PrevTime        string `json:"prev_time,omitempty"`
	PrevDescription string `json:"prev_description,omitempty"`
}

// ScheduleResponse is the full itinerary as served.
type ScheduleResponse struct {
	Days []Day `json:"days"`
}

// MutationResponse reports what a timeline write did. Changed is false
// for the silent no-op cases (empty description, unmatched edit or
// delete target).
type MutationResponse struct {
	Changed bool `json:"changed"`
	Day     Day  `json:"day"`
}

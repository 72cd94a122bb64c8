package itinerary

// Day is one trip day as persisted. Position is the day index used for
// navigation; the day list is ordered by it, not by the date string.
type Day struct {
	ID                  int64   `json:"id" gorm:"primaryKey"`
	Position            int     `json:"position" gorm:"column:position;not null;uniqueIndex"`
	Date                string  `json:"date" gorm:"not null"`
	Weekday             string  `json:"weekday"`
	Title               string  `json:"title" gorm:"not null"`
	Accommodation       string  `json:"accommodation"`
	AccommodationMapURL string  `json:"accommodation_map_url" gorm:"column:accommodation_map_url"`
	MapURL              string  `json:"map_url" gorm:"column:map_url"`
	Events              []Event `json:"events" gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE"`
}

func (Day) TableName() string {
	return "itinerary_days"
}

// Event is one timeline entry as persisted. EventID is the domain
// identity ("evt_..."); rows created before ids were mandatory may
// store an empty one, the loader backfills those.
type Event struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	DayID       int64  `json:"day_id" gorm:"column:day_id;not null;index"`
	Position    int    `json:"position" gorm:"column:position;not null"`
	EventID     string `json:"event_id" gorm:"column:event_id"`
	Time        string `json:"time" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Note        string `json:"note"`
	IsHighlight bool   `json:"is_highlight" gorm:"column:is_highlight"`
	LocationID  string `json:"location_id" gorm:"column:location_id"`
}

func (Event) TableName() string {
	return "itinerary_events"
}

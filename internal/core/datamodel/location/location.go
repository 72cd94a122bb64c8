package location

// Detail is the full reference entry for a place the itinerary links to
// via locationId. The core only threads ids through; this shape exists
// for the lookup collaborator's responses.
type Detail struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Address      string       `json:"address,omitempty"`
	OpeningHours string       `json:"opening_hours,omitempty"`
	MapURL       string       `json:"map_url,omitempty"`
	WebsiteURL   string       `json:"website_url,omitempty"`
	CarNaviPhone string       `json:"car_navi_phone,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	TransitLegs  []TransitLeg `json:"transit_legs,omitempty"`
	Reservation  *Reservation `json:"reservation,omitempty"`
}

type TransitLeg struct {
	Type      string   `json:"type"` // bus, walk, train, wait, flight, taxi
	Transport string   `json:"transport"`
	DepTime   string   `json:"dep_time"`
	DepStop   string   `json:"dep_stop"`
	ArrTime   string   `json:"arr_time"`
	ArrStop   string   `json:"arr_stop"`
	Details   []string `json:"details,omitempty"`
}

type Reservation struct {
	ID       string               `json:"id"`
	Sections []ReservationSection `json:"sections"`
}

type ReservationSection struct {
	Title string            `json:"title"`
	Items []ReservationItem `json:"items"`
}

type ReservationItem struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	IsFullWidth bool   `json:"is_full_width,omitempty"`
}

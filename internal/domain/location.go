package domain

// Location is a geocoded place: the resolved display name and country for
// a user-entered city plus the coordinates the forecast lookup needs
type Location struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// DisplayName returns "Name, Country" for presentation, degrading to the
// bare name when the geocoder returned no country
func (l Location) DisplayName() string {
	if l.Country == "" {
		return l.Name
	}
	return l.Name + ", " + l.Country
}

package models

// GeoPoint is a geographic coordinate pair in WGS84.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address holds the decomposed postal address components of a location.
// Every field is optional; geocoders fill in whatever they can resolve.
type Address struct {
	FormattedAddress string `json:"formatted_address,omitempty"`
	Country          string `json:"country,omitempty"`
	AdminDistrict    string `json:"admin_district,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Neighborhood     string `json:"neighborhood,omitempty"`
	PostalCode       string `json:"postal_code,omitempty"`
	StreetAddress    string `json:"street_address,omitempty"`
}

// Location is the transient value produced by a location retriever or a
// geocoder: an address, a coordinate pair, or both.
type Location struct {
	ID         int64     `json:"id,omitempty"`
	Name       string    `json:"name,omitempty"`
	EntityType string    `json:"entity_type,omitempty"`
	Confidence string    `json:"confidence,omitempty"`
	Address    *Address  `json:"address,omitempty"`
	Point      *GeoPoint `json:"point,omitempty"`
}

package models

// DefaultPlaceType is used when the source location carries no entity type.
const DefaultPlaceType = "Place"

// GeoCoordinates is the coordinate pair of a finished Place.
type GeoCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PostalAddress is the standardized address of a finished Place.
type PostalAddress struct {
	FormattedAddress string `json:"formatted_address,omitempty"`
	Country          string `json:"country,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Region           string `json:"region,omitempty"`
	PostalCode       string `json:"postal_code,omitempty"`
	StreetAddress    string `json:"street_address,omitempty"`
}

// Place is the standardized location record handed back to the caller once a
// location dialog completes.
type Place struct {
	Type    string          `json:"type"`
	Name    string          `json:"name,omitempty"`
	Address *PostalAddress  `json:"address,omitempty"`
	Geo     *GeoCoordinates `json:"geo,omitempty"`
}

// PlaceFromLocation translates a Location into a Place field by field. Absent
// sub-objects leave the corresponding Place fields unset.
func PlaceFromLocation(loc *Location) Place {
	place := Place{Type: DefaultPlaceType}
	if loc == nil {
		return place
	}

	if loc.EntityType != "" {
		place.Type = loc.EntityType
	}
	place.Name = loc.Name

	if loc.Address != nil {
		place.Address = &PostalAddress{
			FormattedAddress: loc.Address.FormattedAddress,
			Country:          loc.Address.Country,
			Locality:         loc.Address.Locality,
			Region:           loc.Address.AdminDistrict,
			PostalCode:       loc.Address.PostalCode,
			StreetAddress:    loc.Address.StreetAddress,
		}
	}

	if loc.Point != nil {
		place.Geo = &GeoCoordinates{
			Latitude:  loc.Point.Latitude,
			Longitude: loc.Point.Longitude,
		}
	}

	return place
}

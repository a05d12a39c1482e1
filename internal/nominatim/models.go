package nominatim

// https://nominatim.org/release-docs/develop/api/Reverse/
// https://nominatim.org/release-docs/develop/api/Search/
type apiResponse struct {
	PlaceID     int64      `json:"place_id"`
	OsmType     string     `json:"osm_type"`
	OsmID       int64      `json:"osm_id"`
	Lat         string     `json:"lat"`
	Lon         string     `json:"lon"`
	Class       string     `json:"class"`
	Type        string     `json:"type"`
	Importance  float64    `json:"importance"`
	Addresstype string     `json:"addresstype"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	Address     apiAddress `json:"address"`
}

type apiAddress struct {
	HouseNumber  string `json:"house_number"`
	Road         string `json:"road"`
	Suburb       string `json:"suburb"`
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	County       string `json:"county"`
	State        string `json:"state"`
	Postcode     string `json:"postcode"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
	ISO31662Lvl4 string `json:"ISO3166-2-lvl4"`
}

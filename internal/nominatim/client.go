package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"placebot/internal/models"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

const userAgent = "placebot/1.0"

// Client talks to a Nominatim server. It satisfies the same provider
// interfaces as the PostGIS repository, so the two are interchangeable.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Nominatim client for the given base URL. An empty URL
// selects the public instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// FindNearestLocation resolves coordinates to the nearest known address.
// A nil location with nil error means Nominatim had no result.
func (c *Client) FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Location, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("format", "jsonv2")

	var resp apiResponse
	if err := c.get(ctx, "/reverse", q, &resp); err != nil {
		return nil, fmt.Errorf("nominatim: reverse lookup failed: %w", err)
	}

	if resp.PlaceID == 0 {
		return nil, nil
	}

	return toLocation(resp), nil
}

// SearchLocationsByText forward-geocodes a free-form address query.
func (c *Client) SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("limit", "10")

	var resps []apiResponse
	if err := c.get(ctx, "/search", q, &resps); err != nil {
		return nil, fmt.Errorf("nominatim: search failed: %w", err)
	}

	locations := []models.Location{}
	for _, resp := range resps {
		locations = append(locations, *toLocation(resp))
	}
	return locations, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	// Required by the Nominatim usage policy.
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func toLocation(resp apiResponse) *models.Location {
	loc := &models.Location{
		ID:         resp.PlaceID,
		Name:       resp.Name,
		EntityType: resp.Addresstype,
		Address: &models.Address{
			FormattedAddress: resp.DisplayName,
			Country:          resp.Address.Country,
			AdminDistrict:    resp.Address.State,
			Locality:         locality(resp.Address),
			Neighborhood:     resp.Address.Suburb,
			PostalCode:       resp.Address.Postcode,
			StreetAddress:    streetAddress(resp.Address),
		},
	}

	lat, latErr := strconv.ParseFloat(resp.Lat, 64)
	lon, lonErr := strconv.ParseFloat(resp.Lon, 64)
	if latErr == nil && lonErr == nil {
		loc.Point = &models.GeoPoint{Latitude: lat, Longitude: lon}
	}

	return loc
}

func locality(addr apiAddress) string {
	switch {
	case addr.City != "":
		return addr.City
	case addr.Town != "":
		return addr.Town
	case addr.Village != "":
		return addr.Village
	}
	return addr.County
}

func streetAddress(addr apiAddress) string {
	if addr.Road == "" {
		return ""
	}
	if addr.HouseNumber == "" {
		return addr.Road
	}
	return addr.HouseNumber + " " + addr.Road
}

package dialog

import (
	"context"
	"fmt"

	"placebot/internal/models"
	"placebot/internal/resource"
)

// ReverseGeocoder resolves a coordinate pair to the nearest known address.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error)
}

// Geocoder resolves a free-form address query to candidate locations.
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]models.Location, error)
}

// Options selects how a LocationDialog obtains and refines a location.
type Options struct {
	// UseNativeControl prefers the channel's built-in location share
	// control over the free-text picker, on channels that have one.
	UseNativeControl bool
	// ReverseGeocode resolves bare coordinates to an address before the
	// dialog completes.
	ReverseGeocode bool
}

// Channels with a native location-share control.
var nativeChannels = map[string]bool{
	"telegram": true,
	"facebook": true,
}

// LocationDialog prompts the user for a location and completes with a
// standardized models.Place. Depending on its options it reverse-geocodes
// bare coordinates and demands missing required address fields through a
// sub-dialog before finishing.
type LocationDialog struct {
	channelID string
	prompt    string
	options   Options
	required  models.Field

	reverse   ReverseGeocoder
	geocoder  Geocoder
	resources *resource.Manager

	// requiredPrompted guards the required-fields sub-dialog: it runs at
	// most once per dialog instance even if the resume path re-enters.
	requiredPrompted bool
}

// NewLocationDialog creates a location dialog for one conversation turn
// sequence. prompt falls back to the localized default when empty.
func NewLocationDialog(channelID, prompt string, opts Options, required models.Field, reverse ReverseGeocoder, geocoder Geocoder, resources *resource.Manager) *LocationDialog {
	if resources == nil {
		resources = resource.NewManager("en")
	}
	if prompt == "" {
		prompt = resources.Get("prompt.location")
	}
	return &LocationDialog{
		channelID: channelID,
		prompt:    prompt,
		options:   opts,
		required:  required,
		reverse:   reverse,
		geocoder:  geocoder,
		resources: resources,
	}
}

// Start hands control to the location retriever child: the native share
// control where available and requested, the free-text picker otherwise.
func (d *LocationDialog) Start(ctx context.Context, dc *Context) error {
	var child Dialog
	if d.options.UseNativeControl && nativeChannels[d.channelID] {
		child = newNativeDialog(d.prompt, d.resources)
	} else {
		child = newPickerDialog(d.prompt, d.geocoder, d.resources)
	}
	return dc.Call(ctx, child, d.locationReceived)
}

// OnMessage only fires if a message arrives while no child is active, which
// means a previous turn failed mid-flight. Re-enter the retriever.
func (d *LocationDialog) OnMessage(ctx context.Context, dc *Context, msg *Message) error {
	return d.Start(ctx, dc)
}

func (d *LocationDialog) locationReceived(ctx context.Context, dc *Context, result any) error {
	loc, ok := result.(*models.Location)
	if !ok {
		return fmt.Errorf("dialog: location retriever returned %T, want *models.Location", result)
	}

	if d.options.ReverseGeocode {
		if err := d.tryReverseGeocode(ctx, loc); err != nil {
			return err
		}
	}

	if d.required != models.FieldNone && !d.requiredPrompted {
		d.requiredPrompted = true
		return dc.Call(ctx, newRequiredFieldsDialog(loc, d.required, d.resources), d.requiredFieldsDone)
	}

	return d.complete(ctx, dc, loc)
}

// tryReverseGeocode fills in the address for a bare coordinate pair. The
// geocoder's street-level accuracy is not trusted, so StreetAddress is left
// unset for the user to supply. Locations that already carry an address are
// left alone.
func (d *LocationDialog) tryReverseGeocode(ctx context.Context, loc *models.Location) error {
	if loc.Address != nil || loc.Point == nil || d.reverse == nil {
		return nil
	}

	found, err := d.reverse.ReverseGeocode(ctx, loc.Point.Latitude, loc.Point.Longitude)
	if err != nil {
		return fmt.Errorf("dialog: reverse geocode failed: %w", err)
	}
	if found == nil || found.Address == nil {
		return nil
	}

	loc.Address = &models.Address{
		FormattedAddress: found.Address.FormattedAddress,
		Country:          found.Address.Country,
		AdminDistrict:    found.Address.AdminDistrict,
		Locality:         found.Address.Locality,
		Neighborhood:     found.Address.Neighborhood,
		PostalCode:       found.Address.PostalCode,
	}
	if loc.Name == "" {
		loc.Name = found.Name
	}
	if loc.EntityType == "" {
		loc.EntityType = found.EntityType
	}
	return nil
}

func (d *LocationDialog) requiredFieldsDone(ctx context.Context, dc *Context, result any) error {
	loc, ok := result.(*models.Location)
	if !ok {
		return fmt.Errorf("dialog: required fields dialog returned %T, want *models.Location", result)
	}
	return d.complete(ctx, dc, loc)
}

func (d *LocationDialog) complete(ctx context.Context, dc *Context, loc *models.Location) error {
	place := models.PlaceFromLocation(loc)
	return dc.Done(ctx, &place)
}

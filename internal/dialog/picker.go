package dialog

import (
	"context"
	"strconv"
	"strings"

	"placebot/internal/models"
	"placebot/internal/resource"
)

// maxCandidates caps how many geocoder matches are offered for selection.
const maxCandidates = 5

// pickerDialog retrieves a location by forward-geocoding typed input and
// letting the user pick among the candidates.
type pickerDialog struct {
	prompt    string
	geocoder  Geocoder
	resources *resource.Manager

	candidates []models.Location
}

func newPickerDialog(prompt string, geocoder Geocoder, resources *resource.Manager) *pickerDialog {
	return &pickerDialog{prompt: prompt, geocoder: geocoder, resources: resources}
}

func (d *pickerDialog) Start(ctx context.Context, dc *Context) error {
	return dc.SendText(ctx, d.prompt)
}

func (d *pickerDialog) OnMessage(ctx context.Context, dc *Context, msg *Message) error {
	if msg.Point != nil {
		// Some channels let users share coordinates even without a
		// native control prompt; accept them.
		loc := &models.Location{Point: &models.GeoPoint{
			Latitude:  msg.Point.Latitude,
			Longitude: msg.Point.Longitude,
		}}
		return dc.Done(ctx, loc)
	}

	if len(d.candidates) > 0 {
		return d.handleSelection(ctx, dc, msg.Text)
	}
	return d.handleQuery(ctx, dc, msg.Text)
}

func (d *pickerDialog) handleQuery(ctx context.Context, dc *Context, text string) error {
	query := strings.TrimSpace(text)
	if query == "" {
		return dc.SendText(ctx, d.resources.Get("picker.empty"))
	}

	results, err := d.geocoder.Geocode(ctx, query)
	if err != nil {
		return err
	}

	switch {
	case len(results) == 0:
		return dc.SendText(ctx, d.resources.Get("picker.no_results"))
	case len(results) == 1:
		loc := results[0]
		return dc.Done(ctx, &loc)
	}

	if len(results) > maxCandidates {
		results = results[:maxCandidates]
	}
	d.candidates = results
	return dc.SendChoices(ctx, d.resources.Get("picker.choose"), d.choiceLabels())
}

func (d *pickerDialog) handleSelection(ctx context.Context, dc *Context, text string) error {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > len(d.candidates) {
		return dc.SendChoices(ctx, d.resources.Get("picker.invalid_choice"), d.choiceLabels())
	}

	loc := d.candidates[n-1]
	return dc.Done(ctx, &loc)
}

func (d *pickerDialog) choiceLabels() []string {
	labels := make([]string, len(d.candidates))
	for i, c := range d.candidates {
		labels[i] = strconv.Itoa(i+1) + ". " + candidateLabel(c)
	}
	return labels
}

func candidateLabel(loc models.Location) string {
	if loc.Address != nil && loc.Address.FormattedAddress != "" {
		return loc.Address.FormattedAddress
	}
	if loc.Name != "" {
		return loc.Name
	}
	if loc.Point != nil {
		return strconv.FormatFloat(loc.Point.Latitude, 'f', 6, 64) + ", " +
			strconv.FormatFloat(loc.Point.Longitude, 'f', 6, 64)
	}
	return "unknown location"
}

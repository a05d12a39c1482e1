package dialog

import (
	"context"
	"strings"

	"placebot/internal/models"
	"placebot/internal/resource"
)

// requiredFieldsDialog walks the missing required address fields in prompt
// order, asking for each one, and completes with the filled-in location.
type requiredFieldsDialog struct {
	location  *models.Location
	required  models.Field
	resources *resource.Manager

	current models.Field
	started bool
}

func newRequiredFieldsDialog(loc *models.Location, required models.Field, resources *resource.Manager) *requiredFieldsDialog {
	return &requiredFieldsDialog{location: loc, required: required, resources: resources}
}

func (d *requiredFieldsDialog) Start(ctx context.Context, dc *Context) error {
	if d.location.Address == nil {
		d.location.Address = &models.Address{}
	}

	missing := d.required.MissingFields(d.location.Address)
	if len(missing) == 0 {
		return dc.Done(ctx, d.location)
	}

	if !d.started {
		d.started = true
		if err := dc.SendText(ctx, d.resources.Get("required.intro")); err != nil {
			return err
		}
	}

	d.current = missing[0]
	return dc.SendText(ctx, d.resources.RequiredFieldPrompt(d.current))
}

func (d *requiredFieldsDialog) OnMessage(ctx context.Context, dc *Context, msg *Message) error {
	value := strings.TrimSpace(msg.Text)
	if value == "" {
		if err := dc.SendText(ctx, d.resources.Get("required.empty")); err != nil {
			return err
		}
		return dc.SendText(ctx, d.resources.RequiredFieldPrompt(d.current))
	}

	d.location.Address.SetFieldValue(d.current, value)
	return d.Start(ctx, dc)
}

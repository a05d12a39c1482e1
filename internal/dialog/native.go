package dialog

import (
	"context"

	"placebot/internal/models"
	"placebot/internal/resource"
)

// nativeDialog retrieves a location through the channel's built-in share
// control and resolves to a Location holding only a coordinate pair.
type nativeDialog struct {
	prompt    string
	resources *resource.Manager
}

func newNativeDialog(prompt string, resources *resource.Manager) *nativeDialog {
	return &nativeDialog{prompt: prompt, resources: resources}
}

func (d *nativeDialog) Start(ctx context.Context, dc *Context) error {
	return dc.RequestLocation(ctx, d.prompt, d.resources.Get("native.button"))
}

func (d *nativeDialog) OnMessage(ctx context.Context, dc *Context, msg *Message) error {
	if msg.Point == nil {
		return dc.RequestLocation(ctx, d.resources.Get("native.retry"), d.resources.Get("native.button"))
	}

	loc := &models.Location{
		Point: &models.GeoPoint{
			Latitude:  msg.Point.Latitude,
			Longitude: msg.Point.Longitude,
		},
	}
	return dc.Done(ctx, loc)
}

package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placebot/internal/models"
	"placebot/internal/resource"
)

func TestRequiredFieldsDialog_PromptsInOrder(t *testing.T) {
	recorder := &completionRecorder{}
	sender := &fakeSender{}
	resources := resource.NewManager("en")
	ctx := context.Background()

	loc := &models.Location{Address: &models.Address{Locality: "Berlin"}}
	d := newRequiredFieldsDialog(loc, models.FieldStreetAddress|models.FieldLocality|models.FieldCountry, resources)

	s := &session{}
	dc := &Context{conversationID: 1, session: s, sender: sender, onDone: recorder.record}
	s.push(frame{dialog: d})

	require.NoError(t, d.Start(ctx, dc))
	// Locality is already set, so only street and country are asked for.
	require.Equal(t, []string{
		resources.Get("required.intro"),
		resources.Get("required.street_address"),
	}, sender.texts)

	require.NoError(t, d.OnMessage(ctx, dc, &Message{Text: "1 Main St"}))
	assert.Equal(t, resources.Get("required.country"), sender.texts[len(sender.texts)-1])

	require.NoError(t, d.OnMessage(ctx, dc, &Message{Text: "Germany"}))

	require.Len(t, recorder.results, 1)
	done := recorder.results[0].(*models.Location)
	assert.Equal(t, "1 Main St", done.Address.StreetAddress)
	assert.Equal(t, "Berlin", done.Address.Locality)
	assert.Equal(t, "Germany", done.Address.Country)
}

func TestRequiredFieldsDialog_EmptyAnswerReprompts(t *testing.T) {
	recorder := &completionRecorder{}
	sender := &fakeSender{}
	resources := resource.NewManager("en")
	ctx := context.Background()

	loc := &models.Location{}
	d := newRequiredFieldsDialog(loc, models.FieldPostalCode, resources)

	s := &session{}
	dc := &Context{conversationID: 1, session: s, sender: sender, onDone: recorder.record}
	s.push(frame{dialog: d})

	require.NoError(t, d.Start(ctx, dc))
	require.NoError(t, d.OnMessage(ctx, dc, &Message{Text: "  "}))

	assert.Contains(t, sender.texts, resources.Get("required.empty"))
	assert.Empty(t, recorder.results)

	require.NoError(t, d.OnMessage(ctx, dc, &Message{Text: "10178"}))
	require.Len(t, recorder.results, 1)
	done := recorder.results[0].(*models.Location)
	assert.Equal(t, "10178", done.Address.PostalCode)
}

func TestRequiredFieldsDialog_NothingMissingCompletesImmediately(t *testing.T) {
	recorder := &completionRecorder{}
	sender := &fakeSender{}
	ctx := context.Background()

	loc := &models.Location{Address: &models.Address{PostalCode: "10178"}}
	d := newRequiredFieldsDialog(loc, models.FieldPostalCode, resource.NewManager("en"))

	s := &session{}
	dc := &Context{conversationID: 1, session: s, sender: sender, onDone: recorder.record}
	s.push(frame{dialog: d})

	require.NoError(t, d.Start(ctx, dc))
	assert.Empty(t, sender.texts)
	assert.Len(t, recorder.results, 1)
}

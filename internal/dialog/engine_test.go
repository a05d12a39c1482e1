package dialog

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"placebot/internal/models"
)

// fakeSender records every outbound prompt for assertions.
type fakeSender struct {
	texts            []string
	locationRequests []string
	choicePrompts    []string
	choices          [][]string
}

func (f *fakeSender) SendText(ctx context.Context, conversationID int64, text string) error {
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeSender) RequestLocation(ctx context.Context, conversationID int64, text, buttonLabel string) error {
	f.locationRequests = append(f.locationRequests, text)
	return nil
}

func (f *fakeSender) SendChoices(ctx context.Context, conversationID int64, text string, choices []string) error {
	f.choicePrompts = append(f.choicePrompts, text)
	f.choices = append(f.choices, choices)
	return nil
}

// completionRecorder captures root dialog results.
type completionRecorder struct {
	results []any
}

func (r *completionRecorder) record(ctx context.Context, conversationID int64, result any) error {
	r.results = append(r.results, result)
	return nil
}

// MockReverseGeocoder is a mock implementation of the ReverseGeocoder
// interface.
type MockReverseGeocoder struct {
	mock.Mock
}

func (m *MockReverseGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error) {
	args := m.Called(ctx, lat, lon)
	loc, _ := args.Get(0).(*models.Location)
	return loc, args.Error(1)
}

// MockGeocoder is a mock implementation of the Geocoder interface.
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) ([]models.Location, error) {
	args := m.Called(ctx, address)
	locs, _ := args.Get(0).([]models.Location)
	return locs, args.Error(1)
}

func newTestEngine(onDone CompletionFunc) (*Engine, *fakeSender) {
	sender := &fakeSender{}
	return NewEngine(sender, onDone, zerolog.Nop()), sender
}

func TestEngine_HandleMessageWithoutDialog(t *testing.T) {
	engine, _ := newTestEngine(nil)

	err := engine.HandleMessage(context.Background(), 1, &Message{Text: "hello"})
	assert.ErrorIs(t, err, ErrNoActiveDialog)
}

func TestEngine_NativeFlowCompletes(t *testing.T) {
	recorder := &completionRecorder{}
	engine, sender := newTestEngine(recorder.record)
	ctx := context.Background()

	d := NewLocationDialog("telegram", "where to?", Options{UseNativeControl: true}, models.FieldNone, nil, nil, nil)

	require.NoError(t, engine.Begin(ctx, 7, d))
	require.Equal(t, []string{"where to?"}, sender.locationRequests)
	assert.True(t, engine.Active(7))

	// Text instead of a share gets a retry prompt.
	require.NoError(t, engine.HandleMessage(ctx, 7, &Message{Text: "here"}))
	require.Len(t, sender.locationRequests, 2)

	point := &models.GeoPoint{Latitude: 48.2082, Longitude: 16.3738}
	require.NoError(t, engine.HandleMessage(ctx, 7, &Message{Point: point}))

	require.Len(t, recorder.results, 1)
	place, ok := recorder.results[0].(*models.Place)
	require.True(t, ok)
	assert.Nil(t, place.Address)
	require.NotNil(t, place.Geo)
	assert.Equal(t, 48.2082, place.Geo.Latitude)
	assert.Equal(t, 16.3738, place.Geo.Longitude)
	assert.False(t, engine.Active(7))
}

func TestEngine_BeginDiscardsRunningDialog(t *testing.T) {
	recorder := &completionRecorder{}
	engine, sender := newTestEngine(recorder.record)
	ctx := context.Background()

	first := NewLocationDialog("telegram", "first?", Options{UseNativeControl: true}, models.FieldNone, nil, nil, nil)
	second := NewLocationDialog("telegram", "second?", Options{UseNativeControl: true}, models.FieldNone, nil, nil, nil)

	require.NoError(t, engine.Begin(ctx, 1, first))
	require.NoError(t, engine.Begin(ctx, 1, second))
	assert.Equal(t, []string{"first?", "second?"}, sender.locationRequests)

	// The share resolves the second dialog, not the abandoned first one.
	require.NoError(t, engine.HandleMessage(ctx, 1, &Message{Point: &models.GeoPoint{Latitude: 1, Longitude: 2}}))
	assert.Len(t, recorder.results, 1)
}

func TestEngine_ConversationsAreIndependent(t *testing.T) {
	recorder := &completionRecorder{}
	engine, _ := newTestEngine(recorder.record)
	ctx := context.Background()

	for _, id := range []int64{1, 2} {
		d := NewLocationDialog("telegram", "where?", Options{UseNativeControl: true}, models.FieldNone, nil, nil, nil)
		require.NoError(t, engine.Begin(ctx, id, d))
	}

	require.NoError(t, engine.HandleMessage(ctx, 2, &Message{Point: &models.GeoPoint{Latitude: 5, Longitude: 6}}))

	assert.Len(t, recorder.results, 1)
	assert.True(t, engine.Active(1))
	assert.False(t, engine.Active(2))
}

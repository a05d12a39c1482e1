package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"placebot/internal/models"
)

// MockReverseGeoCodeService is a mock implementation of the
// ReverseGeoCodeService interface.
type MockReverseGeoCodeService struct {
	mock.Mock
}

func (m *MockReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat float64, lon float64) (*models.Location, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(*models.Location), args.Error(1)
}

func TestReverseGeocodeHandler_ReverseGeocode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	berlin := &models.Location{
		ID: 1,
		Address: &models.Address{
			Country:       "Germany",
			AdminDistrict: "Berlin",
			Locality:      "Berlin",
			PostalCode:    "10178",
		},
		Point: &models.GeoPoint{Latitude: 52.52, Longitude: 13.405},
	}

	tests := []struct {
		name           string
		rawQuery       string
		mockLat        float64
		mockLon        float64
		mockLocation   *models.Location
		mockError      error
		useMock        bool
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameters",
			rawQuery:       "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameters 'lat' and 'lon'"},
		},
		{
			name:           "invalid latitude format",
			rawQuery:       url.Values{"lat": {"north"}, "lon": {"13.405"}}.Encode(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid latitude format"},
		},
		{
			name:           "invalid longitude format",
			rawQuery:       url.Values{"lat": {"52.52"}, "lon": {"east"}}.Encode(),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid longitude format"},
		},
		{
			name:           "successful lookup with result",
			rawQuery:       url.Values{"lat": {"52.52"}, "lon": {"13.405"}}.Encode(),
			mockLat:        52.52,
			mockLon:        13.405,
			mockLocation:   berlin,
			useMock:        true,
			expectedStatus: http.StatusOK,
			expectedBody:   berlin,
		},
		{
			name:           "successful lookup with no result",
			rawQuery:       url.Values{"lat": {"52.52"}, "lon": {"13.405"}}.Encode(),
			mockLat:        52.52,
			mockLon:        13.405,
			mockLocation:   nil,
			useMock:        true,
			expectedStatus: http.StatusNotFound,
			expectedBody:   gin.H{"error": "no address found near the specified coordinates"},
		},
		{
			name:           "service error",
			rawQuery:       url.Values{"lat": {"52.52"}, "lon": {"13.405"}}.Encode(),
			mockLat:        52.52,
			mockLon:        13.405,
			mockError:      assert.AnError,
			useMock:        true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockReverseGeoCodeService)
			handler := NewReverseGeocodeHandler(mockSvc)

			if tt.useMock {
				mockSvc.On("ReverseGeocode", mock.Anything, tt.mockLat, tt.mockLon).Return(tt.mockLocation, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/reverse-geocode", nil)
			req.URL.RawQuery = tt.rawQuery
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.ReverseGeocode(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			expectedJSON, err := json.Marshal(tt.expectedBody)
			require.NoError(t, err)
			assert.JSONEq(t, string(expectedJSON), w.Body.String())

			mockSvc.AssertExpectations(t)
		})
	}
}

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

// MockGeoCodeService is a mock implementation of the GeoCodeService
// interface.
type MockGeoCodeService struct {
	mock.Mock
}

func (m *MockGeoCodeService) Geocode(ctx context.Context, address string) ([]models.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).([]models.Location), args.Error(1)
}

func TestGeoCodeHandler_GeoCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		mockLocations  []models.Location
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required query parameter 'q'"},
		},
		{
			name:  "successful geocoding with results",
			query: "1 Main Street Springfield",
			mockLocations: []models.Location{
				{
					ID:   1,
					Name: "Springfield",
					Address: &models.Address{
						Country:       "United States",
						Locality:      "Springfield",
						StreetAddress: "1 Main Street",
					},
					Point: &models.GeoPoint{Latitude: 39.7817, Longitude: -89.6501},
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody: []models.Location{
				{
					ID:   1,
					Name: "Springfield",
					Address: &models.Address{
						Country:       "United States",
						Locality:      "Springfield",
						StreetAddress: "1 Main Street",
					},
					Point: &models.GeoPoint{Latitude: 39.7817, Longitude: -89.6501},
				},
			},
		},
		{
			name:           "successful geocoding with no results",
			query:          "nowhere at all",
			mockLocations:  []models.Location{},
			expectedStatus: http.StatusOK,
			expectedBody:   []models.Location{},
		},
		{
			name:           "service error",
			query:          "1 Main Street",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockGeoCodeService)
			handler := NewGeoCodeHandler(mockSvc)

			if tt.query != "" {
				mockSvc.On("Geocode", mock.Anything, tt.query).Return(tt.mockLocations, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/geocode", nil)
			if tt.query != "" {
				req.URL.RawQuery = url.Values{"q": {tt.query}}.Encode()
			}
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.GeoCode(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			expectedJSON, err := json.Marshal(tt.expectedBody)
			require.NoError(t, err)
			assert.JSONEq(t, string(expectedJSON), w.Body.String())

			mockSvc.AssertExpectations(t)
		})
	}
}

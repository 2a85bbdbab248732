package importGuests

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"floorPlanner/internal/http-server/handlers/plan/importGuests/mocks"
	"floorPlanner/internal/lib/logger/handlers/slogdiscard"
	"floorPlanner/internal/models"
	"floorPlanner/internal/session"
)

func TestImportGuestsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testDate := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	testReservations := []models.Reservation{
		{
			ID: 1, Date: testDate, ContactName: "Novak", Status: models.ReservationStatusPaid,
			Persons: []models.Person{{Type: models.PersonAdult}, {Type: models.PersonChild}, {Type: models.PersonInfant}},
		},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(backend *mocks.ReservationLister, plans *mocks.GuestImporter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/events/7/plan/import",
			mockSetup: func(backend *mocks.ReservationLister, plans *mocks.GuestImporter) {
				plans.On("EventDate", 7).Return(testDate, nil)
				backend.On("ListReservations", mock.Anything, testDate).Return(testReservations, nil)
				plans.On("ImportReservations", 7, testReservations).Return(3, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","imported":3}`,
		},
		{
			name: "No matching reservations is a success",
			url:  "/events/7/plan/import",
			mockSetup: func(backend *mocks.ReservationLister, plans *mocks.GuestImporter) {
				plans.On("EventDate", 7).Return(testDate, nil)
				backend.On("ListReservations", mock.Anything, testDate).Return([]models.Reservation{}, nil)
				plans.On("ImportReservations", 7, []models.Reservation{}).Return(0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","imported":0}`,
		},
		{
			name: "Plan not loaded",
			url:  "/events/7/plan/import",
			mockSetup: func(backend *mocks.ReservationLister, plans *mocks.GuestImporter) {
				plans.On("EventDate", 7).Return(time.Time{},
					fmt.Errorf("event 7: %w", session.ErrPlanNotLoaded))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"floor plan not loaded"}`,
		},
		{
			name: "Backend failure",
			url:  "/events/7/plan/import",
			mockSetup: func(backend *mocks.ReservationLister, plans *mocks.GuestImporter) {
				plans.On("EventDate", 7).Return(testDate, nil)
				backend.On("ListReservations", mock.Anything, testDate).Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"failed to fetch reservations"}`,
		},
		{
			name:           "Invalid event id format",
			url:            "/events/abc/plan/import",
			mockSetup:      func(backend *mocks.ReservationLister, plans *mocks.GuestImporter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			backend := mocks.NewReservationLister(t)
			plans := mocks.NewGuestImporter(t)
			tc.mockSetup(backend, plans)

			router := chi.NewRouter()
			router.Post("/events/{id}/plan/import", New(logger, backend, plans))

			req, err := http.NewRequest("POST", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

// Import is wired end to end against the real registry: reservations
// for the event's date become unassigned guests, a second run appends
// duplicates.
func TestImportAgainstRegistry(t *testing.T) {
	t.Parallel()

	testDate := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	registry := session.NewRegistry()
	registry.Hydrate(models.Event{ID: 7, Date: testDate})

	backend := mocks.NewReservationLister(t)
	backend.On("ListReservations", mock.Anything, testDate).Return([]models.Reservation{
		{ID: 1, Date: testDate, ContactName: "Novak", Persons: []models.Person{
			{Type: models.PersonAdult}, {Type: models.PersonAdult},
		}},
	}, nil)

	router := chi.NewRouter()
	router.Post("/events/{id}/plan/import", New(slogdiscard.NewDiscardLogger(), backend, registry))

	for run := 1; run <= 2; run++ {
		req, err := http.NewRequest("POST", "/events/7/plan/import", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"OK","imported":2}`, rr.Body.String())
	}

	event, err := registry.Snapshot(7)
	require.NoError(t, err)
	assert.Len(t, event.Guests, 4, "repeated import accumulates")
}

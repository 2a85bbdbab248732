package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorPlanner/internal/config"
	"floorPlanner/internal/models"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(&config.Backend{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestGetEvent(t *testing.T) {
	t.Parallel()

	hits := 0
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/events/7", r.URL.Path)

		json.NewEncoder(w).Encode(models.Event{
			ID:        7,
			PaidCount: 12,
			Tables:    []models.Table{{ID: 1, Name: "t1", Room: models.RoomRoubenka, Capacity: 4}},
		})
	})

	event, err := client.GetEvent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, event.ID)
	assert.Equal(t, 12, event.PaidCount)
	require.Len(t, event.Tables, 1)

	// Second read is served from the cache.
	_, err = client.GetEvent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestGetEventServerError(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetEvent(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestListReservations(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reservations", r.URL.Path)
		assert.Equal(t, "2025-06-14", r.URL.Query().Get("date"))

		json.NewEncoder(w).Encode([]models.Reservation{
			{ID: 1, ContactName: "Novak", Status: models.ReservationStatusPaid},
		})
	})

	date := time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC)
	reservations, err := client.ListReservations(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "Novak", reservations[0].ContactName)
}

func TestSaveEvent(t *testing.T) {
	t.Parallel()

	var saved models.Event
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode(models.Event{ID: 7, PaidCount: 1})
			return
		}

		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/events/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
	})

	event := models.Event{
		ID:     7,
		Tables: []models.Table{{ID: 1, Name: "t1", Room: models.RoomStodola, Capacity: 6, Guests: []models.Guest{}}},
		Guests: []models.Guest{{ID: 1, Name: "G1", Category: models.CategoryAdult}},
	}

	require.NoError(t, client.SaveEvent(context.Background(), event))
	assert.Equal(t, 7, saved.ID)
	require.Len(t, saved.Guests, 1)
}

func TestSaveEventInvalidatesCache(t *testing.T) {
	t.Parallel()

	gets := 0
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets++
			json.NewEncoder(w).Encode(models.Event{ID: 7})
			return
		}
	})

	_, err := client.GetEvent(context.Background(), 7)
	require.NoError(t, err)

	require.NoError(t, client.SaveEvent(context.Background(), models.Event{ID: 7}))

	_, err = client.GetEvent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, gets, "save must invalidate the cached event")
}

func TestSaveEventFailureKeepsCache(t *testing.T) {
	t.Parallel()

	gets := 0
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets++
			json.NewEncoder(w).Encode(models.Event{ID: 7})
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetEvent(context.Background(), 7)
	require.NoError(t, err)

	err = client.SaveEvent(context.Background(), models.Event{ID: 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")

	_, err = client.GetEvent(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, gets, "failed save must not invalidate the cache")
}

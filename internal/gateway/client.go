package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"floorPlanner/internal/config"
	"floorPlanner/internal/models"
)

// Client talks to the event back office's REST API. It memoizes
// fetched event documents; a successful save invalidates the cached
// entry so the next load reflects the server copy. A failed save
// leaves the cache untouched.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[int]models.Event
}

func New(cfg *config.Backend) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		cache:   make(map[int]models.Event),
	}
}

// GetEvent fetches the event document, serving repeated reads from
// the cache.
func (c *Client) GetEvent(ctx context.Context, eventID int) (models.Event, error) {
	const op = "gateway.GetEvent"

	c.mu.Lock()
	cached, ok := c.cache[eventID]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	var event models.Event
	if err := c.getJSON(ctx, fmt.Sprintf("%s/events/%d", c.baseURL, eventID), &event); err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	c.cache[eventID] = event
	c.mu.Unlock()

	return event, nil
}

// ListReservations fetches the reservation records booked for the
// given calendar day.
func (c *Client) ListReservations(ctx context.Context, date time.Time) ([]models.Reservation, error) {
	const op = "gateway.ListReservations"

	u := fmt.Sprintf("%s/reservations?date=%s", c.baseURL, url.QueryEscape(date.Format("2006-01-02")))

	var reservations []models.Reservation
	if err := c.getJSON(ctx, u, &reservations); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reservations, nil
}

// SaveEvent submits the full event document as one replacement of the
// server's stored layout. There is no partial save; the payload
// always supersedes the whole previous state for this event.
func (c *Client) SaveEvent(ctx context.Context, event models.Event) error {
	const op = "gateway.SaveEvent"

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	u := fmt.Sprintf("%s/events/%d", c.baseURL, event.ID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	c.mu.Lock()
	delete(c.cache, event.ID)
	c.mu.Unlock()

	return nil
}

func (c *Client) getJSON(ctx context.Context, u string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"floorPlanner/internal/floorplan"
	"floorPlanner/internal/models"
)

// ErrPlanNotLoaded is returned for event ids that have no working
// copy yet. Editing an implicit empty plan is refused on purpose: the
// next save would wipe the server copy.
var ErrPlanNotLoaded = errors.New("floor plan not loaded")

// session is one event's working copy: the plan plus the event fields
// the plan does not own (date and the manually entered headcounts).
// The mutex serializes handler access; edits within one session are
// strictly sequential, matching a single operator clicking through
// the UI.
type session struct {
	mu        sync.Mutex
	date      time.Time
	paidCount int
	freeCount int
	plan      *floorplan.Plan
}

// Registry holds the working copies, one per event id. It is the
// single mutation surface between the HTTP handlers and the engine;
// every handler interface in the plan handler packages is implemented
// here.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int]*session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int]*session)}
}

// Hydrate replaces the event's working copy with the given document.
// Prior local state, including unsaved edits, is discarded wholesale.
func (r *Registry) Hydrate(event models.Event) {
	plan := floorplan.New()
	plan.Hydrate(event)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[event.ID] = &session{
		date:      event.Date,
		paidCount: event.PaidCount,
		freeCount: event.FreeCount,
		plan:      plan,
	}
}

func (r *Registry) session(eventID int) (*session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[eventID]
	if !ok {
		return nil, fmt.Errorf("event %d: %w", eventID, ErrPlanNotLoaded)
	}
	return s, nil
}

func (r *Registry) EventDate(eventID int) (time.Time, error) {
	s, err := r.session(eventID)
	if err != nil {
		return time.Time{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.date, nil
}

func (r *Registry) CreateTable(eventID int, name string, room models.Room, capacity int) (models.Table, error) {
	s, err := r.session(eventID)
	if err != nil {
		return models.Table{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.CreateTable(name, room, capacity)
}

func (r *Registry) UpdateTable(eventID, tableID int, name string, room models.Room, capacity int) error {
	s, err := r.session(eventID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.UpdateTable(tableID, name, room, capacity)
}

func (r *Registry) DeleteTable(eventID, tableID int) (int, error) {
	s, err := r.session(eventID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.DeleteTable(tableID)
}

func (r *Registry) MoveGuest(eventID, guestID int, target floorplan.DropTarget) error {
	s, err := r.session(eventID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.MoveGuest(guestID, target)
}

func (r *Registry) RemoveGuest(eventID, guestID int) error {
	s, err := r.session(eventID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.RemoveGuest(guestID)
}

func (r *Registry) DeleteGuest(eventID, guestID int) error {
	s, err := r.session(eventID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.DeleteGuest(guestID)
}

func (r *Registry) AddGuest(eventID int, name string, category models.GuestCategory, nationality string, paid bool) (models.Guest, error) {
	s, err := r.session(eventID)
	if err != nil {
		return models.Guest{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.AddGuest(name, category, nationality, paid), nil
}

func (r *Registry) ImportReservations(eventID int, reservations []models.Reservation) (int, error) {
	s, err := r.session(eventID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.ImportReservations(s.date, reservations), nil
}

func (r *Registry) Summary(eventID int) (floorplan.Summary, error) {
	s, err := r.session(eventID)
	if err != nil {
		return floorplan.Summary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.Summarize(s.paidCount, s.freeCount), nil
}

func (r *Registry) FilterUnassigned(eventID int, nationality string) ([]models.Guest, error) {
	s, err := r.session(eventID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plan.FilterUnassigned(nationality), nil
}

// Snapshot assembles the full event document for the save call:
// tables with their assigned guests embedded plus the unassigned
// pool, alongside the manually entered headcounts.
func (r *Registry) Snapshot(eventID int) (models.Event, error) {
	s, err := r.session(eventID)
	if err != nil {
		return models.Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tables, unassigned := s.plan.Snapshot()

	return models.Event{
		ID:        eventID,
		Date:      s.date,
		PaidCount: s.paidCount,
		FreeCount: s.freeCount,
		Tables:    tables,
		Guests:    unassigned,
	}, nil
}

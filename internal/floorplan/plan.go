package floorplan

import (
	"fmt"

	"floorPlanner/internal/models"
)

// Plan is the in-memory working copy of one event's floor plan: the
// table store and the guest roster. It is the only mutation surface
// for both; every structural change goes through one of the methods
// below. A guest's table reference always points at a table that
// exists in the plan — deleting a table clears the reference on every
// guest it displaces, so the invariant holds by construction.
//
// Plan is not safe for concurrent use; the session layer serializes
// access to it.
type Plan struct {
	tables []models.Table
	guests []models.Guest
}

func New() *Plan {
	return &Plan{}
}

// Hydrate replaces the whole plan with the state of the given event
// document. Guests embedded in tables become assigned roster entries,
// top-level guests become the unassigned pool. Prior state is
// discarded wholesale, never merged.
func (p *Plan) Hydrate(event models.Event) {
	p.tables = make([]models.Table, 0, len(event.Tables))
	p.guests = nil

	for _, t := range event.Tables {
		seated := t.Guests
		t.Guests = nil
		p.tables = append(p.tables, t)

		for _, g := range seated {
			tableID := t.ID
			g.TableID = &tableID
			p.guests = append(p.guests, g)
		}
	}

	for _, g := range event.Guests {
		g.TableID = nil
		p.guests = append(p.guests, g)
	}
}

// Tables returns the table store in creation order, without embedded
// guests.
func (p *Plan) Tables() []models.Table {
	out := make([]models.Table, len(p.tables))
	copy(out, p.tables)
	return out
}

func (p *Plan) TablesInRoom(room models.Room) []models.Table {
	var out []models.Table
	for _, t := range p.tables {
		if t.Room == room {
			out = append(out, t)
		}
	}
	return out
}

// Guests returns the full roster in creation order.
func (p *Plan) Guests() []models.Guest {
	out := make([]models.Guest, 0, len(p.guests))
	for _, g := range p.guests {
		out = append(out, cloneGuest(g))
	}
	return out
}

func (p *Plan) UnassignedGuests() []models.Guest {
	var out []models.Guest
	for _, g := range p.guests {
		if !g.Assigned() {
			out = append(out, cloneGuest(g))
		}
	}
	return out
}

// SeatedAt returns the guests currently assigned to the given table,
// in roster order.
func (p *Plan) SeatedAt(tableID int) []models.Guest {
	var out []models.Guest
	for _, g := range p.guests {
		if g.TableID != nil && *g.TableID == tableID {
			out = append(out, cloneGuest(g))
		}
	}
	return out
}

// CreateTable adds a table with an empty guest set. The id is
// allocated as max(existing)+1 so ids stay monotonic and are never
// reused after a deletion.
func (p *Plan) CreateTable(name string, room models.Room, capacity int) (models.Table, error) {
	const op = "floorplan.CreateTable"

	if !room.Valid() {
		return models.Table{}, fmt.Errorf("%s: %w: %q", op, ErrUnknownRoom, room)
	}

	table := models.Table{
		ID:       p.nextTableID(),
		Name:     name,
		Room:     room,
		Capacity: capacity,
	}
	p.tables = append(p.tables, table)

	return table, nil
}

// UpdateTable replaces name, room and capacity on an existing table.
// Guest assignments are untouched even when the room changes.
func (p *Plan) UpdateTable(tableID int, name string, room models.Room, capacity int) error {
	const op = "floorplan.UpdateTable"

	if !room.Valid() {
		return fmt.Errorf("%s: %w: %q", op, ErrUnknownRoom, room)
	}

	for i := range p.tables {
		if p.tables[i].ID == tableID {
			p.tables[i].Name = name
			p.tables[i].Room = room
			p.tables[i].Capacity = capacity
			return nil
		}
	}

	return fmt.Errorf("%s: %w: id %d", op, ErrTableNotFound, tableID)
}

// DeleteTable removes the table and moves every guest seated at it
// back to the unassigned pool. No guest is deleted. Returns how many
// guests were displaced.
func (p *Plan) DeleteTable(tableID int) (int, error) {
	const op = "floorplan.DeleteTable"

	idx := -1
	for i := range p.tables {
		if p.tables[i].ID == tableID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%s: %w: id %d", op, ErrTableNotFound, tableID)
	}

	p.tables = append(p.tables[:idx], p.tables[idx+1:]...)

	displaced := 0
	for i := range p.guests {
		if p.guests[i].TableID != nil && *p.guests[i].TableID == tableID {
			p.guests[i].TableID = nil
			displaced++
		}
	}

	return displaced, nil
}

// MoveGuest is the drag-and-drop primitive: it sets or clears the
// guest's table reference according to the drop target. A target that
// does not resolve to an existing table, an existing guest or the
// unassigned pool leaves the guest untouched.
func (p *Plan) MoveGuest(guestID int, target DropTarget) error {
	const op = "floorplan.MoveGuest"

	guest := p.findGuest(guestID)
	if guest == nil {
		return fmt.Errorf("%s: %w: id %d", op, ErrGuestNotFound, guestID)
	}

	switch target.kind {
	case targetTable:
		if !p.tableExists(target.tableID) {
			return nil
		}
		tableID := target.tableID
		guest.TableID = &tableID
	case targetGuest:
		other := p.findGuest(target.guestID)
		if other == nil {
			return nil
		}
		if other.TableID == nil {
			guest.TableID = nil
			return nil
		}
		tableID := *other.TableID
		guest.TableID = &tableID
	case targetUnassigned:
		guest.TableID = nil
	default:
		// Unresolved drop target: no-op.
	}

	return nil
}

// AddGuest creates a manually entered guest in the unassigned pool.
func (p *Plan) AddGuest(name string, category models.GuestCategory, nationality string, paid bool) models.Guest {
	guest := models.Guest{
		ID:          p.nextGuestID(),
		Name:        name,
		Category:    category,
		Nationality: nationality,
		Paid:        paid,
	}
	p.guests = append(p.guests, guest)

	return cloneGuest(guest)
}

// RemoveGuest clears the guest's table reference without deleting the
// record.
func (p *Plan) RemoveGuest(guestID int) error {
	const op = "floorplan.RemoveGuest"

	guest := p.findGuest(guestID)
	if guest == nil {
		return fmt.Errorf("%s: %w: id %d", op, ErrGuestNotFound, guestID)
	}

	guest.TableID = nil

	return nil
}

// DeleteGuest removes the guest record entirely.
func (p *Plan) DeleteGuest(guestID int) error {
	const op = "floorplan.DeleteGuest"

	for i := range p.guests {
		if p.guests[i].ID == guestID {
			p.guests = append(p.guests[:i], p.guests[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%s: %w: id %d", op, ErrGuestNotFound, guestID)
}

// Snapshot assembles the wire form of the plan: every table with its
// assigned guests embedded, plus the unassigned pool. Together they
// cover the full roster exactly once.
func (p *Plan) Snapshot() (tables []models.Table, unassigned []models.Guest) {
	tables = make([]models.Table, 0, len(p.tables))
	for _, t := range p.tables {
		t.Guests = p.SeatedAt(t.ID)
		if t.Guests == nil {
			t.Guests = []models.Guest{}
		}
		tables = append(tables, t)
	}

	unassigned = p.UnassignedGuests()
	if unassigned == nil {
		unassigned = []models.Guest{}
	}

	return tables, unassigned
}

func (p *Plan) findGuest(guestID int) *models.Guest {
	for i := range p.guests {
		if p.guests[i].ID == guestID {
			return &p.guests[i]
		}
	}
	return nil
}

func (p *Plan) tableExists(tableID int) bool {
	for _, t := range p.tables {
		if t.ID == tableID {
			return true
		}
	}
	return false
}

func (p *Plan) nextTableID() int {
	next := 1
	for _, t := range p.tables {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

func (p *Plan) nextGuestID() int {
	next := 1
	for _, g := range p.guests {
		if g.ID >= next {
			next = g.ID + 1
		}
	}
	return next
}

func cloneGuest(g models.Guest) models.Guest {
	if g.TableID != nil {
		tableID := *g.TableID
		g.TableID = &tableID
	}
	if g.ReservationID != nil {
		id := *g.ReservationID
		g.ReservationID = &id
	}
	if g.PersonIndex != nil {
		idx := *g.PersonIndex
		g.PersonIndex = &idx
	}
	return g
}

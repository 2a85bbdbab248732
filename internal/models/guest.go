package models

type GuestCategory string

const (
	CategoryAdult GuestCategory = "adult"
	CategoryChild GuestCategory = "child"
)

// Guest is one seated (or not yet seated) person on the event's
// roster. TableID is the single source of truth for the assignment:
// a nil TableID means the guest sits in the unassigned pool.
// ReservationID and PersonIndex are set only for guests produced by
// the reservation importer and are never touched afterwards.
type Guest struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Category      GuestCategory `json:"category"`
	Nationality   string        `json:"nationality,omitempty"`
	Paid          bool          `json:"paid"`
	TableID       *int          `json:"tableId,omitempty"`
	ReservationID *int          `json:"reservationId,omitempty"`
	PersonIndex   *int          `json:"personIndex,omitempty"`
}

func (g Guest) Assigned() bool {
	return g.TableID != nil
}

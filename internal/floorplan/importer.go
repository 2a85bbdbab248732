package floorplan

import (
	"fmt"
	"time"

	"floorPlanner/internal/models"
)

// ImportReservations turns the reservations booked for the event's
// date into unassigned guests and appends them to the roster. A
// reservation without persons yields one adult guest under the
// contact name; a reservation with N persons yields N guests named
// "<contact> - Osoba 1..N". Import never deduplicates: running it
// twice appends a second batch with fresh ids. Returns the number of
// guests added.
func (p *Plan) ImportReservations(eventDate time.Time, reservations []models.Reservation) int {
	added := 0

	for _, res := range reservations {
		if !sameDay(res.Date, eventDate) {
			continue
		}

		if len(res.Persons) == 0 {
			p.appendImported(res.ContactName, models.CategoryAdult, res, 0)
			added++
			continue
		}

		for i, person := range res.Persons {
			name := fmt.Sprintf("%s - Osoba %d", res.ContactName, i+1)
			p.appendImported(name, guestCategory(person.Type), res, i)
			added++
		}
	}

	return added
}

func (p *Plan) appendImported(name string, category models.GuestCategory, res models.Reservation, personIndex int) {
	reservationID := res.ID
	index := personIndex

	p.guests = append(p.guests, models.Guest{
		ID:            p.nextGuestID(),
		Name:          name,
		Category:      category,
		Nationality:   res.ContactNationality,
		Paid:          res.Status == models.ReservationStatusPaid,
		ReservationID: &reservationID,
		PersonIndex:   &index,
	})
}

// guestCategory maps a reservation person type onto the guest
// taxonomy; infants count as children.
func guestCategory(t models.PersonType) models.GuestCategory {
	switch t {
	case models.PersonChild, models.PersonInfant:
		return models.CategoryChild
	default:
		return models.CategoryAdult
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

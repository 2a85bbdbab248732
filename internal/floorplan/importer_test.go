package floorplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorPlanner/internal/models"
)

var eventDate = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

func TestImportReservationWithPersons(t *testing.T) {
	t.Parallel()

	p := New()

	added := p.ImportReservations(eventDate, []models.Reservation{
		{
			ID:                 10,
			Date:               eventDate,
			ContactName:        "Novak",
			ContactNationality: "CZ",
			Status:             models.ReservationStatusPaid,
			Persons: []models.Person{
				{Type: models.PersonAdult},
				{Type: models.PersonChild},
				{Type: models.PersonInfant},
			},
		},
	})

	assert.Equal(t, 3, added)

	guests := p.Guests()
	require.Len(t, guests, 3)

	assert.Equal(t, "Novak - Osoba 1", guests[0].Name)
	assert.Equal(t, "Novak - Osoba 2", guests[1].Name)
	assert.Equal(t, "Novak - Osoba 3", guests[2].Name)

	assert.Equal(t, models.CategoryAdult, guests[0].Category)
	assert.Equal(t, models.CategoryChild, guests[1].Category)
	assert.Equal(t, models.CategoryChild, guests[2].Category, "infant counts as child")

	for i, g := range guests {
		assert.Nil(t, g.TableID, "imported guests start unassigned")
		assert.True(t, g.Paid)
		assert.Equal(t, "CZ", g.Nationality)
		require.NotNil(t, g.ReservationID)
		assert.Equal(t, 10, *g.ReservationID)
		require.NotNil(t, g.PersonIndex)
		assert.Equal(t, i, *g.PersonIndex)
	}
}

func TestImportReservationWithoutPersons(t *testing.T) {
	t.Parallel()

	p := New()

	added := p.ImportReservations(eventDate, []models.Reservation{
		{
			ID:                 11,
			Date:               eventDate,
			ContactName:        "Svobodova",
			ContactNationality: "SK",
			Status:             "pending",
		},
	})

	assert.Equal(t, 1, added)

	guests := p.Guests()
	require.Len(t, guests, 1)

	g := guests[0]
	assert.Equal(t, "Svobodova", g.Name)
	assert.Equal(t, models.CategoryAdult, g.Category)
	assert.Equal(t, "SK", g.Nationality)
	assert.False(t, g.Paid, "only status %q counts as paid", models.ReservationStatusPaid)
	require.NotNil(t, g.ReservationID)
	assert.Equal(t, 11, *g.ReservationID)
}

func TestImportSkipsOtherDates(t *testing.T) {
	t.Parallel()

	reservations := []models.Reservation{
		{ID: 1, Date: eventDate.AddDate(0, 0, -1), ContactName: "vcera"},
		{ID: 2, Date: eventDate.Add(18 * time.Hour), ContactName: "stejny den"},
		{ID: 3, Date: eventDate.AddDate(0, 0, 1), ContactName: "zitra"},
	}

	p := New()
	added := p.ImportReservations(eventDate, reservations)

	assert.Equal(t, 1, added, "date matching is by calendar day")
	require.Len(t, p.Guests(), 1)
	assert.Equal(t, "stejny den", p.Guests()[0].Name)
}

func TestImportNoMatches(t *testing.T) {
	t.Parallel()

	p := New()

	added := p.ImportReservations(eventDate, []models.Reservation{
		{ID: 1, Date: eventDate.AddDate(0, 1, 0), ContactName: "jiny mesic"},
	})

	assert.Zero(t, added)
	assert.Empty(t, p.Guests())
}

func TestRepeatedImportAccumulates(t *testing.T) {
	t.Parallel()

	reservations := []models.Reservation{
		{
			ID:          20,
			Date:        eventDate,
			ContactName: "Dvorak",
			Status:      models.ReservationStatusPaid,
			Persons:     []models.Person{{Type: models.PersonAdult}, {Type: models.PersonAdult}},
		},
	}

	p := New()

	first := p.ImportReservations(eventDate, reservations)
	second := p.ImportReservations(eventDate, reservations)

	assert.Equal(t, first, second, "each run adds the same number of guests")
	require.Len(t, p.Guests(), 4, "import never deduplicates")

	// Ids keep growing across runs.
	ids := make([]int, 0, 4)
	for _, g := range p.Guests() {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)
}

func TestImportAppendsToExistingRoster(t *testing.T) {
	t.Parallel()

	p := New()
	p.AddGuest("manual", models.CategoryAdult, "", false) // id 1

	added := p.ImportReservations(eventDate, []models.Reservation{
		{ID: 30, Date: eventDate, ContactName: "Cerny"},
	})

	assert.Equal(t, 1, added)
	require.Len(t, p.Guests(), 2)
	assert.Equal(t, 2, p.Guests()[1].ID)
}

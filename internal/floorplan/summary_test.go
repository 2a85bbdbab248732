package floorplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorPlanner/internal/models"
)

func seatingFixture(t *testing.T) *Plan {
	t.Helper()

	p := New()
	table, err := p.CreateTable("t1", models.RoomRoubenka, 2)
	require.NoError(t, err)

	p.AddGuest("A", models.CategoryAdult, "CZ", true)  // id 1
	p.AddGuest("B", models.CategoryAdult, "DE", true)  // id 2
	p.AddGuest("C", models.CategoryChild, "CZ", false) // id 3
	p.AddGuest("D", models.CategoryAdult, "", false)   // id 4

	require.NoError(t, p.MoveGuest(2, DropOnTable(table.ID)))

	return p
}

func TestSummarizeCounts(t *testing.T) {
	t.Parallel()

	p := seatingFixture(t)

	s := p.Summarize(2, 2)

	assert.Equal(t, 2, s.ComputedPaid)
	assert.Equal(t, 2, s.ComputedFree)
	assert.Equal(t, 2, s.ManualPaid)
	assert.Equal(t, 2, s.ManualFree)
	assert.False(t, s.Mismatch)
}

func TestSummarizeMismatch(t *testing.T) {
	t.Parallel()

	p := seatingFixture(t)

	// Operators may bill more heads than they seat; the view only
	// flags the difference.
	s := p.Summarize(5, 2)

	assert.Equal(t, 2, s.ComputedPaid)
	assert.Equal(t, 5, s.ManualPaid)
	assert.True(t, s.Mismatch)
}

func TestSummarizeOccupancy(t *testing.T) {
	t.Parallel()

	p := seatingFixture(t)

	s := p.Summarize(0, 0)

	require.Len(t, s.Occupancy, 1)
	occ := s.Occupancy[0]
	assert.Equal(t, 1, occ.TableID)
	assert.Equal(t, "t1", occ.Name)
	assert.Equal(t, models.RoomRoubenka, occ.Room)
	assert.Equal(t, 1, occ.Seated)
	assert.Equal(t, 2, occ.Capacity)
}

func TestSummarizeEmptyPlan(t *testing.T) {
	t.Parallel()

	s := New().Summarize(0, 0)

	assert.Zero(t, s.ComputedPaid)
	assert.Zero(t, s.ComputedFree)
	assert.False(t, s.Mismatch)
	assert.Empty(t, s.Occupancy)
	assert.Empty(t, s.Nationalities)
}

func TestUnassignedNationalities(t *testing.T) {
	t.Parallel()

	p := seatingFixture(t)

	// B (DE) is seated and must not contribute; D has no nationality.
	assert.Equal(t, []string{"CZ"}, p.UnassignedNationalities())

	require.NoError(t, p.RemoveGuest(2))
	assert.Equal(t, []string{"CZ", "DE"}, p.UnassignedNationalities())
}

func TestFilterUnassigned(t *testing.T) {
	t.Parallel()

	p := seatingFixture(t)

	testCases := []struct {
		name        string
		nationality string
		expectedIDs []int
	}{
		{name: "wildcard", nationality: NationalityAll, expectedIDs: []int{1, 3, 4}},
		{name: "empty filter", nationality: "", expectedIDs: []int{1, 3, 4}},
		{name: "by nationality", nationality: "CZ", expectedIDs: []int{1, 3}},
		{name: "seated guests excluded", nationality: "DE", expectedIDs: nil},
		{name: "unknown nationality", nationality: "FR", expectedIDs: nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var ids []int
			for _, g := range p.FilterUnassigned(tc.nationality) {
				ids = append(ids, g.ID)
			}

			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

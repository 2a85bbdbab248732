package floorplan

import (
	"sort"

	"floorPlanner/internal/models"
)

// NationalityAll is the wildcard value for the unassigned-pool
// nationality filter.
const NationalityAll = "all"

// TableOccupancy pairs a table with its current seated count. The
// count may exceed Capacity; the pair is advisory display data, never
// a constraint.
type TableOccupancy struct {
	TableID  int         `json:"tableId"`
	Name     string      `json:"tableName"`
	Room     models.Room `json:"room"`
	Seated   int         `json:"seated"`
	Capacity int         `json:"capacity"`
}

// Summary is the reconciliation view: the paid/free totals computed
// from guest flags next to the manually entered headcounts. The two
// are independent sources of truth and are never reconciled; Mismatch
// only flags that they differ.
type Summary struct {
	ComputedPaid  int              `json:"computedPaid"`
	ComputedFree  int              `json:"computedFree"`
	ManualPaid    int              `json:"manualPaid"`
	ManualFree    int              `json:"manualFree"`
	Mismatch      bool             `json:"mismatch"`
	Occupancy     []TableOccupancy `json:"occupancy"`
	Nationalities []string         `json:"nationalities"`
}

// Summarize recomputes the reconciliation view from current state.
func (p *Plan) Summarize(manualPaid, manualFree int) Summary {
	s := Summary{
		ManualPaid: manualPaid,
		ManualFree: manualFree,
		Occupancy:  make([]TableOccupancy, 0, len(p.tables)),
	}

	for _, g := range p.guests {
		if g.Paid {
			s.ComputedPaid++
		} else {
			s.ComputedFree++
		}
	}

	s.Mismatch = s.ComputedPaid != manualPaid || s.ComputedFree != manualFree

	for _, t := range p.tables {
		s.Occupancy = append(s.Occupancy, TableOccupancy{
			TableID:  t.ID,
			Name:     t.Name,
			Room:     t.Room,
			Seated:   len(p.SeatedAt(t.ID)),
			Capacity: t.Capacity,
		})
	}

	s.Nationalities = p.UnassignedNationalities()

	return s
}

// UnassignedNationalities returns the distinct nationalities present
// in the unassigned pool, sorted. Guests without a nationality do not
// contribute a facet value.
func (p *Plan) UnassignedNationalities() []string {
	seen := make(map[string]struct{})
	for _, g := range p.guests {
		if g.Assigned() || g.Nationality == "" {
			continue
		}
		seen[g.Nationality] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// FilterUnassigned returns the unassigned pool filtered by
// nationality; NationalityAll (or an empty filter) returns the whole
// pool.
func (p *Plan) FilterUnassigned(nationality string) []models.Guest {
	if nationality == "" || nationality == NationalityAll {
		return p.UnassignedGuests()
	}

	var out []models.Guest
	for _, g := range p.guests {
		if !g.Assigned() && g.Nationality == nationality {
			out = append(out, cloneGuest(g))
		}
	}
	return out
}

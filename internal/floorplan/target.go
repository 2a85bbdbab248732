package floorplan

// DropTarget identifies what a dragged guest was dropped on. It is
// resolved once per drop event and then dispatched to MoveGuest; the
// zero value is the unresolved target, which MoveGuest treats as a
// no-op.
type DropTarget struct {
	kind    targetKind
	tableID int
	guestID int
}

type targetKind int

const (
	targetNone targetKind = iota
	targetTable
	targetGuest
	targetUnassigned
)

// DropOnTable targets a specific table.
func DropOnTable(tableID int) DropTarget {
	return DropTarget{kind: targetTable, tableID: tableID}
}

// DropOnGuest targets another guest; the move resolves to that
// guest's current table (or to the unassigned pool when that guest
// is unseated).
func DropOnGuest(guestID int) DropTarget {
	return DropTarget{kind: targetGuest, guestID: guestID}
}

// DropOnUnassigned targets the unassigned pool.
func DropOnUnassigned() DropTarget {
	return DropTarget{kind: targetUnassigned}
}

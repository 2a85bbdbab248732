package models

import "time"

// Event is the back office's event document as carried on the wire:
// the hydrate source and the save payload. PaidCount and FreeCount
// are the manually entered headcounts; they are independent of the
// guest roster and never derived from it. Tables carry their assigned
// guests embedded, Guests holds the unassigned pool.
type Event struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	PaidCount int       `json:"paidCount"`
	FreeCount int       `json:"freeCount"`
	Tables    []Table   `json:"tables"`
	Guests    []Guest   `json:"guests,omitempty"`
}

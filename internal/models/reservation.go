package models

import "time"

type PersonType string

const (
	PersonAdult  PersonType = "adult"
	PersonChild  PersonType = "child"
	PersonInfant PersonType = "infant"
)

const ReservationStatusPaid = "paid"

// Person is one named head of a reservation. Menu is carried for
// display only; the floor plan never reads it.
type Person struct {
	Type PersonType `json:"type"`
	Menu string     `json:"menu,omitempty"`
}

// Reservation is an external reservation record, consumed read-only
// by the importer.
type Reservation struct {
	ID                 int       `json:"id"`
	Date               time.Time `json:"date"`
	ContactName        string    `json:"contactName"`
	ContactNationality string    `json:"contactNationality,omitempty"`
	Status             string    `json:"status"`
	Persons            []Person  `json:"persons,omitempty"`
}

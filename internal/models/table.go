package models

// Table is one table of the floor plan. Guests is populated only on
// the wire (hydrate and save carry each table with its assigned
// guests embedded); inside the engine the assignment lives on the
// guest's TableID back-reference and Guests stays nil.
type Table struct {
	ID       int     `json:"id"`
	Name     string  `json:"tableName"`
	Room     Room    `json:"room"`
	Capacity int     `json:"capacity"`
	Guests   []Guest `json:"guests"`
}

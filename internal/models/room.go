package models

// Room is one of the venue's physical spaces. The set is closed:
// tables are always created in one of these four rooms.
type Room string

const (
	RoomRoubenka Room = "roubenka"
	RoomStodola  Room = "stodola"
	RoomSalonek  Room = "salonek"
	RoomZahrada  Room = "zahrada"
)

func AllRooms() []Room {
	return []Room{RoomRoubenka, RoomStodola, RoomSalonek, RoomZahrada}
}

func (r Room) Valid() bool {
	switch r {
	case RoomRoubenka, RoomStodola, RoomSalonek, RoomZahrada:
		return true
	}
	return false
}

package floorplan

import "errors"

var (
	ErrTableNotFound = errors.New("table not found")
	ErrGuestNotFound = errors.New("guest not found")
	ErrUnknownRoom   = errors.New("unknown room")
)

package rooms

import "errors"

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomNotJoinable    = errors.New("room is not accepting players")
	ErrInvalidTransition  = errors.New("invalid room state transition")
	ErrUnauthorizedSender = errors.New("sender is not the room host")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrNotInGame          = errors.New("room has no question in play")
	ErrEmptyDeck          = errors.New("question deck is empty")
)

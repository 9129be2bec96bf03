package model

import "errors"

var (
	ErrValidation      = errors.New("invalid room")
	ErrDuplicateName   = errors.New("room name already exists")
	ErrInvalidInterval = errors.New("end must be after start")
	ErrConflict        = errors.New("room already reserved for this time")
	ErrUnknownCategory = errors.New("unknown room category")
	ErrRoomNotFound    = errors.New("room not found")
)

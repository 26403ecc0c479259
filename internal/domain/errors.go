package domain

import "errors"

var (
	ErrNoSession        = errors.New("no active session")
	ErrRoomNotFound     = errors.New("room not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrSessionCorrupted = errors.New("stored session is corrupted")
)

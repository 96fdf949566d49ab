package room

import (
	"errors"
	"fmt"
)

var ErrNoSuchRoom = errors.New("no such room")

// NoSuchRoomError is returned for ids the registry has not handed out.
type NoSuchRoomError struct {
	ID ID
}

func (e *NoSuchRoomError) Error() string {
	return fmt.Sprintf("no room with id %d", e.ID)
}

func (e *NoSuchRoomError) Is(target error) bool { return target == ErrNoSuchRoom }

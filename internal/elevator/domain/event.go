package domain

import "fmt"

// Event is the closed vocabulary an elevator controller broadcasts.
type Event int

const (
	DoorClosing Event = iota + 1
	DoorClosed
	CabinMoving
	CabinStopped
	DoorOpening
)

func (e Event) String() string {
	switch e {
	case DoorClosing:
		return "door_closing"
	case DoorClosed:
		return "door_closed"
	case CabinMoving:
		return "cabin_moving"
	case CabinStopped:
		return "cabin_stopped"
	case DoorOpening:
		return "door_opening"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Observer receives one call per event, in the order the controller emits them.
// Implementations must not call back into the controller that notifies them.
type Observer interface {
	ClosingDoor()
	ClosedDoor()
	MovingCabin()
	StoppedCabin()
	OpeningDoor()
}

// Dispatch routes e to the matching Observer method. An event outside the
// vocabulary is a programming error and panics.
func Dispatch(o Observer, e Event) {
	switch e {
	case DoorClosing:
		o.ClosingDoor()
	case DoorClosed:
		o.ClosedDoor()
	case CabinMoving:
		o.MovingCabin()
	case CabinStopped:
		o.StoppedCabin()
	case DoorOpening:
		o.OpeningDoor()
	default:
		panic(fmt.Sprintf("elevator: unknown event %d", int(e)))
	}
}

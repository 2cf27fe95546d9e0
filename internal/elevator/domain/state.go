package domain

// State is the controller's position in the ride cycle. StateDoorClosed and
// StateCabinStopped are transient: the controller enters them and leaves them
// within the same signal, so State never reports them to a caller.
type State int

const (
	// StateDoorOpened is the idle state: cabin parked, door open.
	StateDoorOpened State = iota
	StateDoorClosing
	StateDoorClosed
	StateCabinMoving
	StateCabinStopped
	StateDoorOpening
)

func (s State) String() string {
	switch s {
	case StateDoorOpened:
		return "door_opened"
	case StateDoorClosing:
		return "door_closing"
	case StateDoorClosed:
		return "door_closed"
	case StateCabinMoving:
		return "cabin_moving"
	case StateCabinStopped:
		return "cabin_stopped"
	case StateDoorOpening:
		return "door_opening"
	}
	return "unknown"
}

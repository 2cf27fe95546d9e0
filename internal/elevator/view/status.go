package view

import "sync"

// StatusView mirrors the two fields of a status panel: what the cabin is
// doing and what the door is doing. Both start empty.
type StatusView struct {
	mu    sync.Mutex
	cabin string
	door  string
}

func NewStatusView() *StatusView {
	return &StatusView{}
}

func (v *StatusView) Cabin() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cabin
}

func (v *StatusView) Door() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.door
}

func (v *StatusView) ClosingDoor()  { v.setDoor("Closing") }
func (v *StatusView) ClosedDoor()   { v.setDoor("Closed") }
func (v *StatusView) MovingCabin()  { v.setCabin("Moving") }
func (v *StatusView) StoppedCabin() { v.setCabin("Stopped") }
func (v *StatusView) OpeningDoor()  { v.setDoor("Opening") }

func (v *StatusView) setDoor(s string) {
	v.mu.Lock()
	v.door = s
	v.mu.Unlock()
}

func (v *StatusView) setCabin(s string) {
	v.mu.Lock()
	v.cabin = s
	v.mu.Unlock()
}

package view

import "sync"

const (
	LineDoorClosing  = "Door closing"
	LineDoorClosed   = "Door closed"
	LineCabinMoving  = "Cabin moving"
	LineCabinStopped = "Cabin stopped"
	LineDoorOpening  = "Door opening"
)

// Console keeps one line per event it has seen.
type Console struct {
	mu    sync.Mutex
	lines []string
}

func NewConsole() *Console {
	return &Console{}
}

// Lines returns a copy of everything printed so far.
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Console) ClosingDoor()  { c.print(LineDoorClosing) }
func (c *Console) ClosedDoor()   { c.print(LineDoorClosed) }
func (c *Console) MovingCabin()  { c.print(LineCabinMoving) }
func (c *Console) StoppedCabin() { c.print(LineCabinStopped) }
func (c *Console) OpeningDoor()  { c.print(LineDoorOpening) }

func (c *Console) print(line string) {
	c.mu.Lock()
	c.lines = append(c.lines, line)
	c.mu.Unlock()
}

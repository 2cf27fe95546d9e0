package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/tuslibros/internal/elevator/domain"
)

var (
	ErrInvalidTransition = errors.New("signal not valid in current state")
	ErrInvalidFloor      = errors.New("floor must not be negative")
)

// Controller drives a single cabin through the close/move/stop/open cycle and
// broadcasts every step to its observers, in attachment order.
type Controller struct {
	mu        sync.Mutex
	observers []domain.Observer
	state     domain.State
	floor     int
	target    int
	pending   []int
	log       *slog.Logger
}

// NewController returns an idle controller parked at floor 0 with the door open.
func NewController(log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{state: domain.StateDoorOpened, log: log}
}

func (c *Controller) Attach(o domain.Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

func (c *Controller) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Floor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.floor
}

// GoUpPushedFromFloor requests the cabin at floor. An idle cabin starts
// closing its door; a busy one queues the request until the door is open again.
func (c *Controller) GoUpPushedFromFloor(floor int) error {
	if floor < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFloor, floor)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateDoorOpened {
		c.enqueue(floor)
		return nil
	}
	c.depart(floor)
	return nil
}

func (c *Controller) CabinDoorClosed() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateDoorClosing {
		return c.reject("cabin door closed")
	}

	c.enter(domain.StateDoorClosed)
	c.enter(domain.StateCabinMoving)
	c.emit(domain.DoorClosed, domain.CabinMoving)
	return nil
}

// CabinOnFloor reports the cabin passing floor. Only the requested floor
// stops it; any other floor just updates the position.
func (c *Controller) CabinOnFloor(floor int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateCabinMoving {
		return c.reject("cabin on floor")
	}

	c.floor = floor
	if floor != c.target {
		return nil
	}

	c.enter(domain.StateCabinStopped)
	c.enter(domain.StateDoorOpening)
	c.emit(domain.CabinStopped, domain.DoorOpening)
	return nil
}

func (c *Controller) CabinDoorOpened() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateDoorOpening {
		return c.reject("cabin door opened")
	}

	c.enter(domain.StateDoorOpened)
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		if next != c.floor {
			c.depart(next)
			break
		}
	}
	return nil
}

// depart expects c.mu held and the cabin idle.
func (c *Controller) depart(floor int) {
	if floor == c.floor {
		return
	}
	c.target = floor
	c.enter(domain.StateDoorClosing)
	c.emit(domain.DoorClosing)
}

// enter expects c.mu held. Every state change goes through here, including
// the ones that last only for the duration of a single signal.
func (c *Controller) enter(s domain.State) {
	c.log.Debug("elevator state",
		slog.String("from", c.state.String()),
		slog.String("to", s.String()),
		slog.Int("floor", c.floor))
	c.state = s
}

func (c *Controller) enqueue(floor int) {
	if floor == c.target {
		return
	}
	for _, f := range c.pending {
		if f == floor {
			return
		}
	}
	c.pending = append(c.pending, floor)
}

func (c *Controller) reject(signal string) error {
	c.log.Warn("elevator signal ignored",
		slog.String("signal", signal),
		slog.String("state", c.state.String()))
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, signal, c.state)
}

// emit delivers every event of one transition to each observer before moving
// on to the next observer.
func (c *Controller) emit(events ...domain.Event) {
	for _, o := range c.observers {
		for _, e := range events {
			domain.Dispatch(o, e)
		}
	}
}

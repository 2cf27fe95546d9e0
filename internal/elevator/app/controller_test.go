package app_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/dwikikusuma/tuslibros/internal/elevator/app"
	"github.com/dwikikusuma/tuslibros/internal/elevator/domain"
	"github.com/dwikikusuma/tuslibros/pkg/logger"
	"github.com/google/go-cmp/cmp"
)

// trace records every event it is notified of.
type trace struct {
	events []domain.Event
}

func (t *trace) ClosingDoor()  { t.events = append(t.events, domain.DoorClosing) }
func (t *trace) ClosedDoor()   { t.events = append(t.events, domain.DoorClosed) }
func (t *trace) MovingCabin()  { t.events = append(t.events, domain.CabinMoving) }
func (t *trace) StoppedCabin() { t.events = append(t.events, domain.CabinStopped) }
func (t *trace) OpeningDoor()  { t.events = append(t.events, domain.DoorOpening) }

// shared appends to a log common to several observers to check interleaving.
type shared struct {
	name string
	log  *[]string
}

func (s shared) add(e string)  { *s.log = append(*s.log, s.name+":"+e) }
func (s shared) ClosingDoor()  { s.add("closing") }
func (s shared) ClosedDoor()   { s.add("closed") }
func (s shared) MovingCabin()  { s.add("moving") }
func (s shared) StoppedCabin() { s.add("stopped") }
func (s shared) OpeningDoor()  { s.add("opening") }

func equal(a, b []domain.Event) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestControllerCycle(t *testing.T) {
	c := app.NewController(logger.Discard())
	tr := &trace{}
	c.Attach(tr)

	if c.State() != domain.StateDoorOpened || c.Floor() != 0 {
		t.Fatalf("unexpected initial state %s at %d", c.State(), c.Floor())
	}

	mustOK(t, c.GoUpPushedFromFloor(2))
	if c.State() != domain.StateDoorClosing {
		t.Fatalf("expected door closing, got %s", c.State())
	}

	mustOK(t, c.CabinDoorClosed())
	if c.State() != domain.StateCabinMoving {
		t.Fatalf("expected cabin moving, got %s", c.State())
	}

	mustOK(t, c.CabinOnFloor(1))
	if c.Floor() != 1 || c.State() != domain.StateCabinMoving {
		t.Fatalf("passing a floor should only move the cabin: %s at %d", c.State(), c.Floor())
	}

	mustOK(t, c.CabinOnFloor(2))
	if c.State() != domain.StateDoorOpening {
		t.Fatalf("expected door opening, got %s", c.State())
	}

	mustOK(t, c.CabinDoorOpened())
	if c.State() != domain.StateDoorOpened || c.Floor() != 2 {
		t.Fatalf("expected idle at 2, got %s at %d", c.State(), c.Floor())
	}

	want := []domain.Event{domain.DoorClosing, domain.DoorClosed, domain.CabinMoving, domain.CabinStopped, domain.DoorOpening}
	if !equal(tr.events, want) {
		t.Fatalf("got %v, want %v", tr.events, want)
	}
}

func TestControllerInvalidSignals(t *testing.T) {
	c := app.NewController(logger.Discard())
	tr := &trace{}
	c.Attach(tr)

	for name, signal := range map[string]func() error{
		"door closed while idle": c.CabinDoorClosed,
		"door opened while idle": c.CabinDoorOpened,
		"on floor while idle":    func() error { return c.CabinOnFloor(1) },
	} {
		if err := signal(); !errors.Is(err, app.ErrInvalidTransition) {
			t.Fatalf("%s: expected ErrInvalidTransition, got %v", name, err)
		}
	}

	mustOK(t, c.GoUpPushedFromFloor(1))
	if err := c.CabinOnFloor(1); !errors.Is(err, app.ErrInvalidTransition) {
		t.Fatalf("on floor while closing: expected ErrInvalidTransition, got %v", err)
	}

	if !equal(tr.events, []domain.Event{domain.DoorClosing}) {
		t.Fatalf("rejected signals must not emit: %v", tr.events)
	}

	if err := c.GoUpPushedFromFloor(-1); !errors.Is(err, app.ErrInvalidFloor) {
		t.Fatalf("expected ErrInvalidFloor, got %v", err)
	}
}

func TestControllerRequestForCurrentFloor(t *testing.T) {
	c := app.NewController(logger.Discard())
	tr := &trace{}
	c.Attach(tr)

	mustOK(t, c.GoUpPushedFromFloor(0))
	if c.State() != domain.StateDoorOpened || len(tr.events) != 0 {
		t.Fatalf("idle cabin already at floor should stay put: %s %v", c.State(), tr.events)
	}
}

func TestControllerQueuesBusyRequests(t *testing.T) {
	c := app.NewController(logger.Discard())
	tr := &trace{}
	c.Attach(tr)

	mustOK(t, c.GoUpPushedFromFloor(1))
	mustOK(t, c.GoUpPushedFromFloor(3))
	mustOK(t, c.GoUpPushedFromFloor(3))
	mustOK(t, c.CabinDoorClosed())
	mustOK(t, c.CabinOnFloor(1))

	mustOK(t, c.CabinDoorOpened())
	if c.State() != domain.StateDoorClosing {
		t.Fatalf("queued request should start the next ride, got %s", c.State())
	}

	mustOK(t, c.CabinDoorClosed())
	mustOK(t, c.CabinOnFloor(2))
	mustOK(t, c.CabinOnFloor(3))
	mustOK(t, c.CabinDoorOpened())

	if c.State() != domain.StateDoorOpened || c.Floor() != 3 {
		t.Fatalf("expected idle at 3, got %s at %d", c.State(), c.Floor())
	}

	one := []domain.Event{domain.DoorClosing, domain.DoorClosed, domain.CabinMoving, domain.CabinStopped, domain.DoorOpening}
	if !equal(tr.events, append(append([]domain.Event{}, one...), one...)) {
		t.Fatalf("expected two full cycles, got %v", tr.events)
	}
}

func TestControllerObserversReceiveIdenticalSequences(t *testing.T) {
	c := app.NewController(logger.Discard())
	first, second := &trace{}, &trace{}
	c.Attach(first)
	c.Attach(second)

	mustOK(t, c.GoUpPushedFromFloor(4))
	mustOK(t, c.CabinDoorClosed())
	mustOK(t, c.CabinOnFloor(4))
	mustOK(t, c.CabinDoorOpened())

	if len(first.events) != 5 || !equal(first.events, second.events) {
		t.Fatalf("observers diverged: %v vs %v", first.events, second.events)
	}
}

func TestControllerDeliversInAttachmentOrder(t *testing.T) {
	c := app.NewController(logger.Discard())
	var log []string
	c.Attach(shared{name: "a", log: &log})
	c.Attach(shared{name: "b", log: &log})

	mustOK(t, c.GoUpPushedFromFloor(1))
	mustOK(t, c.CabinDoorClosed())

	want := []string{"a:closing", "b:closing", "a:closed", "a:moving", "b:closed", "b:moving"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Fatalf("notification order (-want +got):\n%s", diff)
	}
}

func TestControllerPassesThroughEveryState(t *testing.T) {
	var buf bytes.Buffer
	c := app.NewController(logger.New(logger.Options{Service: "test", Level: "debug", Output: &buf}))

	mustOK(t, c.GoUpPushedFromFloor(2))
	mustOK(t, c.CabinDoorClosed())
	mustOK(t, c.CabinOnFloor(1))
	mustOK(t, c.CabinOnFloor(2))
	mustOK(t, c.CabinDoorOpened())

	var states []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if rec["msg"] == "elevator state" {
			states = append(states, rec["to"].(string))
		}
	}

	want := []string{
		domain.StateDoorClosing.String(),
		domain.StateDoorClosed.String(),
		domain.StateCabinMoving.String(),
		domain.StateCabinStopped.String(),
		domain.StateDoorOpening.String(),
		domain.StateDoorOpened.String(),
	}
	if diff := cmp.Diff(want, states); diff != "" {
		t.Fatalf("state sequence (-want +got):\n%s", diff)
	}
}

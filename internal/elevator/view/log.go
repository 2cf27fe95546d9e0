package view

import (
	"context"
	"log/slog"

	"github.com/dwikikusuma/tuslibros/internal/elevator/domain"
)

// LogView writes a structured record per event.
type LogView struct {
	log *slog.Logger
}

func NewLogView(log *slog.Logger) *LogView {
	if log == nil {
		log = slog.Default()
	}
	return &LogView{log: log.With(slog.String("component", "elevator"))}
}

func (v *LogView) ClosingDoor()  { v.record(domain.DoorClosing) }
func (v *LogView) ClosedDoor()   { v.record(domain.DoorClosed) }
func (v *LogView) MovingCabin()  { v.record(domain.CabinMoving) }
func (v *LogView) StoppedCabin() { v.record(domain.CabinStopped) }
func (v *LogView) OpeningDoor()  { v.record(domain.DoorOpening) }

func (v *LogView) record(e domain.Event) {
	v.log.LogAttrs(context.Background(), slog.LevelInfo, "elevator event", slog.String("event", e.String()))
}

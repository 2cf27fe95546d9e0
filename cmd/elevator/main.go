package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dwikikusuma/tuslibros/internal/elevator/app"
	"github.com/dwikikusuma/tuslibros/internal/elevator/view"
	"github.com/dwikikusuma/tuslibros/pkg/config"
	"github.com/dwikikusuma/tuslibros/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "elevator",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  os.Stderr,
	})

	controller := app.NewController(log)
	console := view.NewConsole()
	status := view.NewStatusView()
	controller.Attach(console)
	controller.Attach(status)
	controller.Attach(view.NewLogView(log))

	steps := []struct {
		name string
		run  func() error
	}{
		{"request floor 2", func() error { return controller.GoUpPushedFromFloor(2) }},
		{"request floor 4", func() error { return controller.GoUpPushedFromFloor(4) }},
		{"door closed", controller.CabinDoorClosed},
		{"floor 1", func() error { return controller.CabinOnFloor(1) }},
		{"floor 2", func() error { return controller.CabinOnFloor(2) }},
		{"door opened", controller.CabinDoorOpened},
		{"door closed", controller.CabinDoorClosed},
		{"floor 3", func() error { return controller.CabinOnFloor(3) }},
		{"floor 4", func() error { return controller.CabinOnFloor(4) }},
		{"door opened", controller.CabinDoorOpened},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Error("ride step failed", slog.String("step", step.name), slog.Any("err", err))
			os.Exit(1)
		}
	}

	for _, line := range console.Lines() {
		fmt.Println(line)
	}
	fmt.Printf("cabin=%s door=%s floor=%d\n", status.Cabin(), status.Door(), controller.Floor())
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vamp-arena/app"
	"github.com/lixenwraith/vamp-arena/config"
	"github.com/lixenwraith/vamp-arena/event"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

var flags = config.BindFlags(flag.CommandLine)

func main() {
	flag.Parse()

	cfg, err := config.LoadWithFlags(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena-gui: %v\n", err)
		os.Exit(2)
	}

	if logFile := app.SetupLogging(cfg.Debug, "arena-gui.log"); logFile != nil {
		defer logFile.Close()
	}

	a, err := app.New(cfg, app.Options{
		Fresh:          flags.Fresh,
		JoystickRadius: stickRadius,
		KnobRadius:     knobRadius,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena-gui: %v\n", err)
		os.Exit(1)
	}

	presenter := app.NewPresenter()
	a.Router.Register(event.NewAdapter(presenter))
	a.Loop.SetViewport(windowWidth, windowHeight)

	if err := a.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "arena-gui: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Vamp Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(newGame(a, presenter)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("arena-gui: %v", err)
	}
	log.Printf("arena-gui: quit, session %s", a.Loop.Session())
}

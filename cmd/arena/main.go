package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vamp-arena/app"
	"github.com/lixenwraith/vamp-arena/config"
	"github.com/lixenwraith/vamp-arena/core"
	"github.com/lixenwraith/vamp-arena/event"
)

var flags = config.BindFlags(flag.CommandLine)

func main() {
	flag.Parse()

	cfg, err := config.LoadWithFlags(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(2)
	}

	if logFile := app.SetupLogging(cfg.Debug, "arena.log"); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	core.RegisterFinalizer(screen)
	defer screen.Fini()

	a, err := app.New(cfg, app.Options{
		Fresh:          flags.Fresh,
		JoystickRadius: 10 * pixelX,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}

	presenter := app.NewPresenter()
	a.Router.Register(event.NewAdapter(presenter))

	g := newGame(screen, a, presenter)
	g.resize()

	if err := a.Start(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	g.run()
	log.Printf("arena: quit, session %s", a.Loop.Session())
}

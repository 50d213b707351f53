package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mouselook/audio"
	"github.com/lixenwraith/mouselook/camera"
	"github.com/lixenwraith/mouselook/config"
	"github.com/lixenwraith/mouselook/core"
	"github.com/lixenwraith/mouselook/display"
	"github.com/lixenwraith/mouselook/input"
	"github.com/lixenwraith/mouselook/render"
	"github.com/lixenwraith/mouselook/scene"
	"golang.org/x/term"
)

var (
	configFlag      = flag.String("config", "", "Config file path (default: per-user config dir)")
	debugFlag       = flag.Bool("debug", false, "Write debug logs to logs/mouselook.log")
	muteFlag        = flag.Bool("mute", false, "Disable audio feedback")
	hudFlag         = flag.Bool("hud", false, "Show the status line at startup")
	writeConfigFlag = flag.Bool("write-config", false, "Write the effective config to the config path and exit")
)

func main() {
	// Panic recovery: restore the terminal before any crash output
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfgPath := *configFlag
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to locate config: %v\n", err)
			os.Exit(1)
		}
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *hudFlag {
		cfg.Render.HUD = true
	}

	if *writeConfigFlag {
		if err := config.Save(cfgPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", cfgPath)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "mouselook needs an interactive terminal")
		os.Exit(1)
	}

	// Fatal paths return through run so its defers restore the screen
	// before the message prints
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.RegisterCleanup(screen.Fini)
	defer screen.Fini()

	feedback := audio.New(audio.Options{
		Enabled:   cfg.Audio.Enabled,
		Frequency: cfg.Audio.FrequencyHz,
		Length:    cfg.BlipDuration(),
	})
	if err := feedback.Init(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer feedback.Close()

	sampler := camera.NewMotionSampler()
	cam := camera.NewState(cfg.Camera.ScrollSpeed)
	dev := display.NewScreen(screen)

	vw, vh := dev.Size()
	world, err := newScene(vw, vh, cfg.Scene)
	if err != nil {
		return err
	}

	vp := render.NewViewport(sampler, cam, world, dev)
	vp.SetFrameInterval(cfg.FrameInterval())
	vp.Register(&render.Crosshair{}, render.PriorityCrosshair)
	hud := render.NewHUD(cfg.Render.HUD)
	vp.Register(hud, render.PriorityHUD)
	vp.SetLandmarkHook(feedback.Blip)

	capture := input.NewCapture(screen, sampler, input.Options{
		KeyImpulse:   cfg.Input.KeyImpulse,
		HideInterval: cfg.HideInterval(),
	})
	if err := capture.Init(); err != nil {
		return fmt.Errorf("failed to initialize input capture: %w", err)
	}
	capture.Start()
	defer capture.Stop()

	stop := make(chan struct{})
	renderDone := make(chan struct{})
	core.Go(func() {
		defer close(renderDone)
		vp.Run(stop)
	})
	defer func() {
		close(stop)
		<-renderDone
	}()

	log.Printf("Started: viewport %dx%d, scene %dx%d", vw, vh, world.Width(), world.Height())

	for cmd := range capture.Commands() {
		switch cmd.Kind {
		case input.CommandQuit:
			log.Print("Quit requested")
			return nil

		case input.CommandTogglePause:
			paused := vp.TogglePause()
			log.Printf("Paused: %v", paused)

		case input.CommandToggleHUD:
			hud.Toggle()

		case input.CommandResize:
			screen.Sync()
			world, err = newScene(cmd.Width, cmd.Height, cfg.Scene)
			if err != nil {
				return err
			}
			vp.SetScene(world)
			log.Printf("Resized: viewport %dx%d, scene %dx%d", cmd.Width, cmd.Height, world.Width(), world.Height())
		}
	}
	return nil
}

// newScene builds a world sized at the configured multiple of the viewport.
func newScene(vw, vh int, sc config.SceneConfig) (*scene.Buffer, error) {
	w, h := scene.DimensionsFor(vw, vh, sc.WidthMult, sc.HeightMult)
	buf, err := scene.Generate(w, h)
	if err != nil {
		return nil, fmt.Errorf("failed to generate scene: %w", err)
	}
	return buf, nil
}

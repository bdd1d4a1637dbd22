package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/quadkey/quadkey/audio"
	"github.com/quadkey/quadkey/charinput"
	"github.com/quadkey/quadkey/config"
	"github.com/quadkey/quadkey/editor"
	"github.com/quadkey/quadkey/input"
	"github.com/quadkey/quadkey/render"
)

const (
	logDir      = "logs"
	logFileName = "quadkey.log"

	redrawInterval = 250 * time.Millisecond
)

var (
	configFlag = flag.String("config", "quadkey.toml", "Path to the TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write diagnostics to "+logDir+"/"+logFileName)
)

// setupLogging routes the stdlib logger to a file when debug is enabled and
// discards it otherwise. Returns the open log file, nil when disabled
func setupLogging(debugEnabled bool) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
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

	// Panic recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nQUADKEY CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	fail := func(format string, args ...any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, format+"\n", args...)
		os.Exit(1)
	}

	// Audio is optional, the session runs silently when it fails
	var chime editor.Chime = editor.NopChime{}
	engine, err := audio.NewEngine(cfg.Sound.Enabled)
	if err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	} else {
		chime = engine
		defer engine.Close()
	}

	full := charinput.Interval{Start: cfg.Range.Start, End: cfg.Range.End}
	ed, err := editor.New(full, cfg.Branches, chime)
	if err != nil {
		fail("Editor setup failed: %v", err)
	}

	machine := input.NewMachine()
	overrides, err := input.LoadKeyConfig(cfg.Keys, cfg.Branches)
	if err != nil {
		fail("Key config error: %v", err)
	}
	machine.ApplyOverrides(overrides)

	width, height := screen.Size()
	orchestrator := render.NewOrchestrator(screen, width, height)
	orchestrator.Register(render.NewRangesRenderer(), render.PriorityRanges)
	orchestrator.Register(render.NewTextRenderer(), render.PriorityText)
	orchestrator.Register(render.NewStatusBarRenderer(), render.PriorityUI)

	soundOn := func() bool {
		return engine != nil && !engine.IsMuted()
	}
	renderNow := func() {
		orchestrator.RenderFrame(render.Context{
			Width:   width,
			Height:  height,
			Editor:  ed,
			SoundOn: soundOn(),
		})
	}

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	renderNow()

	for {
		select {
		case ev := <-eventChan:
			in := machine.Process(ev)
			if in != nil && in.Type == input.IntentResize {
				width, height = screen.Size()
				orchestrator.Resize(width, height)
				renderNow()
				continue
			}
			if !ed.HandleIntent(in) {
				return
			}
			renderNow()

		case <-ticker.C:
			renderNow()
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/lane-jumper/config"
	"github.com/lixenwraith/lane-jumper/core"
	"github.com/lixenwraith/lane-jumper/engine"
	"github.com/lixenwraith/lane-jumper/game"
	"github.com/lixenwraith/lane-jumper/input"
	"github.com/lixenwraith/lane-jumper/parameter"
	"github.com/lixenwraith/lane-jumper/render"
)

var (
	configFlag = flag.String("config", "", "YAML tuning file, defaults are used when empty")
	seedFlag   = flag.Uint64("seed", 0, "Level seed, 0 picks one from the clock")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/lane-jumper.log")
	fpsFlag    = flag.Int("fps", 0, "Frame rate, 0 uses the default ~60 FPS")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile, logger := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(logger); err != nil {
		logger.Error().Err(err).Msg("exit")
		fmt.Fprintf(os.Stderr, "lane-jumper: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(logger zerolog.Logger) error {
	tuning, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info().Uint64("seed", seed).Str("config", *configFlag).Msg("starting")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Fini runs from the frame loop, the crash hook and the deferred cleanup
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()
	core.SetCrashHook(fini)

	width, _ := screen.Size()
	decoder := input.NewDecoder(width)

	session, err := game.New(tuning, core.NewFastRand(seed), logger, decoder)
	if err != nil {
		return err
	}
	renderer := render.NewSessionRenderer(screen, session)

	interval := parameter.FrameUpdateInterval
	if *fpsFlag > 0 {
		interval = time.Second / time.Duration(*fpsFlag)
	}

	// Quitting cancels the group so the pump never blocks on a full channel
	loopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(loopCtx)
	events := make(chan tcell.Event, parameter.EventChannelSize)

	g.Go(core.Guard(func() error {
		return pumpEvents(gctx, screen.PollEvent, events)
	}))

	g.Go(core.Guard(func() error {
		defer fini()
		defer cancel()
		return frameLoop(gctx, session, decoder, renderer, events, interval)
	}))

	return g.Wait()
}

// pumpEvents forwards terminal events until poll returns nil or ctx is cancelled, then closes events
// Polling interacts directly with the terminal, nil means the screen was finalized
func pumpEvents(ctx context.Context, poll func() tcell.Event, events chan<- tcell.Event) error {
	defer close(events)

	for {
		ev := poll()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// frameLoop drains input, steps the session by wall-clock time and draws, until quit or input closes
func frameLoop(ctx context.Context, session *game.Session, decoder *input.Decoder, renderer *render.SessionRenderer,
	events <-chan tcell.Event, interval time.Duration) error {
	log := session.Context().Log

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	renderer.Draw()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch decoder.Process(ev) {
			case input.ActionQuit:
				log.Info().Int("score", session.Score()).Int("runs", session.Runs()).Msg("quit")
				return nil
			case input.ActionPress:
				if session.Phase() == engine.PhaseGameOver {
					decoder.Reset()
					session.Restart()
				}
			case input.ActionResize:
				renderer.Resize()
			}

		case now := <-ticker.C:
			session.Step(now.Sub(last))
			last = now
			renderer.Draw()
		}
	}
}

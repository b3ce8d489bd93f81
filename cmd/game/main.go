package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/pixelhop/internal/application/game"
	"github.com/younwookim/pixelhop/internal/application/replay"
	"github.com/younwookim/pixelhop/internal/application/scene"
	"github.com/younwookim/pixelhop/internal/application/scene/menu"
	"github.com/younwookim/pixelhop/internal/application/scene/playing"
	"github.com/younwookim/pixelhop/internal/application/session"
	"github.com/younwookim/pixelhop/internal/application/system"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
	"github.com/younwookim/pixelhop/internal/infrastructure/save"
	"github.com/younwookim/pixelhop/internal/infrastructure/sound"
)

const appName = "pixelhop"

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	stageName := flag.String("stage", "main", "Stage to play (configs/stages/<name>.yaml)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headless := flag.Bool("headless", false, "With -replay, simulate without a window and print the result")
	watch := flag.Bool("watch", false, "Reload physics.yaml on change (needs -config)")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	stageCfg, err := loader.LoadStage(*stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}
	stage, err := system.LoadStage(stageCfg, cfg.Physics.Physics.PixelsPerUnit)
	if err != nil {
		log.Fatalf("Failed to build stage: %v", err)
	}

	var recording *replay.ReplayData
	if *replayFlag != "" {
		recording, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if recording.Stage != stageCfg.ID {
			log.Printf("[Replay] Warning: recorded on stage %q, playing %q", recording.Stage, stageCfg.ID)
		}
	}

	if *headless {
		if recording == nil {
			log.Fatalf("-headless needs -replay")
		}
		snap, err := Simulate(cfg, stage, *recording)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Println(FormatSnapshot(snap))
		return
	}

	store := save.Open(appName)
	bank, err := sound.NewSoundBank(audio.NewContext(sound.SampleRate), loader.FS(), cfg.Entities.Sounds)
	if err != nil {
		log.Fatalf("Failed to load sounds: %v", err)
	}
	bank.SetMasterVolume(store.Data().SFXVolume)

	reloads := make(chan *config.PhysicsConfig, 1)
	if *watch {
		if err := checkWatch(*configDir, recording != nil); err != nil {
			log.Printf("[Config] Warning: hot reload disabled: %v", err)
		} else if stop, err := watchPhysics(loader, reloads); err != nil {
			log.Printf("[Config] Warning: hot reload disabled: %v", err)
		} else {
			defer stop()
		}
	}

	clock := session.NewTimeScale()
	registry := scene.NewRegistry(clock)
	display := cfg.Physics.Display

	run := 0
	registry.Register(scene.MainScene, func() (scene.Scene, error) {
		run++
		var input playing.InputSource = playing.NewKeyboardInput(cfg.Physics.Input)
		if recording != nil {
			input = playing.NewReplayInput(*recording)
		}
		return playing.New(playing.Options{
			Config:     cfg,
			StageCfg:   stageCfg,
			Stage:      stage,
			Audio:      bank,
			Clock:      clock,
			Loader:     registry,
			Save:       store,
			Input:      input,
			RecordPath: playing.RunFilename(*recordFlag, run),
			Reloads:    reloads,
		})
	})
	registry.Register(scene.MainMenu, func() (scene.Scene, error) {
		return menu.New(registry, store, display.ScreenWidth, display.ScreenHeight), nil
	})

	first := scene.MainMenu
	if recording != nil {
		first = scene.MainScene
	}
	initial, err := registry.Load(first)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	g := game.New(initial, display)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Pixelhop")
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Shutdown()
	if err := store.Save(); err != nil {
		log.Printf("[Save] Warning: %v", err)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// newLoader reads from dir when given, else from the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// watchPhysics reloads physics.yaml on change and offers the result to the
// game loop. A reload the loop hasn't taken yet is replaced by the newer one.
func watchPhysics(loader *config.Loader, out chan *config.PhysicsConfig) (func(), error) {
	w, err := config.NewWatcher(loader.BasePath())
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(path) != "physics.yaml" {
					continue
				}
				cfg, err := loader.LoadPhysics()
				if err != nil {
					log.Printf("[Config] reload failed: %v", err)
					continue
				}
				offer(out, cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("[Config] watcher error: %v", err)
			}
		}
	}()

	log.Printf("[Config] watching %s", loader.BasePath())
	return func() { _ = w.Close() }, nil
}

var (
	errWatchEmbedded = errors.New("-watch needs -config, the embedded configs never change")
	errWatchReplay   = errors.New("-watch is ignored during -replay")
)

// checkWatch reports why hot reload cannot run with these flags
func checkWatch(configDir string, replaying bool) error {
	switch {
	case replaying:
		return errWatchReplay
	case configDir == "":
		return errWatchEmbedded
	}
	return nil
}

// offer sends cfg without blocking, dropping a stale pending value first
func offer(out chan *config.PhysicsConfig, cfg *config.PhysicsConfig) {
	for {
		select {
		case out <- cfg:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}

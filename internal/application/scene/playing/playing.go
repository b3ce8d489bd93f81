// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/pixelhop/internal/application/scene"
	"github.com/younwookim/pixelhop/internal/application/scene/ui"
	"github.com/younwookim/pixelhop/internal/application/session"
	"github.com/younwookim/pixelhop/internal/application/state"
	"github.com/younwookim/pixelhop/internal/application/system"
	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
	"github.com/younwookim/pixelhop/internal/infrastructure/save"
)

// ErrNoLoader is returned when a menu button asks for a scene and the
// scene was built without a loader
var ErrNoLoader = errors.New("playing scene has no scene loader")

// Options wires a Playing scene. Config, Stage, Audio and Input are required.
type Options struct {
	Config   *config.GameConfig
	StageCfg *config.StageConfig // optional, gives the name and background
	Stage    *entity.Stage
	Audio    system.AudioSink
	Clock    *session.TimeScale
	Loader   scene.Loader
	Save     *save.Store
	Input    InputSource

	// RecordPath enables input recording when not empty
	RecordPath string

	// Reloads delivers validated physics configs from the file watcher
	Reloads <-chan *config.PhysicsConfig

	// Headless skips widget and keyboard polling so tests can drive Update
	Headless bool
}

// Playing is the main gameplay scene
type Playing struct {
	opts    Options
	session *session.Session
	input   InputSource
	reloads <-chan *config.PhysicsConfig

	hud   *ui.HUD
	pause *ui.Menu
	over  *ui.Menu

	recorder   *Recorder
	request    string
	inputDone  bool
	screenW    int
	screenH    int
	background color.Color
}

// New creates a new Playing scene
func New(opts Options) (*Playing, error) {
	if opts.Config == nil || opts.Config.Physics == nil || opts.Config.Entities == nil {
		return nil, fmt.Errorf("%w: playing scene needs a game config", system.ErrMissingCollaborator)
	}
	if opts.Input == nil {
		return nil, fmt.Errorf("%w: playing scene needs an input source", system.ErrMissingCollaborator)
	}

	sess, err := session.New(session.Config{
		Physics:  opts.Config.Physics,
		Entities: opts.Config.Entities,
		Stage:    opts.Stage,
		Audio:    opts.Audio,
		Clock:    opts.Clock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	display := opts.Config.Physics.Display
	p := &Playing{
		opts:       opts,
		session:    sess,
		input:      opts.Input,
		reloads:    opts.Reloads,
		hud:        ui.NewHUD(),
		screenW:    display.ScreenWidth,
		screenH:    display.ScreenHeight,
		background: colorBG,
	}
	stageID := sess.Stage().Name
	if opts.StageCfg != nil {
		if c, ok := parseHexColor(opts.StageCfg.Background.Color); ok {
			p.background = c
		}
		if opts.StageCfg.ID != "" {
			stageID = opts.StageCfg.ID
		}
	}

	menuW, menuH := p.screenW/2, p.screenH/2
	p.pause = ui.NewMenu("Paused", menuW, menuH,
		ui.Button{Label: "Resume", OnClick: p.Resume},
		ui.Button{Label: "Restart", OnClick: p.Restart},
		ui.Button{Label: "Main Menu", OnClick: p.MainMenu},
	)
	p.over = ui.NewMenu("Game Over", menuW, menuH,
		ui.Button{Label: "Restart", OnClick: p.Restart},
		ui.Button{Label: "Main Menu", OnClick: p.MainMenu},
	)

	sess.Player().Wallet.OnChange(p.hud.SetCoins)
	sess.OnGameOver = p.onGameOver
	if opts.Save != nil {
		p.hud.SetBest(opts.Save.Data().BestCoins)
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(stageID, display.Framerate)
		log.Printf("[Replay] recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.drainReloads()
	if p.request != "" {
		return p.follow()
	}

	if !p.opts.Headless && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	in, ok := p.input.Next(dt)
	if ok {
		if p.recorder != nil {
			p.recorder.RecordFrame(in)
		}
		p.session.Step(in, dt)
	} else {
		p.inputDone = true
	}

	if !p.opts.Headless {
		switch p.session.State() {
		case state.StatePaused:
			p.pause.Update()
		case state.StateGameOver:
			p.over.Update()
		}
		p.hud.Update()
	}

	if p.request != "" {
		return p.follow()
	}
	return nil, nil // nil = stay on this scene
}

// follow loads the scene a button asked for
func (p *Playing) follow() (scene.Scene, error) {
	name := p.request
	p.request = ""
	if p.opts.Loader == nil {
		return nil, fmt.Errorf("%w: cannot load %s", ErrNoLoader, name)
	}
	return p.opts.Loader.Load(name)
}

func (p *Playing) drainReloads() {
	for p.reloads != nil {
		select {
		case cfg, ok := <-p.reloads:
			if !ok {
				p.reloads = nil
				return
			}
			p.applyConfig(cfg)
		default:
			return
		}
	}
}

func (p *Playing) applyConfig(cfg *config.PhysicsConfig) {
	if err := p.session.Reconfigure(cfg); err != nil {
		log.Printf("[Config] reload rejected: %v", err)
		return
	}
	if c, ok := p.input.(configurable); ok {
		c.SetConfig(cfg.Input)
	}
	log.Printf("[Config] physics reloaded")
}

// Resume leaves the pause menu
func (p *Playing) Resume() {
	p.session.Resume()
}

// Restart asks for a fresh MainScene
func (p *Playing) Restart() {
	p.request = scene.MainScene
}

// MainMenu asks for the title screen
func (p *Playing) MainMenu() {
	p.request = scene.MainMenu
}

// Session exposes the running simulation
func (p *Playing) Session() *session.Session {
	return p.session
}

// HUD exposes the coin display
func (p *Playing) HUD() *ui.HUD {
	return p.hud
}

// InputDone reports whether the input source ran dry
func (p *Playing) InputDone() bool {
	return p.inputDone
}

func (p *Playing) onGameOver(coins int) {
	p.over.SetTitle(fmt.Sprintf("Game Over - %d coins", coins))
	p.recordBest(coins)
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

func (p *Playing) recordBest(coins int) {
	if p.opts.Save == nil {
		return
	}
	if p.opts.Save.RecordCoins(coins) {
		log.Printf("[Save] new best: %d coins", coins)
		p.hud.SetBest(coins)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.opts.RecordPath
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("[Replay] Failed to save recording: %v", err)
	} else {
		log.Printf("[Replay] Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Status names the input mode for the corner of the screen: the recording
// marker, replay progress, or nothing for plain keyboard play.
func (p *Playing) Status() string {
	if p.inputDone {
		return "REPLAY FINISHED"
	}
	if r, ok := p.input.(*ReplayInput); ok {
		played, total := r.Progress()
		return fmt.Sprintf("REPLAY %d/%d", played, total)
	}
	if p.recorder != nil && p.recorder.IsRecording() {
		return fmt.Sprintf("REC %d", p.recorder.FrameCount())
	}
	return ""
}

// Recorder returns the input recorder, nil when recording is off
func (p *Playing) Recorder() *Recorder {
	return p.recorder
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("[Playing] stage %s, %d pickups", p.session.Stage().Name, len(p.session.Pickups()))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.recordBest(p.session.Player().Wallet.Coins())
	p.saveRecording()
}

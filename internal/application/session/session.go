package session

import (
	"fmt"
	"log"

	"github.com/younwookim/pixelhop/internal/application/state"
	"github.com/younwookim/pixelhop/internal/application/system"
	"github.com/younwookim/pixelhop/internal/domain/entity"
	"github.com/younwookim/pixelhop/internal/infrastructure/config"
)

const (
	defaultPlayerW = 10
	defaultPlayerH = 14
	defaultPickup  = 8
)

// Config is everything a session needs. Clock may be nil.
type Config struct {
	Physics  *config.PhysicsConfig
	Entities *config.EntitiesConfig
	Stage    *entity.Stage
	Audio    system.AudioSink
	Clock    *TimeScale
}

// Session owns the stage, the player and the systems that run each frame
type Session struct {
	stage *entity.Stage
	clock *TimeScale
	state state.GameState

	player   *Player
	physics  *system.PhysicsSystem
	world    *system.CollisionWorld
	sensor   *system.GroundSensor
	triggers *system.TriggerSystem
	anim     *system.AnimationPlayer

	frame    int
	grounded bool

	// OnGameOver is called once when the player dies, with the coins held
	OnGameOver func(coins int)
}

// New builds a session with the player at the stage spawn
func New(cfg Config) (*Session, error) {
	if cfg.Physics == nil || cfg.Entities == nil || cfg.Stage == nil {
		return nil, fmt.Errorf("%w: session needs physics, entities and a stage", system.ErrMissingCollaborator)
	}
	if cfg.Audio == nil {
		return nil, fmt.Errorf("%w: session needs an audio sink", system.ErrMissingCollaborator)
	}
	if cfg.Clock == nil {
		cfg.Clock = NewTimeScale()
	}

	pw, ph := cfg.Entities.Player.Width, cfg.Entities.Player.Height
	if pw <= 0 || ph <= 0 {
		pw, ph = defaultPlayerW, defaultPlayerH
	}
	body := entity.NewBody(cfg.Stage.SpawnX, cfg.Stage.SpawnY, float64(pw), float64(ph))

	movement, err := system.NewMovementController(cfg.Physics.Movement.ToEntity(), body, cfg.Audio)
	if err != nil {
		return nil, err
	}

	s := &Session{
		stage:   cfg.Stage,
		clock:   cfg.Clock,
		state:   state.StatePlaying,
		physics: system.NewPhysicsSystem(cfg.Physics.Physics, cfg.Stage),
		world:   system.NewCollisionWorld(cfg.Stage),
		anim:    system.NewAnimationPlayer(nil),
	}
	s.sensor = system.NewGroundSensor(s.world, cfg.Physics.GroundCheck, cfg.Physics.Physics.PixelsPerUnit)
	s.triggers = system.NewTriggerSystem(s.world, cfg.Audio)
	s.player = &Player{
		Body:     body,
		Movement: movement,
		Wallet:   entity.NewWallet(),
		Health:   entity.NewHealth(s.gameOver),
	}

	for _, spawn := range cfg.Stage.Pickups {
		s.spawnPickup(cfg.Entities, spawn)
	}
	return s, nil
}

func (s *Session) spawnPickup(entities *config.EntitiesConfig, spawn entity.PickupSpawn) {
	pc := entities.Pickups[spawn.Kind.String()]
	w, h := pc.Width, pc.Height
	if w <= 0 || h <= 0 {
		w, h = defaultPickup, defaultPickup
	}
	amount := 0
	if spawn.Kind == entity.PickupCoin {
		amount = max(pc.Amount, 1)
	}
	bounds := entity.Rect{X: float64(spawn.X), Y: float64(spawn.Y), W: float64(w), H: float64(h)}
	s.triggers.Spawn(spawn.Kind, bounds, amount)
}

// Step runs one frame. dt is real time; the time scale is applied here.
func (s *Session) Step(in system.InputState, dt float64) {
	if in.PausePressed {
		s.TogglePause()
	}
	if !s.state.Simulating() {
		return
	}

	sdt := s.clock.Apply(dt)
	if sdt <= 0 {
		return
	}
	s.frame++

	body := s.player.Body
	s.grounded = s.sensor.Grounded(body)
	_, anim := s.player.Movement.Update(sdt, in.Horizontal, in.JumpPressed, s.grounded)
	s.physics.Step(body, sdt)
	s.triggers.Check(body.Bounds(), s.player)

	s.anim.Play(anim)
	s.anim.Update(sdt)
}

// TogglePause pauses a running game or resumes a paused one.
// It does nothing after game over.
func (s *Session) TogglePause() {
	switch s.state {
	case state.StatePlaying:
		s.Pause()
	case state.StatePaused:
		s.Resume()
	}
}

// Pause freezes the world
func (s *Session) Pause() {
	if s.state != state.StatePlaying {
		return
	}
	s.clock.Pause()
	s.state = state.StatePaused
}

// Resume unfreezes a paused world
func (s *Session) Resume() {
	if s.state != state.StatePaused {
		return
	}
	s.clock.Resume()
	s.state = state.StatePlaying
}

func (s *Session) gameOver() {
	s.state = state.StateGameOver
	coins := s.player.Wallet.Coins()
	log.Printf("[Session] player died on frame %d with %d coins", s.frame, coins)
	if s.OnGameOver != nil {
		s.OnGameOver(coins)
	}
}

// Reconfigure applies reloaded physics tuning to the running session
func (s *Session) Reconfigure(cfg *config.PhysicsConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := s.player.Movement.Reconfigure(cfg.Movement.ToEntity()); err != nil {
		return err
	}
	s.physics.SetSettings(cfg.Physics)
	s.sensor = system.NewGroundSensor(s.world, cfg.GroundCheck, cfg.Physics.PixelsPerUnit)
	return nil
}

// State returns the session state
func (s *Session) State() state.GameState {
	return s.state
}

// Player returns the player
func (s *Session) Player() *Player {
	return s.player
}

// Stage returns the stage being played
func (s *Session) Stage() *entity.Stage {
	return s.stage
}

// Pickups returns the pickups still in the stage
func (s *Session) Pickups() []*entity.Pickup {
	return s.triggers.Pickups()
}

// Animation returns the player's animation state and frame
func (s *Session) Animation() (entity.AnimState, int) {
	return s.anim.Current(), s.anim.Frame()
}

// Grounded reports the ground sensor reading of the last simulated frame
func (s *Session) Grounded() bool {
	return s.grounded
}

// Frame returns how many frames have been simulated
func (s *Session) Frame() int {
	return s.frame
}

// Snapshot is a comparable summary of the session
type Snapshot struct {
	Frame      int
	X, Y       float64
	Velocity   entity.Vector2
	Coins      int
	ExtraJumps int
	Alive      bool
	State      state.GameState
	Anim       entity.AnimState
}

// Snapshot captures the current session
func (s *Session) Snapshot() Snapshot {
	b := s.player.Body
	return Snapshot{
		Frame:      s.frame,
		X:          b.X,
		Y:          b.Y,
		Velocity:   b.Velocity(),
		Coins:      s.player.Wallet.Coins(),
		ExtraJumps: s.player.Movement.State().ExtraJumpsRemaining,
		Alive:      s.player.Health.IsAlive(),
		State:      s.state,
		Anim:       s.anim.Current(),
	}
}

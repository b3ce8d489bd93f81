package entity

// AnimState is the animation clip selected for the player
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimJump
	AnimFall
)

// String returns the clip name
func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "Player_Idle"
	case AnimRun:
		return "Player_Run"
	case AnimJump:
		return "Player_Jump"
	case AnimFall:
		return "Player_Fall"
	default:
		return "Player_Unknown"
	}
}

// SoundCue identifies a sound effect
type SoundCue int

const (
	CueJump SoundCue = iota
	CueSquash
	CueCoin
)

// AllSoundCues lists every cue, in declaration order
var AllSoundCues = []SoundCue{CueJump, CueSquash, CueCoin}

// String returns the cue identifier used in config files
func (c SoundCue) String() string {
	switch c {
	case CueJump:
		return "JUMP"
	case CueSquash:
		return "SQUASH"
	case CueCoin:
		return "COIN"
	default:
		return "UNKNOWN"
	}
}

// ParseSoundCue maps a config identifier back to a cue
func ParseSoundCue(s string) (SoundCue, bool) {
	for _, c := range AllSoundCues {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

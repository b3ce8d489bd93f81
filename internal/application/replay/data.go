package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	H  float64 `json:"h,omitempty"`  // Horizontal axis
	JP bool    `json:"jp,omitempty"` // JumpPressed
	PP bool    `json:"pp,omitempty"` // PausePressed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	TPS       int          `json:"tps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

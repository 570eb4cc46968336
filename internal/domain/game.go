package domain

// GameState holds the player's progression for one session.
// Level is never stored; it is derived from Experience.
type GameState struct {
	Experience int `json:"experience"`
	Day        int `json:"day"`
	Coins      int `json:"coins"`
}

// Snapshot is the complete simulation state of one session
type Snapshot struct {
	Plots []Plot    `json:"plots"`
	State GameState `json:"state"`
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	plots := make([]Plot, len(s.Plots))
	copy(plots, s.Plots)
	return Snapshot{Plots: plots, State: s.State}
}

package domain

// State represents the snapshot of a portrait preview session: which
// character is on screen and what the directives applied so far left visible.
type State struct {
	// Character names the profile this session previews.
	Character string `json:"character"`

	// Visibility is the current per-path visibility snapshot.
	Visibility Visibility `json:"visibility"`

	// History tracks the raw directives applied, in order. Useful for
	// debugging and for replaying a session against an updated profile.
	History []string `json:"history"`
}

// NewState creates a clean state for a character.
func NewState(character string) *State {
	return &State{
		Character:  character,
		Visibility: make(Visibility),
		History:    []string{},
	}
}

// Clone returns a deep copy so stores and callers cannot alias each other.
func (s *State) Clone() *State {
	out := &State{
		Character:  s.Character,
		Visibility: s.Visibility.Clone(),
		History:    make([]string, len(s.History)),
	}
	copy(out.History, s.History)
	return out
}

package domain

// Phase is the step a user has reached in the name-picking dialogue.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseChoosingCountry Phase = "choosing_country"
	PhaseChoosingGender  Phase = "choosing_gender"
)

// ConversationState is the per-session dialogue state. The zero value is idle
// with no selections.
type ConversationState struct {
	Phase   Phase  `json:"phase"`
	Country string `json:"country,omitempty"`
	Gender  Gender `json:"gender,omitempty"`
}

// CurrentPhase treats an unset phase as idle.
func (s ConversationState) CurrentPhase() Phase {
	if s.Phase == "" {
		return PhaseIdle
	}
	return s.Phase
}

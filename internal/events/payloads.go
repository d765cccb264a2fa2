package events

import (
	"fmt"
	"livequiz/internal/questions"
	"strings"
)

type StartGamePayload struct {
	PIN       string               `json:"pin"`
	Questions []questions.Question `json:"questions"`
}

func (p StartGamePayload) Validate() error {
	if p.PIN == "" {
		return fmt.Errorf("missing pin")
	}
	for i, q := range p.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}

// HostActionPayload covers host intents that only reference a room.
type HostActionPayload struct {
	PIN string `json:"pin"`
}

func (p HostActionPayload) Validate() error {
	if p.PIN == "" {
		return fmt.Errorf("missing pin")
	}
	return nil
}

type JoinRoomPayload struct {
	PIN  string `json:"pin"`
	Name string `json:"name"`
}

func (p JoinRoomPayload) Validate() error {
	if p.PIN == "" {
		return fmt.Errorf("missing pin")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("missing player name")
	}
	return nil
}

type SubmitAnswerPayload struct {
	PIN      string `json:"pin"`
	PlayerID string `json:"playerId"`
	Answer   int    `json:"answer"`
	TimeLeft int    `json:"timeLeft"`
	MaxTime  int    `json:"maxTime"`
}

func (p SubmitAnswerPayload) Validate() error {
	if p.PIN == "" {
		return fmt.Errorf("missing pin")
	}
	if p.PlayerID == "" {
		return fmt.Errorf("missing player id")
	}
	if p.MaxTime <= 0 {
		return fmt.Errorf("max time must be positive")
	}
	if p.TimeLeft < 0 || p.TimeLeft > p.MaxTime {
		return fmt.Errorf("time left %d out of range [0, %d]", p.TimeLeft, p.MaxTime)
	}
	return nil
}

// JoinedRoomPayload confirms a join back to the joining player.
type JoinedRoomPayload struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

// PlayerRef identifies a player in host-facing notices
// (player_joined, player_left).
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

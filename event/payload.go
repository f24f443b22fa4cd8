package event

import (
	"sync"
	"time"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/skill"
)

// HUDPayload is the HUD line plus the numbers it was built from
type HUDPayload struct {
	Text      string `json:"text"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"max_hp"`
	Level     int    `json:"level"`
	Wave      int    `json:"wave"`
	Remaining int    `json:"remaining"`
}

// PausePayload reports a pause transition
// Skills is filled only when the player requested the pause
type PausePayload struct {
	Paused        bool     `json:"paused"`
	UserRequested bool     `json:"user_requested"`
	Skills        []string `json:"skills,omitempty"`
}

type GameOverPayload struct {
	Wave  int `json:"wave"`
	Level int `json:"level"`
}

type VibratePayload struct {
	Duration time.Duration `json:"duration"`
}

// UpgradeChoicesPayload offers up to three skills
// Select is single-shot: only the first call reaches the loop
type UpgradeChoicesPayload struct {
	Choices []skill.Choice `json:"choices"`
	Select  func(skill.ID) `json:"-"`
}

// NewUpgradeChoices wraps apply so that it runs at most once
func NewUpgradeChoices(choices []skill.Choice, apply func(skill.ID)) *UpgradeChoicesPayload {
	var once sync.Once
	return &UpgradeChoicesPayload{
		Choices: choices,
		Select: func(id skill.ID) {
			once.Do(func() { apply(id) })
		},
	}
}

type SavePayload struct {
	Snapshot component.Snapshot `json:"snapshot"`
}

type WavePayload struct {
	Wave int `json:"wave"`
}

type BossPayload struct {
	Wave int     `json:"wave"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type LevelUpPayload struct {
	Level int `json:"level"`
}

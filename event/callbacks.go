package event

import (
	"time"

	"github.com/lixenwraith/vamp-arena/component"
	"github.com/lixenwraith/vamp-arena/skill"
)

// Callbacks is the presentation-side contract of the loop's outputs
type Callbacks interface {
	OnHUD(text string)
	OnPauseChanged(paused bool, skills []string)
	OnGameOver()
	OnVibrate(d time.Duration)
	OnUpgradeChoices(choices []skill.Choice, selectFn func(skill.ID))
	OnSaveRequested(snap component.Snapshot)
	OnPlayHit()
}

// Adapter routes events to a Callbacks implementation
type Adapter struct {
	cb Callbacks
}

func NewAdapter(cb Callbacks) *Adapter {
	return &Adapter{cb: cb}
}

func (a *Adapter) EventTypes() []EventType {
	return []EventType{
		EventHUD, EventPauseChanged, EventGameOver, EventVibrate,
		EventUpgradeChoices, EventSaveRequested, EventPlayHit,
	}
}

func (a *Adapter) HandleEvent(ev GameEvent) {
	switch ev.Type {
	case EventHUD:
		if p, ok := ev.Payload.(*HUDPayload); ok {
			a.cb.OnHUD(p.Text)
		}
	case EventPauseChanged:
		if p, ok := ev.Payload.(*PausePayload); ok {
			a.cb.OnPauseChanged(p.Paused, p.Skills)
		}
	case EventGameOver:
		a.cb.OnGameOver()
	case EventVibrate:
		if p, ok := ev.Payload.(*VibratePayload); ok {
			a.cb.OnVibrate(p.Duration)
		}
	case EventUpgradeChoices:
		if p, ok := ev.Payload.(*UpgradeChoicesPayload); ok {
			a.cb.OnUpgradeChoices(p.Choices, p.Select)
		}
	case EventSaveRequested:
		if p, ok := ev.Payload.(*SavePayload); ok {
			a.cb.OnSaveRequested(p.Snapshot)
		}
	case EventPlayHit:
		a.cb.OnPlayHit()
	}
}

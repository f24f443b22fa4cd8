package event

// EventType identifies a notification emitted by the simulation loop
type EventType int

const (
	// EventHUD carries the recomputed HUD line
	// Trigger: every tick | Payload: *HUDPayload
	EventHUD EventType = iota + 1

	// EventPauseChanged reports pause state transitions
	// Trigger: Pause, Resume, level-up, game over | Payload: *PausePayload
	EventPauseChanged

	// EventGameOver fires once when player hp reaches zero
	// Trigger: enemy contact | Payload: *GameOverPayload
	EventGameOver

	// EventVibrate requests haptic feedback
	// Trigger: every tick with contact damage | Payload: *VibratePayload
	EventVibrate

	// EventUpgradeChoices prompts for a skill pick
	// Trigger: level-up while running | Payload: *UpgradeChoicesPayload
	EventUpgradeChoices

	// EventSaveRequested carries a snapshot to persist
	// Trigger: autosave timer, Pause | Payload: *SavePayload
	EventSaveRequested

	// EventPlayHit fires once per successful damage event on an enemy
	// Trigger: projectile, shockwave, blade | Payload: nil
	EventPlayHit

	// EventWaveStarted reports a new wave number
	// Trigger: wave advance | Payload: *WavePayload
	EventWaveStarted

	// EventBossSpawned reports a boss entering the arena
	// Trigger: boss placement | Payload: *BossPayload
	EventBossSpawned

	// EventLevelUp reports each level gained, fired for every level in order
	// Trigger: experience gain | Payload: *LevelUpPayload
	EventLevelUp
)

var typeNames = map[EventType]string{
	EventHUD:            "hud",
	EventPauseChanged:   "pause",
	EventGameOver:       "game_over",
	EventVibrate:        "vibrate",
	EventUpgradeChoices: "upgrade_choices",
	EventSaveRequested:  "save",
	EventPlayHit:        "hit",
	EventWaveStarted:    "wave",
	EventBossSpawned:    "boss",
	EventLevelUp:        "level_up",
}

// String returns the stable wire name of the type
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType resolves a wire name
func ParseType(name string) (EventType, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// AllTypes lists every event type in declaration order
func AllTypes() []EventType {
	return []EventType{
		EventHUD, EventPauseChanged, EventGameOver, EventVibrate, EventUpgradeChoices,
		EventSaveRequested, EventPlayHit, EventWaveStarted, EventBossSpawned, EventLevelUp,
	}
}

// GameEvent is a single queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	// Tick is the loop tick that produced the event
	Tick int64
}

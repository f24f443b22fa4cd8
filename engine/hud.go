package engine

import (
	"fmt"

	"github.com/lixenwraith/vamp-arena/event"
)

// FormatHUD renders the HUD line, hp values are truncated
func FormatHUD(hp, maxHP float64, level, wave, remaining int) string {
	return fmt.Sprintf("HP %d / %d | LVL %d | Wave %d (%d left)", int(hp), int(maxHP), level, wave, remaining)
}

func (l *Loop) publishHUD() {
	w := l.world
	p := &w.Player
	w.Wave = l.director.Wave()
	w.Remaining = l.director.Remaining(w.LiveEnemies())
	w.HUD = FormatHUD(p.HP, p.MaxHP, p.Level, w.Wave, w.Remaining)

	l.emit(event.EventHUD, &event.HUDPayload{
		Text:      w.HUD,
		HP:        int(p.HP),
		MaxHP:     int(p.MaxHP),
		Level:     p.Level,
		Wave:      w.Wave,
		Remaining: w.Remaining,
	})
}

package state

import (
	"fmt"
	"log/slog"
	"time"
)

// Experience awards applied by the reducer.
const (
	DiscoveryExperience = 10 // first visit to a location
	QuestExperience     = 15 // accepting a new quest
	DayBoundaryHeal     = 10 // rest heal when a new day begins
)

// Reducer applies one validated change set, plus the player's action
// and the produced narrative, to a previous snapshot. The previous
// snapshot is never mutated; Apply clones it and returns the clone.
//
// The reducer assumes its input already passed Validate and therefore
// cannot fail. Any malformed model output must have degraded to an
// empty or partial ValidatedChange before reaching this point.
type Reducer struct {
	prev   *GameState
	change *ValidatedChange
	logger *slog.Logger
	now    func() time.Time
}

// NewReducer creates a reducer for one turn.
func NewReducer(prev *GameState, change *ValidatedChange, logger *slog.Logger) *Reducer {
	if change == nil {
		change = &ValidatedChange{}
	}
	return &Reducer{
		prev:   prev,
		change: change,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the timestamp source. Returns the Reducer for
// method chaining.
func (r *Reducer) WithClock(now func() time.Time) *Reducer {
	r.now = now
	return r
}

// Apply produces the next snapshot. The order of steps matters:
// derived fields (discovery experience, leveling, day boundaries)
// depend on changes applied earlier in the same turn.
func (r *Reducer) Apply(action, narrative string) *GameState {
	gs := r.prev.Clone()

	gs.AppendHistory(HistoryAction, action)
	gs.AppendHistory(HistoryNarrative, narrative)
	gs.LastAction = &ActionRecord{Text: action, Timestamp: r.now()}

	r.applyHealth(gs)
	r.applyItems(gs)
	r.applyLocation(gs)
	r.applyQuests(gs)
	r.applyRelationships(gs)
	r.applyStatusEffects(gs)
	r.applyExperience(gs)

	r.tickStatusEffects(gs)
	r.advanceTime(gs)
	r.applyLeveling(gs)

	// AppendHistory already enforces the cap per entry, but the cap is
	// an invariant of every reducer application, so enforce it once
	// more on the way out.
	if len(gs.GameHistory) > HistoryLimit {
		gs.GameHistory = gs.GameHistory[len(gs.GameHistory)-HistoryLimit:]
	}

	gs.UpdatedAt = r.now()
	return gs
}

func (r *Reducer) applyHealth(gs *GameState) {
	if r.change.Health == nil {
		return
	}
	gs.Player.Health = *r.change.Health
	if gs.Player.Health <= 0 && !gs.GameOver {
		gs.AppendHistory(HistorySystem, "You have died. Game over.")
		gs.GameOver = true
		if r.logger != nil {
			r.logger.Info("Player died", "game_id", gs.ID.String())
		}
	}
}

func (r *Reducer) applyItems(gs *GameState) {
	for _, item := range r.change.AddItems {
		if gs.Player.HasItem(item) {
			continue
		}
		gs.Player.Inventory = append(gs.Player.Inventory, item)
		gs.AppendHistory(HistorySystem, fmt.Sprintf("Gained item: %s", item))
	}

	for _, item := range r.change.RemoveItems {
		for i, held := range gs.Player.Inventory {
			if held == item {
				gs.Player.Inventory = append(gs.Player.Inventory[:i], gs.Player.Inventory[i+1:]...)
				gs.AppendHistory(HistorySystem, fmt.Sprintf("Lost item: %s", item))
				break
			}
		}
	}
}

func (r *Reducer) applyLocation(gs *GameState) {
	if r.change.NewLocation == nil {
		return
	}
	loc := *r.change.NewLocation
	gs.CurrentLocation = loc
	if !gs.HasDiscovered(loc.ID) {
		gs.DiscoveredLocations = append(gs.DiscoveredLocations, loc.ID)
		gs.Player.Experience += DiscoveryExperience
		gs.AppendHistory(HistorySystem, fmt.Sprintf("Discovered new location: %s (+%d XP)", loc.Name, DiscoveryExperience))
	}
}

func (r *Reducer) applyQuests(gs *GameState) {
	for _, quest := range r.change.AddQuests {
		if gs.Player.HasQuest(quest.Title) {
			continue
		}
		gs.Player.Quests = append(gs.Player.Quests, quest)
		gs.Player.Experience += QuestExperience
		gs.AppendHistory(HistorySystem, fmt.Sprintf("New quest: %s (+%d XP)", quest.Title, QuestExperience))
	}
}

func (r *Reducer) applyRelationships(gs *GameState) {
	for name, relation := range r.change.NPCRelationships {
		gs.NPCRelationships[name] = relation
	}
}

func (r *Reducer) applyStatusEffects(gs *GameState) {
	for _, effect := range r.change.StatusEffects {
		if gs.Player.HasStatusEffect(effect.Name) {
			continue
		}
		gs.Player.StatusEffects = append(gs.Player.StatusEffects, effect)
		gs.AppendHistory(HistorySystem, fmt.Sprintf("Status effect gained: %s", effect.Name))
	}
}

func (r *Reducer) applyExperience(gs *GameState) {
	if r.change.Experience == nil || *r.change.Experience <= 0 {
		return
	}
	gs.Player.Experience += *r.change.Experience
	gs.AppendHistory(HistorySystem, fmt.Sprintf("Gained %d experience", *r.change.Experience))
}

// tickStatusEffects runs every turn, including turns that added no new
// effects. Effects whose duration reaches zero are dropped.
func (r *Reducer) tickStatusEffects(gs *GameState) {
	remaining := gs.Player.StatusEffects[:0]
	for _, effect := range gs.Player.StatusEffects {
		effect.Duration--
		if effect.Duration > 0 {
			remaining = append(remaining, effect)
		} else {
			gs.AppendHistory(HistorySystem, fmt.Sprintf("Status effect ended: %s", effect.Name))
		}
	}
	gs.Player.StatusEffects = remaining
}

func (r *Reducer) advanceTime(gs *GameState) {
	gs.TimeElapsed++
	if gs.TimeElapsed%TimeUnitsPerDay != 0 {
		return
	}
	gs.Player.Health = clampInt(gs.Player.Health+DayBoundaryHeal, 0, 100)
	gs.AppendHistory(HistorySystem, fmt.Sprintf("A new day begins (day %d). You feel rested.", gs.TimeElapsed/TimeUnitsPerDay+1))
}

// applyLeveling consumes 100*level experience per level and loops, so a
// single large award can cross several thresholds in one turn. Each
// level-up fully heals the player.
func (r *Reducer) applyLeveling(gs *GameState) {
	for gs.Player.Experience >= 100*gs.Player.Level {
		gs.Player.Experience -= 100 * gs.Player.Level
		gs.Player.Level++
		gs.Player.Health = 100
		gs.AppendHistory(HistorySystem, fmt.Sprintf("Level up! You are now level %d.", gs.Player.Level))
		if r.logger != nil {
			r.logger.Info("Player leveled up", "game_id", gs.ID.String(), "level", gs.Player.Level)
		}
	}
}

package state

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HistoryLimit caps GameHistory at the most recent entries. Older
// entries are evicted first.
const HistoryLimit = 50

// TimeUnitsPerDay is the number of abstract time units in one game day.
const TimeUnitsPerDay = 24

const (
	HistoryAction    = "action"
	HistoryNarrative = "narrative"
	HistorySystem    = "system"
)

// HistoryEntry is one line of the bounded game log.
type HistoryEntry struct {
	Type string `json:"type"` // action, narrative, or system
	Text string `json:"text"`
}

// World describes the generated game world. Immutable after creation.
type World struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Location is the player's current position. Replaced wholesale on travel.
type Location struct {
	ID          string `json:"id"` // normalized slug
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StatusEffect is a temporary condition on the player. Duration is
// counted in turns and decremented every turn.
type StatusEffect struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Duration    int            `json:"duration"`
	Effect      map[string]any `json:"effect"`
}

// Quest is a player objective. The LLM may emit quests as bare strings
// or as objects; both unmarshal into this struct, and quests are
// compared by title.
type Quest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Objectives  []string `json:"objectives"`
}

func (q *Quest) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		q.Title = strings.TrimSpace(s)
		q.Description = ""
		q.Objectives = nil
		return nil
	}

	type questAlias Quest
	var alias questAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("quest must be a string or an object: %w", err)
	}
	*q = Quest(alias)
	return nil
}

// Relation is an NPC relationship value: either a numeric score in
// [0,100] or a free-text note. Serialized as a bare number or string.
type Relation struct {
	Score *int   `json:"-"`
	Note  string `json:"-"`
}

func ScoreRelation(score int) Relation {
	return Relation{Score: &score}
}

func NoteRelation(note string) Relation {
	return Relation{Note: note}
}

func (r Relation) MarshalJSON() ([]byte, error) {
	if r.Score != nil {
		return json.Marshal(*r.Score)
	}
	return json.Marshal(r.Note)
}

func (r *Relation) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		r.Score = &n
		r.Note = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("relationship must be a number or a string: %w", err)
	}
	r.Score = nil
	r.Note = s
	return nil
}

// Player holds the mutable per-player attributes.
type Player struct {
	Health        int            `json:"health"` // clamped to [0,100]
	Inventory     []string       `json:"inventory"`
	Quests        []Quest        `json:"quests"`
	Experience    int            `json:"experience"`
	Level         int            `json:"level"`
	StatusEffects []StatusEffect `json:"status_effects"`
}

// ActionRecord is the last submitted player action.
type ActionRecord struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// GameState is one immutable snapshot of a game session. Turns never
// mutate a snapshot in place; the Reducer clones it and applies a
// validated change set to the clone.
type GameState struct {
	ID                  uuid.UUID           `json:"id"`
	Player              Player              `json:"player"`
	World               World               `json:"world"`
	CurrentLocation     Location            `json:"current_location"`
	GameHistory         []HistoryEntry      `json:"game_history"`
	DiscoveredLocations []string            `json:"discovered_locations"` // append-only
	NPCRelationships    map[string]Relation `json:"npc_relationships"`
	TimeElapsed         int                 `json:"time_elapsed"`
	LastAction          *ActionRecord       `json:"last_action,omitempty"`
	GameOver            bool                `json:"game_over"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// NewGameState creates a fresh session in the given world at the given
// starting location. The starting location is always discovered.
func NewGameState(world World, start Location) *GameState {
	start.ID = NormalizeLocationID(start.ID)
	return &GameState{
		ID: uuid.New(),
		Player: Player{
			Health:        100,
			Level:         1,
			Inventory:     make([]string, 0),
			Quests:        make([]Quest, 0),
			StatusEffects: make([]StatusEffect, 0),
		},
		World:               world,
		CurrentLocation:     start,
		GameHistory:         make([]HistoryEntry, 0),
		DiscoveredLocations: []string{start.ID},
		NPCRelationships:    make(map[string]Relation),
		CreatedAt:           time.Now(),
	}
}

// Clone returns a deep copy of the snapshot. Every slice and map is
// copied so the original can never be mutated through the clone.
func (gs *GameState) Clone() *GameState {
	next := *gs

	next.GameHistory = make([]HistoryEntry, len(gs.GameHistory))
	copy(next.GameHistory, gs.GameHistory)

	next.DiscoveredLocations = make([]string, len(gs.DiscoveredLocations))
	copy(next.DiscoveredLocations, gs.DiscoveredLocations)

	next.Player.Inventory = make([]string, len(gs.Player.Inventory))
	copy(next.Player.Inventory, gs.Player.Inventory)

	next.Player.Quests = make([]Quest, len(gs.Player.Quests))
	for i, q := range gs.Player.Quests {
		cq := q
		if q.Objectives != nil {
			cq.Objectives = make([]string, len(q.Objectives))
			copy(cq.Objectives, q.Objectives)
		}
		next.Player.Quests[i] = cq
	}

	next.Player.StatusEffects = make([]StatusEffect, len(gs.Player.StatusEffects))
	for i, se := range gs.Player.StatusEffects {
		cse := se
		if se.Effect != nil {
			cse.Effect = make(map[string]any, len(se.Effect))
			for k, v := range se.Effect {
				cse.Effect[k] = v
			}
		}
		next.Player.StatusEffects[i] = cse
	}

	next.NPCRelationships = make(map[string]Relation, len(gs.NPCRelationships))
	for k, v := range gs.NPCRelationships {
		if v.Score != nil {
			score := *v.Score
			v.Score = &score
		}
		next.NPCRelationships[k] = v
	}

	if gs.LastAction != nil {
		la := *gs.LastAction
		next.LastAction = &la
	}

	return &next
}

// AppendHistory adds an entry and evicts the oldest entries beyond
// HistoryLimit.
func (gs *GameState) AppendHistory(entryType, text string) {
	gs.GameHistory = append(gs.GameHistory, HistoryEntry{Type: entryType, Text: text})
	if len(gs.GameHistory) > HistoryLimit {
		gs.GameHistory = gs.GameHistory[len(gs.GameHistory)-HistoryLimit:]
	}
}

// HasItem reports whether the player currently holds the item.
func (p *Player) HasItem(item string) bool {
	for _, held := range p.Inventory {
		if held == item {
			return true
		}
	}
	return false
}

// HasQuest reports whether a quest with the same title is already
// tracked.
func (p *Player) HasQuest(title string) bool {
	for _, q := range p.Quests {
		if q.Title == title {
			return true
		}
	}
	return false
}

// HasStatusEffect reports whether an effect with the given name is
// currently active.
func (p *Player) HasStatusEffect(name string) bool {
	for _, se := range p.StatusEffects {
		if se.Name == name {
			return true
		}
	}
	return false
}

// HasDiscovered reports whether the location id is already known.
func (gs *GameState) HasDiscovered(locationID string) bool {
	for _, id := range gs.DiscoveredLocations {
		if id == locationID {
			return true
		}
	}
	return false
}

// NormalizeLocationID lowercases the id and collapses internal
// whitespace runs into single underscores.
func NormalizeLocationID(id string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(id))), "_")
}

package state

import (
	"strconv"
	"strings"
)

// DefaultEffectDuration is used when a status effect arrives without a
// usable duration.
const DefaultEffectDuration = 5

// Validate turns a decoded ChangeSet into a ValidatedChange against the
// current game state. Validation degrades gracefully per field: a field
// that does not match its expected shape is omitted, never an error for
// the whole turn. Cross-references (item removal) are checked against
// the current inventory.
func Validate(cs *ChangeSet, gs *GameState) *ValidatedChange {
	vc := &ValidatedChange{}
	if cs == nil || gs == nil {
		return vc
	}

	if n, ok := asNumber(cs.Health); ok {
		health := clampInt(int(n), 0, 100)
		vc.Health = &health
	}

	vc.AddItems = asStringList(cs.AddItems)

	for _, item := range asStringList(cs.RemoveItems) {
		if gs.Player.HasItem(item) {
			vc.RemoveItems = append(vc.RemoveItems, item)
		}
	}

	vc.NewLocation = validateLocation(cs.NewLocation)
	vc.AddQuests = validateQuests(cs.AddQuests)
	vc.NPCRelationships = validateRelationships(cs.NPCRelationships)

	if n, ok := asNumber(cs.Experience); ok {
		xp := int(n)
		if xp < 0 {
			xp = 0
		}
		vc.Experience = &xp
	}

	vc.StatusEffects = validateStatusEffects(cs.StatusEffects)

	return vc
}

// validateLocation accepts a location object only when id, name, and
// description are all present and non-empty. Partial location data is
// rejected wholesale, never partially applied.
func validateLocation(v any) *Location {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	id := strings.TrimSpace(asString(m["id"]))
	name := strings.TrimSpace(asString(m["name"]))
	description := strings.TrimSpace(asString(m["description"]))
	if id == "" || name == "" || description == "" {
		return nil
	}

	return &Location{
		ID:          NormalizeLocationID(id),
		Name:        name,
		Description: description,
	}
}

// validateQuests accepts an array of quest entries, a single string, or
// a single well-formed object. Strings become title-only quests;
// objects must carry a title.
func validateQuests(v any) []Quest {
	var entries []any
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		entries = t
	default:
		entries = []any{t}
	}

	var quests []Quest
	for _, entry := range entries {
		switch q := entry.(type) {
		case string:
			title := strings.TrimSpace(q)
			if title != "" {
				quests = append(quests, Quest{Title: title, Objectives: []string{}})
			}
		case map[string]any:
			title := strings.TrimSpace(asString(q["title"]))
			if title == "" {
				continue
			}
			quest := Quest{
				Title:       title,
				Description: asString(q["description"]),
				Objectives:  []string{},
			}
			if objectives, ok := q["objectives"].([]any); ok {
				for _, obj := range objectives {
					if s := strings.TrimSpace(asString(obj)); s != "" {
						quest.Objectives = append(quest.Objectives, s)
					}
				}
			}
			quests = append(quests, quest)
		}
	}
	return quests
}

// validateRelationships keeps map entries whose value is a number
// (clamped to [0,100]) or a string (trimmed). Anything else is dropped.
func validateRelationships(v any) map[string]Relation {
	m, ok := v.(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}

	relations := make(map[string]Relation)
	for name, value := range m {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if n, ok := asNumber(value); ok {
			relations[name] = ScoreRelation(clampInt(int(n), 0, 100))
			continue
		}
		if s, ok := value.(string); ok {
			relations[name] = NoteRelation(strings.TrimSpace(s))
		}
	}
	if len(relations) == 0 {
		return nil
	}
	return relations
}

// validateStatusEffects accepts an array of objects with a non-empty
// name, filling defaults for the remaining fields.
func validateStatusEffects(v any) []StatusEffect {
	entries, ok := v.([]any)
	if !ok {
		return nil
	}

	var effects []StatusEffect
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name := strings.TrimSpace(asString(m["name"]))
		if name == "" {
			continue
		}
		effect := StatusEffect{
			Name:        name,
			Description: asString(m["description"]),
			Duration:    DefaultEffectDuration,
			Effect:      map[string]any{},
		}
		if d, ok := asNumber(m["duration"]); ok {
			effect.Duration = int(d)
		}
		if inner, ok := m["effect"].(map[string]any); ok {
			effect.Effect = inner
		}
		effects = append(effects, effect)
	}
	return effects
}

// asStringList accepts an array of strings or a single string. Each
// entry is trimmed; empty entries are dropped. No de-duplication here;
// the Reducer dedups against the live inventory.
func asStringList(v any) []string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	case []any:
		var out []string
		for _, entry := range t {
			if s, ok := entry.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return nil
}

// asNumber coerces JSON numbers and numeric strings.
func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

package response

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/realmforge/adventure-engine/pkg/state"
)

// trailingComma matches the one defect class the strict path repairs:
// a comma immediately before a closing brace or bracket.
var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

// Decode parses the raw state-changes text into a ChangeSet. The
// primary path is a strict JSON parse after trailing-comma repair. On
// parse failure it falls back to per-field regex recovery. Decode never
// fails; an empty ChangeSet is a valid result when nothing could be
// extracted.
func Decode(raw string, logger *slog.Logger) *state.ChangeSet {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &state.ChangeSet{}
	}

	repaired := RepairJSON(raw)

	var cs state.ChangeSet
	if err := json.Unmarshal([]byte(repaired), &cs); err == nil {
		return &cs
	} else if logger != nil {
		logger.Debug("Strict change set parse failed, using field recovery", "error", err)
	}

	return recoverFields(raw)
}

// RepairJSON removes trailing commas before closing braces and
// brackets. This is a cosmetic repair for the most common model output
// defect, not a general JSON fixer.
func RepairJSON(raw string) string {
	return trailingComma.ReplaceAllString(raw, "$1")
}

// Field-specific recovery patterns. Each is independent; a field whose
// pattern does not match is simply absent from the result.
var (
	healthPattern     = regexp.MustCompile(`(?i)"health"\s*:\s*(-?\d+(?:\.\d+)?)`)
	experiencePattern = regexp.MustCompile(`(?i)"experience"\s*:\s*(-?\d+(?:\.\d+)?)`)

	addItemsArrayPattern     = regexp.MustCompile(`(?is)"addItems"\s*:\s*\[([^\]]*)`)
	removeItemsArrayPattern  = regexp.MustCompile(`(?is)"removeItems"\s*:\s*\[([^\]]*)`)
	addItemsStringPattern    = regexp.MustCompile(`(?i)"addItems"\s*:\s*"([^"]*)"`)
	removeItemsStringPattern = regexp.MustCompile(`(?i)"removeItems"\s*:\s*"([^"]*)"`)

	newLocationPattern = regexp.MustCompile(`(?is)"newLocation"\s*:\s*\{([^}]*)`)
	locationFieldNames = []string{"id", "name", "description"}

	addQuestsPattern = regexp.MustCompile(`(?is)"addQuests"\s*:\s*\[([^\]]*)`)

	npcRelationshipsPattern = regexp.MustCompile(`(?is)"npcRelationships"\s*:\s*\{([^}]*)`)
	relationshipEntry       = regexp.MustCompile(`"([^"]+)"\s*:\s*(?:"([^"]*)"|(-?\d+(?:\.\d+)?))`)

	quotedString = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

// recoverFields is the best-effort fallback decoder. It extracts
// whatever known fields it can from malformed JSON-like text, leaving
// the rest absent. It must never raise and makes no attempt at general
// JSON repair.
func recoverFields(raw string) *state.ChangeSet {
	cs := &state.ChangeSet{}

	if m := healthPattern.FindStringSubmatch(raw); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			cs.Health = n
		}
	}

	if m := experiencePattern.FindStringSubmatch(raw); m != nil {
		if n, err := strconv.ParseFloat(m[1], 64); err == nil {
			cs.Experience = n
		}
	}

	cs.AddItems = recoverStringList(raw, addItemsArrayPattern, addItemsStringPattern)
	cs.RemoveItems = recoverStringList(raw, removeItemsArrayPattern, removeItemsStringPattern)

	if m := newLocationPattern.FindStringSubmatch(raw); m != nil {
		location := make(map[string]any)
		for _, field := range locationFieldNames {
			p := regexp.MustCompile(`(?i)"` + field + `"\s*:\s*"([^"]*)"`)
			if fm := p.FindStringSubmatch(m[1]); fm != nil {
				location[field] = fm[1]
			}
		}
		if len(location) > 0 {
			cs.NewLocation = location
		}
	}

	if m := addQuestsPattern.FindStringSubmatch(raw); m != nil {
		var quests []any
		for _, qm := range quotedString.FindAllStringSubmatch(m[1], -1) {
			quests = append(quests, qm[1])
		}
		if len(quests) > 0 {
			cs.AddQuests = quests
		}
	}

	if m := npcRelationshipsPattern.FindStringSubmatch(raw); m != nil {
		relationships := make(map[string]any)
		for _, rm := range relationshipEntry.FindAllStringSubmatch(m[1], -1) {
			if rm[3] != "" {
				if n, err := strconv.ParseFloat(rm[3], 64); err == nil {
					relationships[rm[1]] = n
				}
			} else {
				relationships[rm[1]] = rm[2]
			}
		}
		if len(relationships) > 0 {
			cs.NPCRelationships = relationships
		}
	}

	return cs
}

// recoverStringList tries the array form first, then the bare-string
// form.
func recoverStringList(raw string, arrayPattern, stringPattern *regexp.Regexp) any {
	if m := arrayPattern.FindStringSubmatch(raw); m != nil {
		var items []any
		for _, im := range quotedString.FindAllStringSubmatch(m[1], -1) {
			items = append(items, im[1])
		}
		if len(items) > 0 {
			return items
		}
		return nil
	}
	if m := stringPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return nil
}

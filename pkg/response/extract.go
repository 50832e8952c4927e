// Package response parses raw model output into a narrative section
// and a structured change set. Model output is adversarial by
// unreliability, not malice: the package's contract is to maximize
// extracted signal and never fail the turn.
package response

import (
	"strings"

	"github.com/realmforge/adventure-engine/pkg/textfilter"
)

// Markers the model is instructed to emit around the two response
// sections.
const (
	NarrativeMarker    = "NARRATIVE:"
	StateChangesMarker = "STATE_CHANGES:"
)

// Extract splits one raw model response into the player-visible
// narrative and the raw state-changes text. Missing markers degrade
// gracefully: with no NARRATIVE: marker the whole response is treated
// as narrative, and a missing STATE_CHANGES: section yields an empty
// string (an empty change set downstream). Extraction never fails.
func Extract(raw string) (narrative, stateChanges string) {
	narrative = raw

	if idx := strings.Index(raw, StateChangesMarker); idx >= 0 {
		narrative = raw[:idx]
		stateChanges = strings.TrimSpace(raw[idx+len(StateChangesMarker):])
	}

	if idx := strings.Index(narrative, NarrativeMarker); idx >= 0 {
		narrative = narrative[idx+len(NarrativeMarker):]
	}

	narrative = textfilter.SanitizeNarrative(narrative)
	return narrative, stateChanges
}

package response

import (
	"strings"
	"testing"
)

func TestExtract_BothMarkers(t *testing.T) {
	raw := `NARRATIVE:
You step into the misty harbor. Gulls cry overhead.

STATE_CHANGES:
{"newLocation": {"id": "misty_harbor", "name": "Misty Harbor", "description": "A foggy port."}}`

	narrative, changes := Extract(raw)

	if !strings.Contains(narrative, "You step into the misty harbor") {
		t.Errorf("Unexpected narrative: %q", narrative)
	}
	if strings.Contains(narrative, "NARRATIVE") || strings.Contains(narrative, "STATE_CHANGES") {
		t.Errorf("Markers leaked into narrative: %q", narrative)
	}
	if !strings.HasPrefix(changes, `{"newLocation"`) {
		t.Errorf("Unexpected changes: %q", changes)
	}
}

func TestExtract_MissingNarrativeMarker(t *testing.T) {
	raw := `The cave is dark and cold.

STATE_CHANGES:
{"health": 90}`

	narrative, changes := Extract(raw)

	if narrative != "The cave is dark and cold." {
		t.Errorf("Unexpected narrative: %q", narrative)
	}
	if changes != `{"health": 90}` {
		t.Errorf("Unexpected changes: %q", changes)
	}
}

func TestExtract_MissingStateChanges(t *testing.T) {
	narrative, changes := Extract("NARRATIVE:\nYou wait. Nothing happens.")

	if narrative != "You wait. Nothing happens." {
		t.Errorf("Unexpected narrative: %q", narrative)
	}
	if changes != "" {
		t.Errorf("Expected empty changes, got %q", changes)
	}
}

func TestExtract_NoMarkersAtAll(t *testing.T) {
	narrative, changes := Extract("You wander the streets aimlessly.")

	if narrative != "You wander the streets aimlessly." {
		t.Errorf("Unexpected narrative: %q", narrative)
	}
	if changes != "" {
		t.Errorf("Expected empty changes, got %q", changes)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	narrative, changes := Extract("")
	if narrative != "" || changes != "" {
		t.Errorf("Expected empty results, got %q / %q", narrative, changes)
	}
}

func TestExtract_StripsCodeFences(t *testing.T) {
	raw := "NARRATIVE:\nYou find a scroll.\n```json\n{\"secret\": true}\n```\nIt crumbles to dust.\n\nSTATE_CHANGES:\n{}"

	narrative, _ := Extract(raw)

	if strings.Contains(narrative, "```") || strings.Contains(narrative, "secret") {
		t.Errorf("Code fence leaked into narrative: %q", narrative)
	}
	if !strings.Contains(narrative, "You find a scroll.") {
		t.Errorf("Narrative text lost: %q", narrative)
	}
	if !strings.Contains(narrative, "It crumbles to dust.") {
		t.Errorf("Narrative after fence lost: %q", narrative)
	}
}

func TestExtract_StripsMarkdownHeadings(t *testing.T) {
	narrative, _ := Extract("NARRATIVE:\n## The Harbor\nYou arrive at the docks.")

	if strings.Contains(narrative, "#") {
		t.Errorf("Heading marker leaked: %q", narrative)
	}
	if !strings.Contains(narrative, "The Harbor") {
		t.Errorf("Heading text lost: %q", narrative)
	}
}

package response

import (
	"testing"
)

func TestDecode_StrictJSON(t *testing.T) {
	cs := Decode(`{"health": 85, "addItems": ["rusty key"], "experience": 25}`, nil)

	if cs.Health != 85.0 {
		t.Errorf("Unexpected health: %v", cs.Health)
	}
	items, ok := cs.AddItems.([]any)
	if !ok || len(items) != 1 || items[0] != "rusty key" {
		t.Errorf("Unexpected addItems: %v", cs.AddItems)
	}
	if cs.Experience != 25.0 {
		t.Errorf("Unexpected experience: %v", cs.Experience)
	}
}

func TestDecode_TrailingCommaRepair(t *testing.T) {
	cs := Decode(`{"health": 70, "addItems": ["torch",],}`, nil)

	if cs.Health != 70.0 {
		t.Errorf("Trailing-comma JSON should parse strictly, got health %v", cs.Health)
	}
	items, ok := cs.AddItems.([]any)
	if !ok || len(items) != 1 || items[0] != "torch" {
		t.Errorf("Unexpected addItems: %v", cs.AddItems)
	}
}

func TestDecode_Empty(t *testing.T) {
	if cs := Decode("", nil); !cs.IsEmpty() {
		t.Errorf("Expected empty change set, got %+v", cs)
	}
	if cs := Decode("   \n  ", nil); !cs.IsEmpty() {
		t.Errorf("Expected empty change set for whitespace, got %+v", cs)
	}
}

func TestDecode_UnknownFieldsDropped(t *testing.T) {
	cs := Decode(`{"health": 50, "mana": 30, "weather": "rainy"}`, nil)

	if cs.Health != 50.0 {
		t.Errorf("Unexpected health: %v", cs.Health)
	}
	// Only the known fields exist on the struct; nothing else survives
	if cs.AddItems != nil || cs.NewLocation != nil {
		t.Errorf("Unexpected extra fields: %+v", cs)
	}
}

func TestDecode_FallbackRecoversHealth(t *testing.T) {
	// Broken array makes strict parsing impossible
	cs := Decode(`{"health": 50, "addItems": [oops}`, nil)

	if cs.Health != 50.0 {
		t.Errorf("Expected health recovered, got %v", cs.Health)
	}
	if cs.AddItems != nil {
		t.Errorf("Garbage array must not recover items, got %v", cs.AddItems)
	}
}

func TestDecode_FallbackRecoversItems(t *testing.T) {
	cs := Decode(`garbage before {"addItems": ["torch", "rope"], "removeItems": "old map" and trailing junk`, nil)

	items, ok := cs.AddItems.([]any)
	if !ok || len(items) != 2 || items[0] != "torch" || items[1] != "rope" {
		t.Errorf("Unexpected recovered addItems: %v", cs.AddItems)
	}
	if cs.RemoveItems != "old map" {
		t.Errorf("Unexpected recovered removeItems: %v", cs.RemoveItems)
	}
}

func TestDecode_FallbackRecoversLocation(t *testing.T) {
	cs := Decode(`{"newLocation": {"id": "crypt", "name": "The Crypt", "description": "Cold and dark." oops`, nil)

	loc, ok := cs.NewLocation.(map[string]any)
	if !ok {
		t.Fatalf("Expected recovered location map, got %T", cs.NewLocation)
	}
	if loc["id"] != "crypt" || loc["name"] != "The Crypt" || loc["description"] != "Cold and dark." {
		t.Errorf("Unexpected recovered location: %v", loc)
	}
}

func TestDecode_FallbackRecoversQuestsAndRelationships(t *testing.T) {
	cs := Decode(`{"addQuests": ["Slay the dragon", "Find the amulet"], "npcRelationships": {"Mira": 80, "Brom": "wary"} broken`, nil)

	quests, ok := cs.AddQuests.([]any)
	if !ok || len(quests) != 2 || quests[0] != "Slay the dragon" {
		t.Errorf("Unexpected recovered quests: %v", cs.AddQuests)
	}

	rels, ok := cs.NPCRelationships.(map[string]any)
	if !ok {
		t.Fatalf("Expected recovered relationships map, got %T", cs.NPCRelationships)
	}
	if rels["Mira"] != 80.0 {
		t.Errorf("Unexpected Mira value: %v", rels["Mira"])
	}
	if rels["Brom"] != "wary" {
		t.Errorf("Unexpected Brom value: %v", rels["Brom"])
	}
}

func TestDecode_FallbackNothingRecoverable(t *testing.T) {
	cs := Decode("utter nonsense with no fields at all", nil)
	if !cs.IsEmpty() {
		t.Errorf("Expected empty change set, got %+v", cs)
	}
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`{"a": 1,}`, `{"a": 1}`},
		{`["x", "y",]`, `["x", "y"]`},
		{`{"a": [1, 2,],}`, `{"a": [1, 2]}`},
		{`{"a": 1}`, `{"a": 1}`},
		{"{\"a\": 1,\n}", "{\"a\": 1}"},
	}

	for _, tt := range tests {
		if got := RepairJSON(tt.input); got != tt.expected {
			t.Errorf("RepairJSON(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// Package worldgen builds a complete world definition from a one-shot
// model response. Unlike the per-turn change pipeline, parsing here is
// all-or-nothing: a response that cannot be parsed yields one fixed
// fallback world rather than a best-effort reconstruction.
package worldgen

// Faction is a named power group in the world.
type Faction struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NearbyLocation is a place reachable from the starting location.
type NearbyLocation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NPC is a character seeded into the starting area.
type NPC struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

// Environment is the ambient scene state at game start.
type Environment struct {
	TimeOfDay string `json:"time_of_day"`
	Weather   string `json:"weather"`
	Season    string `json:"season"`
}

// StartingLocation is where a new game begins.
type StartingLocation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// World is a fully validated world definition, ready to seed a new
// game state. Every field is guaranteed non-empty after Generate.
type World struct {
	Name               string           `json:"name"`
	Type               string           `json:"type"`
	Description        string           `json:"description"`
	StartingLocation   StartingLocation `json:"starting_location"`
	Factions           []Faction        `json:"factions"`
	KeyItems           []string         `json:"key_items"`
	PotentialPlotHooks []string         `json:"potential_plot_hooks"`
	NearbyLocations    []NearbyLocation `json:"nearby_locations"`
	NPCs               []NPC            `json:"npcs"`
	Environment        Environment      `json:"environment"`
}

// FallbackWorld is the single fixed world returned when world
// generation cannot be parsed at all.
func FallbackWorld() *World {
	return &World{
		Name:        "Eldoria",
		Type:        "fantasy",
		Description: "A realm of ancient forests, crumbling keeps, and forgotten magic, where every road leads somewhere worth the walking.",
		StartingLocation: StartingLocation{
			Name:        "The Wayfarer's Rest",
			Description: "A warm roadside inn at the crossing of two old trade roads. A fire crackles in the hearth, and travelers trade rumors over mugs of cider.",
		},
		Factions: []Faction{
			{Name: "The Circle of Thorns", Description: "Druids who guard the deep forests against all intruders."},
			{Name: "The Gilded Company", Description: "A merchant guild whose coin reaches further than any crown."},
		},
		KeyItems:           []string{"a tarnished silver key", "a map with a burned corner"},
		PotentialPlotHooks: []string{"A caravan has gone missing on the north road.", "The old keep on the hill has lit its beacon for the first time in a century."},
	}
}

package worldgen

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/realmforge/adventure-engine/pkg/response"
)

const (
	nearbyLocationCount = 3
	startingNPCCount    = 3
)

// rawWorld is the shape the model is asked to produce. Only name and
// description are essential; everything else has synthesized defaults.
type rawWorld struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	StartingLocation *struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"startingLocation"`
	Factions           []Faction `json:"factions"`
	KeyItems           []string  `json:"keyItems"`
	PotentialPlotHooks []string  `json:"potentialPlotHooks"`
}

// Generate parses a one-shot world-creation response and returns a
// complete world. A response that cannot be parsed at all yields the
// fixed fallback world; there is no partial recovery here. Missing
// sub-entities are synthesized from the flavor table for the world's
// declared type. All randomness flows through rng, so the result is
// deterministic given its inputs.
func Generate(requestedType, modelResponse string, rng *rand.Rand, logger *slog.Logger) *World {
	world := parseWorld(modelResponse, logger)
	if world == nil {
		if logger != nil {
			logger.Warn("World response unparseable, using fallback world", "requested_type", requestedType)
		}
		world = FallbackWorld()
	} else if world.Type == "" {
		world.Type = normalizeType(requestedType)
	}

	Synthesize(world, rng)
	return world
}

// parseWorld attempts a strict parse of the response: code fences are
// stripped, the outermost JSON object is isolated, trailing commas are
// repaired, and the result must decode with a usable name and
// description. Anything less returns nil.
func parseWorld(modelResponse string, logger *slog.Logger) *World {
	raw := isolateJSONObject(modelResponse)
	if raw == "" {
		return nil
	}

	var rw rawWorld
	if err := json.Unmarshal([]byte(response.RepairJSON(raw)), &rw); err != nil {
		if logger != nil {
			logger.Debug("World JSON parse failed", "error", err)
		}
		return nil
	}
	if strings.TrimSpace(rw.Name) == "" || strings.TrimSpace(rw.Description) == "" {
		return nil
	}

	world := &World{
		Name:               strings.TrimSpace(rw.Name),
		Type:               normalizeType(rw.Type),
		Description:        strings.TrimSpace(rw.Description),
		Factions:           rw.Factions,
		KeyItems:           rw.KeyItems,
		PotentialPlotHooks: rw.PotentialPlotHooks,
	}
	if rw.StartingLocation != nil && strings.TrimSpace(rw.StartingLocation.Name) != "" {
		world.StartingLocation = StartingLocation{
			Name:        strings.TrimSpace(rw.StartingLocation.Name),
			Description: strings.TrimSpace(rw.StartingLocation.Description),
		}
	}
	return world
}

// Synthesize fills every missing part of the world from the flavor
// table for its type: default factions, key items, and plot hooks when
// the model omitted them, and always nearby locations, NPCs, and
// environment by uniform random draw.
func Synthesize(world *World, rng *rand.Rand) {
	// The declared type is kept even when it has no dedicated table;
	// only the flavor falls back to fantasy.
	table := tableFor(world.Type)

	if world.StartingLocation.Name == "" {
		loc := table.Locations[rng.Intn(len(table.Locations))]
		world.StartingLocation = StartingLocation{Name: loc.Name, Description: loc.Description}
	}
	if len(world.Factions) == 0 {
		world.Factions = append([]Faction(nil), table.Factions...)
	}
	if len(world.KeyItems) == 0 {
		world.KeyItems = append([]string(nil), table.KeyItems...)
	}
	if len(world.PotentialPlotHooks) == 0 {
		world.PotentialPlotHooks = append([]string(nil), table.PlotHooks...)
	}

	world.NearbyLocations = drawLocations(table.Locations, world.StartingLocation.Name, nearbyLocationCount, rng)
	world.NPCs = drawNPCs(table.NPCs, startingNPCCount, rng)
	world.Environment = Environment{
		TimeOfDay: table.TimesOfDay[rng.Intn(len(table.TimesOfDay))],
		Weather:   table.Weathers[rng.Intn(len(table.Weathers))],
		Season:    table.Seasons[rng.Intn(len(table.Seasons))],
	}
}

// drawLocations picks up to n distinct locations, skipping the
// starting location so it never neighbors itself.
func drawLocations(pool []NearbyLocation, excludeName string, n int, rng *rand.Rand) []NearbyLocation {
	picked := make([]NearbyLocation, 0, n)
	for _, i := range rng.Perm(len(pool)) {
		if pool[i].Name == excludeName {
			continue
		}
		picked = append(picked, pool[i])
		if len(picked) == n {
			break
		}
	}
	return picked
}

func drawNPCs(pool []NPC, n int, rng *rand.Rand) []NPC {
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]NPC, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[i])
	}
	return picked
}

// isolateJSONObject returns the substring from the first '{' to the
// last '}', with any markdown code fences removed first.
func isolateJSONObject(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func normalizeType(worldType string) string {
	worldType = strings.ToLower(strings.TrimSpace(worldType))
	if worldType == "" {
		return DefaultWorldType
	}
	return worldType
}

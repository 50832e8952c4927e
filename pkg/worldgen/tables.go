package worldgen

// typeTable holds the flavor pools for one world type. Nearby
// locations, NPCs, and environment are drawn uniformly at random from
// these pools when the model response does not supply them.
type typeTable struct {
	Locations  []NearbyLocation
	NPCs       []NPC
	TimesOfDay []string
	Weathers   []string
	Seasons    []string
	Factions   []Faction
	KeyItems   []string
	PlotHooks  []string
}

// DefaultWorldType is used for unrecognized or missing world types.
const DefaultWorldType = "fantasy"

var worldTables = map[string]typeTable{
	"fantasy": {
		Locations: []NearbyLocation{
			{Name: "The Whispering Woods", Description: "An old forest where the trees are said to murmur secrets to those who listen."},
			{Name: "Stonebridge Village", Description: "A farming village clustered around a moss-covered bridge."},
			{Name: "The Sunken Temple", Description: "Half-drowned ruins of a shrine to a god no one remembers."},
			{Name: "Raven's Tor", Description: "A windswept hill crowned by a ruined watchtower."},
			{Name: "The Amber Market", Description: "A crossroads bazaar where anything can be bought, for the right price."},
		},
		NPCs: []NPC{
			{Name: "Maera", Role: "innkeeper", Description: "Keeps the fire lit and hears every rumor worth hearing."},
			{Name: "Old Corvin", Role: "hedge wizard", Description: "Trades minor charms for stories of the road."},
			{Name: "Sera Blackthorn", Role: "sellsword", Description: "Between contracts, and bored enough to be dangerous."},
			{Name: "Tobbin", Role: "peddler", Description: "His cart holds more than it should."},
		},
		TimesOfDay: []string{"dawn", "midday", "dusk", "midnight"},
		Weathers:   []string{"clear skies", "a light drizzle", "rolling fog", "a gathering storm"},
		Seasons:    []string{"spring", "summer", "autumn", "winter"},
		Factions: []Faction{
			{Name: "The Circle of Thorns", Description: "Druids who guard the deep forests."},
			{Name: "The Gilded Company", Description: "A merchant guild with a long reach."},
		},
		KeyItems:  []string{"a tarnished silver key", "a map with a burned corner", "a sprig of everbloom"},
		PlotHooks: []string{"A caravan has gone missing on the north road.", "The beacon on the old keep has been lit."},
	},
	"sci-fi": {
		Locations: []NearbyLocation{
			{Name: "Docking Ring Seven", Description: "A creaking orbital dock that smells of ozone and cheap coolant."},
			{Name: "The Hydroponics Spine", Description: "Kilometers of green under flickering grow-lights."},
			{Name: "Lowdeck Exchange", Description: "Where salvaged tech changes hands, no questions asked."},
			{Name: "The Signal Array", Description: "A dish farm listening for something that answered once."},
		},
		NPCs: []NPC{
			{Name: "Vex-9", Role: "dock mechanic", Description: "More prosthetic than person, and proud of it."},
			{Name: "Captain Ilsa Rook", Role: "freighter captain", Description: "Owes money in three systems and favors in two more."},
			{Name: "Doc Marrow", Role: "med-bay surgeon", Description: "Patches up anyone who can pay, and some who can't."},
		},
		TimesOfDay: []string{"first shift", "mid shift", "third shift", "dark cycle"},
		Weathers:   []string{"recycled-air calm", "ion storm warnings", "solar flare alerts", "coolant haze"},
		Seasons:    []string{"perihelion", "aphelion", "transit window", "long drift"},
		Factions: []Faction{
			{Name: "The Consortium", Description: "Owns the station, the docks, and most of the debts."},
			{Name: "The Free Spacers", Description: "Smugglers and idealists, often the same people."},
		},
		KeyItems:  []string{"a dead crew member's access chit", "an unregistered jump beacon", "a cracked data core"},
		PlotHooks: []string{"A freighter arrived with no crew aboard.", "The signal array heard something on a dead frequency."},
	},
	"horror": {
		Locations: []NearbyLocation{
			{Name: "The Hollow Church", Description: "Its bell rings on windless nights."},
			{Name: "Miller's Pond", Description: "The water is black, and nothing grows on its banks."},
			{Name: "The Old Sanatorium", Description: "Boarded up for fifty years, lights seen last week."},
			{Name: "Crowmarsh Lane", Description: "A row of empty houses that the birds avoid."},
		},
		NPCs: []NPC{
			{Name: "Father Ambrose", Role: "priest", Description: "Has stopped sleeping, and won't say why."},
			{Name: "Ruth Calloway", Role: "librarian", Description: "Keeps certain books off the shelves."},
			{Name: "The Ferryman", Role: "boatman", Description: "Crosses the river only in daylight."},
		},
		TimesOfDay: []string{"grey morning", "overcast noon", "twilight", "dead of night"},
		Weathers:   []string{"still air", "cold mist", "freezing rain", "unnatural quiet"},
		Seasons:    []string{"late autumn", "deep winter", "a reluctant spring", "a sunless summer"},
		Factions: []Faction{
			{Name: "The Parish Council", Description: "Decides what the town remembers."},
			{Name: "The Night Watch", Description: "Volunteers who patrol after dark, fewer each year."},
		},
		KeyItems:  []string{"a water-stained diary", "an iron key that is always cold", "a photograph with one face scratched out"},
		PlotHooks: []string{"The church bell rang thirteen times at midnight.", "A child drew a map of tunnels no one has dug."},
	},
	"cyberpunk": {
		Locations: []NearbyLocation{
			{Name: "The Neon Stacks", Description: "Forty stories of micro-apartments wrapped in advertising."},
			{Name: "Datahaven", Description: "A basement bar where the drinks are bad and the encryption is good."},
			{Name: "The Flesh Market", Description: "Chrome, wetware, and worse, sold under strobing lights."},
			{Name: "Rooftop Gardens", Description: "Illegal greenhouses above the smog line, guarded by their growers."},
		},
		NPCs: []NPC{
			{Name: "Patch", Role: "fixer", Description: "Knows a guy for everything. Is sometimes the guy."},
			{Name: "Mirror", Role: "netrunner", Description: "Speaks in borrowed voices."},
			{Name: "Sgt. Ada Vance", Role: "corp security", Description: "Off the clock, maybe. Hard to tell."},
		},
		TimesOfDay: []string{"rush hour", "neon dusk", "the quiet hours", "pre-dawn grey"},
		Weathers:   []string{"acid drizzle", "smog bank", "rare clear night", "monsoon static"},
		Seasons:    []string{"fiscal Q1", "blackout season", "the wet months", "election cycle"},
		Factions: []Faction{
			{Name: "Hexacorp", Description: "The city's landlord, employer, and judge."},
			{Name: "The Unplugged", Description: "Off-grid collectives living between the towers."},
		},
		KeyItems:  []string{"a prototype neural shunt", "an executive's burner phone", "a one-use ghost key"},
		PlotHooks: []string{"A corp shuttle went down in the stacks and nobody official came looking.", "Someone is buying memories, paying triple for bad ones."},
	},
	"post-apocalyptic": {
		Locations: []NearbyLocation{
			{Name: "The Overpass Camp", Description: "Tents and tarps strung beneath a collapsed highway."},
			{Name: "The Glass Fields", Description: "Where the city used to be. Nothing grows, everything glitters."},
			{Name: "Waterworks", Description: "The last working pump station, guarded day and night."},
			{Name: "The Listening Tower", Description: "A rusted radio mast where traders leave messages pinned to the stairs."},
		},
		NPCs: []NPC{
			{Name: "Mother June", Role: "camp elder", Description: "Remembers the before, and rations the telling of it."},
			{Name: "Crank", Role: "scavenger", Description: "Will trade anything except his dog."},
			{Name: "The Cartographer", Role: "wanderer", Description: "Maps the wastes and sells the safe roads."},
		},
		TimesOfDay: []string{"ash dawn", "white noon", "long shadow", "cold dark"},
		Weathers:   []string{"dust wind", "grey rain", "heat shimmer", "radiation haze"},
		Seasons:    []string{"the dry", "the floods", "the burn", "the freeze"},
		Factions: []Faction{
			{Name: "The Water Guard", Description: "Controls the pumps, and therefore everything."},
			{Name: "The Road Clans", Description: "Nomads who tax the old highways."},
		},
		KeyItems:  []string{"a working geiger counter", "a sealed ration crate", "a pre-war radio that still receives something"},
		PlotHooks: []string{"The pump station went quiet last night.", "A stranger arrived with clean clothes and no story."},
	},
}

// tableFor resolves a declared world type to its flavor table,
// defaulting to fantasy for unrecognized types.
func tableFor(worldType string) typeTable {
	if table, ok := worldTables[worldType]; ok {
		return table
	}
	return worldTables[DefaultWorldType]
}

// KnownWorldTypes lists the types with dedicated flavor tables, for
// clients that offer a selection.
func KnownWorldTypes() []string {
	return []string{"fantasy", "sci-fi", "horror", "cyberpunk", "post-apocalyptic"}
}

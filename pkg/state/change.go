package state

// ChangeSet is the loosely-typed change set decoded from the
// STATE_CHANGES section of a model response. Every field is optional
// and may arrive in more than one shape (a single string where an array
// was asked for, a float where an int was asked for), so fields carry
// the raw decoded value until the Validator has inspected them. Unknown
// fields in the source JSON are dropped by the decoder.
//
// A ChangeSet is never applied directly; it must pass through Validate
// first.
type ChangeSet struct {
	Health           any `json:"health,omitempty"`
	AddItems         any `json:"addItems,omitempty"`
	RemoveItems      any `json:"removeItems,omitempty"`
	NewLocation      any `json:"newLocation,omitempty"`
	AddQuests        any `json:"addQuests,omitempty"`
	NPCRelationships any `json:"npcRelationships,omitempty"`
	Experience       any `json:"experience,omitempty"`
	StatusEffects    any `json:"statusEffects,omitempty"`
}

// IsEmpty reports whether no field was decoded at all.
func (cs *ChangeSet) IsEmpty() bool {
	return cs == nil || (cs.Health == nil &&
		cs.AddItems == nil &&
		cs.RemoveItems == nil &&
		cs.NewLocation == nil &&
		cs.AddQuests == nil &&
		cs.NPCRelationships == nil &&
		cs.Experience == nil &&
		cs.StatusEffects == nil)
}

// ValidatedChange is a change set after type, range, and
// cross-reference checking. Every present field already satisfies the
// game-state invariants; nil or empty fields mean "no change this
// turn". It is consumed by exactly one Reducer application and then
// discarded.
type ValidatedChange struct {
	Health           *int
	AddItems         []string
	RemoveItems      []string
	NewLocation      *Location
	AddQuests        []Quest
	NPCRelationships map[string]Relation
	Experience       *int
	StatusEffects    []StatusEffect
}

// IsEmpty reports whether the change would leave the player state
// untouched.
func (vc *ValidatedChange) IsEmpty() bool {
	return vc == nil || (vc.Health == nil &&
		len(vc.AddItems) == 0 &&
		len(vc.RemoveItems) == 0 &&
		vc.NewLocation == nil &&
		len(vc.AddQuests) == 0 &&
		len(vc.NPCRelationships) == 0 &&
		vc.Experience == nil &&
		len(vc.StatusEffects) == 0)
}

package mcp

// CharacterCreateInput identifies and names a new character.
type CharacterCreateInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Name        string `json:"name" jsonschema:"character name"`
}

// CharacterGetInput identifies an existing character.
type CharacterGetInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// CharacterResult describes a character record.
type CharacterResult struct {
	ID            string `json:"id" jsonschema:"character identifier"`
	Name          string `json:"name" jsonschema:"character name"`
	HealthRating  int    `json:"health_rating" jsonschema:"health track capacity"`
	ClarityRating int    `json:"clarity_rating" jsonschema:"clarity track capacity"`
	CreatedAt     string `json:"created_at" jsonschema:"creation timestamp (RFC 3339)"`
	UpdatedAt     string `json:"updated_at" jsonschema:"last update timestamp (RFC 3339)"`
}

// TrackTargetInput identifies a character whose track is being read or wiped.
type TrackTargetInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
}

// DamageInput applies or heals damage on a character's track.
type DamageInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Amount      int    `json:"amount" jsonschema:"number of damage points (minimum 1)"`
	Severity    string `json:"severity" jsonschema:"damage severity label (bashing, lethal, aggravated for health; mild, severe for clarity; single-letter abbreviations accepted)"`
}

// SetMaxHealthInput changes a character's health track capacity.
type SetMaxHealthInput struct {
	CharacterID string `json:"character_id" jsonschema:"character identifier"`
	Rating      int    `json:"rating" jsonschema:"new health track capacity (minimum 1)"`
}

// HealthResult describes a health track after an operation.
type HealthResult struct {
	CharacterID   string   `json:"character_id" jsonschema:"character identifier"`
	Capacity      int      `json:"capacity" jsonschema:"track capacity"`
	Marked        int      `json:"marked" jsonschema:"number of damaged boxes"`
	Boxes         []string `json:"boxes" jsonschema:"box severities left to right, empty string for undamaged"`
	Applied       int      `json:"applied,omitempty" jsonschema:"points applied or healed by this call"`
	WoundPenalty  int      `json:"wound_penalty" jsonschema:"dice penalty from damage near the end of the track"`
	Incapacitated bool     `json:"incapacitated" jsonschema:"whether the track is completely filled"`
	Display       string   `json:"display" jsonschema:"box glyph rendering of the track"`
	Summary       string   `json:"summary" jsonschema:"human readable damage summary"`
}

// ClarityConditionsInput optionally narrows the condition catalog to one key.
type ClarityConditionsInput struct {
	Key string `json:"key,omitempty" jsonschema:"optional condition key to look up (e.g. shaken, broken)"`
}

// ConditionResult describes one Clarity condition.
type ConditionResult struct {
	Key        string `json:"key" jsonschema:"stable condition key"`
	Name       string `json:"name" jsonschema:"display name"`
	Persistent bool   `json:"persistent" jsonschema:"whether the condition is persistent"`
}

// ClarityConditionsResult lists the conditions reachable through Clarity
// damage, split by persistence.
type ClarityConditionsResult struct {
	Regular    []ConditionResult `json:"regular" jsonschema:"conditions gained from mild damage"`
	Persistent []ConditionResult `json:"persistent" jsonschema:"conditions gained from severe damage"`
}

// ClarityResult describes a clarity track after an operation.
type ClarityResult struct {
	CharacterID        string   `json:"character_id" jsonschema:"character identifier"`
	Capacity           int      `json:"capacity" jsonschema:"track capacity"`
	Marked             int      `json:"marked" jsonschema:"number of damaged boxes"`
	Boxes              []string `json:"boxes" jsonschema:"box severities left to right, empty string for undamaged"`
	Applied            int      `json:"applied,omitempty" jsonschema:"points applied or healed by this call"`
	ConditionActive    bool     `json:"condition_active" jsonschema:"whether damage in the rightmost boxes grants a Clarity condition"`
	PerceptionModifier int      `json:"perception_modifier" jsonschema:"dice modifier on perception rolls"`
	ComatoseRisk       bool     `json:"comatose_risk" jsonschema:"whether the track is completely filled"`
	Display            string   `json:"display" jsonschema:"box glyph rendering of the track"`
	Summary            string   `json:"summary" jsonschema:"human readable damage summary"`
}

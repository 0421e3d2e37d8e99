package cofd

import (
	"sort"

	apperrors "github.com/soma-satoro/pyreach/internal/platform/errors"
)

// Condition is a Clarity condition a changeling can gain from Clarity damage.
type Condition struct {
	Key        string
	Name       string
	Persistent bool
}

// clarityConditions is the catalog of conditions reachable through Clarity
// damage, keyed by their stable lookup key.
var clarityConditions = map[string]Condition{
	"broken":       {Key: "broken", Name: "Broken", Persistent: true},
	"comatose":     {Key: "comatose", Name: "Comatose", Persistent: false},
	"confused":     {Key: "confused", Name: "Confused", Persistent: false},
	"delusional":   {Key: "delusional", Name: "Delusional", Persistent: true},
	"dissociation": {Key: "dissociation", Name: "Dissociation", Persistent: false},
	"distracted":   {Key: "distracted", Name: "Distracted", Persistent: false},
	"fugue":        {Key: "fugue", Name: "Fugue", Persistent: true},
	"numb":         {Key: "numb", Name: "Numb", Persistent: true},
	"shaken":       {Key: "shaken", Name: "Shaken", Persistent: false},
	"sleepwalking": {Key: "sleepwalking", Name: "Sleepwalking", Persistent: true},
	"spooked":      {Key: "spooked", Name: "Spooked", Persistent: false},
}

// LookupCondition resolves a Clarity condition by key.
func LookupCondition(key string) (Condition, error) {
	if condition, ok := clarityConditions[key]; ok {
		return condition, nil
	}
	return Condition{}, apperrors.WithMetadata(
		apperrors.CodeClarityUnknownCondition,
		"unknown clarity condition",
		map[string]string{"Condition": key},
	)
}

// ClarityConditions returns the condition catalog split into regular and
// persistent lists, each sorted by key for stable menu display.
func ClarityConditions() (regular, persistent []Condition) {
	for _, condition := range clarityConditions {
		if condition.Persistent {
			persistent = append(persistent, condition)
		} else {
			regular = append(regular, condition)
		}
	}
	sort.Slice(regular, func(i, j int) bool { return regular[i].Key < regular[j].Key })
	sort.Slice(persistent, func(i, j int) bool { return persistent[i].Key < persistent[j].Key })
	return regular, persistent
}

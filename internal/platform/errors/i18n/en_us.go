package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeTrackInvalidAmount            = "TRACK_INVALID_AMOUNT"
	CodeTrackInvalidSeverity          = "TRACK_INVALID_SEVERITY"
	CodeTrackInvalidCapacity          = "TRACK_INVALID_CAPACITY"
	CodeCharacterEmptyID              = "CHARACTER_EMPTY_ID"
	CodeCharacterEmptyName            = "CHARACTER_EMPTY_NAME"
	CodeCharacterInvalidHealthRating  = "CHARACTER_INVALID_HEALTH_RATING"
	CodeCharacterInvalidClarityRating = "CHARACTER_INVALID_CLARITY_RATING"
	CodeCharacterAlreadyExists        = "CHARACTER_ALREADY_EXISTS"
	CodeClarityUnknownCondition       = "CLARITY_UNKNOWN_CONDITION"
	CodeNotFound                      = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Track errors
		CodeTrackInvalidAmount:   "Amount must be at least 1",
		CodeTrackInvalidSeverity: "Unknown damage type {{.Severity}}",
		CodeTrackInvalidCapacity: "Track capacity must be non-negative",

		// Character errors
		CodeCharacterEmptyID:              "Character ID cannot be empty",
		CodeCharacterEmptyName:            "Character name cannot be empty",
		CodeCharacterInvalidHealthRating:  "Health rating must be at least 1",
		CodeCharacterInvalidClarityRating: "Clarity rating must be at least 1",
		CodeCharacterAlreadyExists:        "A character with this ID already exists",

		// Clarity errors
		CodeClarityUnknownCondition: "Unknown Clarity condition: {{.Condition}}",

		// Storage errors
		CodeNotFound: "The requested resource was not found",
	},
}

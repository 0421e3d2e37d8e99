package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Track errors
	CodeTrackInvalidAmount   Code = "TRACK_INVALID_AMOUNT"
	CodeTrackInvalidSeverity Code = "TRACK_INVALID_SEVERITY"
	CodeTrackInvalidCapacity Code = "TRACK_INVALID_CAPACITY"

	// Character errors
	CodeCharacterEmptyID              Code = "CHARACTER_EMPTY_ID"
	CodeCharacterEmptyName            Code = "CHARACTER_EMPTY_NAME"
	CodeCharacterInvalidHealthRating  Code = "CHARACTER_INVALID_HEALTH_RATING"
	CodeCharacterInvalidClarityRating Code = "CHARACTER_INVALID_CLARITY_RATING"
	CodeCharacterAlreadyExists        Code = "CHARACTER_ALREADY_EXISTS"

	// Clarity errors
	CodeClarityUnknownCondition Code = "CLARITY_UNKNOWN_CONDITION"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeTrackInvalidAmount,
		CodeTrackInvalidSeverity,
		CodeTrackInvalidCapacity,
		CodeCharacterEmptyID,
		CodeCharacterEmptyName,
		CodeCharacterInvalidHealthRating,
		CodeCharacterInvalidClarityRating,
		CodeClarityUnknownCondition:
		return codes.InvalidArgument

	// AlreadyExists - duplicate resource creation
	case CodeCharacterAlreadyExists:
		return codes.AlreadyExists

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}

package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apperrors "github.com/soma-satoro/pyreach/internal/platform/errors"
	"github.com/soma-satoro/pyreach/internal/services/game/core/track"
	"github.com/soma-satoro/pyreach/internal/services/game/domain/character"
	"github.com/soma-satoro/pyreach/internal/services/game/domain/systems/cofd"
	"github.com/soma-satoro/pyreach/internal/services/game/service"
)

// CharacterCreateTool describes the character_create tool.
func CharacterCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "character_create",
		Description: "Creates a character with default health and clarity tracks",
	}
}

// CharacterGetTool describes the character_get tool.
func CharacterGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "character_get",
		Description: "Returns a character record",
	}
}

// HealthGetTool describes the health_get tool.
func HealthGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "health_get",
		Description: "Returns a character's health track and wound penalties",
	}
}

// HealthDamageTool describes the health_damage tool.
func HealthDamageTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "health_damage",
		Description: "Applies damage of a given severity to a character's health track",
	}
}

// HealthHealTool describes the health_heal tool.
func HealthHealTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "health_heal",
		Description: "Heals damage of a given severity from a character's health track",
	}
}

// HealthClearTool describes the health_clear tool.
func HealthClearTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "health_clear",
		Description: "Removes all damage from a character's health track",
	}
}

// HealthSetMaxTool describes the health_set_max tool.
func HealthSetMaxTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "health_set_max",
		Description: "Changes a character's health track capacity, truncating damage beyond it",
	}
}

// ClarityGetTool describes the clarity_get tool.
func ClarityGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "clarity_get",
		Description: "Returns a character's clarity track, condition trigger, and perception modifier",
	}
}

// ClarityDamageTool describes the clarity_damage tool.
func ClarityDamageTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "clarity_damage",
		Description: "Applies damage of a given severity to a character's clarity track",
	}
}

// ClarityConditionsTool describes the clarity_conditions tool.
func ClarityConditionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "clarity_conditions",
		Description: "Lists the Clarity conditions, or looks one up by key",
	}
}

// ClarityHealTool describes the clarity_heal tool.
func ClarityHealTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "clarity_heal",
		Description: "Heals damage of a given severity from a character's clarity track",
	}
}

// CharacterCreateHandler executes a character create request.
func CharacterCreateHandler(svc *service.Service) mcp.ToolHandlerFor[CharacterCreateInput, CharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterCreateInput) (*mcp.CallToolResult, CharacterResult, error) {
		record, err := svc.CreateCharacter(ctx, input.CharacterID, input.Name)
		if err != nil {
			return nil, CharacterResult{}, handleError(err)
		}
		return nil, characterResult(record), nil
	}
}

// CharacterGetHandler executes a character lookup request.
func CharacterGetHandler(svc *service.Service) mcp.ToolHandlerFor[CharacterGetInput, CharacterResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CharacterGetInput) (*mcp.CallToolResult, CharacterResult, error) {
		record, err := svc.GetCharacter(ctx, input.CharacterID)
		if err != nil {
			return nil, CharacterResult{}, handleError(err)
		}
		return nil, characterResult(record), nil
	}
}

// HealthGetHandler executes a health track read.
func HealthGetHandler(svc *service.Service) mcp.ToolHandlerFor[TrackTargetInput, HealthResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TrackTargetInput) (*mcp.CallToolResult, HealthResult, error) {
		state, err := svc.GetHealth(ctx, input.CharacterID)
		if err != nil {
			return nil, HealthResult{}, handleError(err)
		}
		return nil, healthResult(state, 0), nil
	}
}

// HealthDamageHandler executes a health damage request.
func HealthDamageHandler(svc *service.Service) mcp.ToolHandlerFor[DamageInput, HealthResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DamageInput) (*mcp.CallToolResult, HealthResult, error) {
		severity, err := track.ModeHealth.ParseSeverity(input.Severity)
		if err != nil {
			return nil, HealthResult{}, handleError(err)
		}
		state, applied, err := svc.ApplyDamage(ctx, input.CharacterID, input.Amount, severity)
		if err != nil {
			return nil, HealthResult{}, handleError(err)
		}
		return nil, healthResult(state, applied), nil
	}
}

// HealthHealHandler executes a health heal request.
func HealthHealHandler(svc *service.Service) mcp.ToolHandlerFor[DamageInput, HealthResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DamageInput) (*mcp.CallToolResult, HealthResult, error) {
		severity, err := track.ModeHealth.ParseSeverity(input.Severity)
		if err != nil {
			return nil, HealthResult{}, handleError(err)
		}
		state, healed, err := svc.HealDamage(ctx, input.CharacterID, input.Amount, severity)
		if err != nil {
			return nil, HealthResult{}, handleError(err)
		}
		return nil, healthResult(state, healed), nil
	}
}

// HealthClearHandler executes a health clear request.
func HealthClearHandler(svc *service.Service) mcp.ToolHandlerFor[TrackTargetInput, HealthResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TrackTargetInput) (*mcp.CallToolResult, HealthResult, error) {
		state, err := svc.ClearDamage(ctx, input.CharacterID)
		if err != nil {
			return nil, HealthResult{}, handleError(err)
		}
		return nil, healthResult(state, 0), nil
	}
}

// HealthSetMaxHandler executes a health capacity change.
func HealthSetMaxHandler(svc *service.Service) mcp.ToolHandlerFor[SetMaxHealthInput, HealthResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetMaxHealthInput) (*mcp.CallToolResult, HealthResult, error) {
		state, err := svc.SetMaxHealth(ctx, input.CharacterID, input.Rating)
		if err != nil {
			return nil, HealthResult{}, handleError(err)
		}
		return nil, healthResult(state, 0), nil
	}
}

// ClarityGetHandler executes a clarity track read.
func ClarityGetHandler(svc *service.Service) mcp.ToolHandlerFor[TrackTargetInput, ClarityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TrackTargetInput) (*mcp.CallToolResult, ClarityResult, error) {
		state, err := svc.GetClarity(ctx, input.CharacterID)
		if err != nil {
			return nil, ClarityResult{}, handleError(err)
		}
		return nil, clarityResult(state, 0), nil
	}
}

// ClarityDamageHandler executes a clarity damage request.
func ClarityDamageHandler(svc *service.Service) mcp.ToolHandlerFor[DamageInput, ClarityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DamageInput) (*mcp.CallToolResult, ClarityResult, error) {
		severity, err := track.ModeClarity.ParseSeverity(input.Severity)
		if err != nil {
			return nil, ClarityResult{}, handleError(err)
		}
		state, applied, err := svc.ApplyClarityDamage(ctx, input.CharacterID, input.Amount, severity)
		if err != nil {
			return nil, ClarityResult{}, handleError(err)
		}
		return nil, clarityResult(state, applied), nil
	}
}

// ClarityHealHandler executes a clarity heal request.
func ClarityHealHandler(svc *service.Service) mcp.ToolHandlerFor[DamageInput, ClarityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DamageInput) (*mcp.CallToolResult, ClarityResult, error) {
		severity, err := track.ModeClarity.ParseSeverity(input.Severity)
		if err != nil {
			return nil, ClarityResult{}, handleError(err)
		}
		state, healed, err := svc.HealClarityDamage(ctx, input.CharacterID, input.Amount, severity)
		if err != nil {
			return nil, ClarityResult{}, handleError(err)
		}
		return nil, clarityResult(state, healed), nil
	}
}

// ClarityConditionsHandler lists the condition catalog or resolves one key.
func ClarityConditionsHandler() mcp.ToolHandlerFor[ClarityConditionsInput, ClarityConditionsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ClarityConditionsInput) (*mcp.CallToolResult, ClarityConditionsResult, error) {
		if input.Key != "" {
			condition, err := cofd.LookupCondition(input.Key)
			if err != nil {
				return nil, ClarityConditionsResult{}, handleError(err)
			}
			result := ClarityConditionsResult{}
			entry := conditionResult(condition)
			if condition.Persistent {
				result.Persistent = []ConditionResult{entry}
			} else {
				result.Regular = []ConditionResult{entry}
			}
			return nil, result, nil
		}

		regular, persistent := cofd.ClarityConditions()
		return nil, ClarityConditionsResult{
			Regular:    conditionResults(regular),
			Persistent: conditionResults(persistent),
		}, nil
	}
}

// handleError localizes domain errors before they cross the tool boundary.
func handleError(err error) error {
	return apperrors.HandleError(err, apperrors.DefaultLocale)
}

func characterResult(record character.Character) CharacterResult {
	return CharacterResult{
		ID:            record.ID,
		Name:          record.Name,
		HealthRating:  record.HealthRating,
		ClarityRating: record.ClarityRating,
		CreatedAt:     record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     record.UpdatedAt.Format(time.RFC3339),
	}
}

func healthResult(state service.HealthState, applied int) HealthResult {
	return HealthResult{
		CharacterID:   state.Character.ID,
		Capacity:      state.Capacity,
		Marked:        state.Marked,
		Boxes:         boxLabels(track.ModeHealth, state.Boxes),
		Applied:       applied,
		WoundPenalty:  state.WoundPenalty,
		Incapacitated: state.Incapacitated,
		Display:       state.Rendered,
		Summary:       state.Summary,
	}
}

func clarityResult(state service.ClarityState, applied int) ClarityResult {
	return ClarityResult{
		CharacterID:        state.Character.ID,
		Capacity:           state.Capacity,
		Marked:             state.Marked,
		Boxes:              boxLabels(track.ModeClarity, state.Boxes),
		Applied:            applied,
		ConditionActive:    state.ConditionActive,
		PerceptionModifier: state.PerceptionModifier,
		ComatoseRisk:       state.ComatoseRisk,
		Display:            state.Rendered,
		Summary:            state.Summary,
	}
}

func conditionResult(condition cofd.Condition) ConditionResult {
	return ConditionResult{
		Key:        condition.Key,
		Name:       condition.Name,
		Persistent: condition.Persistent,
	}
}

func conditionResults(conditions []cofd.Condition) []ConditionResult {
	results := make([]ConditionResult, len(conditions))
	for i, condition := range conditions {
		results[i] = conditionResult(condition)
	}
	return results
}

// boxLabels renders box severities as labels, empty string for undamaged.
func boxLabels(mode track.Mode, boxes []track.Severity) []string {
	labels := make([]string, len(boxes))
	for i, box := range boxes {
		if box != track.None {
			labels[i] = mode.Label(box)
		}
	}
	return labels
}

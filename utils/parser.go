package utils

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Divine-mercyx/MILO/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ParseConfig parses and validates a Config from JSON.
func ParseConfig(data []byte) (*types.Config, error) {
	var config types.Config

	if err := json.Unmarshal(data, &config); err != nil {
		return nil, types.NewConfigError("failed to parse config: %v", err)
	}

	if err := validate.Struct(&config); err != nil {
		return nil, types.NewConfigError("config validation failed: %v", err)
	}

	return &config, nil
}

// ValidateStruct runs tag-based validation on any of the model structs.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return types.NewValidationError("validation failed: %v", err)
	}
	return nil
}

// ParseIntent parses an Intent from JSON, the shape the AI classification
// service returns, and rejects unknown actions.
func ParseIntent(data []byte) (*types.Intent, error) {
	var intent types.Intent

	if err := json.Unmarshal(data, &intent); err != nil {
		return nil, types.NewValidationError("failed to parse intent: %v", err)
	}

	if !intent.Action.Valid() {
		return nil, types.NewUnsupportedActionError(intent.Action)
	}

	if intent.Asset != "" {
		if _, ok := types.ParseAsset(string(intent.Asset)); !ok {
			return nil, types.NewValidationError("unsupported asset: %s", intent.Asset)
		}
	}

	return &intent, nil
}

// NormalizeJSON formats a value with consistent indentation, used for
// logging payloads.
func NormalizeJSON(data any) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal failed: %w", err)
	}
	return out, nil
}

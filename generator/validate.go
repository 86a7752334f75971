package generator

import (
	"context"
	"log"

	"github.com/tidwall/gjson"
)

// Validator asks the model whether one piece of text fits an industry.
//
// It fails open: any transport or parse problem, including a missing
// is_relevant field, counts as relevant. Rejection is meant to be rare;
// treating outages as rejections would make the downstream regeneration
// step fire routinely instead of exceptionally.
type Validator struct {
	llm    LLMClient
	logger *log.Logger
}

func NewValidator(llm LLMClient, logger *log.Logger) *Validator {
	if logger == nil {
		logger = log.Default()
	}
	return &Validator{llm: llm, logger: logger}
}

// Relevant reports whether text matches the industry. One model call,
// no retries; a failed call is an automatic pass.
func (v *Validator) Relevant(ctx context.Context, text string, industry Industry) bool {
	raw, err := v.llm.Complete(ctx, BuildValidationPrompt(text, industry))
	if err != nil {
		v.logger.Printf("[validate] call failed, passing item through: %v", err)
		return true
	}

	cleaned := StripControl(raw)
	if !gjson.Valid(cleaned) {
		v.logger.Printf("[validate] malformed verdict, passing item through: %.80q", raw)
		return true
	}
	field := gjson.Get(cleaned, "is_relevant")
	if !field.Exists() || !field.IsBool() {
		v.logger.Printf("[validate] verdict missing is_relevant, passing item through: %.80q", raw)
		return true
	}
	return field.Bool()
}

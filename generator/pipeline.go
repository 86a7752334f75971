package generator

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// BatchSize is the number of items one generation request produces.
const BatchSize = 3

// Pipeline runs batch generation, per-item relevance validation and
// conditional single-item regeneration against one injected model client.
type Pipeline struct {
	llm       LLMClient
	validator *Validator
	logger    *log.Logger
}

func NewPipeline(llm LLMClient, validator *Validator, logger *log.Logger) (*Pipeline, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if validator == nil {
		validator = NewValidator(llm, logger)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{llm: llm, validator: validator, logger: logger}, nil
}

// GenerateCaptions produces three validated social media captions.
func (p *Pipeline) GenerateCaptions(ctx context.Context, brief string, industry Industry) ([]ContentItem, error) {
	return p.Generate(ctx, CaptionProfile, brief, industry, BatchSize)
}

// GenerateContentIdeas produces three validated content ideas.
func (p *Pipeline) GenerateContentIdeas(ctx context.Context, brief string, industry Industry) ([]ContentItem, error) {
	return p.Generate(ctx, ContentIdeaProfile, brief, industry, BatchSize)
}

// BriefResult is the output of the combined generation entry point.
type BriefResult struct {
	Brief    string        `json:"brief"`
	Captions []ContentItem `json:"captions"`
	Ideas    []ContentItem `json:"ideas"`
}

// GenerateAll wraps the brief in the default demographics context and
// produces captions and content ideas in one pass.
func (p *Pipeline) GenerateAll(ctx context.Context, brief string, industry Industry) (*BriefResult, error) {
	if err := checkInput(brief, industry); err != nil {
		return nil, err
	}
	contextBrief := BuildBriefContext(brief)

	captions, err := p.Generate(ctx, CaptionProfile, contextBrief, industry, BatchSize)
	if err != nil {
		return nil, err
	}
	ideas, err := p.Generate(ctx, ContentIdeaProfile, contextBrief, industry, BatchSize)
	if err != nil {
		return nil, err
	}
	return &BriefResult{Brief: strings.TrimSpace(brief), Captions: captions, Ideas: ideas}, nil
}

// Generate runs the full batch flow for one profile. The returned slice
// always has length n and preserves batch order; regeneration replaces
// in place, it never drops or reorders items. Only the initial batch
// call can fail the request.
func (p *Pipeline) Generate(ctx context.Context, profile PromptProfile, brief string, industry Industry, n int) ([]ContentItem, error) {
	if err := checkInput(brief, industry); err != nil {
		return nil, err
	}

	raw, err := p.llm.Complete(ctx, BuildBatchPrompt(profile, brief, industry, n))
	if err != nil {
		return nil, fmt.Errorf("%s batch call: %w", profile.Name, err)
	}
	texts, err := ParseBatch(raw, profile.Keys, n)
	if err != nil {
		return nil, fmt.Errorf("%s batch response: %w", profile.Name, err)
	}

	items := make([]ContentItem, n)
	for i, text := range texts {
		items[i] = p.settle(ctx, profile, brief, industry, text)
	}
	return items, nil
}

// settle validates one item and, on rejection, makes the single
// regeneration attempt. Content is never discarded, only flagged.
func (p *Pipeline) settle(ctx context.Context, profile PromptProfile, brief string, industry Industry, text string) ContentItem {
	if p.validator.Relevant(ctx, text, industry) {
		return ContentItem{Text: text, Status: StatusConfirmed}
	}
	p.logger.Printf("[pipeline] %s item not relevant to %s, regenerating: %.60q", profile.Name, industry, text)

	replacement, err := p.regenerate(ctx, profile, brief, industry)
	if err != nil {
		p.logger.Printf("[pipeline] regeneration failed, keeping original: %v", err)
		return ContentItem{Text: text, Status: StatusLowRelevance}
	}
	if p.validator.Relevant(ctx, replacement, industry) {
		return ContentItem{Text: replacement, Status: StatusConfirmed}
	}
	p.logger.Printf("[pipeline] regenerated %s item still not relevant to %s: %.60q", profile.Name, industry, replacement)
	return ContentItem{Text: replacement, Status: StatusLowRelevance}
}

func (p *Pipeline) regenerate(ctx context.Context, profile PromptProfile, brief string, industry Industry) (string, error) {
	raw, err := p.llm.Complete(ctx, BuildRegeneratePrompt(profile, brief, industry))
	if err != nil {
		return "", err
	}
	text := parseSingle(raw, profile.Keys)
	if text == "" {
		return "", fmt.Errorf("empty regeneration response")
	}
	return text, nil
}

// parseSingle extracts one replacement item. The regeneration prompt
// asks for bare text, but some models still answer with the batch JSON
// shape, so the structured tiers get a chance first.
func parseSingle(raw string, keys []string) string {
	if items, err := ParseBatch(raw, keys, 1); err == nil {
		return items[0]
	}
	return strings.TrimSpace(raw)
}

func checkInput(brief string, industry Industry) error {
	if strings.TrimSpace(brief) == "" {
		return &InputError{Message: "Please enter a campaign brief"}
	}
	if industry == "" {
		return &InputError{Message: "Please select an industry"}
	}
	if !ValidIndustry(industry) {
		return &InputError{Message: fmt.Sprintf("Unknown industry %q. Please select a supported industry.", string(industry))}
	}
	return nil
}

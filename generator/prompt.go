package generator

import (
	"fmt"
	"strings"
)

// PromptProfile parameterizes the two generation flavors. Captions and
// content ideas share one pipeline; only the prompt wording and the
// accepted response keys differ.
type PromptProfile struct {
	// Name is used in log lines.
	Name string
	// Keys are the accepted batch-response field names, in priority order.
	Keys []string
	// Singular and Plural describe the items inside the prompt.
	Singular string
	Plural   string
}

// CaptionProfile generates short social media captions.
var CaptionProfile = PromptProfile{
	Name:     "captions",
	Keys:     []string{"captions", "caption_ideas"},
	Singular: "short, engaging caption idea for social media posts",
	Plural:   "short, engaging caption ideas for social media posts",
}

// ContentIdeaProfile generates longer-form content ideas.
var ContentIdeaProfile = PromptProfile{
	Name:     "content_ideas",
	Keys:     []string{"content_ideas", "contents", "content"},
	Singular: "detailed content idea for social media posts",
	Plural:   "detailed content ideas for social media posts",
}

func countWord(n int) string {
	switch n {
	case 1:
		return "one"
	case 2:
		return "two"
	case 3:
		return "three"
	default:
		return fmt.Sprintf("%d", n)
	}
}

// BuildBatchPrompt asks for exactly n items in a JSON object keyed by
// the profile's primary key.
func BuildBatchPrompt(profile PromptProfile, brief string, industry Industry, n int) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are a creative strategist for a digital agency specializing in %s. ", industry))
	sb.WriteString(fmt.Sprintf("Based on the following campaign brief, generate exactly %s %s. ", countWord(n), profile.Plural))
	sb.WriteString(fmt.Sprintf("Each one MUST be specifically relevant to the %s industry. ", industry))
	sb.WriteString(fmt.Sprintf("Return ONLY a valid JSON object with a single key: '%s', whose value is an array of %s strings. ", profile.Keys[0], countWord(n)))
	sb.WriteString("No commentary, no extra fields, no markdown, no code block.")

	return Prompt{System: sb.String(), User: brief}
}

// BuildRegeneratePrompt asks for one replacement item as plain text.
func BuildRegeneratePrompt(profile PromptProfile, brief string, industry Industry) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are a creative strategist for a digital agency specializing in %s. ", industry))
	sb.WriteString(fmt.Sprintf("Generate ONE %s that is specifically relevant to the %s industry. ", profile.Singular, industry))
	sb.WriteString("Return ONLY the text, with no additional formatting or structure.")

	return Prompt{System: sb.String(), User: brief}
}

// BuildValidationPrompt asks for a single-field boolean relevance verdict.
func BuildValidationPrompt(text string, industry Industry) Prompt {
	system := fmt.Sprintf("You are an industry expert. Evaluate if the following content is relevant to the %s industry. "+
		"Consider industry-specific terminology, themes, and context. "+
		"Return ONLY a JSON object with a single boolean field 'is_relevant'.", industry)
	return Prompt{System: system, User: text}
}

// defaultDemographics is appended to the brief when the combined
// generation entry point is used and the caller supplied no audience data.
var defaultDemographics = map[string][]string{
	"age_range": {"18–24", "25–34"},
	"gender":    {"Male", "Female"},
}

// BuildBriefContext wraps a trimmed brief with the default demographics
// block used by the combined captions+ideas operation.
func BuildBriefContext(brief string) string {
	var sb strings.Builder
	sb.WriteString("Demographics (default values used):\n")
	sb.WriteString(fmt.Sprintf("- Age Range: %s\n", strings.Join(defaultDemographics["age_range"], ", ")))
	sb.WriteString(fmt.Sprintf("- Gender: %s\n", strings.Join(defaultDemographics["gender"], ", ")))
	sb.WriteString("\nOriginal Brief:\n")
	sb.WriteString(strings.TrimSpace(brief))
	return sb.String()
}

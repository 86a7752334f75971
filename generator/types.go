package generator

// Industry is one of the fixed vertical labels the service supports.
type Industry string

// Supported industries, in UI display order.
var Industries = []Industry{
	"Lifestyle",
	"Fitness",
	"Music",
	"Fashion",
	"Food",
	"Tech",
	"Travel",
	"Gaming",
	"Parenting",
	"Education",
	"Entertainment",
	"Beauty",
	"Sports",
	"Comedy",
}

// ValidIndustry reports whether ind is a member of the supported set.
func ValidIndustry(ind Industry) bool {
	for _, i := range Industries {
		if i == ind {
			return true
		}
	}
	return false
}

// ModelChoice selects which provider binding serves a request.
type ModelChoice string

const (
	ModelOpenAI ModelChoice = "openai"
	ModelClaude ModelChoice = "claude"
)

// Request describes one generation request. Immutable once built.
type Request struct {
	Brief    string
	Industry Industry
	Model    ModelChoice
}

// RelevanceStatus marks how an item came through relevance validation.
type RelevanceStatus string

const (
	// StatusConfirmed: the item passed validation (possibly after one
	// regeneration).
	StatusConfirmed RelevanceStatus = "confirmed"
	// StatusLowRelevance: the item failed validation even after the
	// regeneration attempt; it is kept, only flagged.
	StatusLowRelevance RelevanceStatus = "low_relevance"
)

// ContentItem is one generated caption or content idea.
type ContentItem struct {
	Text   string          `json:"text"`
	Status RelevanceStatus `json:"status"`
}

// InputError is a pre-flight rejection carrying a message meant for the
// end user, not an internal failure.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

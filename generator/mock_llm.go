package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM is a placeholder client for local debugging that never calls
// an external model. Batch prompts get a well-formed JSON batch, the
// relevance question always gets a yes.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	if strings.Contains(prompt.System, "is_relevant") {
		return `{"is_relevant": true}`, nil
	}
	items := make([]string, 3)
	for i := range items {
		items[i] = fmt.Sprintf("%q", fmt.Sprintf("Mock idea %d for: %.40s", i+1, prompt.User))
	}
	list := strings.Join(items, ", ")
	// Both profile keys, so either parse path finds its list.
	return fmt.Sprintf(`{"captions": [%s], "content_ideas": [%s]}`, list, list), nil
}

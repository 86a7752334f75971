package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildBatchPrompt(t *testing.T) {
	p := BuildBatchPrompt(CaptionProfile, "launch brief", "Fashion", 3)

	assert.Contains(t, p.System, "specializing in Fashion")
	assert.Contains(t, p.System, "exactly three")
	assert.Contains(t, p.System, "'captions'")
	assert.Contains(t, p.System, "array of three strings")
	assert.Equal(t, "launch brief", p.User)
}

func TestBuildBatchPromptContentIdeas(t *testing.T) {
	p := BuildBatchPrompt(ContentIdeaProfile, "launch brief", "Food", 3)

	assert.Contains(t, p.System, "'content_ideas'")
	assert.Contains(t, p.System, "detailed content ideas")
	assert.Contains(t, p.System, "Food")
}

func TestBuildRegeneratePrompt(t *testing.T) {
	p := BuildRegeneratePrompt(CaptionProfile, "launch brief", "Travel")

	assert.Contains(t, p.System, "Generate ONE")
	assert.Contains(t, p.System, "Travel")
	assert.Contains(t, p.System, "no additional formatting")
	assert.Equal(t, "launch brief", p.User)
}

func TestBuildBriefContext(t *testing.T) {
	got := BuildBriefContext("  my campaign brief  ")

	assert.Contains(t, got, "Age Range: 18–24, 25–34")
	assert.Contains(t, got, "Gender: Male, Female")
	assert.Contains(t, got, "Original Brief:\nmy campaign brief")
}

func TestIndustries(t *testing.T) {
	assert.Len(t, Industries, 14)
	assert.True(t, ValidIndustry("Fitness"))
	assert.True(t, ValidIndustry("Comedy"))
	assert.False(t, ValidIndustry("fitness"), "labels are case sensitive")
	assert.False(t, ValidIndustry(""))
}

package decision

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailContentCoversEveryStep(t *testing.T) {
	require.Len(t, stepDetails, len(AllStepIDs))
	require.Len(t, stepIcons, len(AllStepIDs))
	for _, id := range AllStepIDs {
		detail, ok := Detail(id)
		require.True(t, ok, "missing detail for %s", id)
		assert.NotEmpty(t, detail.Intro, id)
		assert.NotEmpty(t, detail.WhyItMatters, id)
		assert.NotEmpty(t, detail.HowToDo, id)
		_, ok = stepIcons[id]
		assert.True(t, ok, "missing icon for %s", id)
	}
}

func TestIconFallsBack(t *testing.T) {
	assert.Equal(t, "✦", Icon(StepID("unknown")))
	assert.Equal(t, "$", Icon(StepBudget))
}

func TestDetailMarkdownIncludesSectionsAndLinks(t *testing.T) {
	def, ok := Definition(StepHighAPRDebt)
	require.True(t, ok)
	md := DetailMarkdown(def)
	assert.True(t, strings.HasPrefix(md, "# "))
	assert.Contains(t, md, def.Title)
	assert.Contains(t, md, "## Why it matters")
	assert.Contains(t, md, "1. List every debt")
	assert.Contains(t, md, "[FTC guidance on dealing with debt](https://consumer.ftc.gov/articles/dealing-debt)")
	assert.NotContains(t, md, "## Quick actions")
}

func TestDetailMarkdownFallsBackToHowBullets(t *testing.T) {
	def := StepDefinition{ID: "custom", Title: "Custom", HowBullets: []string{"do the thing"}}
	md := DetailMarkdown(def)
	assert.Contains(t, md, "1. do the thing")
	assert.NotContains(t, md, "## Resources")
}

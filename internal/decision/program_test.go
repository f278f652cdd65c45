package decision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgramYAMLAppliesOverrides(t *testing.T) {
	const payload = `
id: seattle
locale: en-US
step_overrides:
  step1_emergency_fund:
    title: Start a rainy-day fund
    links:
      - label: Seattle Office of Financial Empowerment
        href: https://www.seattle.gov/financial-empowerment
`
	p, err := ParseProgramYAML([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "seattle", p.ID)

	defs := DefinitionsFor(&p)
	require.Len(t, defs, len(AllStepIDs))
	ef := defs[1]
	assert.Equal(t, StepEmergencyFund, ef.ID)
	assert.Equal(t, 1, ef.Order)
	assert.Equal(t, "Start a rainy-day fund", ef.Title)
	require.Len(t, ef.Links, 1)
	assert.Equal(t, "https://www.seattle.gov/financial-empowerment", ef.Links[0].Href)

	ref, _ := Definition(StepEmergencyFund)
	assert.Equal(t, ref.Why, ef.Why, "unset fields keep reference copy")
	assert.Equal(t, ref.HowBullets, ef.HowBullets)
	assert.Equal(t, "Set up an emergency fund", ref.Title, "reference table must stay untouched")
}

func TestParseProgramYAMLRejectsUnknownStep(t *testing.T) {
	const payload = `
id: broken
step_overrides:
  step9_lottery:
    title: Buy tickets
`
	_, err := ParseProgramYAML([]byte(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step step9_lottery")
}

func TestParseProgramYAMLRejectsEmptyPayload(t *testing.T) {
	_, err := ParseProgramYAML([]byte("  \n"))
	require.Error(t, err)
}

func TestParseProgramYAMLRejectsIncompleteLink(t *testing.T) {
	const payload = `
id: links
step_overrides:
  step4_ira:
    links:
      - label: missing href
`
	_, err := ParseProgramYAML([]byte(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs label and href")
}

func TestLoadProgramFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: local\n"), 0o644))
	p, err := LoadProgramFile(path)
	require.NoError(t, err)
	assert.Equal(t, Definitions(), DefinitionsFor(&p))

	_, err = LoadProgramFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefinitionsForNilProgram(t *testing.T) {
	assert.Equal(t, Definitions(), DefinitionsFor(nil))
}

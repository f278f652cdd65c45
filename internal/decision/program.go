package decision

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// StepOverride replaces copy for a single step. Nil or empty fields keep the
// reference value; id and order can never be overridden.
type StepOverride struct {
	Title      string   `yaml:"title,omitempty"`
	Why        string   `yaml:"why,omitempty"`
	HowBullets []string `yaml:"how_bullets,omitempty"`
	Links      []Link   `yaml:"links,omitempty"`
}

// Program is a localized overlay on top of the reference step table.
type Program struct {
	ID            string                  `yaml:"id"`
	Locale        string                  `yaml:"locale,omitempty"`
	StepOverrides map[StepID]StepOverride `yaml:"step_overrides,omitempty"`
}

// Validate ensures every override targets a known step.
func (p Program) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("program: id is required")
	}
	ids := make([]string, 0, len(p.StepOverrides))
	for id := range p.StepOverrides {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !StepID(id).Valid() {
			return fmt.Errorf("program %s: override references unknown step %s", p.ID, id)
		}
		for idx, link := range p.StepOverrides[StepID(id)].Links {
			if strings.TrimSpace(link.Label) == "" || strings.TrimSpace(link.Href) == "" {
				return fmt.Errorf("program %s: step %s link[%d] needs label and href", p.ID, id, idx)
			}
		}
	}
	return nil
}

// Apply returns defs with this program's overrides layered on top.
func (p Program) Apply(defs []StepDefinition) []StepDefinition {
	out := make([]StepDefinition, len(defs))
	for i, def := range defs {
		def = def.Clone()
		if ovr, ok := p.StepOverrides[def.ID]; ok {
			if title := strings.TrimSpace(ovr.Title); title != "" {
				def.Title = title
			}
			if why := strings.TrimSpace(ovr.Why); why != "" {
				def.Why = why
			}
			if len(ovr.HowBullets) > 0 {
				def.HowBullets = append([]string(nil), ovr.HowBullets...)
			}
			if len(ovr.Links) > 0 {
				def.Links = append([]Link(nil), ovr.Links...)
			}
		}
		out[i] = def
	}
	return out
}

// ParseProgramYAML decodes a program overlay.
func ParseProgramYAML(data []byte) (Program, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Program{}, fmt.Errorf("program: payload is empty")
	}
	var p Program
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Program{}, fmt.Errorf("program: decode: %w", err)
	}
	p.ID = strings.TrimSpace(p.ID)
	p.Locale = strings.TrimSpace(p.Locale)
	if err := p.Validate(); err != nil {
		return Program{}, err
	}
	return p, nil
}

// LoadProgramFile reads a program overlay from disk.
func LoadProgramFile(path string) (Program, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Program{}, fmt.Errorf("program: read %s: %w", path, err)
	}
	p, err := ParseProgramYAML(content)
	if err != nil {
		return Program{}, fmt.Errorf("program: %s: %w", path, err)
	}
	return p, nil
}

// DefinitionsFor returns the reference table with the program applied. A nil
// program yields the plain reference table.
func DefinitionsFor(p *Program) []StepDefinition {
	if p == nil {
		return Definitions()
	}
	return p.Apply(referenceDefinitions)
}

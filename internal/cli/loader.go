package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/VosDeMens/Group-Theory-Sandbox/group"
)

// Presentation is the on-disk YAML description of a finitely
// presented group: a display name, an optional sink cap, and a list
// of relation pairs in human notation.
//
//	name: d3
//	sink_cap: 50
//	relations:
//	  - [H2, e]
//	  - [r3, e]
//	  - [HrHr, e]
type Presentation struct {
	Name      string     `yaml:"name"`
	SinkCap   int        `yaml:"sink_cap"`
	Relations [][]string `yaml:"relations"`
}

// LoadPresentation reads and parses a presentation file.
func LoadPresentation(path string) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presentation: %w", err)
	}

	var p Presentation
	if err = yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse presentation: %w", err)
	}

	for i, rel := range p.Relations {
		if len(rel) < 2 {
			return nil, fmt.Errorf("parse presentation: relation %d has %d entries, need at least 2", i, len(rel))
		}
	}

	return &p, nil
}

// Build completes the group described by the presentation.
func (p *Presentation) Build() (*group.Group, error) {
	opts := make([]group.Option, 0, 2)
	if p.Name != "" {
		opts = append(opts, group.WithName(p.Name))
	}
	if p.SinkCap > 0 {
		opts = append(opts, group.WithSinkCap(p.SinkCap))
	}

	return group.New(p.Relations, opts...)
}

// loadAndBuild is the shared front half of every presentation-driven
// command.
func loadAndBuild(path string) (*group.Group, error) {
	p, err := LoadPresentation(path)
	if err != nil {
		return nil, err
	}

	return p.Build()
}

package store

import (
	"github.com/VosDeMens/Group-Theory-Sandbox/group"
)

// Transition is one row of a stored transition table: From times
// Generator lands on To.
type Transition struct {
	From      string `json:"from"`
	Generator rune   `json:"generator"`
	To        string `json:"to"`
}

// Snapshot is a saved completed group structure: everything needed to
// answer structural questions without re-running inference.
type Snapshot struct {
	Name         string       `json:"name"`
	SinkCap      int          `json:"sink_cap"`
	ElementCount int          `json:"element_count"`
	Sinks        []string     `json:"sinks"`
	Rules        []group.Rule `json:"rules"`
	Transitions  []Transition `json:"transitions"`
}

// Rebuild reconstructs a live engine from the snapshot by replaying the
// stored prime rules as relations. The prime rules are by construction
// sufficient to derive every known equality, so the rebuilt group has
// the same sinks and the same transition table as the saved one.
func (s *Snapshot) Rebuild() (*group.Group, error) {
	relations := make([][]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		relations = append(relations, []string{r.Left, r.Right})
	}

	return group.New(relations,
		group.WithName(s.Name),
		group.WithSinkCap(s.SinkCap),
	)
}

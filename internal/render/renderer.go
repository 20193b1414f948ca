package render

import (
	"git.lost.host/meutraa/lanota/internal/game"
	"git.lost.host/meutraa/lanota/internal/score"
)

type Renderer interface {
	// Write the report in the configured format
	Render(report *Report) error
	// Lines of the text form, for placing on the pad screen
	Lines(report *Report) []string
}

// Report collects what one calculation produced. The forward calculation fills
// Counts, Score, Rating and NewRecord, the tolerance query fills NoteCount, Target and Tolerance.
type Report struct {
	Difficulty game.Difficulty `json:"difficulty" yaml:"difficulty"`

	Counts    *game.Counts  `json:"counts,omitempty" yaml:"counts,omitempty"`
	MaxCombo  *int          `json:"max_combo,omitempty" yaml:"max_combo,omitempty"`
	Score     *score.Score  `json:"score,omitempty" yaml:"score,omitempty"`
	Rating    *score.Rating `json:"rating,omitempty" yaml:"rating,omitempty"`
	R5        *bool         `json:"r5,omitempty" yaml:"r5,omitempty"`
	NewRecord bool          `json:"new_record,omitempty" yaml:"new_record,omitempty"`

	NoteCount *int             `json:"note_count,omitempty" yaml:"note_count,omitempty"`
	Target    *int64           `json:"target,omitempty" yaml:"target,omitempty"`
	Tolerance *score.Tolerance `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
}

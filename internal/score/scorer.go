package score

import "git.lost.host/meutraa/lanota/internal/game"

type Scorer interface {
	// Rating of a play from its judgements and the chart difficulty
	Rating(counts game.Counts, difficulty game.Difficulty) Rating

	// Score of a play, with the combo bonus summed over the first maxCombo notes
	Score(counts game.Counts, maxCombo int) Score

	// Tolerance answers how many Tunes a full combo can absorb and still reach target
	Tolerance(target int64, chart game.Chart) Tolerance
}

type Rating struct {
	Rating          float64 `json:"rating" yaml:"rating"`
	AchievementRate float64 `json:"achievement_rate" yaml:"achievement_rate"`
	Formula         string  `json:"formula" yaml:"formula"`
}

// Score fields are rounded independently, so Score may differ from
// BaseScore+ComboScore by one.
type Score struct {
	Score      int64 `json:"score" yaml:"score"`
	BaseScore  int64 `json:"base_score" yaml:"base_score"`
	ComboScore int64 `json:"combo_score" yaml:"combo_score"`
}

type Tolerance struct {
	MaxTunesFC      int64   `json:"max_tunes_fc" yaml:"max_tunes_fc"`
	EstimatedRating float64 `json:"estimated_rating" yaml:"estimated_rating"`
}

// Unreachable is the MaxTunesFC value returned when the target is above MaxScore.
const Unreachable = -1

func (t Tolerance) Reachable() bool {
	return t.MaxTunesFC != Unreachable
}

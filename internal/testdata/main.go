package testdata

import (
	"encoding/json"

	"git.lost.host/meutraa/lanota/internal/game"
)

type ScoreCase struct {
	Counts     game.Counts `json:"counts"`
	MaxCombo   int         `json:"max_combo"`
	Score      int64       `json:"score"`
	BaseScore  int64       `json:"base_score"`
	ComboScore int64       `json:"combo_score"`
}

type RatingCase struct {
	Counts          game.Counts     `json:"counts"`
	Difficulty      game.Difficulty `json:"difficulty"`
	Rating          float64         `json:"rating"`
	AchievementRate float64         `json:"achievement_rate"`
	Formula         string          `json:"formula"`
}

type ToleranceCase struct {
	Target          int64      `json:"target"`
	Chart           game.Chart `json:"chart"`
	MaxTunesFC      int64      `json:"max_tunes_fc"`
	EstimatedRating float64    `json:"estimated_rating"`
}

type Cases struct {
	Score     []ScoreCase     `json:"score"`
	Rating    []RatingCase    `json:"rating"`
	Tolerance []ToleranceCase `json:"tolerance"`
}

// GetCases returns reference results recorded from the game's calculator.
func GetCases() (*Cases, error) {
	var cases Cases
	if err := json.Unmarshal([]byte(data), &cases); nil != err {
		return nil, err
	}
	return &cases, nil
}

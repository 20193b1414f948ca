package score

import (
	"fmt"
	"math"
	"strconv"

	"git.lost.host/meutraa/lanota/internal/game"
)

// DefaultScorer carries no state and is safe for concurrent use.
type DefaultScorer struct{}

func achievementRate(harmony, tune, total float64) float64 {
	return (harmony + tune/3) / total
}

func (s *DefaultScorer) Rating(counts game.Counts, d game.Difficulty) Rating {
	total := counts.Total()
	if total == 0 {
		return Rating{Formula: "No notes"}
	}

	rate := achievementRate(float64(counts.Harmony), float64(counts.Tune), float64(total))
	bonus := Bonus(d)
	rating := rate * (float64(d.Level) + bonus)

	return Rating{
		Rating:          roundTo(rating, RatingPlaces),
		AchievementRate: roundTo(rate, AchievementPlaces),
		Formula: fmt.Sprintf("(%d + %d/3) / %d * (%d + %s)",
			counts.Harmony, counts.Tune, total, d.Level,
			strconv.FormatFloat(bonus, 'f', -1, 64)),
	}
}

func (s *DefaultScorer) Score(counts game.Counts, maxCombo int) Score {
	total := counts.Total()
	if total == 0 {
		return Score{}
	}

	n := float64(total)
	perHarmony := HarmonyPool / n
	perTune := TunePool / n
	// Conversions keep each product rounded on its own before the sum
	base := float64(float64(counts.Harmony)*perHarmony) + float64(float64(counts.Tune)*perTune)

	if maxCombo > total {
		maxCombo = total
	}
	combo := 0.0
	values := ComboValues(total)
	for i := 0; i < maxCombo; i++ {
		combo += values[i]
	}

	return Score{
		Score:      roundInt(base + combo),
		BaseScore:  roundInt(base),
		ComboScore: roundInt(combo),
	}
}

func (s *DefaultScorer) Tolerance(target int64, chart game.Chart) Tolerance {
	if chart.NoteCount == 0 {
		return Tolerance{}
	}

	allowedLoss := float64(MaxScore - target)
	if allowedLoss < 0 {
		return Tolerance{MaxTunesFC: Unreachable}
	}

	n := float64(chart.NoteCount)
	tuneLoss := TuneLoss / n
	maxTunes := int64(math.Floor(allowedLoss / tuneLoss))

	// The rating uses the fractional tune count, not the floored one
	exactTunes := (allowedLoss * n) / TuneLoss
	exactHarmony := n - exactTunes
	rate := achievementRate(exactHarmony, exactTunes, n)

	return Tolerance{
		MaxTunesFC:      maxTunes,
		EstimatedRating: rate * (float64(chart.Difficulty.Level) + Bonus(chart.Difficulty)),
	}
}

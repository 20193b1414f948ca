package score

// Score pools. A full combo of Harmony notes collects all of HarmonyPool plus
// half of ComboPool, which is MaxScore.
const (
	MaxScore    = 1000000
	HarmonyPool = 920000.0 // Split evenly across every Harmony
	TunePool    = 400000.0 // Split evenly across every Tune
	ComboPool   = 160000.0 // Shapes the per-note combo curve
)

// TuneLoss is what a full combo loses, spread over the chart, for each Harmony
// that turns into a Tune.
const TuneLoss = 520000.0

// Rounding of the rating outputs, in decimal places.
const (
	RatingPlaces      = 4
	AchievementPlaces = 6
)

package theme

type Theme interface {
	// Judgement renders a count in the color of its tier
	RenderJudgement(judgement int, text string) string
	RenderScore(text string) string
	RenderRating(text string) string
	RenderLabel(text string) string
	RenderField(text string, active bool) string
	RenderBadge(text string) string
	RenderAlert(text string) string
}

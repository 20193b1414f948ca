package score

import "git.lost.host/meutraa/lanota/internal/game"

// DefaultBonus applies to every difficulty no rule matches.
const DefaultBonus = 1.0

type bonusRule struct {
	Name  string
	Match func(d game.Difficulty) bool
	Bonus float64
}

// Evaluated in order, first match wins. Specific levels must stay ahead of the
// open ended ones.
var bonusRules = []bonusRule{
	{
		Name:  "13+/14+",
		Match: func(d game.Difficulty) bool { return d.Plus && (d.Level == 13 || d.Level == 14) },
		Bonus: 1.5,
	},
	{
		Name:  "15+",
		Match: func(d game.Difficulty) bool { return d.Plus && d.Level == 15 },
		Bonus: 1.75,
	},
	{
		Name:  "16+ and above",
		Match: func(d game.Difficulty) bool { return d.Plus && d.Level >= 16 },
		Bonus: 2.25,
	},
	{
		Name:  "16",
		Match: func(d game.Difficulty) bool { return !d.Plus && d.Level == 16 },
		Bonus: 1.5,
	},
}

// Bonus returns the constant added to the level in the rating formula.
func Bonus(d game.Difficulty) float64 {
	for _, rule := range bonusRules {
		if rule.Match(d) {
			return rule.Bonus
		}
	}
	return DefaultBonus
}

package parser

import "git.lost.host/meutraa/lanota/internal/game"

type Parser interface {
	ParseDifficulty(s string) (game.Difficulty, error)
	ParseCounts(s string) (game.Counts, error)
	ParseScore(s string) (int64, error)
}

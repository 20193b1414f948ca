package parser

import (
	"strconv"
	"strings"
	"unicode"

	"git.lost.host/meutraa/lanota/internal/game"
	"git.lost.host/meutraa/lanota/internal/score"
	"github.com/pkg/errors"
)

var (
	ErrEmpty    = errors.New("empty input")
	ErrNegative = errors.New("negative count")
	ErrRange    = errors.New("out of range")
)

type DefaultParser struct{}

// ParseDifficulty reads a chart level such as "13" or "13+".
func (p *DefaultParser) ParseDifficulty(s string) (game.Difficulty, error) {
	var d game.Difficulty
	in := strings.TrimSpace(s)
	if in == "" {
		return d, errors.Wrap(ErrEmpty, "level")
	}
	if strings.HasSuffix(in, "+") {
		d.Plus = true
		in = strings.TrimSpace(strings.TrimSuffix(in, "+"))
	}

	level, err := strconv.Atoi(in)
	if nil != err {
		return game.Difficulty{}, errors.Wrapf(err, "unable to parse level %q", s)
	}
	if level < 1 || level > game.MaxLevel {
		return game.Difficulty{}, errors.Wrapf(ErrRange, "level %d not in 1-%d", level, game.MaxLevel)
	}
	d.Level = level
	return d, nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == ',' || unicode.IsSpace(r)
}

// ParseCounts reads "harmony/tune/fail", also accepting commas or spaces.
func (p *DefaultParser) ParseCounts(s string) (game.Counts, error) {
	fields := strings.FieldsFunc(s, isSeparator)
	if len(fields) == 0 {
		return game.Counts{}, errors.Wrap(ErrEmpty, "counts")
	}
	if len(fields) != len(game.Judgements) {
		return game.Counts{}, errors.Errorf("expected %d counts in %q, found %d", len(game.Judgements), s, len(fields))
	}

	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if nil != err {
			return game.Counts{}, errors.Wrapf(err, "unable to parse %s count %q", game.Judgements[i].Name, field)
		}
		if v < 0 {
			return game.Counts{}, errors.Wrapf(ErrNegative, "%s count %d", game.Judgements[i].Name, v)
		}
		values[i] = v
	}
	return game.Counts{
		Harmony: values[game.Harmony],
		Tune:    values[game.Tune],
		Fail:    values[game.Fail],
	}, nil
}

// ParseScore reads a target score, ignoring digit grouping like "990,000".
func (p *DefaultParser) ParseScore(s string) (int64, error) {
	in := strings.Map(func(r rune) rune {
		if r == ',' || r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if in == "" {
		return 0, errors.Wrap(ErrEmpty, "score")
	}

	v, err := strconv.ParseInt(in, 10, 64)
	if nil != err {
		return 0, errors.Wrapf(err, "unable to parse score %q", s)
	}
	if v < 0 || v > score.MaxScore {
		return 0, errors.Wrapf(ErrRange, "score %d not in 0-%d", v, score.MaxScore)
	}
	return v, nil
}

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.lost.host/meutraa/lanota/internal/game"
	"git.lost.host/meutraa/lanota/internal/theme"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

type DefaultRenderer struct {
	Out    io.Writer
	Format string
	Theme  theme.Theme
}

func (r *DefaultRenderer) Render(report *Report) error {
	switch r.Format {
	case "json":
		enc := json.NewEncoder(r.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(r.Out)
		enc.SetIndent(2)
		if err := enc.Encode(report); nil != err {
			return err
		}
		return enc.Close()
	case "text", "":
		_, err := io.WriteString(r.Out, strings.Join(r.Lines(report), "\n")+"\n")
		return err
	}
	return fmt.Errorf("unknown format %q", r.Format)
}

// Group formats n with comma thousands separators.
func Group(n int64) string {
	return humanize.Comma(n)
}

func (r *DefaultRenderer) line(label, value string) string {
	return fmt.Sprintf("%s  %s", r.Theme.RenderLabel(fmt.Sprintf("%11s:", label)), value)
}

func (r *DefaultRenderer) Lines(report *Report) []string {
	lines := []string{r.line("Level", report.Difficulty.String())}

	if nil != report.Counts {
		for i, j := range game.Judgements {
			lines = append(lines, r.line(j.Name, r.Theme.RenderJudgement(i, strconv.Itoa(report.Counts.Get(i)))))
		}
	}
	if nil != report.MaxCombo {
		lines = append(lines, r.line("Max Combo", strconv.Itoa(*report.MaxCombo)))
	}
	if nil != report.Score {
		s := report.Score
		lines = append(lines,
			r.line("Score", r.Theme.RenderScore(Group(s.Score))),
			r.line("Base", Group(s.BaseScore)),
			r.line("Combo", Group(s.ComboScore)),
		)
	}
	if nil != report.Rating {
		rating := report.Rating
		lines = append(lines,
			r.line("Rating", r.Theme.RenderRating(strconv.FormatFloat(rating.Rating, 'f', 2, 64))),
			r.line("Achievement", strconv.FormatFloat(rating.AchievementRate*100, 'f', 4, 64)+"%"),
			r.line("Formula", rating.Formula),
		)
	}
	if nil != report.R5 && *report.R5 {
		lines = append(lines, r.line("R5", r.Theme.RenderBadge("counts toward R5")))
	}
	if report.NewRecord {
		lines = append(lines, r.line("New Record", r.Theme.RenderBadge("may raise B30")))
	}

	if nil != report.NoteCount {
		lines = append(lines, r.line("Notes", strconv.Itoa(*report.NoteCount)))
	}
	if nil != report.Target {
		lines = append(lines, r.line("Target", Group(*report.Target)))
	}
	if nil != report.Tolerance {
		t := report.Tolerance
		if !t.Reachable() {
			lines = append(lines, r.line("Max Tunes", r.Theme.RenderAlert("target above the maximum score")))
		} else {
			lines = append(lines,
				r.line("Max Tunes", r.Theme.RenderJudgement(game.Tune, strconv.FormatInt(t.MaxTunesFC, 10))),
				r.line("Rating", r.Theme.RenderRating(strconv.FormatFloat(t.EstimatedRating, 'f', 4, 64))),
			)
		}
	}
	return lines
}

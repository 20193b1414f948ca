package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.lost.host/meutraa/lanota/internal/config"
	"git.lost.host/meutraa/lanota/internal/game"
	"git.lost.host/meutraa/lanota/internal/input"
	"git.lost.host/meutraa/lanota/internal/parser"
	"git.lost.host/meutraa/lanota/internal/render"
	"git.lost.host/meutraa/lanota/internal/score"
	"git.lost.host/meutraa/lanota/internal/theme"
	"github.com/eiannone/keyboard"
)

type Program struct {
	Parser   parser.Parser
	Scorer   score.Scorer
	Theme    theme.Theme
	Renderer render.Renderer

	opts *config.Options
	out  io.Writer
}

func themeMode(color string, tty bool) theme.Mode {
	switch color {
	case "always":
		return theme.Color
	case "never":
		return theme.Plain
	}
	if tty {
		return theme.Auto
	}
	return theme.Plain
}

func (p *Program) Init(opts *config.Options, out io.Writer, mode theme.Mode) error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Scorer = &score.DefaultScorer{}
	p.Theme = theme.NewDefaultTheme(out, mode)
	p.Renderer = &render.DefaultRenderer{Out: out, Format: opts.Format, Theme: p.Theme}

	p.opts = opts
	p.out = out
	return nil
}

func (p *Program) Run() error {
	var report *render.Report
	var err error

	switch p.opts.Command {
	case config.CommandPad:
		return p.RunPad()
	case config.CommandRating, config.CommandScore:
		report, err = p.playReport()
	case config.CommandTolerance:
		report, err = p.toleranceReport()
	default:
		return fmt.Errorf("unknown command %q", p.opts.Command)
	}
	if nil != err {
		return err
	}
	return p.Renderer.Render(report)
}

func (p *Program) counts() (game.Counts, error) {
	if p.opts.Counts != "" {
		return p.Parser.ParseCounts(p.opts.Counts)
	}
	return game.Counts{Harmony: p.opts.Harmony, Tune: p.opts.Tune, Fail: p.opts.Fail}, nil
}

func (p *Program) playReport() (*render.Report, error) {
	difficulty, err := p.Parser.ParseDifficulty(p.opts.Level)
	if nil != err {
		return nil, fmt.Errorf("invalid level: %w", err)
	}
	counts, err := p.counts()
	if nil != err {
		return nil, fmt.Errorf("invalid counts: %w", err)
	}

	maxCombo := p.opts.MaxCombo
	if maxCombo == config.FullCombo {
		maxCombo = counts.Total()
	}
	log.Printf("scoring %+v at %v, combo %d", counts, difficulty, maxCombo)

	report := p.calculate(difficulty, counts, maxCombo, p.opts.NewRecord)
	if p.opts.Command == config.CommandRating {
		report.Score = nil
		report.MaxCombo = nil
	}
	return report, nil
}

func (p *Program) toleranceReport() (*render.Report, error) {
	difficulty, err := p.Parser.ParseDifficulty(p.opts.Level)
	if nil != err {
		return nil, fmt.Errorf("invalid level: %w", err)
	}
	target, err := p.Parser.ParseScore(p.opts.Target)
	if nil != err {
		return nil, fmt.Errorf("invalid target: %w", err)
	}
	log.Printf("tolerance of %d notes at %v for %d", p.opts.Notes, difficulty, target)

	return p.tolerate(game.Chart{Difficulty: difficulty, NoteCount: p.opts.Notes}, target), nil
}

func (p *Program) calculate(d game.Difficulty, counts game.Counts, maxCombo int, newRecord bool) *render.Report {
	s := p.Scorer.Score(counts, maxCombo)
	rating := p.Scorer.Rating(counts, d)
	r5 := counts.R5(newRecord)
	return &render.Report{
		Difficulty: d,
		Counts:     &counts,
		MaxCombo:   &maxCombo,
		Score:      &s,
		Rating:     &rating,
		R5:         &r5,
		NewRecord:  newRecord,
	}
}

func (p *Program) tolerate(chart game.Chart, target int64) *render.Report {
	t := p.Scorer.Tolerance(target, chart)
	return &render.Report{
		Difficulty: chart.Difficulty,
		NoteCount:  &chart.NoteCount,
		Target:     &target,
		Tolerance:  &t,
	}
}

func (p *Program) padReport(pad *input.Pad) *render.Report {
	if !pad.Ready() {
		return nil
	}
	if pad.Mode == input.ModeTolerance {
		return p.tolerate(pad.Chart(), pad.Target())
	}
	return p.calculate(pad.Difficulty(), pad.Counts(), pad.MaxCombo(), pad.NewRecord)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// padLines is everything the pad screen shows, top to bottom.
func (p *Program) padLines(pad *input.Pad) []string {
	lines := []string{
		p.Theme.RenderScore("lanota") + "  " + p.Theme.RenderLabel(pad.Mode.String()),
		"",
	}
	for _, f := range pad.Fields() {
		value := fmt.Sprint(pad.Value(f))
		switch {
		case f == input.FieldLevel && pad.Plus:
			value += "+"
		case f == input.FieldTarget:
			value = render.Group(pad.Value(f))
		}
		if j := f.Judgement(); j >= 0 {
			value = p.Theme.RenderJudgement(j, value)
		}
		label := p.Theme.RenderLabel(fmt.Sprintf("%11s:", f.Label()))
		lines = append(lines, label+" "+p.Theme.RenderField(value, f == pad.Active))
	}
	if pad.Mode == input.ModeCalculator {
		lines = append(lines, p.Theme.RenderLabel(fmt.Sprintf("%11s:", "New Record"))+"  "+onOff(pad.NewRecord))
	}
	lines = append(lines, "")

	if report := p.padReport(pad); nil != report {
		lines = append(lines, p.Renderer.Lines(report)[1:]...)
	} else {
		lines = append(lines, p.Theme.RenderLabel("enter a level and notes to see results"))
	}

	return append(lines, "", p.Theme.RenderLabel("0-9 type  bksp delete  c clear  tab/enter next  p plus  r record  m mode  q quit"))
}

// RunPad runs the interactive number pad until quit, redrawing after every key.
func (p *Program) RunPad() error {
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	screen := render.NewScreen(p.out)
	if err := screen.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		if err := screen.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	pad := input.NewPad()
	for {
		columns, _ := render.Size(os.Stdout)
		column := columns/2 - 40
		if column < 2 {
			column = 2
		}

		screen.Clear()
		for i, line := range p.padLines(pad) {
			screen.Fill(2+i, column, line)
		}
		if err := screen.Flush(); nil != err {
			return fmt.Errorf("unable to draw pad: %w", err)
		}

		event, ok := <-keys
		if !ok {
			return nil
		}
		if nil != event.Err {
			return fmt.Errorf("unable to read keyboard: %w", event.Err)
		}
		if input.Apply(pad, event.Rune, event.Key) {
			return nil
		}
	}
}

package theme

import (
	"fmt"
	"io"

	"git.lost.host/meutraa/lanota/internal/game"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Mode int

const (
	// Plain writes text without any escape codes
	Plain Mode = iota
	// Auto lets the terminal behind the writer decide
	Auto
	// Color always emits true color codes
	Color
)

type DefaultTheme struct {
	plain       bool
	judgements  [len(game.Judgements)]lipgloss.Style
	score       lipgloss.Style
	rating      lipgloss.Style
	label       lipgloss.Style
	field       lipgloss.Style
	activeField lipgloss.Style
	badge       lipgloss.Style
	alert       lipgloss.Style
}

var (
	accent = game.Color{R: 167, G: 139, B: 250}
	muted  = game.Color{R: 148, G: 163, B: 184}
)

func hex(c game.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func NewDefaultTheme(w io.Writer, mode Mode) *DefaultTheme {
	t := &DefaultTheme{plain: mode == Plain}
	if t.plain {
		return t
	}

	r := lipgloss.NewRenderer(w)
	if mode == Color {
		r.SetColorProfile(termenv.TrueColor)
	}
	for i, j := range game.Judgements {
		t.judgements[i] = r.NewStyle().Bold(true).Foreground(hex(j.Color))
	}
	t.score = r.NewStyle().Bold(true)
	t.rating = r.NewStyle().Bold(true).Foreground(hex(accent))
	t.label = r.NewStyle().Foreground(hex(muted))
	t.field = r.NewStyle()
	t.activeField = r.NewStyle().Reverse(true).Bold(true)
	t.badge = r.NewStyle().Bold(true).Foreground(hex(game.Judgements[game.Harmony].Color))
	t.alert = r.NewStyle().Bold(true).Foreground(hex(game.Judgements[game.Fail].Color))
	return t
}

func (t *DefaultTheme) render(style lipgloss.Style, text string) string {
	if t.plain {
		return text
	}
	return style.Render(text)
}

func (t *DefaultTheme) RenderJudgement(judgement int, text string) string {
	if judgement < 0 || judgement >= len(t.judgements) {
		return text
	}
	return t.render(t.judgements[judgement], text)
}

func (t *DefaultTheme) RenderScore(text string) string {
	return t.render(t.score, text)
}

func (t *DefaultTheme) RenderRating(text string) string {
	return t.render(t.rating, text)
}

func (t *DefaultTheme) RenderLabel(text string) string {
	return t.render(t.label, text)
}

// RenderField marks the active field with brackets in plain mode and reverse video otherwise.
func (t *DefaultTheme) RenderField(text string, active bool) string {
	if t.plain {
		if active {
			return "[" + text + "]"
		}
		return " " + text + " "
	}
	if active {
		return t.activeField.Render(" " + text + " ")
	}
	return t.field.Render(" " + text + " ")
}

func (t *DefaultTheme) RenderBadge(text string) string {
	return t.render(t.badge, text)
}

func (t *DefaultTheme) RenderAlert(text string) string {
	return t.render(t.alert, text)
}

package input

import (
	"math"

	"git.lost.host/meutraa/lanota/internal/game"
	"git.lost.host/meutraa/lanota/internal/score"
)

type Mode int

const (
	ModeCalculator Mode = iota
	ModeTolerance
)

func (m Mode) String() string {
	if m == ModeTolerance {
		return "Tolerance"
	}
	return "Calculator"
}

type Field int

const (
	FieldLevel Field = iota
	FieldHarmony
	FieldTune
	FieldFail
	FieldMaxCombo
	FieldNotes
	FieldTarget
	fieldCount
)

var labels = [fieldCount]string{
	FieldLevel:    "Level",
	FieldHarmony:  "Harmony",
	FieldTune:     "Tune",
	FieldFail:     "Fail",
	FieldMaxCombo: "Max Combo",
	FieldNotes:    "Notes",
	FieldTarget:   "Target",
}

func (f Field) Label() string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return labels[f]
}

// Judgement returns the judgement a field counts, or -1.
func (f Field) Judgement() int {
	switch f {
	case FieldHarmony:
		return game.Harmony
	case FieldTune:
		return game.Tune
	case FieldFail:
		return game.Fail
	}
	return -1
}

// Largest value a field accepts. Counts are capped so digits never overflow an int.
func (f Field) limit() int64 {
	switch f {
	case FieldLevel:
		return game.MaxLevel
	case FieldTarget:
		return score.MaxScore
	}
	return math.MaxInt32
}

var modeFields = map[Mode][]Field{
	ModeCalculator: {FieldLevel, FieldHarmony, FieldTune, FieldFail, FieldMaxCombo},
	ModeTolerance:  {FieldLevel, FieldNotes, FieldTarget},
}

// Pad is the state behind the number pad: one value per field, digits typed
// into the active one.
type Pad struct {
	Mode      Mode
	Plus      bool
	NewRecord bool
	Active    Field

	values [fieldCount]int64
}

func NewPad() *Pad {
	return &Pad{Mode: ModeCalculator, Active: FieldLevel}
}

// Fields lists the fields shown in the current mode, in order.
func (p *Pad) Fields() []Field {
	return modeFields[p.Mode]
}

func (p *Pad) Value(f Field) int64 {
	if f < 0 || f >= fieldCount {
		return 0
	}
	return p.values[f]
}

func (p *Pad) Set(f Field, v int64) bool {
	if f < 0 || f >= fieldCount || v < 0 || v > f.limit() {
		return false
	}
	p.values[f] = v
	return true
}

// Press appends a digit to the active field. Digits that would push the field
// past its limit are refused.
func (p *Pad) Press(digit int) bool {
	if digit < 0 || digit > 9 {
		return false
	}
	return p.Set(p.Active, p.values[p.Active]*10+int64(digit))
}

// Delete drops the last digit of the active field.
func (p *Pad) Delete() {
	p.values[p.Active] /= 10
}

func (p *Pad) Clear() {
	p.values[p.Active] = 0
}

func (p *Pad) move(by int) {
	fields := p.Fields()
	index := 0
	for i, f := range fields {
		if f == p.Active {
			index = i
		}
	}
	index = (index + by + len(fields)) % len(fields)
	p.Active = fields[index]
}

func (p *Pad) Next() {
	p.move(1)
}

func (p *Pad) Prev() {
	p.move(-1)
}

// ToggleMode switches between the calculator and the tolerance query. Values
// are kept, the level is shared by both.
func (p *Pad) ToggleMode() {
	if p.Mode == ModeCalculator {
		p.Mode = ModeTolerance
	} else {
		p.Mode = ModeCalculator
	}
	p.Active = FieldLevel
}

func (p *Pad) TogglePlus() {
	p.Plus = !p.Plus
}

func (p *Pad) ToggleRecord() {
	p.NewRecord = !p.NewRecord
}

func (p *Pad) Difficulty() game.Difficulty {
	return game.Difficulty{Level: int(p.values[FieldLevel]), Plus: p.Plus}
}

func (p *Pad) Counts() game.Counts {
	return game.Counts{
		Harmony: int(p.values[FieldHarmony]),
		Tune:    int(p.values[FieldTune]),
		Fail:    int(p.values[FieldFail]),
	}
}

func (p *Pad) MaxCombo() int {
	return int(p.values[FieldMaxCombo])
}

func (p *Pad) Chart() game.Chart {
	return game.Chart{Difficulty: p.Difficulty(), NoteCount: int(p.values[FieldNotes])}
}

func (p *Pad) Target() int64 {
	return p.values[FieldTarget]
}

// Ready reports whether enough has been entered to show results for the mode.
func (p *Pad) Ready() bool {
	if p.values[FieldLevel] == 0 {
		return false
	}
	if p.Mode == ModeTolerance {
		return p.values[FieldTarget] > 0 && p.values[FieldNotes] > 0
	}
	return p.Counts().Total() > 0
}

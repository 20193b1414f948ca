package game

// Judgement tiers, best first. The index doubles as the slot in Counts.
const (
	Harmony = iota
	Tune
	Fail
)

type Color struct {
	R, G, B uint8
}

type Judgement struct {
	Name  string
	Color Color
}

var Judgements = [...]Judgement{
	Harmony: {Name: "Harmony", Color: Color{125, 211, 252}},
	Tune:    {Name: "Tune", Color: Color{252, 211, 77}},
	Fail:    {Name: "Fail", Color: Color{248, 113, 113}},
}

package game

import "strconv"

// MaxLevel is the highest chart level the game ships.
const MaxLevel = 16

type Difficulty struct {
	Level int  `json:"level" yaml:"level"`
	Plus  bool `json:"plus" yaml:"plus"`
}

// String renders the level the way charts label it, "13" or "13+".
func (d Difficulty) String() string {
	s := strconv.Itoa(d.Level)
	if d.Plus {
		s += "+"
	}
	return s
}

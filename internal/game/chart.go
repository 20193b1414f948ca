package game

type Chart struct {
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	NoteCount  int        `json:"note_count" yaml:"note_count"`
}

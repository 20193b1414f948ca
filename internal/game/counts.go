package game

// R5Rate is the harmony share at which a play counts toward R5 without a new record.
const R5Rate = 0.95

// Counts holds how many notes received each judgement.
type Counts struct {
	Harmony int `json:"harmony" yaml:"harmony"`
	Tune    int `json:"tune" yaml:"tune"`
	Fail    int `json:"fail" yaml:"fail"`
}

func (c Counts) Total() int {
	return c.Harmony + c.Tune + c.Fail
}

// Get returns the count for a judgement index (Harmony, Tune or Fail).
func (c Counts) Get(judgement int) int {
	switch judgement {
	case Harmony:
		return c.Harmony
	case Tune:
		return c.Tune
	case Fail:
		return c.Fail
	}
	return 0
}

// R5 reports whether the play qualifies for the R5 list: either it set a new
// record or at least R5Rate of the notes were Harmony.
func (c Counts) R5(newRecord bool) bool {
	total := c.Total()
	if total == 0 {
		return false
	}
	return newRecord || float64(c.Harmony)/float64(total) >= R5Rate
}

package score

// transition is the decay applied right after the linear part of the combo
// curve. Odd and even note counts decay differently.
type transition int

const (
	oddTransition transition = iota
	evenTransition
)

func transitionFor(n int) transition {
	if n%2 == 1 {
		return oddTransition
	}
	return evenTransition
}

// steps returns, in combo units, the decay of each transition index.
func (t transition) steps(n float64) []float64 {
	if t == oddTransition {
		cff := n/4 + 1
		d1 := (cff + 0.75) / 2
		return []float64{d1, cff - d1}
	}
	return []float64{n/4 + 0.5}
}

// halfSize is ceil(n/2), plus one for even n.
func halfSize(n int) int {
	h := (n + 1) / 2
	if n%2 == 0 {
		h++
	}
	return h
}

// ComboValues returns the combo bonus earned at each note index of an n note
// chart. The curve starts at ComboPool/n, decays by one unit (ComboPool/n²)
// per note until the half size boundary, drops through the transition and
// stays flat to the end.
func ComboValues(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	fn := float64(n)
	diff := ComboPool / fn
	unit := ComboPool / (fn * fn)

	values := make([]float64, n)
	current := diff - unit/2
	values[0] = current

	i := 1
	for ; i < halfSize(n)-1; i++ {
		current -= unit
		values[i] = current
	}

	// The conversion keeps unit*step from being fused into the subtraction,
	// which would change the curve on some architectures.
	for _, step := range transitionFor(n).steps(fn) {
		current -= float64(unit * step)
		if i < n {
			values[i] = current
		}
		i++
	}

	for ; i < n; i++ {
		values[i] = current
	}
	return values
}

package smoother

// WindowCapacity is the number of samples the smoother keeps: the two
// endpoints of the next segment plus one neighbour on each side.
const WindowCapacity = 4

// MinWindow is the number of buffered samples needed before the first
// element can be emitted.
const MinWindow = 3

// window is a fixed-capacity ring buffer of the most recent samples.
// Pushing into a full window evicts the oldest sample.
type window struct {
	buf   [WindowCapacity]Sample
	start int // index of the oldest sample
	n     int // number of samples held
}

func (w *window) push(s Sample) {
	if w.n < WindowCapacity {
		w.buf[(w.start+w.n)%WindowCapacity] = s
		w.n++
		return
	}
	w.buf[w.start] = s
	w.start = (w.start + 1) % WindowCapacity
}

// at returns the i-th sample, counting from the oldest.
func (w *window) at(i int) Sample {
	return w.buf[(w.start+i)%WindowCapacity]
}

// fromEnd returns the i-th sample counting backwards from the newest (0).
func (w *window) fromEnd(i int) Sample {
	return w.at(w.n - 1 - i)
}

func (w *window) len() int {
	return w.n
}

func (w *window) samples() []Sample {
	s := make([]Sample, w.n)
	for i := range s {
		s[i] = w.at(i)
	}
	return s
}

func (w *window) reset() {
	*w = window{}
}

package rng

// Scripted replays a fixed sequence of float values, cycling when exhausted.
// Intn maps the next float onto [0, n). Used by tests that need exact
// variance or trigger outcomes without hunting for seeds.
type Scripted struct {
	values []float64
	i      int
}

// NewScripted creates a scripted source from the given sequence.
// An empty sequence behaves as a constant 0.5.
func NewScripted(values ...float64) *Scripted {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &Scripted{values: values}
}

func (s *Scripted) next() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

// Float64 returns the next scripted value.
func (s *Scripted) Float64() float64 {
	return s.next()
}

// Intn returns the next scripted value scaled onto [0, n).
func (s *Scripted) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

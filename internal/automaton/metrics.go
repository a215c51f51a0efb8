package automaton

// Population tracks the live cell count of the latest generation.
type Population struct {
	last float64
}

func NewPopulation() *Population { return &Population{} }

func (m *Population) Name() string       { return "population" }
func (m *Population) Observe(s Snapshot) { m.last = float64(s.Population) }
func (m *Population) Value() float64     { return m.last }
func (m *Population) Reset()             { m.last = 0 }

// PeakDensity is the largest fraction of live cells seen in any generation.
type PeakDensity struct {
	peak float64
}

func NewPeakDensity() *PeakDensity { return &PeakDensity{} }

func (m *PeakDensity) Name() string { return "peak_density" }

func (m *PeakDensity) Observe(s Snapshot) {
	if s.Size == 0 {
		return
	}
	if d := float64(s.Population) / float64(s.Size); d > m.peak {
		m.peak = d
	}
}

func (m *PeakDensity) Value() float64 { return m.peak }
func (m *PeakDensity) Reset()         { m.peak = 0 }

// Activity is the mean fraction of cells that changed per generation.
type Activity struct {
	sum   float64
	count int
}

func NewActivity() *Activity { return &Activity{} }

func (m *Activity) Name() string { return "activity" }

func (m *Activity) Observe(s Snapshot) {
	if s.Generation == 0 || s.Size == 0 {
		return
	}
	m.sum += float64(s.Changed) / float64(s.Size)
	m.count++
}

func (m *Activity) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

func (m *Activity) Reset() {
	m.sum = 0
	m.count = 0
}

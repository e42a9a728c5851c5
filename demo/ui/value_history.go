package ui

const (
	MAX_HISTORY = 256
)

// ValueHistory keeps the last MAX_HISTORY samples, newest first.
type ValueHistory struct {
	samples []float32
	head    int
	count   int
}

func NewValueHistory() *ValueHistory {
	return &ValueHistory{samples: make([]float32, MAX_HISTORY)}
}

func (h *ValueHistory) AddSample(val float32) {
	h.head = (h.head + MAX_HISTORY - 1) % MAX_HISTORY
	h.samples[h.head] = val
	if h.count < MAX_HISTORY {
		h.count++
	}
}

func (h *ValueHistory) SampleCount() int {
	return h.count
}

// Sample returns the i-th newest sample.
func (h *ValueHistory) Sample(i int) float32 {
	return h.samples[(h.head+i)%MAX_HISTORY]
}

func (h *ValueHistory) SampleMin() float32 {
	if h.count == 0 {
		return 0
	}
	val := h.Sample(0)
	for i := 1; i < h.count; i++ {
		val = min(val, h.Sample(i))
	}
	return val
}

func (h *ValueHistory) SampleMax() float32 {
	if h.count == 0 {
		return 0
	}
	val := h.Sample(0)
	for i := 1; i < h.count; i++ {
		val = max(val, h.Sample(i))
	}
	return val
}

func (h *ValueHistory) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var val float32
	for i := 0; i < h.count; i++ {
		val += h.Sample(i)
	}
	return val / float32(h.count)
}

// Values returns the samples oldest first, for plotting.
func (h *ValueHistory) Values() []float32 {
	out := make([]float32, h.count)
	for i := range out {
		out[i] = h.Sample(h.count - 1 - i)
	}
	return out
}

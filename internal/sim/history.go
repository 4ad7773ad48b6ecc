package sim

// DefaultHistorySize bounds the charting buffers; at 60 Hz this is a
// bit under seven seconds of trace.
const DefaultHistorySize = 400

// History keeps the most recent temperature and fan samples for
// visualization. Oldest samples fall off the front once capacity is
// reached.
type History struct {
	capacity int
	temps    []float64
	fans     []float64
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		capacity: capacity,
		temps:    make([]float64, 0, capacity),
		fans:     make([]float64, 0, capacity),
	}
}

func (h *History) Push(temperature, fan float64) {
	h.temps = append(h.temps, temperature)
	h.fans = append(h.fans, fan)
	if len(h.temps) > h.capacity {
		h.temps = h.temps[1:]
		h.fans = h.fans[1:]
	}
}

func (h *History) Len() int { return len(h.temps) }

// Temps returns the buffered temperature series, oldest first. The
// returned slice is owned by the history; callers must not mutate it.
func (h *History) Temps() []float64 { return h.temps }

func (h *History) Fans() []float64 { return h.fans }

func (h *History) Clear() {
	h.temps = h.temps[:0]
	h.fans = h.fans[:0]
}

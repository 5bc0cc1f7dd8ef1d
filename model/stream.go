package model

// Stream is one named, typed sequence of timestamped string markers
// inside a capture container. Timestamps are seconds, monotonically
// increasing per stream, and parallel to Labels.
type Stream struct {
	Name       string
	Type       string
	Timestamps []float64
	Labels     []string
}

func (s *Stream) Records() []RawRecord {
	n := len(s.Timestamps)
	if len(s.Labels) < n {
		n = len(s.Labels)
	}
	res := make([]RawRecord, n)
	for i := 0; i < n; i++ {
		res[i] = RawRecord{Timestamp: s.Timestamps[i], Label: s.Labels[i]}
	}
	return res
}

// Container is one recorded workshop session: every stream captured
// between start and flush, bundled into a single file.
type Container struct {
	SessionID string
	Streams   []Stream
}

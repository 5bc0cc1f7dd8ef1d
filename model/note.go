package model

// Note pairs the k-th press with the k-th release of one participant.
// ScalePos is 1..7 for tones C..B and 0 when the tone is unrecognized.
type Note struct {
	PressTime   float64
	ReleaseTime float64
	Tone        string
	ScalePos    int
	Valid       bool
}

// Participant is one keyboard stream's worth of extracted events.
type Participant struct {
	Name     string
	Presses  []KeyEvent
	Releases []KeyEvent
	Notes    []Note
}

func (p *Participant) PressTimes() []float64 {
	res := make([]float64, len(p.Presses))
	for i, e := range p.Presses {
		res[i] = e.Timestamp
	}
	return res
}

// TimelineSegment is what the visualization sink consumes: one bar per
// note at its scale position.
type TimelineSegment struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	ScalePos int     `json:"scale_pos"`
	Tone     string  `json:"tone"`
}

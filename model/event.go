package model

type Action uint8

const (
	Press Action = iota
	Release
)

func (a Action) String() string {
	if a == Press {
		return "pressed"
	}
	return "released"
}

// RawRecord is one timestamped marker as it came out of a recording
// stream. Never mutated after load.
type RawRecord struct {
	Timestamp float64
	Label     string
}

type KeyEvent struct {
	Timestamp float64
	Action    Action
	Tone      string
}

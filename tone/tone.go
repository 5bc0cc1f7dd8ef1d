package tone

import "strings"

// Mapping holds the scale position and frequency for one of the seven
// workshop tones.
type Mapping struct {
	ScalePos  int
	Frequency float64
}

var table = map[string]Mapping{
	"c": {ScalePos: 1, Frequency: 261.63},
	"d": {ScalePos: 2, Frequency: 293.66},
	"e": {ScalePos: 3, Frequency: 329.63},
	"f": {ScalePos: 4, Frequency: 349.23},
	"g": {ScalePos: 5, Frequency: 392.00},
	"a": {ScalePos: 6, Frequency: 440.00},
	"b": {ScalePos: 7, Frequency: 493.88},
}

// Lookup resolves a tone label case-insensitively. ok is false for
// anything outside A..G; callers mark those notes invalid rather than
// failing.
func Lookup(label string) (Mapping, bool) {
	m, ok := table[strings.ToLower(strings.TrimSpace(label))]
	return m, ok
}

func Frequency(label string) (float64, bool) {
	m, ok := Lookup(label)
	return m.Frequency, ok
}

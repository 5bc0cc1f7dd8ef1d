package note

import (
	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/T-PsyOl/iMove-Workshop/tone"
	"github.com/T-PsyOl/iMove-Workshop/util"
)

// Pair matches the k-th press with the k-th release, positionally, up
// to min(#presses, #releases). Trailing unmatched events are dropped.
// Pairing deliberately ignores tone identity and does not validate
// release > press; a non-positive duration survives here and gets
// floored by the synthesizer.
func Pair(p *model.Participant) []model.Note {
	n := util.Min(len(p.Presses), len(p.Releases))

	notes := make([]model.Note, 0, n)
	for k := 0; k < n; k++ {
		nt := model.Note{
			PressTime:   p.Presses[k].Timestamp,
			ReleaseTime: p.Releases[k].Timestamp,
			Tone:        p.Presses[k].Tone,
		}
		if m, ok := tone.Lookup(nt.Tone); ok {
			nt.ScalePos = m.ScalePos
			nt.Valid = true
		}
		notes = append(notes, nt)
	}
	return notes
}

// PairAll fills in Notes for every participant.
func PairAll(participants []model.Participant) {
	for i := range participants {
		participants[i].Notes = Pair(&participants[i])
	}
}

// Align rebases every timestamp onto a shared zero origin: the earliest
// press observed across all participants. The shift preserves order and
// keeps relative timing between participants intact, which is what the
// synchrony numbers depend on. ok is false when no presses exist at all.
func Align(participants []model.Participant) (t0 float64, ok bool) {
	first := true
	for i := range participants {
		for _, e := range participants[i].Presses {
			if first || e.Timestamp < t0 {
				t0 = e.Timestamp
				first = false
			}
		}
	}
	if first {
		return 0, false
	}

	for i := range participants {
		p := &participants[i]
		for j := range p.Presses {
			p.Presses[j].Timestamp -= t0
		}
		for j := range p.Releases {
			p.Releases[j].Timestamp -= t0
		}
		for j := range p.Notes {
			p.Notes[j].PressTime -= t0
			p.Notes[j].ReleaseTime -= t0
		}
	}
	return t0, true
}

// Segments converts a participant's valid notes into timeline segments
// for the visualization sink. Invalid tones are excluded from plotting.
func Segments(notes []model.Note) []model.TimelineSegment {
	var res []model.TimelineSegment
	for _, nt := range notes {
		if !nt.Valid {
			continue
		}
		res = append(res, model.TimelineSegment{
			Start:    nt.PressTime,
			End:      nt.ReleaseTime,
			ScalePos: nt.ScalePos,
			Tone:     nt.Tone,
		})
	}
	return res
}

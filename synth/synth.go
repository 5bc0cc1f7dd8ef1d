package synth

import (
	"math"

	"github.com/T-PsyOl/iMove-Workshop/constants"
	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/T-PsyOl/iMove-Workshop/tone"
)

type Options struct {
	SampleRate int
	FadeSec    float64
	MinDurSec  float64
	TailSec    float64
}

func DefaultOptions() Options {
	return Options{
		SampleRate: constants.SampleRate,
		FadeSec:    constants.FadeDurationSec,
		MinDurSec:  constants.MinNoteDurationSec,
		TailSec:    constants.BufferTailSec,
	}
}

// BufferSamples sizes the shared output buffer: whole seconds up to the
// latest release across all participants, plus a tail so the last
// fade-out isn't clipped.
func BufferSamples(participants []model.Participant, o Options) int {
	var maxRelease float64
	for i := range participants {
		for _, nt := range participants[i].Notes {
			if nt.ReleaseTime > maxRelease {
				maxRelease = nt.ReleaseTime
			}
		}
	}
	return int((math.Ceil(maxRelease) + o.TailSec) * float64(o.SampleRate))
}

// RenderNote produces the waveform for one note: a pure sine at the
// tone's frequency with linear fade-in/out ramps. Non-positive
// durations are floored to MinDurSec so every note still sounds.
// Returns nil for notes whose tone isn't in the table.
func RenderNote(nt model.Note, o Options) []float64 {
	freq, ok := tone.Frequency(nt.Tone)
	if !ok {
		return nil
	}

	dur := nt.ReleaseTime - nt.PressTime
	if dur <= 0 {
		dur = o.MinDurSec
	}
	length := int(dur * float64(o.SampleRate))
	if length == 0 {
		return nil
	}

	buf := make([]float64, length)
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(o.SampleRate))
	}

	// fades keep the speakers from clicking at note boundaries
	fade := int(o.FadeSec * float64(o.SampleRate))
	if fade > length/2 {
		fade = length / 2
	}
	for i := 0; i < fade; i++ {
		ramp := float64(i) / float64(fade)
		buf[i] *= ramp
		buf[length-1-i] *= ramp
	}
	return buf
}

// RenderParticipant overlays every valid note into one buffer of
// bufLen samples, additively, at the sample offset of its press time.
// Notes running past the end of the buffer are truncated to fit.
func RenderParticipant(p *model.Participant, bufLen int, o Options) []float64 {
	out := make([]float64, bufLen)
	for _, nt := range p.Notes {
		wave := RenderNote(nt, o)
		if wave == nil {
			continue
		}
		offset := int(nt.PressTime * float64(o.SampleRate))
		if offset < 0 {
			offset = 0
		}
		for i := range wave {
			pos := offset + i
			if pos >= bufLen {
				break
			}
			out[pos] += wave[i]
		}
	}
	return out
}

// Mix sums the participants' buffers sample-wise and normalizes the
// result to peak 1.0. An all-zero mix is left untouched rather than
// divided by zero.
func Mix(buffers [][]float64) []float64 {
	var length int
	for _, b := range buffers {
		if len(b) > length {
			length = len(b)
		}
	}
	mixed := make([]float64, length)
	for _, b := range buffers {
		for i, v := range b {
			mixed[i] += v
		}
	}

	var peak float64
	for _, v := range mixed {
		if math.Abs(v) > peak {
			peak = math.Abs(v)
		}
	}
	if peak == 0 {
		return mixed
	}
	for i := range mixed {
		mixed[i] /= peak
	}
	return mixed
}

// RenderAll renders one buffer per participant plus the normalized mix.
func RenderAll(participants []model.Participant, o Options) (perParticipant [][]float64, mixed []float64) {
	bufLen := BufferSamples(participants, o)
	perParticipant = make([][]float64, len(participants))
	for i := range participants {
		perParticipant[i] = RenderParticipant(&participants[i], bufLen, o)
	}
	return perParticipant, Mix(perParticipant)
}

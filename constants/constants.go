package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("ANALYSIS_OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetRecordingsDir() string {
	path := os.Getenv("RECORDINGS_PATH")
	if path != "" {
		return path
	}
	return "./recordings"
}

// Roster lookup is optional. Empty table name disables it.
func GetRosterTable() string {
	return os.Getenv("ROSTER_TABLE")
}

func GetRosterEndpoint() string {
	endpoint := os.Getenv("ROSTER_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

const SampleRate = 44100

// 10ms linear ramp at each end of a note, clamped to half the note.
const FadeDurationSec = 0.01

// Zero and negative durations come straight out of positional pairing
// when the source interleaving is off. Floor them so every note still
// makes an audible blip.
const MinNoteDurationSec = 0.1

// Extra room after the last release so the final fade-out isn't cut.
const BufferTailSec = 0.5

// Substring that marks a stream as a keyboard stream, matched
// case-insensitively against declared name and type.
const KeyboardStreamHint = "keyboard"

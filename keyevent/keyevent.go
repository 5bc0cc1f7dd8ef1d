package keyevent

import (
	"errors"
	"strings"

	"github.com/T-PsyOl/iMove-Workshop/constants"
	"github.com/T-PsyOl/iMove-Workshop/model"
)

// LabelFormat selects how marker labels encode a key transition. The
// emitter historically published "pressedC" with no separator while
// recorded files carry two space-separated tokens, so the format is an
// explicit knob instead of a guess.
type LabelFormat uint8

const (
	// FormatSpaced is two whitespace-separated tokens, the action word
	// in either position: "pressed C" and "C pressed" both parse.
	FormatSpaced LabelFormat = iota
	// FormatCompact is the action word directly concatenated with the
	// tone: "pressedC".
	FormatCompact
)

var ErrNoKeyboardStreams = errors.New("no keyboard streams found")

func parseAction(token string) (model.Action, bool) {
	switch strings.ToLower(token) {
	case "pressed":
		return model.Press, true
	case "released":
		return model.Release, true
	}
	return 0, false
}

// ParseLabel splits a marker label into an action and a tone. ok is
// false for anything malformed; malformed labels are skipped, never
// fatal.
func ParseLabel(label string, format LabelFormat) (action model.Action, tonLabel string, ok bool) {
	if format == FormatCompact {
		lower := strings.ToLower(label)
		for _, word := range []string{"pressed", "released"} {
			if strings.HasPrefix(lower, word) && len(label) > len(word) {
				action, _ = parseAction(word)
				return action, label[len(word):], true
			}
		}
		return 0, "", false
	}

	tokens := strings.Fields(label)
	if len(tokens) != 2 {
		return 0, "", false
	}
	if action, ok = parseAction(tokens[0]); ok {
		return action, tokens[1], true
	}
	if action, ok = parseAction(tokens[1]); ok {
		return action, tokens[0], true
	}
	return 0, "", false
}

// BuildLabel is the emitter-side inverse of ParseLabel.
func BuildLabel(action model.Action, tonLabel string, format LabelFormat) string {
	if format == FormatCompact {
		return action.String() + tonLabel
	}
	return action.String() + " " + tonLabel
}

// IsKeyboardStream reports whether a stream's declared name or type
// marks it as keyboard data.
func IsKeyboardStream(name string, streamType string) bool {
	hint := constants.KeyboardStreamHint
	return strings.Contains(strings.ToLower(name), hint) ||
		strings.Contains(strings.ToLower(streamType), hint)
}

// Extract turns one stream's raw records into ordered press and release
// lists. Original chronological order is preserved within each list.
func Extract(records []model.RawRecord, format LabelFormat) (presses []model.KeyEvent, releases []model.KeyEvent) {
	for _, rec := range records {
		action, tonLabel, ok := ParseLabel(rec.Label, format)
		if !ok {
			continue
		}
		evt := model.KeyEvent{Timestamp: rec.Timestamp, Action: action, Tone: tonLabel}
		if action == model.Press {
			presses = append(presses, evt)
		} else {
			releases = append(releases, evt)
		}
	}
	return presses, releases
}

// ExtractParticipants pulls every keyboard stream out of a container.
// A run with zero keyboard streams is a dead end and errors out.
func ExtractParticipants(c *model.Container, format LabelFormat) ([]model.Participant, error) {
	var res []model.Participant
	for _, stream := range c.Streams {
		if !IsKeyboardStream(stream.Name, stream.Type) {
			continue
		}
		presses, releases := Extract(stream.Records(), format)
		res = append(res, model.Participant{
			Name:     stream.Name,
			Presses:  presses,
			Releases: releases,
		})
	}
	if len(res) == 0 {
		return nil, ErrNoKeyboardStreams
	}
	return res, nil
}

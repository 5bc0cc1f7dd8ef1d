package model

// MarkerSample is the JSON wire format one emitter publishes per key
// transition and the collector ingests.
type MarkerSample struct {
	Session     string  `json:"session"`
	Participant string  `json:"participant"`
	Timestamp   float64 `json:"timestamp"`
	Label       string  `json:"label"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

// RosterEntry is optional participant metadata looked up by stream name.
type RosterEntry struct {
	DisplayName string
	Group       string
}

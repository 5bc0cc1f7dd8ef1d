//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/T-PsyOl/iMove-Workshop/cmd"
	"github.com/T-PsyOl/iMove-Workshop/keyevent"
	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/stretchr/testify/assert"
)

func postMarker(t *testing.T, sample model.MarkerSample) {
	data, err := json.Marshal(sample)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/markers", bytes.NewReader(data))
	w := httptest.NewRecorder()
	cmd.HandleMarkers(w, req)
	if w.Result().StatusCode != 200 {
		t.Fatalf("marker ingest returned %v", w.Result().StatusCode)
	}
}

func TestRecordThenAnalyze(t *testing.T) {
	assert := assert.New(t)

	recDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	t.Setenv("RECORDINGS_PATH", recDir)

	cmd.StartCollector()

	// participant A: C pressed at 1.0, released at 1.5
	// participant B: C pressed at 1.2, released at 1.6
	postMarker(t, model.MarkerSample{Participant: "A", Timestamp: 1.0, Label: "C pressed"})
	postMarker(t, model.MarkerSample{Participant: "A", Timestamp: 1.5, Label: "C released"})
	postMarker(t, model.MarkerSample{Participant: "B", Timestamp: 1.2, Label: "C pressed"})
	postMarker(t, model.MarkerSample{Participant: "B", Timestamp: 1.6, Label: "C released"})

	req := httptest.NewRequest(http.MethodPost, "/flush", nil)
	w := httptest.NewRecorder()
	cmd.HandleFlush(w, req)
	assert.Equal(200, w.Result().StatusCode)

	var flushResponse map[string]string
	err := json.NewDecoder(w.Result().Body).Decode(&flushResponse)
	assert.NoError(err)
	capturePath := flushResponse["path"]
	assert.NotEmpty(capturePath)

	err = cmd.Analyze(capturePath, keyevent.FormatSpaced, outDir)
	assert.NoError(err)

	for _, name := range []string{
		"mixed.wav", "participant-01.wav", "participant-02.wav",
		"timeline.json", "asynchrony.csv",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(err, "expected %v to exist", name)
	}

	// alignment puts A's note at (0.0, 0.5) and B's at (0.2, 0.6)
	data, err := os.ReadFile(filepath.Join(outDir, "timeline.json"))
	assert.NoError(err)
	var timeline map[string][]model.TimelineSegment
	assert.NoError(json.Unmarshal(data, &timeline))
	a := timeline["Keyboard-A"]
	b := timeline["Keyboard-B"]
	assert.Len(a, 1)
	assert.Len(b, 1)
	assert.InDelta(0.0, a[0].Start, 1e-12)
	assert.InDelta(0.5, a[0].End, 1e-12)
	assert.InDelta(0.2, b[0].Start, 1e-12)
	assert.InDelta(0.6, b[0].End, 1e-12)

	// single-press pair scores exactly 0.2s
	csv, err := os.ReadFile(filepath.Join(outDir, "asynchrony.csv"))
	assert.NoError(err)
	assert.True(strings.Contains(string(csv), "0.200000"))
}

package recording

import (
	"path/filepath"
	"testing"

	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/stretchr/testify/assert"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	assert := assert.New(t)

	container := &model.Container{
		SessionID: "test-session",
		Streams: []model.Stream{
			{
				Name:       "Keyboard-P1",
				Type:       "Markers",
				Timestamps: []float64{1.0, 1.5},
				Labels:     []string{"pressed C", "released C"},
			},
			{
				Name:       "Mocap",
				Type:       "Position",
				Timestamps: []float64{0.5},
				Labels:     []string{"frame"},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "session.rec")
	assert.NoError(Save(path, container))

	loaded, err := Load(path)
	assert.NoError(err)
	assert.Equal(container, loaded)
}

func TestLoadOfMissingFileErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.rec"))
	assert.Error(err)
}

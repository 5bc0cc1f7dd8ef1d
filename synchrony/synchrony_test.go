package synchrony

import (
	"math"
	"testing"

	"github.com/T-PsyOl/iMove-Workshop/model"
	"github.com/stretchr/testify/assert"
)

func participantWithPresses(name string, times ...float64) model.Participant {
	p := model.Participant{Name: name}
	for _, ts := range times {
		p.Presses = append(p.Presses, model.KeyEvent{Timestamp: ts, Action: model.Press})
	}
	return p
}

func TestNeedsAtLeastTwoParticipants(t *testing.T) {
	assert := assert.New(t)

	_, err := Analyze([]model.Participant{participantWithPresses("A", 1)})
	assert.Equal(ErrTooFewParticipants, err)
}

func TestMatrixIsSymmetricWithZeroDiagonal(t *testing.T) {
	assert := assert.New(t)

	m, err := Analyze([]model.Participant{
		participantWithPresses("A", 0, 1, 2),
		participantWithPresses("B", 0.1, 1.3, 2.2),
		participantWithPresses("C", 0.5, 1.5),
	})
	assert.NoError(err)

	for i := range m.Scores {
		assert.Equal(0.0, m.Scores[i][i])
		for j := range m.Scores {
			assert.Equal(m.Scores[i][j], m.Scores[j][i])
		}
	}
}

func TestIdenticalSequencesScoreZero(t *testing.T) {
	assert := assert.New(t)

	m, err := Analyze([]model.Participant{
		participantWithPresses("A", 0, 1, 2),
		participantWithPresses("B", 0, 1, 2),
	})
	assert.NoError(err)
	assert.Equal(0.0, m.Scores[0][1])
}

func TestWorkedSinglePressExample(t *testing.T) {
	assert := assert.New(t)

	// A presses at 0.0, B at 0.2 (already aligned)
	score := PairScore([]float64{0.0}, []float64{0.2})
	assert.InDelta(0.2, score, 1e-12)
}

func TestNearestNeighborIsUsedPerPress(t *testing.T) {
	assert := assert.New(t)

	// A->B distances: |0-0.1|=0.1, |1-1.0|=0
	// B->A distances: 0.1, 0
	score := PairScore([]float64{0, 1}, []float64{0.1, 1.0})
	assert.InDelta(0.05, score, 1e-12)
}

func TestEmptyParticipantYieldsNaNNotZero(t *testing.T) {
	assert := assert.New(t)

	m, err := Analyze([]model.Participant{
		participantWithPresses("A", 0, 1),
		participantWithPresses("B"),
		participantWithPresses("C", 0.5, 1.5),
	})
	assert.NoError(err)

	assert.True(math.IsNaN(m.Scores[0][1]))
	assert.True(math.IsNaN(m.Scores[1][2]))
	assert.False(math.IsNaN(m.Scores[0][2]))
}

func TestOverallSkipsUndefinedPairsAndCountsThem(t *testing.T) {
	assert := assert.New(t)

	m, err := Analyze([]model.Participant{
		participantWithPresses("A", 0),
		participantWithPresses("B", 0.2),
		participantWithPresses("C"),
	})
	assert.NoError(err)

	overall, undefined := m.Overall()
	assert.InDelta(0.2, overall, 1e-12)
	assert.Equal(2, undefined)
}

func TestOverallOfAllUndefinedIsNaN(t *testing.T) {
	assert := assert.New(t)

	m, err := Analyze([]model.Participant{
		participantWithPresses("A"),
		participantWithPresses("B"),
	})
	assert.NoError(err)

	overall, undefined := m.Overall()
	assert.True(math.IsNaN(overall))
	assert.Equal(1, undefined)
}

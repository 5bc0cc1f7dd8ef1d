package synchrony

import (
	"errors"
	"math"

	"github.com/T-PsyOl/iMove-Workshop/model"
)

// Matrix is the pairwise asynchrony result: symmetric, zero diagonal,
// NaN where a participant had no presses to compare.
type Matrix struct {
	Names  []string
	Scores [][]float64
}

var ErrTooFewParticipants = errors.New("synchrony needs at least 2 participants")

// nearestNeighborDistances maps each press in from to its closest
// press in to, as absolute differences.
func nearestNeighborDistances(from []float64, to []float64) []float64 {
	res := make([]float64, 0, len(from))
	for _, t := range from {
		best := math.Inf(1)
		for _, u := range to {
			if d := math.Abs(t - u); d < best {
				best = d
			}
		}
		res = append(res, best)
	}
	return res
}

// PairScore is the mean nearest-neighbor absolute difference between
// two press sequences, taken in both directions. NaN when either side
// is empty: an empty participant has no defined distance to anything,
// and folding that into 0 would fake perfect synchrony.
func PairScore(a []float64, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return math.NaN()
	}
	dists := nearestNeighborDistances(a, b)
	dists = append(dists, nearestNeighborDistances(b, a)...)

	var sum float64
	for _, d := range dists {
		sum += d
	}
	return sum / float64(len(dists))
}

// Analyze computes the full matrix over aligned press sequences.
func Analyze(participants []model.Participant) (*Matrix, error) {
	n := len(participants)
	if n < 2 {
		return nil, ErrTooFewParticipants
	}

	presses := make([][]float64, n)
	names := make([]string, n)
	for i := range participants {
		presses[i] = participants[i].PressTimes()
		names[i] = participants[i].Name
	}

	scores := make([][]float64, n)
	for i := range scores {
		scores[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := PairScore(presses[i], presses[j])
			scores[i][j] = s
			scores[j][i] = s
		}
	}
	return &Matrix{Names: names, Scores: scores}, nil
}

// Overall averages the upper triangle. Undefined (NaN) pairs are
// excluded from the mean and reported separately so they can't silently
// drag the aggregate.
func (m *Matrix) Overall() (mean float64, undefinedPairs int) {
	var sum float64
	var count int
	for i := 0; i < len(m.Scores); i++ {
		for j := i + 1; j < len(m.Scores); j++ {
			if math.IsNaN(m.Scores[i][j]) {
				undefinedPairs++
				continue
			}
			sum += m.Scores[i][j]
			count++
		}
	}
	if count == 0 {
		return math.NaN(), undefinedPairs
	}
	return sum / float64(count), undefinedPairs
}

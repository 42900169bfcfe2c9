package forecast

import (
	"errors"
	"math/rand"

	"github.com/finsight/backend/internal/ledger"
)

// ErrInsufficientData is returned when the ledger has too few
// transactions to split into a training and a test partition.
var ErrInsufficientData = errors.New("the ledger must contain at least two transactions to train the forecast model")

// Result is the outcome of a training run.
type Result struct {
	// MSE is the mean squared error over the test partition.
	MSE float64 `json:"mse"`

	// SampleInput is the encoded feature vector of the first test record.
	SampleInput []float64 `json:"sampleInput"`

	// SamplePrediction is the model's prediction for SampleInput.
	SamplePrediction float64 `json:"samplePrediction"`
}

// Options bound the cost of a training run. The zero value selects the
// defaults.
type Options struct {
	// Trees is the ensemble size. Defaults to 100.
	Trees int

	// MaxDepth limits how deep a single tree can grow. Defaults to 12.
	MaxDepth int

	// TestFraction is the share of records held out for evaluation.
	// Defaults to 0.2.
	TestFraction float64
}

func (o Options) withDefaults() Options {
	if o.Trees <= 0 {
		o.Trees = 100
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = 12
	}
	if o.TestFraction <= 0 {
		o.TestFraction = 0.2
	}

	return o
}

// TrainAndEvaluate encodes the ledger, splits it into training and test
// partitions, fits a regression forest on the training partition and
// reports the mean squared error over the test partition together with
// a prediction for its first record.
//
// The encoding schema is computed over the full ledger before the
// split, so a categorical value that only occurs in the test partition
// still has a column. The split and the forest are driven by the seed:
// the same seed on the same ledger always produces the same result.
func TrainAndEvaluate(s *ledger.Store, seed int64, opts Options) (Result, error) {
	opts = opts.withDefaults()

	transactions := s.Transactions()
	if len(transactions) < 2 {
		return Result{}, ErrInsufficientData
	}

	schema := NewSchema(transactions)

	features := make([][]float64, len(transactions))
	targets := make([]float64, len(transactions))
	for i, t := range transactions {
		features[i] = schema.Encode(t)
		targets[i] = t.Amount.InexactFloat64()
	}

	rng := rand.New(rand.NewSource(seed))

	indices := rng.Perm(len(transactions))
	testCount := int(float64(len(transactions)) * opts.TestFraction)
	if testCount < 1 {
		testCount = 1
	}
	if testCount >= len(transactions) {
		testCount = len(transactions) - 1
	}

	test := indices[:testCount]
	train := indices[testCount:]

	trainFeatures := make([][]float64, len(train))
	trainTargets := make([]float64, len(train))
	for i, idx := range train {
		trainFeatures[i] = features[idx]
		trainTargets[i] = targets[idx]
	}

	model := growForest(rng, trainFeatures, trainTargets, opts.Trees, opts.MaxDepth)

	var sum float64
	for _, idx := range test {
		d := model.predict(features[idx]) - targets[idx]
		sum += d * d
	}

	sample := features[test[0]]

	return Result{
		MSE:              sum / float64(len(test)),
		SampleInput:      sample,
		SamplePrediction: model.predict(sample),
	}, nil
}

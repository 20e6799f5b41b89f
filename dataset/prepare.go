// Package dataset turns self-play examples into training tensors.
package dataset

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Prepare packs whole batches of boards and values into tensors. Leftover
// examples that do not fill a batch are dropped. Xs has shape
// (batches*BatchSize, Features, Height, Width) and Values (batches*BatchSize).
func Prepare(conf Config, boards [][]float32, values []float32) (Xs, Values *tensor.Dense, batches int, err error) {
	if !conf.IsValid() {
		return nil, nil, 0, errors.New("invalid dataset config")
	}
	if len(boards) != len(values) {
		return nil, nil, 0, errors.Errorf("%d boards but %d values", len(boards), len(values))
	}
	batches = len(boards) / conf.BatchSize
	if batches == 0 {
		return nil, nil, 0, errors.Errorf("batches is nil, %d examples is too few for batch size %d", len(boards), conf.BatchSize)
	}
	total := batches * conf.BatchSize
	size := conf.InputSize()

	XsBacking := make([]float32, 0, total*size)
	ValuesBacking := make([]float32, 0, total)
	for i, board := range boards[:total] {
		if len(board) != size {
			return nil, nil, 0, errors.Errorf("example %d has %d inputs, expected %d", i, len(board), size)
		}
		XsBacking = append(XsBacking, board...)
		ValuesBacking = append(ValuesBacking, values[i])
	}

	Xs = tensor.New(tensor.WithBacking(XsBacking), tensor.WithShape(total, conf.Features, conf.Height, conf.Width))
	Values = tensor.New(tensor.WithBacking(ValuesBacking), tensor.WithShape(total))
	return Xs, Values, batches, nil
}

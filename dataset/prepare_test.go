package dataset

import (
	"testing"

	"github.com/chessball/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConf(t *testing.T) {
	conf := DefaultConf(game.RowNum, game.ColNum, game.Planes)
	assert.True(t, conf.IsValid())
	assert.Equal(t, game.Planes*game.RowNum*game.ColNum, conf.InputSize())
	assert.False(t, Config{}.IsValid())
}

func TestPrepare(t *testing.T) {
	conf := DefaultConf(game.RowNum, game.ColNum, game.Planes)
	conf.BatchSize = 2

	var boards [][]float32
	var values []float32
	for i := 0; i < 5; i++ {
		boards = append(boards, game.InputEncoder(game.NewGame(), game.First))
		values = append(values, float32(i))
	}

	Xs, Values, batches, err := Prepare(conf, boards, values)
	require.NoError(t, err)
	assert.Equal(t, 2, batches)
	assert.Equal(t, []int{4, game.Planes, game.RowNum, game.ColNum}, []int(Xs.Shape()))
	assert.Equal(t, []int{4}, []int(Values.Shape()))
	assert.Equal(t, []float32{0, 1, 2, 3}, Values.Data())
}

func TestPrepareErrors(t *testing.T) {
	conf := DefaultConf(game.RowNum, game.ColNum, game.Planes)
	conf.BatchSize = 2
	board := game.InputEncoder(game.NewGame(), game.First)

	_, _, _, err := Prepare(conf, [][]float32{board}, []float32{1})
	assert.Error(t, err, "too few examples")

	_, _, _, err = Prepare(conf, [][]float32{board, board}, []float32{1})
	assert.Error(t, err, "mismatched lengths")

	_, _, _, err = Prepare(conf, [][]float32{board, board[:3]}, []float32{1, 2})
	assert.Error(t, err, "short board")

	_, _, _, err = Prepare(Config{}, nil, nil)
	assert.Error(t, err)
}

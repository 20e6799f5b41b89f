package chessball

import (
	"github.com/chessball/game"
	"github.com/chessball/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// SaveExamples writes examples to a new parquet batch in dir, tagged with
// source, and returns its path. Nothing is written for an empty slice.
func SaveExamples(dir, source string, examples []Example) (string, error) {
	w, err := store.NewBatchWriter(dir, source)
	if err != nil {
		return "", err
	}

	rows := make([]store.TrainingRow, 0, len(examples))
	for _, ex := range examples {
		rows = append(rows, store.TrainingRow{
			GameID:   ex.GameID,
			Ply:      int32(ex.Ply),
			Player:   string(ex.Player.Letter()),
			Position: ex.Position,
			Input:    ex.Board,
			Features: ex.Features,
			Value:    ex.Value,
		})
	}
	if err := w.Write(rows...); err != nil {
		if aerr := w.Abort(); aerr != nil {
			log.Err(aerr).Str("path", w.StagingPath()).Msg("abort after failed write")
		}
		return "", err
	}

	sum, err := w.Finalize()
	if err != nil {
		return "", err
	}
	log.Info().Str("path", sum.Path).Int("rows", sum.Rows).Int("games", sum.Games).Msg("examples saved")
	return sum.Path, nil
}

// LoadExamples reads back a file written by SaveExamples.
func LoadExamples(path string) ([]Example, error) {
	rows, err := store.ReadRows(path)
	if err != nil {
		return nil, err
	}
	retVal := make([]Example, 0, len(rows))
	for i, row := range rows {
		if len(row.Player) != 1 {
			return nil, errors.Errorf("row %d: bad player %q", i, row.Player)
		}
		player, ok := game.PlayerFromLetter(row.Player[0])
		if !ok {
			return nil, errors.Errorf("row %d: bad player %q", i, row.Player)
		}
		retVal = append(retVal, Example{
			Board:    row.Input,
			Features: row.Features,
			Value:    row.Value,
			GameID:   row.GameID,
			Ply:      int(row.Ply),
			Player:   player,
			Position: row.Position,
		})
	}
	return retVal, nil
}

// Package store persists self-play training rows as zstd-compressed parquet files.
package store

// TrainingRow is a single self-play training sample.
//
// Position is the board in its textual form so rows stay readable without the
// encoder. Input is the encoded board and Features the evaluator's feature
// vector, both from Player's point of view. Value is the final outcome in
// [-1..1] for Player.
type TrainingRow struct {
	GameID   string    `parquet:"game_id,dict"`
	Ply      int32     `parquet:"ply"`
	Player   string    `parquet:"player,dict"`
	Position string    `parquet:"position"`
	Input    []float32 `parquet:"input"`
	Features []float32 `parquet:"features"`
	Value    float32   `parquet:"value"`
	Source   string    `parquet:"source,dict"`
}

const schemaVersion = "chessball_training_row_v1"

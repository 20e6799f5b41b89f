package dataset

// Config describes how examples are batched into tensors.
type Config struct {
	BatchSize int `json:"batch_size"` // batch size
	Width     int `json:"width"`      // board size width
	Height    int `json:"height"`     // board size height
	Features  int `json:"features"`   // input planes per board
}

func DefaultConf(m, n, features int) Config {
	return Config{
		BatchSize: 256,
		Width:     n,
		Height:    m,
		Features:  features,
	}
}

func (conf Config) IsValid() bool {
	return conf.BatchSize >= 1 &&
		conf.Width >= 1 &&
		conf.Height >= 1 &&
		conf.Features > 0
}

// InputSize is the length of one encoded board.
func (conf Config) InputSize() int { return conf.Features * conf.Height * conf.Width }

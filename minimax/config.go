package minimax

// Config configures a Searcher.
type Config struct {
	Depth    int  `json:"depth"`    // plies to look ahead; 0 evaluates the position only
	Parallel int  `json:"parallel"` // goroutines used to split the root; 1 or less searches sequentially
	Verbose  bool `json:"verbose"`  // log every root move and the final result at debug level
	Trace    bool `json:"trace"`    // record the explored tree for DOT export
}

func DefaultConfig() Config {
	return Config{
		Depth:    2,
		Parallel: 1,
	}
}

func (c Config) IsValid() bool {
	return c.Depth >= 0 && c.Parallel >= 0
}

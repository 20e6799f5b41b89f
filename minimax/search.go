// Package minimax picks moves with a fixed-depth minimax search that short
// circuits on immediate wins and scores leaves with the eval package.
package minimax

import (
	"context"
	"math"

	"github.com/chessball/eval"
	"github.com/chessball/game"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a search. Move and Board are nil when no move was
// chosen: there was no legal move, or depth 0 stopped the search at the root.
// Score is +Inf for a forced win, -Inf for a position already lost, and the
// static evaluation from the searching player's side otherwise.
type Result struct {
	Move  *game.Move
	Board *game.Board
	Score float64
}

// Found reports whether the search chose a move.
func (r Result) Found() bool { return r.Move != nil }

// ChooseBestMove searches depth plies for player. It never fails.
func ChooseBestMove(b *game.Board, player game.Player, depth int) Result {
	conf := DefaultConfig()
	conf.Depth = depth
	retVal, _ := New(conf).Search(context.Background(), b, player)
	return retVal
}

// ChooseBestMoveContext is ChooseBestMove with cancellation and the full
// Config. It returns ctx's error if ctx ends before the search does.
func ChooseBestMoveContext(ctx context.Context, b *game.Board, player game.Player, conf Config) (Result, error) {
	return New(conf).Search(ctx, b, player)
}

// Searcher runs searches with a fixed Config. The Stats and Trace of the
// latest search stay available until the next one starts. A Searcher must
// not run two searches at once.
type Searcher struct {
	Config

	stats counters
	trace *Trace
}

// New creates a Searcher. It panics if conf is not valid.
func New(conf Config) *Searcher {
	if !conf.IsValid() {
		panic("minimax Config is not valid. Unable to proceed")
	}
	return &Searcher{Config: conf}
}

// Stats returns counters for the latest search.
func (s *Searcher) Stats() Stats { return s.stats.snapshot() }

// Trace returns the tree explored by the latest search, or nil when tracing is off.
func (s *Searcher) Trace() *Trace { return s.trace }

// searchState is the per-goroutine view of one search.
type searchState struct {
	ctx      context.Context
	root     game.Player
	parallel int // only the root state fans out; branches search sequentially
	verbose  bool

	stats *counters
	trace *Trace
}

// outcome is the value of one node. ok is false when the node chose no move.
type outcome struct {
	score float64
	t     game.Transition
	ok    bool
}

// Search picks a move for player on b.
func (s *Searcher) Search(ctx context.Context, b *game.Board, player game.Player) (Result, error) {
	s.stats.reset()
	s.trace = nil
	if s.Config.Trace {
		s.trace = newTrace()
	}
	ss := &searchState{
		ctx:      ctx,
		root:     player,
		parallel: s.Parallel,
		verbose:  s.Verbose,
		stats:    &s.stats,
		trace:    s.trace,
	}

	rootID := s.trace.alloc(nilNode, "", player, s.Depth)
	o, err := ss.minimax(b, player, s.Depth, true, rootID)
	if err != nil {
		return Result{}, err
	}
	if !o.ok && math.IsInf(o.score, -1) {
		// The opponent wins next ply whatever happens. Still hand back
		// something playable, preferring a move that stops the win.
		if t, ok := game.FindBlockingMove(b, player); ok {
			o.t, o.ok = t, true
		} else if moves := game.PossibleMoves(b, player); len(moves) > 0 {
			o.t, o.ok = moves[0], true
		}
	}

	retVal := Result{Score: o.score}
	if o.ok {
		mv := o.t.Move
		retVal.Move = &mv
		retVal.Board = o.t.Board
	}
	if s.Verbose {
		st := s.stats.snapshot()
		ev := log.Debug().
			Str("player", player.String()).
			Int("depth", s.Depth).
			Int64("nodes", st.Nodes).
			Int64("leaves", st.Leaves).
			Float64("score", retVal.Score)
		if retVal.Move != nil {
			ev = ev.Str("move", retVal.Move.String())
		}
		ev.Msg("search finished")
	}
	return retVal, nil
}

func terminalScore(maximizing bool) float64 {
	if maximizing {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

// better reports whether a beats b for the side choosing. Ties go to b so the
// earliest move in generation order is kept.
func better(a, b float64, maximizing bool) bool {
	if maximizing {
		return a > b
	}
	return a < b
}

func (s *searchState) minimax(b *game.Board, toMove game.Player, depth int, maximizing bool, id naughty) (outcome, error) {
	if err := s.ctx.Err(); err != nil {
		return outcome{}, err
	}
	s.stats.nodes.Add(1)

	if win, ok := game.ImmediateWin(b, toMove); ok {
		score := terminalScore(maximizing)
		s.stats.terminal.Add(1)
		s.trace.finish(id, score, Win)
		return outcome{score: score, t: win, ok: true}, nil
	}
	if game.HasWinningMove(b, toMove.Opponent()) {
		score := terminalScore(!maximizing)
		s.stats.terminal.Add(1)
		s.trace.finish(id, score, Loss)
		return outcome{score: score}, nil
	}

	var moves []game.Transition
	if depth > 0 {
		moves = game.PossibleMoves(b, toMove)
	}
	if len(moves) == 0 {
		score := eval.Evaluate(b, s.root)
		s.stats.leaves.Add(1)
		s.trace.finish(id, score, Leaf)
		return outcome{score: score}, nil
	}

	var scores []float64
	var err error
	if s.parallel > 1 {
		scores, err = s.expandParallel(moves, toMove.Opponent(), depth-1, !maximizing, id)
	} else {
		scores, err = s.expand(moves, toMove.Opponent(), depth-1, !maximizing, id)
	}
	if err != nil {
		return outcome{}, err
	}

	best := outcome{score: scores[0], t: moves[0], ok: true}
	for i := 1; i < len(moves); i++ {
		if better(scores[i], best.score, maximizing) {
			best = outcome{score: scores[i], t: moves[i], ok: true}
		}
	}
	s.trace.finish(id, best.score, Expanded)
	return best, nil
}

func (s *searchState) expand(moves []game.Transition, next game.Player, depth int, maximizing bool, id naughty) ([]float64, error) {
	scores := make([]float64, len(moves))
	for i, t := range moves {
		kid := s.trace.alloc(id, t.Move.String(), next, depth)
		o, err := s.minimax(t.Board, next, depth, maximizing, kid)
		if err != nil {
			return nil, err
		}
		scores[i] = o.score
	}
	return scores, nil
}

// expandParallel scores the moves on up to s.parallel goroutines. Every move
// owns its board, so branches share nothing but the counters and the trace.
// The caller merges scores in generation order, which keeps the result
// identical to a sequential search.
func (s *searchState) expandParallel(moves []game.Transition, next game.Player, depth int, maximizing bool, id naughty) ([]float64, error) {
	scores := make([]float64, len(moves))
	kids := make([]naughty, len(moves))
	for i, t := range moves {
		kids[i] = s.trace.alloc(id, t.Move.String(), next, depth)
	}

	g, ctx := errgroup.WithContext(s.ctx)
	g.SetLimit(s.parallel)
	for i := range moves {
		i := i // per-iteration copy (go1.21 loop semantics)
		g.Go(func() error {
			branch := &searchState{
				ctx:     ctx,
				root:    s.root,
				verbose: s.verbose,
				stats:   s.stats,
				trace:   s.trace,
			}
			o, err := branch.minimax(moves[i].Board, next, depth, maximizing, kids[i])
			if err != nil {
				return err
			}
			scores[i] = o.score
			if !s.verbose {
				return nil
			}
			log.Debug().
				Str("move", moves[i].Move.String()).
				Float64("score", o.score).
				Msg("root move scored")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

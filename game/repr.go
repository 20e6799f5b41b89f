package game

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var (
	ErrRowCount = errors.New("wrong number of rows")
	ErrColCount = errors.New("wrong number of columns")
)

// ParseError describes a single bad token in a textual board.
type ParseError struct {
	Row, Col int
	Token    string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s in token %q at %d,%d", e.Reason, e.Token, e.Row, e.Col)
}

// String prints one line per row, tokens joined by single spaces, with a
// trailing newline. Tackle memory is not printed, so Parse(b.String()) gives
// a board that is SamePosition with b but only Eq when b has no tackle memory.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols*3 + 1))
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.cells[r*b.cols+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads a canonical-size board printed by String. The result never
// carries tackle memory.
func Parse(s string) (*Board, error) { return ParseSize(s, RowNum, ColNum) }

// MustParse is Parse for fixtures. It panics on malformed input.
func MustParse(s string) *Board {
	b, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return b
}

// ParseSize reads a rows x cols board. Blank lines and surrounding whitespace
// are ignored. Every malformed token is reported, not just the first one.
func ParseSize(s string, rows, cols int) (*Board, error) {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) != rows {
		return nil, errors.Wrapf(ErrRowCount, "expected %d rows, got %d", rows, len(lines))
	}

	b := NewBoardSize(rows, cols)
	var errs error
	for r, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) != cols {
			errs = multierror.Append(errs, errors.Wrapf(ErrColCount, "expected %d cols at row %d, got %d", cols, r, len(tokens)))
			continue
		}
		for c, tok := range tokens {
			if tok == "--" {
				continue
			}
			p, err := parseToken(tok, r, c)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			b.Place(Coord{r, c}, p)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return b, nil
}

func parseToken(tok string, r, c int) (Piece, error) {
	if len(tok) != 2 {
		return Piece{}, &ParseError{Row: r, Col: c, Token: tok, Reason: "invalid token length"}
	}
	owner, ok := PlayerFromLetter(tok[0])
	if !ok {
		return Piece{}, &ParseError{Row: r, Col: c, Token: tok, Reason: fmt.Sprintf("unknown player %q", tok[0])}
	}
	kind, ok := kindFromLetter(tok[1])
	if !ok {
		return Piece{}, &ParseError{Row: r, Col: c, Token: tok, Reason: fmt.Sprintf("unknown piece %q", tok[1])}
	}
	return Piece{Kind: kind, Owner: owner}, nil
}

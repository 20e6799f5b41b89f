package minimax

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/awalterschulze/gographviz"
	"github.com/chessball/game"
	"github.com/pkg/errors"
)

// NodeKind tells how a traced position was scored.
type NodeKind uint8

const (
	Expanded NodeKind = iota
	Win               // the side to move wins at once
	Loss              // the other side already has a winning reply
	Leaf              // scored by the static evaluator
)

func (k NodeKind) String() string {
	switch k {
	case Expanded:
		return "expanded"
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Leaf:
		return "leaf"
	}
	return "UNKNOWN NODE KIND"
}

// TraceNode is one position visited by the search.
type TraceNode struct {
	Move   string      // move that led here, empty for the root
	Player game.Player // side to move
	Depth  int         // remaining depth
	Score  float64
	Kind   NodeKind

	id, parent naughty
}

func (n TraceNode) ID() int { return int(n.id) }

// Parent returns the parent's ID, or -1 for the root.
func (n TraceNode) Parent() int { return int(n.parent) }

func (n TraceNode) label() string {
	move := n.Move
	if move == "" {
		move = "root"
	}
	return fmt.Sprintf("%s\n%v to move, depth %d\n%v %v", move, n.Player, n.Depth, n.Kind, n.Score)
}

// Trace records the tree explored by one search. Nodes live in a flat arena
// and refer to each other by index.
type Trace struct {
	sync.Mutex
	nodes    []TraceNode
	children [][]naughty
}

func newTrace() *Trace {
	return &Trace{
		nodes:    make([]TraceNode, 0, 1024),
		children: make([][]naughty, 0, 1024),
	}
}

// alloc adds a node under parent. A nil Trace records nothing.
func (t *Trace) alloc(parent naughty, move string, player game.Player, depth int) naughty {
	if t == nil {
		return nilNode
	}
	t.Lock()
	defer t.Unlock()
	n := naughty(len(t.nodes))
	t.nodes = append(t.nodes, TraceNode{
		Move:   move,
		Player: player,
		Depth:  depth,
		id:     n,
		parent: parent,
	})
	t.children = append(t.children, nil)
	if parent.isValid() {
		t.children[parent] = append(t.children[parent], n)
	}
	return n
}

func (t *Trace) finish(n naughty, score float64, kind NodeKind) {
	if t == nil || !n.isValid() {
		return
	}
	t.Lock()
	t.nodes[n].Score = score
	t.nodes[n].Kind = kind
	t.Unlock()
}

// Len returns the number of recorded nodes. The root, if any, has ID 0.
func (t *Trace) Len() int {
	t.Lock()
	defer t.Unlock()
	return len(t.nodes)
}

// Node returns a copy of the node with the given ID.
func (t *Trace) Node(id int) TraceNode {
	t.Lock()
	defer t.Unlock()
	return t.nodes[id]
}

// Children returns the IDs of the node's children in generation order.
func (t *Trace) Children(id int) []int {
	t.Lock()
	defer t.Unlock()
	retVal := make([]int, len(t.children[id]))
	for i, kid := range t.children[id] {
		retVal[i] = int(kid)
	}
	return retVal
}

const graphName = "search"

func nodeName(n naughty) string { return "n" + strconv.Itoa(int(n)) }

// Graph converts the trace to a directed graphviz graph. Edges are labelled
// with moves.
func (t *Trace) Graph() (*gographviz.Graph, error) {
	t.Lock()
	defer t.Unlock()

	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return nil, errors.WithStack(err)
	}
	for _, n := range t.nodes {
		attrs := map[string]string{
			"label": strconv.Quote(n.label()),
			"shape": "box",
		}
		if err := g.AddNode(graphName, nodeName(n.id), attrs); err != nil {
			return nil, errors.Wrapf(err, "adding node %d", n.id)
		}
	}
	for parent, kids := range t.children {
		for _, kid := range kids {
			attrs := map[string]string{"label": strconv.Quote(t.nodes[kid].Move)}
			if err := g.AddEdge(nodeName(naughty(parent)), nodeName(kid), true, attrs); err != nil {
				return nil, errors.Wrapf(err, "adding edge %d->%d", parent, kid)
			}
		}
	}
	return g, nil
}

// DOT renders the trace in the graphviz dot language.
func (t *Trace) DOT() (string, error) {
	g, err := t.Graph()
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

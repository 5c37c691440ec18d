package domain

// Node is one entry of a diagram's node table. It is either a Decision or a
// Terminal.
type Node interface {
	isNode()
}

// Decision tests variable Var and continues at High when it is true and at
// Low when it is false. Both targets are node ids within the same diagram.
type Decision struct {
	Var  int
	High int
	Low  int
}

// Terminal ends a traversal with a fixed result.
type Terminal struct {
	Value bool
}

func (Decision) isNode() {}
func (Terminal) isNode() {}

// Bdd is a parsed binary decision diagram. Nodes are addressed by their index
// and node 0 is the root. A Bdd is never modified after construction.
type Bdd struct {
	numVars int
	nodes   []Node
}

// New builds a diagram from an already decoded node table and checks the same
// structural rules as Parse. The slice is copied.
func New(numVars int, nodes []Node) (*Bdd, error) {
	if numVars < 0 {
		return nil, &ParseError{Err: ErrMalformedHeader, Detail: "negative variable count"}
	}

	terminals := 0
	for id, n := range nodes {
		switch n := n.(type) {
		case Terminal:
			terminals++
		case Decision:
			if err := checkDecision(n, numVars, len(nodes)); err != nil {
				err.Detail = nodeDetail(id, err.Detail)
				return nil, err
			}
		default:
			return nil, &ParseError{Err: ErrMalformedNode, Detail: nodeDetail(id, "unknown node type")}
		}
	}
	if terminals == 0 {
		return nil, &ParseError{Err: ErrNoTerminal, Detail: "diagram has no terminal node"}
	}

	return &Bdd{numVars: numVars, nodes: append([]Node(nil), nodes...)}, nil
}

// NumVars returns the declared variable count.
func (b *Bdd) NumVars() int {
	return b.numVars
}

// Len returns the number of nodes.
func (b *Bdd) Len() int {
	return len(b.nodes)
}

// Node returns the node with the given id.
func (b *Bdd) Node(id int) (Node, bool) {
	if id < 0 || id >= len(b.nodes) {
		return nil, false
	}
	return b.nodes[id], true
}

// Nodes returns a copy of the node table in id order.
func (b *Bdd) Nodes() []Node {
	return append([]Node(nil), b.nodes...)
}

// Terminals returns how many terminal nodes of each value the table holds.
func (b *Bdd) Terminals() (falses, trues int) {
	for _, n := range b.nodes {
		if t, ok := n.(Terminal); ok {
			if t.Value {
				trues++
			} else {
				falses++
			}
		}
	}
	return falses, trues
}

func checkDecision(d Decision, numVars, numNodes int) *ParseError {
	if d.High < 0 || d.High >= numNodes || d.Low < 0 || d.Low >= numNodes {
		return &ParseError{
			Err:    ErrInvalidBranch,
			Detail: branchDetail(d.High, d.Low, numNodes),
		}
	}
	if d.Var < 0 || d.Var >= numVars {
		return &ParseError{
			Err:    ErrInvalidSelector,
			Detail: selectorDetail(d.Var, numVars),
		}
	}
	return nil
}

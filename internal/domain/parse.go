package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	varsKeyword  = "vars"
	nodesKeyword = "nodes"

	// sentinel marks both branches of a terminal node
	sentinel = -1
)

type line struct {
	num    int
	fields []string
}

// Parse reads a textual definition:
//
//	vars <num_vars>
//	nodes <num_nodes>
//	<id> <branch_if_true> <branch_if_false> <selector>
//
// Blank lines are ignored. The whole definition is rejected on the first
// structural problem.
func Parse(text string) (*Bdd, error) {
	lines := splitLines(text)

	if len(lines) == 0 {
		return nil, &ParseError{Err: ErrMalformedHeader, Detail: "missing vars line"}
	}
	numVars, err := parseHeader(lines[0], varsKeyword)
	if err != nil {
		return nil, err
	}

	if len(lines) == 1 {
		return nil, &ParseError{Err: ErrMalformedHeader, Detail: "missing nodes line"}
	}
	numNodes, err := parseHeader(lines[1], nodesKeyword)
	if err != nil {
		return nil, err
	}

	body := lines[2:]
	if len(body) != numNodes {
		pe := &ParseError{
			Err:    ErrNodeCount,
			Detail: fmt.Sprintf("declared %d nodes, found %d", numNodes, len(body)),
		}
		if len(body) > numNodes {
			pe.Line = body[numNodes].num
		}
		return nil, pe
	}

	nodes := make([]Node, numNodes)
	terminals := 0
	for _, l := range body {
		id, node, err := parseNode(l, numVars, numNodes)
		if err != nil {
			return nil, err
		}
		if nodes[id] != nil {
			return nil, &ParseError{Line: l.num, Err: ErrNodeID, Detail: fmt.Sprintf("node %d defined twice", id)}
		}
		if _, ok := node.(Terminal); ok {
			terminals++
		}
		nodes[id] = node
	}

	for id, n := range nodes {
		if n == nil {
			return nil, &ParseError{Err: ErrNodeID, Detail: fmt.Sprintf("node %d is missing", id)}
		}
	}
	if terminals == 0 {
		return nil, &ParseError{Err: ErrNoTerminal, Detail: "diagram has no terminal node"}
	}

	return &Bdd{numVars: numVars, nodes: nodes}, nil
}

func splitLines(text string) []line {
	var lines []line
	for i, raw := range strings.Split(text, "\n") {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, line{num: i + 1, fields: fields})
	}
	return lines
}

func parseHeader(l line, keyword string) (int, error) {
	if len(l.fields) != 2 || l.fields[0] != keyword {
		return 0, &ParseError{
			Line:   l.num,
			Err:    ErrMalformedHeader,
			Detail: fmt.Sprintf("expected %q, got %q", keyword+" <count>", strings.Join(l.fields, " ")),
		}
	}
	n, err := strconv.Atoi(l.fields[1])
	if err != nil || n < 0 {
		return 0, &ParseError{
			Line:   l.num,
			Err:    ErrMalformedHeader,
			Detail: fmt.Sprintf("%s count %q is not a non-negative integer", keyword, l.fields[1]),
		}
	}
	return n, nil
}

func parseNode(l line, numVars, numNodes int) (int, Node, error) {
	if len(l.fields) != 4 {
		return 0, nil, &ParseError{
			Line:   l.num,
			Err:    ErrMalformedNode,
			Detail: fmt.Sprintf("expected 4 fields, got %d", len(l.fields)),
		}
	}

	var v [4]int
	for i, f := range l.fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, nil, &ParseError{
				Line:   l.num,
				Err:    ErrMalformedNode,
				Detail: fmt.Sprintf("field %d (%q) is not an integer", i+1, f),
			}
		}
		v[i] = n
	}
	id, high, low, selector := v[0], v[1], v[2], v[3]

	if id < 0 || id >= numNodes {
		return 0, nil, &ParseError{
			Line:   l.num,
			Err:    ErrNodeID,
			Detail: fmt.Sprintf("id %d outside [0, %d)", id, numNodes),
		}
	}

	if high == sentinel && low == sentinel {
		if selector != 0 && selector != 1 {
			return 0, nil, &ParseError{
				Line:   l.num,
				Err:    ErrInvalidSelector,
				Detail: fmt.Sprintf("terminal node %d has value %d, want 0 or 1", id, selector),
			}
		}
		return id, Terminal{Value: selector == 1}, nil
	}

	d := Decision{Var: selector, High: high, Low: low}
	if pe := checkDecision(d, numVars, numNodes); pe != nil {
		pe.Line = l.num
		pe.Detail = nodeDetail(id, pe.Detail)
		return 0, nil, pe
	}
	return id, d, nil
}

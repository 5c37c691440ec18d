package domain

import (
	"fmt"
	"strings"
)

// String writes the diagram back in the definition format, node lines in id
// order.
func (b *Bdd) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d\n", varsKeyword, b.numVars)
	fmt.Fprintf(&sb, "%s %d\n", nodesKeyword, len(b.nodes))
	for id, n := range b.nodes {
		switch n := n.(type) {
		case Terminal:
			value := 0
			if n.Value {
				value = 1
			}
			fmt.Fprintf(&sb, "%d %d %d %d\n", id, sentinel, sentinel, value)
		case Decision:
			fmt.Fprintf(&sb, "%d %d %d %d\n", id, n.High, n.Low, n.Var)
		}
	}
	return sb.String()
}

// Canonical parses a definition and formats it again, dropping blank lines,
// extra spacing and node-line order.
func Canonical(text string) (string, error) {
	b, err := Parse(text)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

package domain

import (
	"slices"
	"strings"
	"time"
)

// DefinitionExt is the file extension of stored diagram definitions
const DefinitionExt = ".bdd"

// DiagramInfo describes a stored definition
type DiagramInfo struct {
	Name    string // file name without extension, e.g. "not-gate"
	Path    string // full path to the definition file
	Size    int64
	ModTime time.Time
}

// DiagramName strips the definition extension from a file name
func DiagramName(fileName string) string {
	return strings.TrimSuffix(fileName, DefinitionExt)
}

// FileName appends the definition extension unless it is already present
func FileName(name string) string {
	if strings.HasSuffix(name, DefinitionExt) {
		return name
	}
	return name + DefinitionExt
}

// SortDiagrams sorts diagrams by name in ascending order
func SortDiagrams(diagrams []DiagramInfo) {
	slices.SortFunc(diagrams, func(a, b DiagramInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
}

package domain

import "testing"

func TestFileNameAndDiagramName(t *testing.T) {
	tests := []struct {
		name     string
		wantFile string
	}{
		{"not-gate", "not-gate.bdd"},
		{"not-gate.bdd", "not-gate.bdd"},
		{"adder.v2", "adder.v2.bdd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := FileName(tt.name)
			if file != tt.wantFile {
				t.Errorf("expected %s, got %s", tt.wantFile, file)
			}
			if got := FileName(DiagramName(file)); got != file {
				t.Errorf("round trip: expected %s, got %s", file, got)
			}
		})
	}
}

func TestSortDiagrams(t *testing.T) {
	diagrams := []DiagramInfo{
		{Name: "xor"},
		{Name: "and"},
		{Name: "not"},
	}

	SortDiagrams(diagrams)

	if diagrams[0].Name != "and" {
		t.Errorf("expected first diagram to be and, got %s", diagrams[0].Name)
	}
	if diagrams[1].Name != "not" {
		t.Errorf("expected second diagram to be not, got %s", diagrams[1].Name)
	}
	if diagrams[2].Name != "xor" {
		t.Errorf("expected third diagram to be xor, got %s", diagrams[2].Name)
	}
}

package domain

import "fmt"

// MaxTableVars is the largest variable count for which a full truth table is
// produced (2^24 rows).
const MaxTableVars = 24

// Row is one truth table entry. Bit v of Index is the value of variable v.
type Row struct {
	Index  int
	Result bool
}

// String renders the row as "<hex index> = <result>".
func (r Row) String() string {
	return fmt.Sprintf("%x = %t", r.Index, r.Result)
}

// Assignment expands the row index into one value per variable.
func (r Row) Assignment(numVars int) []bool {
	return BitsOf(r.Index, numVars)
}

// BitsOf returns the assignment whose variable v is bit v of i.
func BitsOf(i, numVars int) []bool {
	bits := make([]bool, numVars)
	for v := range bits {
		bits[v] = i>>v&1 == 1
	}
	return bits
}

// TableSize returns the number of rows in the truth table, or an
// ErrTableTooLarge error when the diagram declares more than limit variables.
// limit is clamped to MaxTableVars.
func (b *Bdd) TableSize(limit int) (int, error) {
	if limit <= 0 || limit > MaxTableVars {
		limit = MaxTableVars
	}
	if b.numVars > limit {
		return 0, &EvalError{
			Err:    ErrTableTooLarge,
			Detail: fmt.Sprintf("%d variables exceeds the limit of %d", b.numVars, limit),
		}
	}
	return 1 << b.numVars, nil
}

// TruthTable evaluates every assignment in ascending index order.
func (b *Bdd) TruthTable() ([]Row, error) {
	size, err := b.TableSize(MaxTableVars)
	if err != nil {
		return nil, err
	}
	return b.TruthTableRange(0, size)
}

// TruthTableRange evaluates the assignments with indices in [from, to).
// Evaluation failures are returned, never skipped.
func (b *Bdd) TruthTableRange(from, to int) ([]Row, error) {
	rows := make([]Row, 0, max(to-from, 0))
	assignment := make([]bool, b.numVars)
	for i := from; i < to; i++ {
		for v := range assignment {
			assignment[v] = i>>v&1 == 1
		}
		result, err := b.Evaluate(assignment)
		if err != nil {
			return nil, fmt.Errorf("row %x: %w", i, err)
		}
		rows = append(rows, Row{Index: i, Result: result})
	}
	return rows, nil
}

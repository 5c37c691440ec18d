package commands

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"flow/internal/domain"
	"flow/internal/logging"
	"flow/internal/ports"
)

// Tables smaller than this are enumerated on the calling goroutine
const minParallelRows = 1 << 10

// TruthTableResult contains a full truth table
type TruthTableResult struct {
	Rows      []domain.Row
	TrueCount int
	Cached    bool
}

// TruthTableCommand enumerates every assignment of a diagram
type TruthTableCommand struct {
	diagram *domain.Bdd
	cache   ports.TableCache // optional
	logger  hclog.Logger
	MaxVars int
	Workers int
}

// NewTruthTableCommand creates a new TruthTableCommand. cache and logger may be nil.
func NewTruthTableCommand(diagram *domain.Bdd, cache ports.TableCache, logger hclog.Logger, maxVars, workers int) *TruthTableCommand {
	return &TruthTableCommand{
		diagram: diagram,
		cache:   cache,
		logger:  logging.OrNull(logger),
		MaxVars: maxVars,
		Workers: workers,
	}
}

// Execute runs the truth table command
func (c *TruthTableCommand) Execute(ctx context.Context) (*TruthTableResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	size, err := c.diagram.TableSize(c.MaxVars)
	if err != nil {
		return nil, err
	}

	key := c.diagram.TableKey()
	if rows := c.lookup(key, size); rows != nil {
		return newTruthTableResult(rows, true), nil
	}

	var rows []domain.Row
	if c.Workers > 1 && size >= minParallelRows {
		rows, err = c.parallel(ctx, size)
	} else {
		rows, err = c.diagram.TruthTable()
	}
	if err != nil {
		return nil, err
	}

	c.store(key, rows)
	return newTruthTableResult(rows, false), nil
}

// parallel splits [0, size) into contiguous chunks; each worker writes only
// its own window of rows, so the result comes out in index order.
func (c *TruthTableCommand) parallel(ctx context.Context, size int) ([]domain.Row, error) {
	rows := make([]domain.Row, size)
	chunk := max(size/(c.Workers*4), 1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Workers)
	c.logger.Debug("enumerating in parallel", "rows", size, "workers", c.Workers, "chunk", chunk)

	for from := 0; from < size; from += chunk {
		to := min(from+chunk, size)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			part, err := c.diagram.TruthTableRange(from, to)
			if err != nil {
				return err
			}
			copy(rows[from:to], part)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *TruthTableCommand) lookup(key string, size int) []domain.Row {
	if c.cache == nil {
		return nil
	}
	table, err := c.cache.Get(key)
	if err != nil {
		c.logger.Warn("cache lookup failed", "error", err)
		return nil
	}
	if table == nil || table.NumVars != c.diagram.NumVars() || len(table.Rows) != size {
		c.logger.Debug("cache miss", "key", key[:12])
		return nil
	}
	c.logger.Debug("cache hit", "key", key[:12], "rows", size)
	return table.Rows
}

func (c *TruthTableCommand) store(key string, rows []domain.Row) {
	if c.cache == nil {
		return
	}
	err := c.cache.Put(&domain.CachedTable{
		Key:     key,
		NumVars: c.diagram.NumVars(),
		Rows:    rows,
	})
	if err != nil {
		c.logger.Warn("cache store failed", "error", err)
	}
}

func newTruthTableResult(rows []domain.Row, cached bool) *TruthTableResult {
	trues := lo.Filter(rows, func(r domain.Row, _ int) bool { return r.Result })
	return &TruthTableResult{
		Rows:      rows,
		TrueCount: len(trues),
		Cached:    cached,
	}
}

// FormatRows renders rows one per line in "<hex index> = <value>" form
func FormatRows(rows []domain.Row) []string {
	return lo.Map(rows, func(r domain.Row, _ int) string { return r.String() })
}

// Summary describes a table in one line
func (r *TruthTableResult) Summary() string {
	s := fmt.Sprintf("%d rows, %d true", len(r.Rows), r.TrueCount)
	if r.Cached {
		s += " (cached)"
	}
	return s
}

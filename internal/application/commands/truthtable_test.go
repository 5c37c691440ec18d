package commands

import (
	"context"
	"errors"
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"

	"flow/internal/domain"
)

func TestTruthTableCommand_Sequential(t *testing.T) {
	res, err := NewTruthTableCommand(mustParse(t, andGate), nil, nil, 20, 1).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []domain.Row{{Index: 0, Result: false}, {Index: 1, Result: false}, {Index: 2, Result: false}, {Index: 3, Result: true}}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if res.TrueCount != 1 || res.Cached {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestTruthTableCommand_ParallelMatchesSequential(t *testing.T) {
	b := parity(t, 12)

	res, err := NewTruthTableCommand(b, nil, nil, 20, 4).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want, err := b.TruthTable()
	if err != nil {
		t.Fatalf("TruthTable failed: %v", err)
	}
	if diff := cmp.Diff(want, res.Rows); diff != "" {
		t.Fatalf("parallel rows differ (-want +got):\n%s", diff)
	}

	for i, row := range res.Rows {
		if row.Index != i {
			t.Fatalf("row %d has index %d", i, row.Index)
		}
		if row.Result != (bits.OnesCount(uint(i))%2 == 1) {
			t.Fatalf("row %x: wrong parity", i)
		}
	}
	if res.TrueCount != 1<<11 {
		t.Errorf("expected %d true rows, got %d", 1<<11, res.TrueCount)
	}
}

func TestTruthTableCommand_Limit(t *testing.T) {
	b := parity(t, 6)

	_, err := NewTruthTableCommand(b, nil, nil, 5, 1).Execute(context.Background())
	if !errors.Is(err, domain.ErrTableTooLarge) {
		t.Errorf("expected ErrTableTooLarge, got %v", err)
	}
}

func TestTruthTableCommand_Cache(t *testing.T) {
	cache := newMemCache()
	b := mustParse(t, andGate)
	ctx := context.Background()

	first, err := NewTruthTableCommand(b, cache, nil, 20, 1).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if first.Cached || cache.puts != 1 {
		t.Fatalf("expected a miss followed by a store, got cached=%t puts=%d", first.Cached, cache.puts)
	}

	// same function, different formatting
	again := mustParse(t, "vars 2\nnodes 4\n3 -1 -1 0\n2 -1 -1 1\n1 2 3 1\n0 1 3 0\n")
	second, err := NewTruthTableCommand(again, cache, nil, 20, 1).Execute(ctx)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !second.Cached {
		t.Error("expected a cache hit")
	}
	if diff := cmp.Diff(first.Rows, second.Rows); diff != "" {
		t.Errorf("cached rows differ (-want +got):\n%s", diff)
	}
	if cache.puts != 1 {
		t.Errorf("expected no second store, got %d", cache.puts)
	}
}

func TestTruthTableCommand_CacheFailureIsNotFatal(t *testing.T) {
	cache := newMemCache()
	cache.failPut = true

	res, err := NewTruthTableCommand(mustParse(t, notGate), cache, nil, 20, 1).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(res.Rows))
	}
}

func TestTruthTableCommand_ErrorsSurface(t *testing.T) {
	for _, workers := range []int{1, 4} {
		_, err := NewTruthTableCommand(mustParse(t, selfLoop), nil, nil, 20, workers).Execute(context.Background())
		if !errors.Is(err, domain.ErrStepBound) {
			t.Errorf("workers=%d: expected ErrStepBound, got %v", workers, err)
		}
	}
}

func TestTruthTableCommand_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTruthTableCommand(parity(t, 12), nil, nil, 20, 4).Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFormatRows(t *testing.T) {
	got := FormatRows([]domain.Row{{Index: 0, Result: true}, {Index: 11, Result: false}})
	if diff := cmp.Diff([]string{"0 = true", "b = false"}, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

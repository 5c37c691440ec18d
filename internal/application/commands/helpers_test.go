package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"flow/internal/domain"
	"flow/internal/ports"
)

const (
	notGate = `vars 1
nodes 3
0 2 1 0
1 -1 -1 1
2 -1 -1 0`

	andGate = `vars 2
nodes 4
0 1 3 0
1 2 3 1
2 -1 -1 1
3 -1 -1 0`

	selfLoop = "vars 1\nnodes 2\n0 0 1 0\n1 -1 -1 1"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func mustParse(t *testing.T, text string) *domain.Bdd {
	t.Helper()
	b, err := domain.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return b
}

// parity builds the diagram of x0 xor ... xor x(n-1). Node 2v is "even so
// far" at level v, node 2v+1 is "odd so far".
func parity(t *testing.T, numVars int) *domain.Bdd {
	t.Helper()
	nodes := make([]domain.Node, 0, 2*numVars+2)
	for v := range numVars {
		even, odd := 2*(v+1), 2*(v+1)+1
		nodes = append(nodes,
			domain.Decision{Var: v, High: odd, Low: even},
			domain.Decision{Var: v, High: even, Low: odd},
		)
	}
	nodes = append(nodes, domain.Terminal{Value: false}, domain.Terminal{Value: true})

	b, err := domain.New(numVars, nodes)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b
}

// memRepo is an in-memory ports.DiagramRepository
type memRepo struct {
	files map[string]string
}

var _ ports.DiagramRepository = (*memRepo)(nil)

func newMemRepo(files map[string]string) *memRepo {
	if files == nil {
		files = map[string]string{}
	}
	return &memRepo{files: files}
}

func (r *memRepo) List() ([]domain.DiagramInfo, error) {
	var out []domain.DiagramInfo
	for name, text := range r.files {
		out = append(out, domain.DiagramInfo{Name: name, Path: "/mem/" + domain.FileName(name), Size: int64(len(text))})
	}
	domain.SortDiagrams(out)
	return out, nil
}

func (r *memRepo) Load(name string) (string, error) {
	text, ok := r.files[name]
	if !ok {
		return "", fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}
	return text, nil
}

func (r *memRepo) Save(name, definition string) (string, error) {
	r.files[name] = definition
	return "/mem/" + domain.FileName(name), nil
}

func (r *memRepo) Delete(name string) error {
	if _, ok := r.files[name]; !ok {
		return fmt.Errorf("remove %s: %w", name, fs.ErrNotExist)
	}
	delete(r.files, name)
	return nil
}

func (r *memRepo) Path(name string) (string, error) {
	if _, ok := r.files[name]; !ok {
		return "", fs.ErrNotExist
	}
	return "/mem/" + domain.FileName(name), nil
}

// memCache is an in-memory ports.TableCache that counts its calls
type memCache struct {
	tables      map[string]*domain.CachedTable
	gets, puts  int
	invalidated []string
	failPut     bool
}

var _ ports.TableCache = (*memCache)(nil)

func newMemCache() *memCache {
	return &memCache{tables: map[string]*domain.CachedTable{}}
}

func (c *memCache) Open(string) error { return nil }
func (c *memCache) Close() error      { return nil }

func (c *memCache) Get(key string) (*domain.CachedTable, error) {
	c.gets++
	return c.tables[key], nil
}

func (c *memCache) Put(table *domain.CachedTable) error {
	c.puts++
	if c.failPut {
		return errors.New("disk full")
	}
	c.tables[table.Key] = table
	return nil
}

func (c *memCache) Invalidate(key string) error {
	c.invalidated = append(c.invalidated, key)
	delete(c.tables, key)
	return nil
}

func (c *memCache) Clear() error {
	clear(c.tables)
	return nil
}

func (c *memCache) Stats() (*domain.CacheStats, error) {
	return &domain.CacheStats{Tables: len(c.tables)}, nil
}

func (c *memCache) BeginTx() (ports.CacheTx, error) {
	return nil, errors.New("not supported")
}

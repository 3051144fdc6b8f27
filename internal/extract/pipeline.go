package extract

import (
	"context"
	"sync"
)

// Stats summarizes one pipeline run.
type Stats struct {
	// Blocks is the number of text blocks scanned.
	Blocks int

	// Candidates is the number of dotted-quad matches, duplicates included.
	Candidates int

	// Accepted is the number of candidates that passed validation,
	// duplicates included.
	Accepted int

	// Rejected counts rejected candidates by verdict.
	Rejected map[Verdict]int
}

func (s *Stats) merge(o Stats) {
	s.Blocks += o.Blocks
	s.Candidates += o.Candidates
	s.Accepted += o.Accepted
	for v, n := range o.Rejected {
		if s.Rejected == nil {
			s.Rejected = make(map[Verdict]int)
		}
		s.Rejected[v] += n
	}
}

// Pipeline scans text blocks and produces the ordered set of public
// addresses they contain.
type Pipeline struct {
	workers int
}

// NewPipeline creates a Pipeline. With workers <= 1 blocks are scanned
// sequentially; otherwise up to workers blocks are scanned at once.
func NewPipeline(workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{workers: workers}
}

// Run scans every block and returns the unique accepted addresses in
// canonical order. Sorting happens only after every block is scanned.
// If ctx is canceled, Run stops dispatching blocks and returns ctx.Err().
func (p *Pipeline) Run(ctx context.Context, blocks []string) ([]string, Stats, error) {
	col := NewCollector()

	var stats Stats
	var err error
	if p.workers == 1 || len(blocks) < 2 {
		stats, err = p.runSequential(ctx, blocks, col)
	} else {
		stats, err = p.runParallel(ctx, blocks, col)
	}
	if err != nil {
		return nil, stats, err
	}

	return Sort(col.All()), stats, nil
}

func (p *Pipeline) runSequential(ctx context.Context, blocks []string, col *Collector) (Stats, error) {
	var stats Stats
	for _, b := range blocks {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.merge(scanBlock(b, col))
	}
	return stats, nil
}

func (p *Pipeline) runParallel(ctx context.Context, blocks []string, col *Collector) (Stats, error) {
	var (
		mu    sync.Mutex
		stats Stats
		wg    sync.WaitGroup
	)

	work := make(chan string)
	workers := min(p.workers, len(blocks))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local Stats
			for b := range work {
				local.merge(scanBlock(b, col))
			}
			mu.Lock()
			stats.merge(local)
			mu.Unlock()
		}()
	}

	var err error
dispatch:
	for _, b := range blocks {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case work <- b:
		}
	}
	close(work)
	wg.Wait()

	return stats, err
}

// scanBlock matches, validates and collects the addresses of one block.
func scanBlock(text string, col *Collector) Stats {
	stats := Stats{Blocks: 1}
	for _, c := range FindCandidates(text) {
		stats.Candidates++
		v := Classify(c)
		if v != VerdictAccepted {
			if stats.Rejected == nil {
				stats.Rejected = make(map[Verdict]int)
			}
			stats.Rejected[v]++
			continue
		}
		stats.Accepted++
		col.Add(c)
	}
	return stats
}

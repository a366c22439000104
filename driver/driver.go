// Package driver wraps a parsed query as a restartable, bounded-chunk
// result stream (spec.md's C9): callers repeatedly ask for "a few
// more results" rather than pulling a potentially unbounded solution
// iterator to exhaustion in one go.
package driver

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fenwicklabs/lexigram/lang"
	"github.com/fenwicklabs/lexigram/puzzle"
)

// DefaultChunkSize matches spec.md §5's "pulling chunks (default 10
// results)".
const DefaultChunkSize = 10

// Driver owns one live query against a shared, immutable WordContext.
// It is safe for any number of goroutines to share the WordContext
// itself (see puzzle.WordContext); a single Driver's methods serialize
// on an internal mutex, so concurrent calls on one Driver run one at a
// time.
type Driver struct {
	ctx    *puzzle.WordContext
	logger *zap.Logger

	mu        sync.Mutex
	text      string
	question  *puzzle.Question
	iter      *puzzle.QuestionIterator
	results   []puzzle.QuestionSolution
	exhausted bool
	warning   string
}

// New builds a Driver over ctx. logger may be nil, in which case a
// no-op logger is used.
func New(ctx *puzzle.WordContext, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{ctx: ctx, logger: logger}
}

// ChangeText replaces the live query with text. On a parse or
// planning failure, the previous-good result set and warning are left
// untouched except for the warning message itself (spec.md §7's
// recovery policy: "the driver always leaves the previous-good result
// set in place when a new parse fails, so the UI stays responsive").
func (d *Driver) ChangeText(text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if text == d.text && d.question != nil {
		return nil
	}

	question, err := lang.Parse(text)
	if err != nil {
		d.warning = err.Error()
		d.logger.Debug("parse error", zap.String("text", text), zap.Error(err))
		return err
	}

	// Run the cost estimate and the first Solve call concurrently,
	// mirroring the teacher's ParseList/InflectList worker-pool idiom
	// (fan out with errgroup, recombine on Wait) rather than a bespoke
	// channel/WaitGroup pair. The estimate is informational only (it
	// never blocks the solve); a genuinely too-difficult equation
	// reports its own ErrTooDifficult from Solve itself.
	var estimate int
	var iter *puzzle.QuestionIterator
	g := new(errgroup.Group)
	g.Go(func() error {
		estimate = question.EstimateCost(d.ctx)
		return nil
	})
	g.Go(func() error {
		it, solveErr := question.Solve(d.ctx)
		iter = it
		return solveErr
	})
	if err := g.Wait(); err != nil {
		d.warning = err.Error()
		d.logger.Debug("question refused", zap.String("text", text), zap.Error(err))
		return err
	}

	d.logger.Debug("question accepted", zap.String("text", text), zap.Int("estimatedOptions", estimate))
	d.text = text
	d.question = question
	d.iter = iter
	d.results = nil
	d.exhausted = false
	d.warning = ""
	return nil
}

// LoadMore pulls up to n additional solutions (DefaultChunkSize if n
// <= 0), appends them to the accumulated result buffer, and reports
// whether the underlying iterator is now exhausted. It is always safe
// to call even with no live query (e.g. before the first successful
// ChangeText); it then just returns the empty buffer.
func (d *Driver) LoadMore(n int) ([]puzzle.QuestionSolution, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if n <= 0 {
		n = DefaultChunkSize
	}
	if d.iter == nil || d.exhausted {
		return d.results, d.exhausted
	}
	for i := 0; i < n; i++ {
		sol, ok := d.iter.Next()
		if !ok {
			d.exhausted = true
			break
		}
		d.results = append(d.results, sol)
	}
	return d.results, d.exhausted
}

// Results returns every solution accumulated so far.
func (d *Driver) Results() []puzzle.QuestionSolution {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.results
}

// Warning returns the most recent non-fatal warning (a parse error
// message or "too difficult"), or "" if the live query is healthy.
func (d *Driver) Warning() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.warning
}

// Exhausted reports whether the live query's iterator has been fully
// drained.
func (d *Driver) Exhausted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.exhausted
}

// Close drops the live iterator and marks the stream exhausted, so a
// later LoadMore returns the accumulated buffer with exhausted = true.
// Cancellation is by abandonment (per spec.md §5): there is no internal
// cleanup beyond releasing the iterator's backtracking stack to the
// garbage collector.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.iter = nil
	d.exhausted = true
}

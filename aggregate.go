package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrUnknownPart is returned when asked for a puzzle part other than 1 or 2.
var ErrUnknownPart = errors.New("unknown part")

// Evaluation is the outcome of searching one blueprint.
type Evaluation struct {
	ID      int
	Horizon int
	Geodes  int
	Cached  bool
	Elapsed time.Duration
}

// Quality is the blueprint's quality level: its ID times the geodes cracked.
func (e Evaluation) Quality() int {
	return e.ID * e.Geodes
}

// Report collects the evaluations of one run, in input order, and the
// reduced answer.
type Report struct {
	Part        int
	Horizon     int
	Evaluations []Evaluation
	Answer      int
	Elapsed     time.Duration
}

// Runner evaluates blueprint lists. Each blueprint gets its own search, so
// they run in parallel with no shared search state.
type Runner struct {
	cfg    Config
	store  *Store
	logger *slog.Logger
}

// NewRunner creates a runner. store may be nil.
func NewRunner(cfg Config, store *Store) *Runner {
	return &Runner{cfg: cfg, store: store, logger: logger}
}

func (r *Runner) workers() int {
	if r.cfg.Workers > 0 {
		return r.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Run dispatches to the reduction of the given part.
func (r *Runner) Run(ctx context.Context, part int, bps []Blueprint) (Report, error) {
	switch part {
	case 1:
		return r.QualitySum(ctx, bps)
	case 2:
		return r.TopProduct(ctx, bps)
	}
	return Report{}, fmt.Errorf("%w: %d", ErrUnknownPart, part)
}

// QualitySum searches every blueprint over the part 1 horizon and sums their
// quality levels.
func (r *Runner) QualitySum(ctx context.Context, bps []Blueprint) (Report, error) {
	start := time.Now()
	horizon := r.cfg.Part1Horizon
	evals, err := r.evaluateAll(ctx, bps, horizon)
	if err != nil {
		return Report{}, err
	}
	sum := 0
	for _, e := range evals {
		sum += e.Quality()
	}
	rep := Report{Part: 1, Horizon: horizon, Evaluations: evals, Answer: sum, Elapsed: time.Since(start)}
	r.logger.Info("quality sum", "blueprints", len(evals), "horizon", horizon, "answer", sum, "elapsed", rep.Elapsed)
	return rep, nil
}

// TopProduct searches the first Part2Take blueprints over the part 2 horizon
// and multiplies their geode counts. An empty list yields 1.
func (r *Runner) TopProduct(ctx context.Context, bps []Blueprint) (Report, error) {
	start := time.Now()
	horizon := r.cfg.Part2Horizon
	if len(bps) > r.cfg.Part2Take {
		bps = bps[:r.cfg.Part2Take]
	}
	evals, err := r.evaluateAll(ctx, bps, horizon)
	if err != nil {
		return Report{}, err
	}
	product := 1
	for _, e := range evals {
		product *= e.Geodes
	}
	rep := Report{Part: 2, Horizon: horizon, Evaluations: evals, Answer: product, Elapsed: time.Since(start)}
	r.logger.Info("top product", "blueprints", len(evals), "horizon", horizon, "answer", product, "elapsed", rep.Elapsed)
	return rep, nil
}

func (r *Runner) evaluateAll(ctx context.Context, bps []Blueprint, horizon int) ([]Evaluation, error) {
	evals := make([]Evaluation, len(bps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i, bp := range bps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e, err := r.evaluate(bp, horizon)
			if err != nil {
				return fmt.Errorf("blueprint %d: %w", bp.ID, err)
			}
			evals[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *Runner) evaluate(bp Blueprint, horizon int) (Evaluation, error) {
	start := time.Now()
	if r.store != nil {
		geodes, ok, err := r.store.Get(bp, horizon, r.cfg.Prune)
		if err != nil {
			return Evaluation{}, err
		}
		if ok {
			observeStoreHit(horizon)
			r.logger.Debug("blueprint cached", "blueprint", bp.ID, "horizon", horizon, "geodes", geodes)
			return Evaluation{ID: bp.ID, Horizon: horizon, Geodes: geodes, Cached: true, Elapsed: time.Since(start)}, nil
		}
	}

	geodes, stats := NewOptimizer(bp, r.cfg.Prune).Solve(horizon)
	elapsed := time.Since(start)
	observeSolve(horizon, stats, elapsed)
	r.logger.Debug("blueprint solved",
		"blueprint", bp.ID, "horizon", horizon, "geodes", geodes,
		"nodes", stats.Nodes, "memo_hits", stats.MemoHits, "pruned", stats.Pruned,
		"elapsed", elapsed)

	if r.store != nil {
		if err := r.store.Put(bp, horizon, r.cfg.Prune, geodes); err != nil {
			return Evaluation{}, err
		}
	}
	return Evaluation{ID: bp.ID, Horizon: horizon, Geodes: geodes, Elapsed: elapsed}, nil
}

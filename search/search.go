package search

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/crillab/shortexpr/config"
	"github.com/crillab/shortexpr/expr"
	"github.com/crillab/shortexpr/telemetry"
	"github.com/crillab/shortexpr/vec"
)

// LevelStats describes how a level was built.
type LevelStats struct {
	Length  int           // Length of the expressions of the level
	Outputs int           // How many distinct outputs were retained
	Elapsed time.Duration // How long it took to build the level
}

// Stats are statistics about a search.
type Stats struct {
	Levels    []LevelStats
	Explored  int // Total # of retained outputs, across all levels
	Solutions int // How many solutions were reported
	Elapsed   time.Duration
	Stopped   bool // Whether the search was stopped before reaching the maximum length
}

// A Searcher looks for the shortest expressions yielding a goal vector.
type Searcher struct {
	cfg     *config.Config
	kernel  vec.Kernel
	arena   *expr.Arena
	levels  [][]Entry // levels[n] holds the expressions of length n; levels[0] is always empty
	states  []State
	shorter shorterIndex

	binaries []opGroup
	unaries  []expr.Unary
	literals []vec.Num
	inputs   []config.Input

	goal     vec.Vector
	remap    func(vec.Num) vec.Num
	allMask  expr.Mask // Variables that can be used
	single   expr.Mask // Variables that can be used at most once
	required expr.Mask // Variables that solutions must use

	workers int
	logger  *slog.Logger
	metrics *telemetry.Metrics

	nbSolutions atomic.Int64
	out         chan<- Solution
}

// An Option customizes a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger progress is reported to. By default, nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) { s.logger = logger }
}

// WithMetrics sets the collectors updated after each level.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Searcher) { s.metrics = m }
}

// WithWorkers sets the max # of goroutines used to build a level, overriding the configuration.
// If n <= 0, one goroutine per CPU is used.
func WithWorkers(n int) Option {
	return func(s *Searcher) { s.workers = n }
}

// WithKernel replaces the kernel derived from the configuration.
func WithKernel(k vec.Kernel) Option {
	return func(s *Searcher) { s.kernel = k }
}

// New returns a searcher for the given configuration.
// The configuration is validated first, and must not be modified afterwards.
func New(cfg *config.Config, opts ...Option) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("could not create searcher: %w", err)
	}
	s := &Searcher{
		cfg:      cfg,
		kernel:   vec.New(cfg.KernelOptions()),
		arena:    expr.NewArena(cfg.Names()),
		levels:   make([][]Entry, cfg.MaxLength+1),
		states:   make([]State, cfg.MaxLength+1),
		shorter:  make(shorterIndex),
		binaries: groupByWidth(cfg.BinaryOperators()),
		unaries:  cfg.UnaryOperators(),
		literals: cfg.AllLiterals(),
		inputs:   cfg.Inputs,
		goal:     vec.Vector(cfg.Goal),
		remap:    cfg.Remapper(),
		workers:  cfg.Workers,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for i, in := range cfg.Inputs {
		bit := expr.Mask(1) << uint(i)
		if !in.Unused() {
			s.allMask |= bit
		}
		if in.SingleUse() {
			s.single |= bit
		}
		if in.MinUses > 0 {
			s.required |= bit
		}
	}
	s.states[0] = Frozen
	for _, opt := range opts {
		opt(s)
	}
	if s.workers <= 0 {
		s.workers = runtime.NumCPU()
	}
	return s, nil
}

// Search builds every level, from length 1 to the maximum length, and sends the solutions
// it finds on the given channel as soon as they are found.
// The channel is closed when the search is over.
// If stop is closed, the search stops after the level being built.
// Search must only be called once.
// If solutions is nil, solutions are only counted.
func (s *Searcher) Search(solutions chan<- Solution, stop <-chan struct{}) Stats {
	if solutions != nil {
		defer close(solutions)
	}
	s.out = solutions
	var stats Stats
	start := time.Now()
	s.logger.Debug("starting search",
		"inputs", len(s.inputs),
		"literals", len(s.literals),
		"max_length", s.cfg.MaxLength,
		"workers", s.workers)
	for n := 1; n <= s.cfg.MaxLength; n++ {
		ls := s.buildLevel(n)
		stats.Levels = append(stats.Levels, ls)
		stats.Explored += ls.Outputs
		s.metrics.ObserveLevel(n, ls.Outputs, ls.Elapsed)
		s.logger.Info("level built",
			"length", n,
			"outputs", ls.Outputs,
			"elapsed", ls.Elapsed,
			"explored", stats.Explored,
			"total_elapsed", time.Since(start))
		if n < s.cfg.MaxLength && stopped(stop) {
			stats.Stopped = true
			s.logger.Info("search stopped", "length", n)
			break
		}
	}
	stats.Solutions = int(s.nbSolutions.Load())
	stats.Elapsed = time.Since(start)
	return stats
}

func stopped(stop <-chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
		return false
	}
}

// buildLevel computes and freezes level n. All shorter levels must be frozen.
func (s *Searcher) buildLevel(n int) LevelStats {
	if s.states[n-1] != Frozen || s.states[n] != Unbuilt {
		panic(fmt.Sprintf("cannot build level %d: level %d is %s, level %d is %s", n, n-1, s.states[n-1], n, s.states[n]))
	}
	start := time.Now()
	s.states[n] = Building
	parallel := n >= s.cfg.MinParallelLength && s.workers > 1
	p := s.run(s.tasks(n), parallel)
	s.addBaseCases(n, p)
	s.levels[n] = freeze(s.arena, p)
	if n <= s.cfg.MaxCacheLength {
		s.shorter.add(s.levels[n])
	}
	s.states[n] = Frozen
	return LevelStats{Length: n, Outputs: len(s.levels[n]), Elapsed: time.Since(start)}
}

// Level returns the entries of length n, sorted by output. Level n must be frozen.
func (s *Searcher) Level(n int) []Entry {
	if n < 0 || n >= len(s.states) || s.states[n] != Frozen {
		panic(fmt.Sprintf("level %d is not available", n))
	}
	return s.levels[n]
}

// State returns the current state of level n.
func (s *Searcher) State(n int) State {
	return s.states[n]
}

// Text returns the text of the expression retained in e.
func (s *Searcher) Text(e Entry) string {
	return s.arena.String(e.Ref)
}

// Arena returns the store of all retained expressions.
func (s *Searcher) Arena() *expr.Arena {
	return s.arena
}

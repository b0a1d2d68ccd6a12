package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Log is where the runner reports progress. Tests and the CLI adjust
// its level and format.
var Log = logrus.New()

// Phase names, in the order they run.
const (
	PhaseInsert  = "insert"
	PhaseRebuild = "rebuild"
	PhaseLookup  = "lookup"
	PhaseDelete  = "delete"
	PhaseClear   = "clear"
)

// Phase is the timing of one step of a trial. Len is the size of the
// set once the step finished; Hits counts the keys found by lookup.
type Phase struct {
	Name    string
	Elapsed time.Duration
	Len     int
	Hits    int
}

// Result is one trial of a Run.
type Result struct {
	Run
	Trial  int
	Phases []Phase
}

// Phase returns the named phase, if the trial had it.
func (r *Result) Phase(name string) (Phase, bool) {
	for _, p := range r.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return Phase{}, false
}

// Runner executes runs, several trials at a time.
type Runner struct {
	// Workers is the number of trials that may run at once.
	// Zero means one.
	Workers int
	// Check verifies the set after each phase, when it is a Checker.
	Check bool
	// Progress, if set, gets a progress bar counting finished trials.
	Progress io.Writer
	// DOT, if set, gets the shape of the very first trial's set after
	// its insert phase, when the set is a Dotter.
	DOT io.Writer
}

type trial struct {
	run   Run
	index int
	out   *Result
}

// Execute runs every trial of runs and returns the results in order:
// all trials of runs[0] first, and so on. The first error cancels the
// trials still waiting and is returned.
func (r *Runner) Execute(ctx context.Context, runs []Run) ([]Result, error) {
	norm := make([]Run, len(runs))
	total := 0
	for i, run := range runs {
		if err := run.normalize(); err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		norm[i] = run
		total += run.Trials
	}

	results := make([]Result, total)
	trials := make([]trial, 0, total)
	for _, run := range norm {
		for j := 0; j < run.Trials; j++ {
			n := len(trials)
			trials = append(trials, trial{run: run, index: j, out: &results[n]})
		}
	}

	var bar *progressbar.ProgressBar
	if r.Progress != nil {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(r.Progress),
			progressbar.OptionSetDescription("running trials"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for n, tr := range trials {
		dot := r.DOT
		if n != 0 {
			dot = nil
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.runTrial(tr.run, tr.index, dot)
			if err != nil {
				return err
			}
			*tr.out = res
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return results, nil
}

// runTrial runs one trial of run with seed run.Seed+index.
func (r *Runner) runTrial(run Run, index int, dot io.Writer) (Result, error) {
	seed := run.Seed + int64(index)
	log := Log.WithFields(logrus.Fields{
		"impl":  run.Impl,
		"size":  run.Size,
		"seed":  seed,
		"trial": index,
	})

	s, err := NewSet(run.Impl)
	if err != nil {
		return Result{}, err
	}

	res := Result{Run: run, Trial: index}
	rd := rand.New(rand.NewSource(seed))
	key := func() int {
		return rd.Intn(run.Size) + 1
	}

	phase := func(name string, f func() (int, error)) error {
		start := time.Now()
		hits, err := f()
		p := Phase{
			Name:    name,
			Elapsed: time.Since(start),
			Len:     s.Len(),
			Hits:    hits,
		}
		if err != nil {
			return fmt.Errorf("%s seed %d: %s: %w", run.Impl, seed, name, err)
		}

		log.WithFields(logrus.Fields{
			"phase":   p.Name,
			"elapsed": p.Elapsed,
			"len":     p.Len,
		}).Debug("phase done")
		res.Phases = append(res.Phases, p)

		if c, ok := s.(Checker); ok && r.Check {
			if err := c.Check(); err != nil {
				return fmt.Errorf("%s seed %d: after %s: %w", run.Impl, seed, name, err)
			}
		}
		return nil
	}

	err = phase(PhaseInsert, func() (int, error) {
		for i := 0; i < run.Size; i++ {
			if err := s.Insert(key()); err != nil {
				return 0, err
			}
		}
		return 0, nil
	})
	if err != nil {
		return Result{}, err
	}

	if d, ok := s.(Dotter); ok && dot != nil {
		if err := d.WriteDOT(dot); err != nil {
			return Result{}, fmt.Errorf("write dot: %w", err)
		}
	}

	if rb, ok := s.(Rebuilder); ok {
		err = phase(PhaseRebuild, func() (int, error) {
			rb.Rebuild()
			return 0, nil
		})
		if err != nil {
			return Result{}, err
		}
	}

	steps := []struct {
		name string
		f    func() (int, error)
	}{
		{PhaseLookup, func() (int, error) {
			hits := 0
			for i := 0; i < run.Size; i++ {
				if s.Contains(key()) {
					hits++
				}
			}
			return hits, nil
		}},
		{PhaseDelete, func() (int, error) {
			for i := 0; i < run.Size; i++ {
				s.Delete(key())
			}
			return 0, nil
		}},
		{PhaseClear, func() (int, error) {
			s.Clear()
			return 0, nil
		}},
	}
	for _, step := range steps {
		if err := phase(step.name, step.f); err != nil {
			return Result{}, err
		}
	}

	log.Info("trial done")
	return res, nil
}

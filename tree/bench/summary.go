package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Summary aggregates the trials of one implementation and size.
type Summary struct {
	Impl   string
	Size   int
	Trials int
	// per phase, in the order the phases ran
	Phases []PhaseSummary
}

type PhaseSummary struct {
	Name     string
	Mean     time.Duration
	Min, Max time.Duration
}

// Summarize groups results by implementation and size, keeping the
// order in which each group first appears.
func Summarize(results []Result) []Summary {
	type key struct {
		impl string
		size int
	}

	var order []key
	groups := map[key][]Result{}
	for _, r := range results {
		k := key{r.Impl, r.Size}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		rs := groups[k]
		s := Summary{
			Impl:   k.impl,
			Size:   k.size,
			Trials: len(rs),
		}

		for _, p := range rs[0].Phases {
			ps := PhaseSummary{Name: p.Name, Min: p.Elapsed, Max: p.Elapsed}
			var sum time.Duration
			for i := range rs {
				q, ok := rs[i].Phase(p.Name)
				if !ok {
					continue
				}
				sum += q.Elapsed
				if q.Elapsed < ps.Min {
					ps.Min = q.Elapsed
				}
				if q.Elapsed > ps.Max {
					ps.Max = q.Elapsed
				}
			}
			ps.Mean = sum / time.Duration(len(rs))
			s.Phases = append(s.Phases, ps)
		}

		out = append(out, s)
	}
	return out
}

// WriteTable prints one line per implementation, size and phase.
func WriteTable(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "IMPL\tSIZE\tTRIALS\tPHASE\tMEAN\tMIN\tMAX")
	for _, s := range sums {
		for _, p := range s.Phases {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%v\t%v\t%v\n",
				s.Impl, s.Size, s.Trials, p.Name, p.Mean, p.Min, p.Max)
		}
	}
	return tw.Flush()
}

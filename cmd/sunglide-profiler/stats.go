package main

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// series collects per-day errors in minutes. NaN values mean "no data" and
// are dropped.
type series struct {
	values []float64
}

func (s *series) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.values = append(s.values, v)
}

func (s *series) count() int { return len(s.values) }

// summary is the description of a series.
type summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	P95    float64
}

func (s *series) summary() summary {
	if len(s.values) == 0 {
		nan := math.NaN()
		return summary{Min: nan, Max: nan, Mean: nan, StdDev: nan, P95: nan}
	}

	// stat.Quantile requires ascending input.
	sorted := append([]float64(nil), s.values...)
	sort.Float64s(sorted)

	sum := summary{
		Count: len(sorted),
		Min:   floats.Min(sorted),
		Max:   floats.Max(sorted),
		Mean:  stat.Mean(sorted, nil),
		P95:   stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		sum.StdDev = stat.StdDev(sorted, nil)
	}
	return sum
}

func (s summary) write(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	fmt.Fprintf(w, "  count:  %d\n", s.Count)
	fmt.Fprintf(w, "  min:    %.3f\n", s.Min)
	fmt.Fprintf(w, "  max:    %.3f\n", s.Max)
	fmt.Fprintf(w, "  mean:   %.3f\n", s.Mean)
	fmt.Fprintf(w, "  stddev: %.3f\n", s.StdDev)
	fmt.Fprintf(w, "  p95:    %.3f\n", s.P95)
}

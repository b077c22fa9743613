// Package dataset holds the body weight measurements plotted by the graph and the
// per-cohort visual encoding. The data is a typed constant table; nothing here is
// fetched, parsed or mutated at runtime.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// TimePoint is one sampled observation instant shared by every cohort.
// Label order inside a Dataset is presentation order; labels are never parsed.
type TimePoint struct {
	Label  string
	values map[string]float64
}

// NewTimePoint copies values so callers cannot mutate the point afterwards.
func NewTimePoint(label string, values map[string]float64) TimePoint {
	cp := make(map[string]float64, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return TimePoint{Label: label, values: cp}
}

// Value returns the measurement (grams) for a cohort key.
func (p TimePoint) Value(key string) (float64, bool) {
	v, ok := p.values[key]
	if ok && math.IsNaN(v) {
		return 0, false
	}
	return v, ok
}

// Keys returns the cohort keys present at this point, sorted.
func (p TimePoint) Keys() []string {
	out := make([]string, 0, len(p.values))
	for k := range p.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CohortSeries is a named experimental group and how its line is drawn.
type CohortSeries struct {
	Key         string  // data key present in every TimePoint
	Label       string  // optional short legend name (e.g. "NORMAL")
	Color       string  // hex, "#rrggbb"
	StrokeWidth float64 // px
	DotRadius   float64 // px
}

// DisplayName is the legend text: the short label when set, the data key otherwise.
func (c CohortSeries) DisplayName() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Key
}

// Dataset is an ordered, immutable sequence of time points plus the ordered cohort list.
type Dataset struct {
	points  []TimePoint
	cohorts []CohortSeries
}

// New builds a Dataset from copies of points and cohorts.
func New(points []TimePoint, cohorts []CohortSeries) Dataset {
	ps := make([]TimePoint, len(points))
	for i, p := range points {
		ps[i] = NewTimePoint(p.Label, p.values)
	}
	cs := make([]CohortSeries, len(cohorts))
	copy(cs, cohorts)
	return Dataset{points: ps, cohorts: cs}
}

func (d Dataset) Len() int { return len(d.points) }

// Points returns a copy of the time points in presentation order.
func (d Dataset) Points() []TimePoint {
	out := make([]TimePoint, len(d.points))
	copy(out, d.points)
	return out
}

// Cohorts returns a copy of the cohort descriptors in legend order.
func (d Dataset) Cohorts() []CohortSeries {
	out := make([]CohortSeries, len(d.cohorts))
	copy(out, d.cohorts)
	return out
}

// Labels returns the time point labels in presentation order.
func (d Dataset) Labels() []string {
	out := make([]string, len(d.points))
	for i, p := range d.points {
		out[i] = p.Label
	}
	return out
}

// Column returns one value per time point for key; missing values are NaN.
func (d Dataset) Column(key string) []float64 {
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		if v, ok := p.Value(key); ok {
			out[i] = v
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// Bounds returns the smallest and largest value over the declared cohorts.
// ok is false when no value is present at all.
func (d Dataset) Bounds() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, p := range d.points {
		for _, c := range d.cohorts {
			v, present := p.Value(c.Key)
			if !present {
				continue
			}
			ok = true
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// Validate checks that every time point carries exactly the declared cohort keys.
// All violations are reported, not only the first.
func (d Dataset) Validate() error {
	var errs []error
	declared := make(map[string]bool, len(d.cohorts))
	for _, c := range d.cohorts {
		if c.Key == "" {
			errs = append(errs, errors.New("cohort with empty key"))
			continue
		}
		if declared[c.Key] {
			errs = append(errs, fmt.Errorf("duplicate cohort key %q", c.Key))
		}
		declared[c.Key] = true
	}
	for i, p := range d.points {
		for _, c := range d.cohorts {
			if _, ok := p.values[c.Key]; !ok {
				errs = append(errs, fmt.Errorf("time point %d (%q): missing cohort %q", i, p.Label, c.Key))
			}
		}
		for _, k := range p.Keys() {
			if !declared[k] {
				errs = append(errs, fmt.Errorf("time point %d (%q): undeclared cohort %q", i, p.Label, k))
			}
		}
	}
	return errors.Join(errs...)
}

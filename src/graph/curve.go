package graph

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// run is a contiguous stretch of present values of one cohort.
type run struct {
	X []float64 // category positions (1-based)
	Y []float64
}

// splitRuns breaks a column at missing (NaN) values. Missing values leave a gap;
// they are never drawn as zero.
func splitRuns(col []float64) []run {
	var out []run
	var cur run
	for i, v := range col {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(cur.X) > 0 {
				out = append(out, cur)
				cur = run{}
			}
			continue
		}
		cur.X = append(cur.X, float64(i+1))
		cur.Y = append(cur.Y, v)
	}
	if len(cur.X) > 0 {
		out = append(out, cur)
	}
	return out
}

// smoothed is a densely sampled run; Marks holds the indexes of the real data points.
type smoothed struct {
	X, Y  []float64
	Marks map[int]bool
}

// smooth samples a monotone cubic through r so the line never overshoots between
// points. Runs of one or two points are returned as is.
func smooth(r run, samples int) smoothed {
	n := len(r.X)
	out := smoothed{Marks: make(map[int]bool, n)}
	if n < 3 || samples < 2 {
		out.X = append(out.X, r.X...)
		out.Y = append(out.Y, r.Y...)
		for i := range r.X {
			out.Marks[i] = true
		}
		return out
	}
	var fb interp.FritschButland
	if err := fb.Fit(r.X, r.Y); err != nil {
		out.X = append(out.X, r.X...)
		out.Y = append(out.Y, r.Y...)
		for i := range r.X {
			out.Marks[i] = true
		}
		return out
	}
	for i := 0; i < n-1; i++ {
		x0, x1 := r.X[i], r.X[i+1]
		out.Marks[len(out.X)] = true
		out.X = append(out.X, x0)
		out.Y = append(out.Y, r.Y[i])
		for s := 1; s < samples; s++ {
			x := x0 + (x1-x0)*float64(s)/float64(samples)
			out.X = append(out.X, x)
			out.Y = append(out.Y, fb.Predict(x))
		}
	}
	out.Marks[len(out.X)] = true
	out.X = append(out.X, r.X[n-1])
	out.Y = append(out.Y, r.Y[n-1])
	return out
}

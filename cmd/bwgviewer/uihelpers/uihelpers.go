package uihelpers

import "math"

// Container sizing rules: full available width capped at MaxWidth, height a share of
// the viewport, both clamped to the minimum the chart can lay out in.
const (
	MaxWidth       = 1000
	HeightFraction = 0.8
	MinWidth       = 360
	MinHeight      = 280
)

// ComputeContainerSize returns the chart container size for the available area.
func ComputeContainerSize(availW, availH float32) (float32, float32) {
	w := availW
	if w > MaxWidth {
		w = MaxWidth
	}
	if w < MinWidth {
		w = MinWidth
	}
	h := availH * HeightFraction
	if h < MinHeight {
		h = MinHeight
	}
	return w, h
}

// CenterOffset is the left offset that centers an item of width w in avail.
func CenterOffset(avail, w float32) float32 {
	if w >= avail {
		return 0
	}
	return float32(math.Floor(float64(avail-w) / 2))
}

// TruncatePath shortens p to at most n runes, keeping the tail.
func TruncatePath(p string, n int) string {
	r := []rune(p)
	if n <= 3 || len(r) <= n {
		return p
	}
	return "..." + string(r[len(r)-(n-3):])
}

package uihelpers

import "testing"

func TestComputeContainerSize(t *testing.T) {
	cases := []struct {
		w, h         float32
		wantW, wantH float32
	}{
		{1600, 1000, 1000, 800},
		{800, 600, 800, 480},
		{200, 100, MinWidth, MinHeight},
		{1000, 350, 1000, MinHeight},
	}
	for _, c := range cases {
		w, h := ComputeContainerSize(c.w, c.h)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("ComputeContainerSize(%v,%v) = %v,%v want %v,%v", c.w, c.h, w, h, c.wantW, c.wantH)
		}
	}
}

func TestCenterOffset(t *testing.T) {
	if got := CenterOffset(1200, 1000); got != 100 {
		t.Fatalf("CenterOffset = %v, want 100", got)
	}
	if got := CenterOffset(500, 1000); got != 0 {
		t.Fatalf("CenterOffset overflow = %v, want 0", got)
	}
}

func TestTruncatePath(t *testing.T) {
	p := "/home/user/Downloads/body_weight_graph.png"
	if got := TruncatePath(p, 100); got != p {
		t.Fatalf("short path changed: %q", got)
	}
	got := TruncatePath(p, 20)
	if len([]rune(got)) != 20 || got[:3] != "..." || got[len(got)-4:] != ".png" {
		t.Fatalf("TruncatePath = %q", got)
	}
}

package drag

import (
	"testing"

	"kestrelwm/mousebind"
)

func TestNextGeometryMove(t *testing.T) {
	start := Geometry{X: 550, Y: 18, W: 449, H: 290}
	got := nextGeometry(mousebind.ActionMove, start, 10, 20, 50)
	want := Geometry{X: 560, Y: 38, W: 449, H: 290}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestNextGeometryResizeClampsMin(t *testing.T) {
	start := Geometry{X: 0, Y: 0, W: 300, H: 300}

	got := nextGeometry(mousebind.ActionResize, start, 100, -50, 50)
	want := Geometry{X: 0, Y: 0, W: 400, H: 250}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}

	got = nextGeometry(mousebind.ActionResize, start, -400, -400, 50)
	if got.W != 50 || got.H != 50 {
		t.Fatalf("expected clamp to minimum size, got %+v", got)
	}
}

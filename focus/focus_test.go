package focus

import (
	"testing"

	"kestrelwm/client"
)

func TestStackingOrderFloatingCurrentLeads(t *testing.T) {
	d := &client.Desktop{Mode: client.Tile}
	a := d.AddWindow(1, true)
	b := d.AddWindow(2, true)
	c := d.AddWindow(3, true)
	b.Floating = true
	d.Current = b

	order := stackingOrder(d)
	if len(order) != 3 || order[0] != b.Win {
		t.Fatalf("expected floating current to lead stacking order, got %v", order)
	}
	_ = a
	_ = c
}

func TestStackingOrderFullscreenCurrentAboveTiled(t *testing.T) {
	d := &client.Desktop{Mode: client.Tile}
	a := d.AddWindow(1, true)
	fs := d.AddWindow(2, true)
	fs.Fullscreen = true
	d.Current = fs

	order := stackingOrder(d)
	// fs must precede a (tiled) in the top-to-bottom order.
	fsIdx, aIdx := -1, -1
	for i, w := range order {
		if w == fs.Win {
			fsIdx = i
		}
		if w == a.Win {
			aIdx = i
		}
	}
	if fsIdx == -1 || aIdx == -1 || fsIdx > aIdx {
		t.Fatalf("expected fullscreen current above tiled client, order=%v", order)
	}
}

func TestStackingOrderEmptyCurrent(t *testing.T) {
	d := &client.Desktop{Mode: client.Tile}
	d.AddWindow(1, true)
	order := stackingOrder(d)
	if len(order) != 1 {
		t.Fatalf("expected single-entry order, got %v", order)
	}
}

func TestBorderWidthPolicy(t *testing.T) {
	cfg := Config{BorderWidth: 2}

	d := &client.Desktop{Mode: client.Tile}
	a := d.AddWindow(1, true)
	if got := borderWidth(cfg, d, a); got != 0 {
		t.Fatalf("single-client desktop: expected 0 border, got %d", got)
	}

	d.AddWindow(2, true)
	if got := borderWidth(cfg, d, a); got != cfg.BorderWidth {
		t.Fatalf("two-client TILE desktop: expected normal border, got %d", got)
	}

	a.Fullscreen = true
	if got := borderWidth(cfg, d, a); got != 0 {
		t.Fatalf("fullscreen client: expected 0 border, got %d", got)
	}
	a.Fullscreen = false

	d.Mode = client.Monocle
	if got := borderWidth(cfg, d, a); got != 0 {
		t.Fatalf("MONOCLE tileable client: expected 0 border, got %d", got)
	}
}

func TestBorderColorPolicy(t *testing.T) {
	cfg := Config{FocusColor: 0xff0000, UnfocusColor: 0x00ff00}
	d := &client.Desktop{}
	a := d.AddWindow(1, true)
	b := d.AddWindow(2, true)
	d.Current = a

	if got := borderColor(cfg, d, a); got != cfg.FocusColor {
		t.Fatalf("expected current client to get focus color")
	}
	if got := borderColor(cfg, d, b); got != cfg.UnfocusColor {
		t.Fatalf("expected non-current client to get unfocus color")
	}
}

func TestPrevInList(t *testing.T) {
	d := &client.Desktop{}
	a := d.AddWindow(1, true)
	b := d.AddWindow(2, true)
	if got := prevInList(d, b); got != a {
		t.Fatalf("expected a as list-previous of b")
	}
	if got := prevInList(d, a); got != nil {
		t.Fatalf("expected nil list-previous of head")
	}
}

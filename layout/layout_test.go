package layout

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"kestrelwm/client"
	"kestrelwm/xrect"
)

// Three windows on a 1000x600 screen with an 18px top panel: the newest
// (mapped with attachAside=false) becomes master, the other two split
// the stack column. Border is subtracted from both edges of each
// dimension.
func TestStackThreeWindows(t *testing.T) {
	d := &client.Desktop{Mode: client.Tile, MasterSize: 0.55}
	d.AddWindow(1, false) // A
	d.AddWindow(2, false) // B
	d.AddWindow(3, false) // C, becomes head/master

	p := Params{ScreenW: 1000, UsableHeight: 582, PanelOffset: 18, MasterSize: d.MasterSize, BorderWidth: 1}
	placements := Tile(d, p)
	if len(placements) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(placements))
	}

	byWin := map[uint32]xrect.Rect{}
	for _, pl := range placements {
		byWin[uint32(pl.Client.Win)] = pl.Rect
	}

	if got := byWin[3]; got != (xrect.Rect{X: 0, Y: 18, W: 548, H: 580}) {
		t.Fatalf("master (C) rect mismatch: %+v", got)
	}
	if got := byWin[2]; got != (xrect.Rect{X: 550, Y: 18, W: 448, H: 289}) {
		t.Fatalf("first stack client (B) rect mismatch: %+v", got)
	}
	if got := byWin[1]; got != (xrect.Rect{X: 550, Y: 309, W: 448, H: 289}) {
		t.Fatalf("second stack client (A) rect mismatch: %+v", got)
	}
}

// A lone client fills the usable area borderless regardless of mode.
func TestTileSingleClientUsesMonocle(t *testing.T) {
	d := &client.Desktop{Mode: client.Bstack, MasterSize: 0.5}
	d.AddWindow(1, false)

	p := Params{ScreenW: 800, UsableHeight: 600, BorderWidth: 2}
	placements := Tile(d, p)
	if len(placements) != 1 {
		t.Fatalf("expected 1 placement, got %d", len(placements))
	}
	if placements[0].Border != 0 {
		t.Fatalf("single-client degenerate case: expected 0 border, got %d", placements[0].Border)
	}
	if placements[0].Rect != (xrect.Rect{X: 0, Y: 0, W: 800, H: 600}) {
		t.Fatalf("single-client degenerate case: expected full usable area, got %+v", placements[0].Rect)
	}
}

func TestTileEmptyDesktopNoOp(t *testing.T) {
	d := &client.Desktop{Mode: client.Tile}
	if got := Tile(d, Params{ScreenW: 800, UsableHeight: 600}); got != nil {
		t.Fatalf("expected nil placements for empty desktop, got %v", got)
	}
}

func TestTileFloatModeNoOp(t *testing.T) {
	d := &client.Desktop{Mode: client.Float}
	d.AddWindow(1, false)
	d.AddWindow(2, false)
	if got := Tile(d, Params{ScreenW: 800, UsableHeight: 600}); got != nil {
		t.Fatalf("expected nil placements in FLOAT mode, got %v", got)
	}
}

// With zero borders the stack layout must partition the usable area
// exactly: full coverage, no overlaps, for any client count.
func TestStackCoversUsableAreaNoOverlap(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7} {
		d := &client.Desktop{Mode: client.Tile, MasterSize: 0.5}
		for i := 0; i < n; i++ {
			d.AddWindow(xproto.Window(i+1), true)
		}
		p := Params{ScreenW: 1200, UsableHeight: 800, MasterSize: 0.5, BorderWidth: 0}
		placements := Tile(d, p)
		if len(placements) != n {
			t.Fatalf("n=%d: expected %d placements, got %d", n, n, len(placements))
		}
		var total int
		for i := range placements {
			total += placements[i].Rect.Area()
			for j := i + 1; j < len(placements); j++ {
				if placements[i].Rect.Overlaps(placements[j].Rect) {
					t.Fatalf("n=%d: rects %d and %d overlap: %+v %+v", n, i, j, placements[i].Rect, placements[j].Rect)
				}
			}
		}
		want := p.ScreenW * p.UsableHeight
		if total != want {
			t.Fatalf("n=%d: expected total area %d, got %d", n, want, total)
		}
	}
}

func TestGridColumnRule(t *testing.T) {
	if gridCols(5) != 2 {
		t.Fatalf("expected gridCols(5)=2, got %d", gridCols(5))
	}
	if gridCols(4) != 2 {
		t.Fatalf("expected gridCols(4)=2, got %d", gridCols(4))
	}
	if gridCols(7) != 3 {
		t.Fatalf("expected gridCols(7)=3, got %d", gridCols(7))
	}
}

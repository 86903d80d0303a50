// Package layout computes window placements for the four tiling modes:
// stack (vertical master on the left), bstack (horizontal master on
// top), grid, and monocle. The functions are pure: client list and
// geometry in, placements out. Fullscreen, floating, and transient
// clients are skipped and keep their own geometry.
package layout

import (
	"kestrelwm/client"
	"kestrelwm/xrect"
)

// Tileable reports whether c participates in tiling.
func Tileable(c *client.Client) bool {
	return !c.ISFFT()
}

// tileableClients filters d's client list down to the tileable
// sub-sequence, preserving list order.
func tileableClients(d *client.Desktop) []*client.Client {
	var out []*client.Client
	for _, c := range d.Clients() {
		if Tileable(c) {
			out = append(out, c)
		}
	}
	return out
}

// Placement pairs a client with the rectangle it should occupy and the
// border width it should receive. Border color belongs to the focus
// package; layout only ever produces 0 or the configured width.
type Placement struct {
	Client *client.Client
	Rect   xrect.Rect
	Border uint32
}

// Params carries the geometry and config inputs every layout function
// needs.
type Params struct {
	ScreenW      int
	UsableHeight int // hh
	PanelOffset  int // cy
	MasterSize   float64
	Growth       int
	BorderWidth  uint32
}

// Tile dispatches to d's layout. FLOAT mode and empty desktops place
// nothing. A lone client gets the full area irrespective of mode.
func Tile(d *client.Desktop, p Params) []Placement {
	all := d.Clients()
	if len(all) == 0 || d.Mode == client.Float {
		return nil
	}

	tileable := tileableClients(d)
	if len(all) == 1 {
		return monocle(all, p)
	}

	switch d.Mode {
	case client.Monocle:
		return monocle(tileable, p)
	case client.Bstack:
		return bstack(tileable, p)
	case client.Grid:
		return grid(tileable, p)
	default:
		return stack(tileable, p)
	}
}

// stack places the master in a column on the left and the rest stacked
// vertically on the right. Integer remainder pixels and the growth
// offset both land on the first stack client, so the column height is
// exactly conserved for any client count.
func stack(cs []*client.Client, p Params) []Placement {
	if len(cs) == 0 {
		return nil
	}
	bw := int(p.BorderWidth)
	if len(cs) == 1 {
		return []Placement{{
			Client: cs[0],
			Rect:   xrect.New(0, p.PanelOffset, p.ScreenW-2*bw, p.UsableHeight-2*bw),
			Border: p.BorderWidth,
		}}
	}

	master := cs[0]
	stackClients := cs[1:]
	n := len(stackClients)

	masterW := int(float64(p.ScreenW) * p.MasterSize)
	stackW := p.ScreenW - masterW

	out := make([]Placement, 0, len(cs))
	out = append(out, Placement{
		Client: master,
		Rect:   xrect.New(0, p.PanelOffset, masterW-2*bw, p.UsableHeight-2*bw),
		Border: p.BorderWidth,
	})

	rowH := (p.UsableHeight - p.Growth) / n
	remainder := (p.UsableHeight - p.Growth) % n

	y := p.PanelOffset
	for i, c := range stackClients {
		h := rowH
		if i == 0 {
			h += remainder + p.Growth
		}
		out = append(out, Placement{
			Client: c,
			Rect:   xrect.New(masterW, y, stackW-2*bw, h-2*bw),
			Border: p.BorderWidth,
		})
		y += h
	}
	return out
}

// bstack is stack with the axes transposed: master across the top,
// stack row along the bottom.
func bstack(cs []*client.Client, p Params) []Placement {
	if len(cs) == 0 {
		return nil
	}
	bw := int(p.BorderWidth)
	if len(cs) == 1 {
		return []Placement{{
			Client: cs[0],
			Rect:   xrect.New(0, p.PanelOffset, p.ScreenW-2*bw, p.UsableHeight-2*bw),
			Border: p.BorderWidth,
		}}
	}

	master := cs[0]
	stackClients := cs[1:]
	n := len(stackClients)

	masterH := int(float64(p.UsableHeight) * p.MasterSize)
	stackH := p.UsableHeight - masterH

	out := make([]Placement, 0, len(cs))
	out = append(out, Placement{
		Client: master,
		Rect:   xrect.New(0, p.PanelOffset, p.ScreenW-2*bw, masterH-2*bw),
		Border: p.BorderWidth,
	})

	colW := (p.ScreenW - p.Growth) / n
	remainder := (p.ScreenW - p.Growth) % n

	x := 0
	for i, c := range stackClients {
		w := colW
		if i == 0 {
			w += remainder + p.Growth
		}
		out = append(out, Placement{
			Client: c,
			Rect:   xrect.New(x, p.PanelOffset+masterH, w-2*bw, stackH-2*bw),
			Border: p.BorderWidth,
		})
		x += w
	}
	return out
}

// gridCols picks the smallest column count whose square covers n
// clients. Five clients get two columns, not three: two rows on the left
// and three on the right.
func gridCols(n int) int {
	if n == 5 {
		return 2
	}
	cols := 1
	for cols*cols < n {
		cols++
	}
	return cols
}

// grid fills cells column by column, top to bottom. Overflow rows go to
// the rightmost columns so every client is placed.
func grid(cs []*client.Client, p Params) []Placement {
	n := len(cs)
	if n == 0 {
		return nil
	}
	bw := int(p.BorderWidth)
	cols := gridCols(n)
	baseRows := n / cols
	overflow := n % cols

	cellW := p.ScreenW / cols

	out := make([]Placement, 0, n)
	idx := 0
	for col := 0; col < cols && idx < n; col++ {
		rows := baseRows
		// overflow rows go to the rightmost columns.
		if col >= cols-overflow {
			rows++
		}
		if rows == 0 {
			continue
		}
		cellH := p.UsableHeight / rows
		for row := 0; row < rows && idx < n; row++ {
			out = append(out, Placement{
				Client: cs[idx],
				Rect: xrect.New(
					col*cellW,
					p.PanelOffset+row*cellH,
					cellW-2*bw,
					cellH-2*bw,
				),
				Border: p.BorderWidth,
			})
			idx++
		}
	}
	return out
}

// monocle gives every client the full usable area with no border. Also
// used directly by the single-client degenerate case in Tile.
func monocle(cs []*client.Client, p Params) []Placement {
	out := make([]Placement, 0, len(cs))
	for _, c := range cs {
		out = append(out, Placement{
			Client: c,
			Rect:   xrect.New(0, p.PanelOffset, p.ScreenW, p.UsableHeight),
			Border: 0,
		})
	}
	return out
}

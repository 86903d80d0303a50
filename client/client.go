// Package client holds the in-memory window management model: one Client
// per managed window, a fixed set of Desktops each owning a singly linked
// client list with current and previous-focus pointers, and the Manager
// tying them together with the screen geometry. Nothing here talks to X
// beyond carrying window handles; the wm package mutates this model and
// then reconciles the server against it.
package client

import "github.com/BurntSushi/xgb/xproto"

// Mode is a desktop's tiling mode.
type Mode int

const (
	Tile Mode = iota
	Monocle
	Bstack
	Grid
	Float
)

// Client wraps one managed top-level window.
type Client struct {
	Win xproto.Window

	Urgent     bool
	Transient  bool
	Fullscreen bool
	Floating   bool

	// X, Y, W, H is the last-known placement. The layout engine ignores
	// it for tileable clients (recomputed on every retile), but it is
	// the sole authority for a floating or transient client's position
	// and is what leaving fullscreen restores, since entering fullscreen
	// never overwrites it.
	X, Y, W, H int

	next *Client
}

// ISFFT reports whether c is fullscreen, floating, or transient. The
// layout engine skips such clients; they keep their own geometry.
func (c *Client) ISFFT() bool {
	return c.Fullscreen || c.Floating || c.Transient
}

// Desktop is one virtual workspace.
type Desktop struct {
	Mode       Mode
	MasterSize float64
	Growth     int
	ShowPanel  bool

	Head      *Client
	Current   *Client
	PrevFocus *Client
}

// clamp keeps the master area fraction inside (0.05, 0.95).
func clamp(v float64) float64 {
	const lo, hi = 0.05, 0.95
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetMasterSize applies delta to d.MasterSize, silently rejecting any
// result outside (0.05, 0.95).
func (d *Desktop) SetMasterSize(delta float64) {
	next := d.MasterSize + delta
	if next <= 0.05 || next >= 0.95 {
		return
	}
	d.MasterSize = clamp(next)
}

// Clients returns every client on the desktop in list order.
func (d *Desktop) Clients() []*Client {
	var out []*Client
	for c := d.Head; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}

// Count returns the number of clients on the desktop.
func (d *Desktop) Count() int {
	n := 0
	for c := d.Head; c != nil; c = c.next {
		n++
	}
	return n
}

// HasUrgent reports whether any client on the desktop is urgent, for the
// status line.
func (d *Desktop) HasUrgent() bool {
	for c := d.Head; c != nil; c = c.next {
		if c.Urgent {
			return true
		}
	}
	return false
}

// prevOf returns the list-previous client of c, or nil if c is head or
// not found. A linear scan; desktop lists are short and back-pointers
// would complicate the list surgery in movement.go.
func (d *Desktop) prevOf(c *Client) *Client {
	if c == nil || d.Head == c {
		return nil
	}
	for p := d.Head; p != nil; p = p.next {
		if p.next == c {
			return p
		}
	}
	return nil
}

// contains reports whether c is a member of d's list.
func (d *Desktop) contains(c *Client) bool {
	for p := d.Head; p != nil; p = p.next {
		if p == c {
			return true
		}
	}
	return false
}

// AddWindow allocates a client for w and links it onto d's list: at the
// head when attachAside is false, at the tail when true. The caller owns
// the X side (event mask, button grabs); this package stays free of X
// imports beyond the Window handle type.
func (d *Desktop) AddWindow(w xproto.Window, attachAside bool) *Client {
	c := &Client{Win: w}
	d.Attach(c, attachAside)
	return c
}

// Attach links an already-allocated, currently unowned client onto d's
// list. Moving a client between desktops reuses the same record so its
// flags and geometry survive the move.
func (d *Desktop) Attach(c *Client, attachAside bool) {
	c.next = nil
	if d.Head == nil {
		d.Head = c
		return
	}
	if attachAside {
		tail := d.Head
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = c
		return
	}
	c.next = d.Head
	d.Head = c
}

// RemoveClient unlinks c from d's list. If c was PrevFocus, PrevFocus is
// repointed to the client before Current so it never dangles. Callers
// locate the owning desktop first via Manager.Find.
//
// Returns the client that should become newly current if d's Current
// needs reconciling (nil if no refocus is needed), leaving the actual
// focus update to the caller; this package has no dependency on the
// focus/stacking package.
func (d *Desktop) RemoveClient(c *Client) (needsRefocus *Client, ok bool) {
	if !d.contains(c) {
		return nil, false
	}

	prev := d.prevOf(c)
	if prev == nil {
		d.Head = c.next
	} else {
		prev.next = c.next
	}

	if d.PrevFocus == c {
		d.PrevFocus = d.prevOf(d.Current)
	}

	wasCurrent := d.Current == c
	c.next = nil

	if wasCurrent || d.Count() <= 1 {
		return d.PrevFocus, true
	}
	return nil, false
}

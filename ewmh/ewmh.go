// Package ewmh implements the slice of the EWMH protocol kestrelwm
// speaks: _NET_SUPPORTED, _NET_ACTIVE_WINDOW, and _NET_WM_STATE with the
// fullscreen atom. There is no desktop-name or pager protocol; the
// status line on stdout covers what a panel needs.
package ewmh

import (
	"github.com/BurntSushi/xgb/xproto"

	"kestrelwm/xconn"
)

// Atoms caches the handful of EWMH atoms kestrelwm uses.
type Atoms struct {
	Supported         xproto.Atom
	ActiveWindow      xproto.Atom
	WmState           xproto.Atom
	WmStateFullscreen xproto.Atom
}

// LoadAtoms interns every atom this package needs, fatal on failure.
func LoadAtoms(c *xconn.Conn) Atoms {
	return Atoms{
		Supported:         c.MustAtom("_NET_SUPPORTED"),
		ActiveWindow:      c.MustAtom("_NET_ACTIVE_WINDOW"),
		WmState:           c.MustAtom("_NET_WM_STATE"),
		WmStateFullscreen: c.MustAtom("_NET_WM_STATE_FULLSCREEN"),
	}
}

// SupportedSet advertises which EWMH atoms this WM implements, via
// _NET_SUPPORTED on the root.
func SupportedSet(c *xconn.Conn, a Atoms, protocolAtoms []xproto.Atom) error {
	atomType := c.MustAtom("ATOM")
	data := make([]uint32, len(protocolAtoms))
	for i, at := range protocolAtoms {
		data[i] = uint32(at)
	}
	return c.ChangeProperty32(c.Root, a.Supported, atomType, data)
}

// ActiveWindowSet publishes _NET_ACTIVE_WINDOW on the root.
func ActiveWindowSet(c *xconn.Conn, a Atoms, win xproto.Window) error {
	windowAtom := c.MustAtom("WINDOW")
	return c.ChangeProperty32(c.Root, a.ActiveWindow, windowAtom, []uint32{uint32(win)})
}

// ActiveWindowClear removes _NET_ACTIVE_WINDOW from the root, for when
// the last client on the current desktop goes away.
func ActiveWindowClear(c *xconn.Conn, a Atoms) error {
	return c.DeleteProperty(c.Root, a.ActiveWindow)
}

// WmStateHasFullscreen reports whether win's _NET_WM_STATE already
// contains the fullscreen atom, for windows that map themselves
// fullscreen from the start.
func WmStateHasFullscreen(c *xconn.Conn, a Atoms, win xproto.Window) (bool, error) {
	reply, err := c.GetProperty(win, a.WmState)
	if err != nil || reply == nil {
		return false, err
	}
	for _, at := range xconn.Atoms32(reply) {
		if at == a.WmStateFullscreen {
			return true, nil
		}
	}
	return false, nil
}

// SetFullscreenState rewrites win's _NET_WM_STATE to contain (or not
// contain) the fullscreen atom.
func SetFullscreenState(c *xconn.Conn, a Atoms, win xproto.Window, fullscreen bool) error {
	if !fullscreen {
		return c.ChangeProperty32(win, a.WmState, c.MustAtom("ATOM"), nil)
	}
	return c.ChangeProperty32(win, a.WmState, c.MustAtom("ATOM"), []uint32{uint32(a.WmStateFullscreen)})
}

// StateAction mirrors the three _NET_WM_STATE client-message actions.
type StateAction uint32

const (
	StateRemove StateAction = 0
	StateAdd    StateAction = 1
	StateToggle StateAction = 2
)

// ClientMessageTargetsFullscreen reports whether a _NET_WM_STATE
// ClientMessage's second or third data word names the fullscreen atom.
// data is the event's Data32 slice.
func (a Atoms) ClientMessageTargetsFullscreen(data []uint32) bool {
	if len(data) < 3 {
		return false
	}
	return xproto.Atom(data[1]) == a.WmStateFullscreen || xproto.Atom(data[2]) == a.WmStateFullscreen
}

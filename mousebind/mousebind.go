// Package mousebind resolves and grabs pointer-button bindings and the
// click-to-focus grab. Like keybind, the table is compile-time: grabs
// are expanded over the lock-key combinations at install time and the
// lock bits are masked off again at dispatch.
package mousebind

import (
	"github.com/BurntSushi/xgb/xproto"
	log "github.com/sirupsen/logrus"

	"kestrelwm/xconn"
)

// Action names a drag session kind, used by config to say what a button
// binding starts.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionResize
)

// Binding is one compile-time button binding.
type Binding struct {
	Mods   uint16
	Button xproto.Button
	Action Action
}

const grabEventMask = uint32(xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease)

// ignoreMods mirrors keybind's lock-combo expansion; the lock-key noise
// problem is identical for keys and buttons.
func ignoreMods(numLockMask uint16) []uint16 {
	const lockMask = xproto.ModMaskLock
	return []uint16{0, numLockMask, lockMask, numLockMask | lockMask}
}

// GrabAll grabs every (binding, lock-combo) pair on win (a managed
// client's window; button bindings are per-client, unlike key bindings
// which are grabbed once on the root).
func GrabAll(c *xconn.Conn, win xproto.Window, bindings []Binding) {
	for _, b := range bindings {
		for _, ignore := range ignoreMods(c.NumLockMask) {
			err := xproto.GrabButtonChecked(c.X, false, win, uint16(grabEventMask),
				xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0,
				byte(b.Button), b.Mods|ignore).Check()
			if err != nil {
				log.Debugf("mousebind: grab button=%d mod=%x failed: %v", b.Button, b.Mods|ignore, err)
			}
		}
	}
}

// UngrabAll releases every grab GrabAll installed on win.
func UngrabAll(c *xconn.Conn, win xproto.Window, bindings []Binding) {
	for _, b := range bindings {
		for _, ignore := range ignoreMods(c.NumLockMask) {
			xproto.UngrabButtonChecked(c.X, byte(b.Button), win, b.Mods|ignore).Check()
		}
	}
}

// GrabButton1ForFocus installs the click-to-focus grab on a non-current
// client. Unlike GrabAll this grabs without a modifier, since any click
// should focus.
func GrabButton1ForFocus(c *xconn.Conn, win xproto.Window) {
	for _, ignore := range ignoreMods(c.NumLockMask) {
		xproto.GrabButtonChecked(c.X, false, win, uint16(grabEventMask),
			xproto.GrabModeSync, xproto.GrabModeAsync, 0, 0,
			xproto.ButtonIndex1, ignore).Check()
	}
}

// UngrabButton1 releases the click-to-focus grab on the current client,
// so its own clicks reach the application again.
func UngrabButton1(c *xconn.Conn, win xproto.Window) {
	for _, ignore := range ignoreMods(c.NumLockMask) {
		xproto.UngrabButtonChecked(c.X, xproto.ButtonIndex1, win, ignore).Check()
	}
}

// Lookup finds the binding matching a fired ButtonPress.
func Lookup(bindings []Binding, numLockMask uint16, detail xproto.Button, state uint16) (Binding, bool) {
	noise := numLockMask | xproto.ModMaskLock
	evMods := state &^ noise
	for _, b := range bindings {
		if b.Button == detail && b.Mods&^noise == evMods {
			return b, true
		}
	}
	return Binding{}, false
}

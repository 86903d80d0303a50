// Package keybind resolves and grabs keyboard bindings. The binding
// table is compile-time, so there is no dynamic callback registry: every
// binding is grabbed under all four lock-key combinations at startup,
// and dispatch is a plain scan of the table with the lock bits masked
// off the event state.
package keybind

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/driusan/dewm/keysym"
	log "github.com/sirupsen/logrus"

	"kestrelwm/xconn"
)

// Binding is one compile-time key binding: a modifier mask, a keysym, and
// the action it triggers. Action is an opaque string looked up by the
// caller (the wm package's dispatcher); keybind itself has no notion of actions,
// only of which binding matched.
type Binding struct {
	Mods   uint16
	Sym    xproto.Keysym
	Action string
	Arg    int
}

// Keys resolves keysym<->keycode for the currently loaded keyboard
// mapping and tracks the NumLock modifier bit discovered at startup.
type Keys struct {
	conn        *xconn.Conn
	keycodes    map[xproto.Keysym][]xproto.Keycode
	NumLockMask uint16
}

const loKeycode = 8
const hiKeycode = 255

// Load queries the X keyboard mapping and modifier map, building the
// keysym->keycode table and discovering which modifier bit NumLock
// occupies on this keyboard.
func Load(c *xconn.Conn) (*Keys, error) {
	reply, err := xproto.GetKeyboardMapping(c.X, loKeycode, hiKeycode-loKeycode+1).Reply()
	if err != nil {
		return nil, err
	}

	k := &Keys{conn: c, keycodes: make(map[xproto.Keysym][]xproto.Keycode, 128)}
	perCode := int(reply.KeysymsPerKeycode)
	for i := 0; i <= hiKeycode-loKeycode; i++ {
		syms := reply.Keysyms[i*perCode : (i+1)*perCode]
		code := xproto.Keycode(loKeycode + i)
		for _, s := range syms {
			if s == 0 {
				continue
			}
			k.keycodes[s] = append(k.keycodes[s], code)
		}
	}

	modReply, err := xproto.GetModifierMapping(c.X).Reply()
	if err != nil {
		return nil, err
	}
	numlockSyms := k.keycodes[keysym.XK_Num_Lock]
	k.NumLockMask = findModifierMask(modReply, numlockSyms)
	c.NumLockMask = k.NumLockMask

	return k, nil
}

// findModifierMask scans the 8 modifier columns (Shift, Lock, Control,
// Mod1..Mod5) for any keycode in target, returning that column's bit.
func findModifierMask(modMap *xproto.GetModifierMappingReply, target []xproto.Keycode) uint16 {
	perMod := int(modMap.KeycodesPerModifier)
	for col := 0; col < 8; col++ {
		for row := 0; row < perMod; row++ {
			code := modMap.Keycodes[col*perMod+row]
			if code == 0 {
				continue
			}
			for _, t := range target {
				if code == t {
					return 1 << uint(col)
				}
			}
		}
	}
	return 0
}

// Keycodes returns every keycode a keysym maps to (usually one).
func (k *Keys) Keycodes(sym xproto.Keysym) []xproto.Keycode {
	return k.keycodes[sym]
}

// ignoreMods are the lock-key modifier combinations to grab a binding
// under, and to mask off before comparing at dispatch: 0, NumLock,
// CapsLock, and NumLock|CapsLock. Caps Lock is always wire modifier bit
// Lock; NumLock's bit varies by keyboard layout and is filled in once
// Load has run.
func (k *Keys) ignoreMods() []uint16 {
	const lockMask = xproto.ModMaskLock
	return []uint16{0, k.NumLockMask, lockMask, k.NumLockMask | lockMask}
}

// GrabAll grabs every (binding, lock-combo) pair on win, the root window
// for key bindings.
func (k *Keys) GrabAll(win xproto.Window, bindings []Binding) {
	for _, b := range bindings {
		codes := k.Keycodes(b.Sym)
		if len(codes) == 0 {
			log.Warnf("keybind: no keycode for keysym %#x, binding %q skipped", b.Sym, b.Action)
			continue
		}
		for _, code := range codes {
			for _, ignore := range k.ignoreMods() {
				err := xproto.GrabKeyChecked(k.conn.X, false, win, b.Mods|ignore, code,
					xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
				if err != nil {
					log.Debugf("keybind: grab %v mod=%x code=%d failed: %v", b.Action, b.Mods|ignore, code, err)
				}
			}
		}
	}
}

// UngrabAll releases every grab GrabAll installed on win.
func (k *Keys) UngrabAll(win xproto.Window, bindings []Binding) {
	for _, b := range bindings {
		for _, code := range k.Keycodes(b.Sym) {
			for _, ignore := range k.ignoreMods() {
				xproto.UngrabKeyChecked(k.conn.X, code, win, b.Mods|ignore).Check()
			}
		}
	}
}

// Lookup finds the binding matching a fired KeyPress, masking the
// NumLock/CapsLock noise bits off the event's state before comparing.
// Lock keys carry no meaning for bindings.
func (k *Keys) Lookup(bindings []Binding, detail xproto.Keycode, state uint16) (Binding, bool) {
	noise := k.NumLockMask | xproto.ModMaskLock
	evMods := state &^ noise
	for _, b := range bindings {
		if b.Mods&^noise != evMods {
			continue
		}
		for _, code := range k.Keycodes(b.Sym) {
			if code == detail {
				return b, true
			}
		}
	}
	return Binding{}, false
}

// Package icccm implements the slice of the ICCCM this window manager
// needs: WM_HINTS (urgency only), WM_PROTOCOLS/WM_DELETE_WINDOW,
// WM_TRANSIENT_FOR, and WM_CLASS. kestrelwm draws no title bars or icons
// and enforces no size hints, so the rest of the convention has no
// reader here.
package icccm

import (
	"github.com/BurntSushi/xgb/xproto"

	"kestrelwm/xconn"
)

// Urgency bit position within WM_HINTS' flags field, per the ICCCM.
const hintUrgency = 1 << 8

// WmHintsUrgent reports whether win's WM_HINTS has the urgency bit set.
func WmHintsUrgent(c *xconn.Conn, win xproto.Window) (bool, error) {
	atom, err := c.Atom("WM_HINTS")
	if err != nil {
		return false, err
	}
	reply, err := c.GetProperty(win, atom)
	if err != nil || reply == nil {
		return false, err
	}
	flags := xconn.Atoms32(reply)
	if len(flags) == 0 {
		return false, nil
	}
	return uint32(flags[0])&hintUrgency != 0, nil
}

// WmProtocols returns the atoms listed in win's WM_PROTOCOLS property.
func WmProtocols(c *xconn.Conn, win xproto.Window) ([]xproto.Atom, error) {
	atom, err := c.Atom("WM_PROTOCOLS")
	if err != nil {
		return nil, err
	}
	reply, err := c.GetProperty(win, atom)
	if err != nil || reply == nil {
		return nil, err
	}
	return xconn.Atoms32(reply), nil
}

// SupportsDelete reports whether win advertises WM_DELETE_WINDOW in
// WM_PROTOCOLS, i.e. whether it can be asked to close politely.
func SupportsDelete(c *xconn.Conn, win xproto.Window) (bool, error) {
	deleteAtom, err := c.Atom("WM_DELETE_WINDOW")
	if err != nil {
		return false, err
	}
	protocols, err := WmProtocols(c, win)
	if err != nil {
		return false, err
	}
	for _, p := range protocols {
		if p == deleteAtom {
			return true, nil
		}
	}
	return false, nil
}

// SendDeleteWindow sends the WM_DELETE_WINDOW client message.
func SendDeleteWindow(c *xconn.Conn, win xproto.Window) error {
	protoAtom, err := c.Atom("WM_PROTOCOLS")
	if err != nil {
		return err
	}
	deleteAtom, err := c.Atom("WM_DELETE_WINDOW")
	if err != nil {
		return err
	}
	return c.SendClientMessage(win, protoAtom, [5]uint32{uint32(deleteAtom), 0, 0, 0, 0})
}

// WmTransientFor returns the window win declares itself a dialog for, or
// 0 if WM_TRANSIENT_FOR is unset.
func WmTransientFor(c *xconn.Conn, win xproto.Window) (xproto.Window, error) {
	atom, err := c.Atom("WM_TRANSIENT_FOR")
	if err != nil {
		return 0, err
	}
	reply, err := c.GetProperty(win, atom)
	if err != nil || reply == nil {
		return 0, err
	}
	ids := xconn.Atoms32(reply)
	if len(ids) == 0 {
		return 0, nil
	}
	return xproto.Window(ids[0]), nil
}

// WmClass holds the two null-separated components of WM_CLASS: the
// instance name first, the class name second.
type WmClass struct {
	Instance string
	Class    string
}

// GetWmClass reads and splits WM_CLASS into its instance and class
// components.
func GetWmClass(c *xconn.Conn, win xproto.Window) (WmClass, error) {
	atom, err := c.Atom("WM_CLASS")
	if err != nil {
		return WmClass{}, err
	}
	reply, err := c.GetProperty(win, atom)
	if err != nil || reply == nil {
		return WmClass{}, err
	}

	parts := splitNUL(reply.Value)
	wc := WmClass{}
	if len(parts) > 0 {
		wc.Instance = parts[0]
	}
	if len(parts) > 1 {
		wc.Class = parts[1]
	}
	return wc, nil
}

func splitNUL(b []byte) []string {
	var out []string
	start := 0
	for i, c := range b {
		if c == 0 {
			out = append(out, string(b[start:i]))
			start = i + 1
		}
	}
	if start < len(b) {
		out = append(out, string(b[start:]))
	}
	return out
}

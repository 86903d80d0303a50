// Package xconn wraps the X connection. It handles opening the display,
// interning atoms, moving/resizing/restacking windows, input focus,
// client messages, and fetching events. The rest of kestrelwm talks to
// the X server through a *Conn; keybind, mousebind, drag and wm also
// issue some xproto requests directly on its X field.
package xconn

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	log "github.com/sirupsen/logrus"
)

// Conn wraps one X connection: the root window, an atom intern cache, the
// allocated border colors, and the NumLock modifier mask discovered at
// startup.
type Conn struct {
	X      *xgb.Conn
	Root   xproto.Window
	Screen *xproto.ScreenInfo

	ScreenW int
	ScreenH int // full screen height; callers subtract the panel strip themselves

	FocusColor   uint32
	UnfocusColor uint32

	NumLockMask uint16

	atoms map[string]xproto.Atom
}

// Error is the package's boundary error type: every error that crosses
// out of xconn carries the call that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("xconn: %s: %v", e.Op, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

func xerr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// Dial opens the X connection named by display ("" for $DISPLAY) and reads
// the first screen's root window and dimensions.
func Dial(display string) (*Conn, error) {
	xc, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, xerr("Dial", err)
	}

	setup := xproto.Setup(xc)
	if setup == nil || len(setup.Roots) < 1 {
		xc.Close()
		return nil, xerr("Dial", fmt.Errorf("no screens advertised by X server"))
	}
	screen := &setup.Roots[0]

	c := &Conn{
		X:       xc,
		Root:    screen.Root,
		Screen:  screen,
		ScreenW: int(screen.WidthInPixels),
		ScreenH: int(screen.HeightInPixels),
		atoms:   make(map[string]xproto.Atom, 32),
	}

	return c, nil
}

// Close releases the X connection.
func (c *Conn) Close() {
	c.X.Close()
}

// Atom interns (and caches) an atom by name. Callers at startup treat an
// error as fatal; event handlers simply skip the property on error.
func (c *Conn) Atom(name string) (xproto.Atom, error) {
	if id, ok := c.atoms[name]; ok {
		return id, nil
	}

	reply, err := xproto.InternAtom(c.X, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, xerr("Atom", err)
	}
	c.atoms[name] = reply.Atom
	return reply.Atom, nil
}

// MustAtom is Atom but fatal on error, for the startup-only atom table
// build where an interning failure means the X connection is unusable.
func (c *Conn) MustAtom(name string) xproto.Atom {
	id, err := c.Atom(name)
	if err != nil {
		log.Fatalf("xconn: cannot intern atom %q: %v", name, err)
	}
	return id
}

// NextEvent blocks for the next X event. It is the single suspension point
// of the whole process. X protocol errors arrive through the same channel
// (xgb multiplexes errors and events onto one queue); callers check
// IsProtocolError on the returned error to tell a swallowable protocol
// error from a dead connection.
func (c *Conn) NextEvent() (xgb.Event, error) {
	ev, err := c.X.WaitForEvent()
	if ev == nil && err == nil {
		return nil, xerr("NextEvent", fmt.Errorf("connection closed"))
	}
	if err != nil {
		return nil, xerr("NextEvent", err)
	}
	return ev, nil
}

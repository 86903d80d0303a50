// Package wm is the event dispatcher: the main loop and a handler per X
// event type. Every handler follows the same shape: mutate the
// client/desktop model, ask the layout engine to recompute geometry, ask
// the focus package to reconcile focus and Z-order, then emit the status
// line.
package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	log "github.com/sirupsen/logrus"

	"kestrelwm/client"
	"kestrelwm/config"
	"kestrelwm/ewmh"
	"kestrelwm/focus"
	"kestrelwm/keybind"
	"kestrelwm/layout"
	"kestrelwm/status"
	"kestrelwm/xconn"
	"kestrelwm/xevent"
)

// WM holds every live piece of process state: the X connection, the
// cached atom tables, the resolved keyboard map, the client/desktop
// model, and the quit flag the main loop checks at each iteration
// boundary.
type WM struct {
	X     *xconn.Conn
	Atoms ewmh.Atoms
	Keys  *keybind.Keys
	Mgr   *client.Manager

	FocusCfg focus.Config
	Status   *status.Publisher

	QuitCode int
	quitting bool
}

// New builds a WM ready for Run. Every argument is already fully
// constructed (connection dialed, atoms loaded, keyboard map read,
// manager populated with its desktops) by cmd/kestrelwm's startup path.
func New(x *xconn.Conn, atoms ewmh.Atoms, keys *keybind.Keys, mgr *client.Manager, focusCfg focus.Config, pub *status.Publisher) *WM {
	return &WM{
		X:        x,
		Atoms:    atoms,
		Keys:     keys,
		Mgr:      mgr,
		FocusCfg: focusCfg,
		Status:   pub,
	}
}

// Run acquires the window manager role, installs grabs, and blocks in
// the single-threaded event loop until a quit action fires or the
// connection errors fatally. It returns the process exit code.
func (w *WM) Run() int {
	StartReaper()

	if err := w.X.ListenRoot(xevent.RootEventMask); err != nil {
		log.Fatalf("wm: cannot take SubstructureRedirect on the root (another window manager already running?): %v", err)
	}

	supported := []xproto.Atom{w.Atoms.Supported, w.Atoms.ActiveWindow, w.Atoms.WmState, w.Atoms.WmStateFullscreen}
	if err := ewmh.SupportedSet(w.X, w.Atoms, supported); err != nil {
		log.Warnf("wm: advertising _NET_SUPPORTED: %v", err)
	}

	w.Keys.GrabAll(w.X.Root, config.KeyBindings)
	w.publish()

	for !w.quitting {
		ev, err := w.X.NextEvent()
		if err != nil {
			if xe, ok := xconn.IsProtocolError(err); ok {
				xconn.HandleProtocolError(xe)
				continue
			}
			log.Errorf("wm: connection error, shutting down: %v", err)
			break
		}
		w.dispatch(ev)
	}

	return w.QuitCode
}

// dispatch routes one X event to its handler by concrete type.
func (w *WM) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		w.HandleMapRequest(e)
	case xproto.DestroyNotifyEvent:
		w.HandleDestroyNotify(e)
	case xproto.UnmapNotifyEvent:
		w.HandleUnmapNotify(e)
	case xproto.ConfigureRequestEvent:
		w.HandleConfigureRequest(e)
	case xproto.ClientMessageEvent:
		w.HandleClientMessage(e)
	case xproto.PropertyNotifyEvent:
		w.HandlePropertyNotify(e)
	case xproto.EnterNotifyEvent:
		w.HandleEnterNotify(e)
	case xproto.FocusInEvent:
		w.HandleFocusIn(e)
	case xproto.KeyPressEvent:
		w.HandleKeyPress(e)
	case xproto.ButtonPressEvent:
		w.HandleButtonPress(e)
	}
}

// layoutParams builds the geometry/config input the layout engine needs
// for d.
func (w *WM) layoutParams(d *client.Desktop) layout.Params {
	return layout.Params{
		ScreenW:      w.Mgr.ScreenW,
		UsableHeight: w.Mgr.UsableHeight(d),
		PanelOffset:  w.Mgr.PanelOffset(d),
		MasterSize:   d.MasterSize,
		Growth:       d.Growth,
		BorderWidth:  uint32(config.BorderWidth),
	}
}

// retileDesktop recomputes and applies placements for d. Float mode and
// empty desktops are the layout engine's own no-ops.
func (w *WM) retileDesktop(d *client.Desktop) {
	for _, p := range layout.Tile(d, w.layoutParams(d)) {
		cl := p.Client
		if err := w.X.MoveResizeWindow(cl.Win, p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H); err != nil {
			log.Debugf("wm: retile move/resize %d: %v", cl.Win, err)
		}
		if err := w.X.SetBorderWidth(cl.Win, int(p.Border)); err != nil {
			log.Debugf("wm: retile border %d: %v", cl.Win, err)
		}
		cl.X, cl.Y, cl.W, cl.H = p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H
	}
}

// retile re-tiles the globally current desktop.
func (w *WM) retile() {
	w.retileDesktop(w.Mgr.Current())
}

// refocusDesktop reconciles focus/borders/stacking on d for target.
func (w *WM) refocusDesktop(d *client.Desktop, target *client.Client) {
	focus.UpdateCurrent(w.X, w.Atoms, w.FocusCfg, d, target)
}

// refocus reconciles focus on the globally current desktop.
func (w *WM) refocus(target *client.Client) {
	w.refocusDesktop(w.Mgr.Current(), target)
}

// publish emits the status line.
func (w *WM) publish() {
	if err := w.Status.Emit(w.Mgr.Desktops, w.Mgr.CurrentDesktop); err != nil {
		log.Warnf("wm: status emit: %v", err)
	}
}

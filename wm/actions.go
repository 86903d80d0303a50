package wm

import (
	log "github.com/sirupsen/logrus"

	"kestrelwm/client"
	"kestrelwm/config"
	"kestrelwm/ewmh"
	"kestrelwm/icccm"
)

// dispatchAction invokes the action a fired KeyPress/ButtonPress binding
// names, against the globally current desktop.
func (w *WM) dispatchAction(action config.Action, arg int) {
	d := w.Mgr.Current()

	switch action {
	case config.ActionSpawn:
		w.Spawn(arg)

	case config.ActionKillClient:
		w.KillClient(d, d.Current)

	case config.ActionQuit:
		w.Quit(arg)

	case config.ActionGotoDesktop:
		w.ChangeDesktop(arg)

	case config.ActionLastDesktop:
		w.ChangeDesktop(w.Mgr.PreviousDesktop)

	case config.ActionClientToDesktop:
		w.ClientToDesktop(arg)

	case config.ActionSwitchMode:
		w.SwitchMode(client.Mode(arg))

	case config.ActionMoveUp:
		if d.Current != nil {
			d.MoveUp(d.Current)
			w.retile()
			w.publish()
		}

	case config.ActionMoveDown:
		if d.Current != nil {
			d.MoveDown(d.Current)
			w.retile()
			w.publish()
		}

	case config.ActionSwapMaster:
		if d.Current != nil {
			newCurrent := d.SwapMaster(d.Current)
			w.retile()
			w.refocus(newCurrent)
			w.publish()
		}

	case config.ActionNextWin:
		if d.Current != nil {
			w.refocus(d.CyclicNext(d.Current))
			w.publish()
		}

	case config.ActionPrevWin:
		if d.Current != nil {
			w.refocus(d.CyclicPrev(d.Current))
			w.publish()
		}

	case config.ActionResizeMaster:
		d.SetMasterSize(float64(arg) / 100)
		w.retile()
		w.publish()

	case config.ActionResizeStack:
		d.Growth += arg
		w.retile()
		w.publish()

	case config.ActionToggleFullscreen:
		if d.Current != nil {
			w.SetFullscreen(d, d.Current, !d.Current.Fullscreen)
		}

	case config.ActionFocusUrgent:
		w.FocusUrgent()

	case config.ActionTogglePanel:
		d.ShowPanel = !d.ShowPanel
		w.retile()
		w.publish()
	}
}

// ChangeDesktop switches the visible desktop to i. Mapping the incoming
// windows before unmapping the outgoing ones (current window first in,
// last out) avoids a blank-screen flicker between desktops.
func (w *WM) ChangeDesktop(i int) {
	if i < 0 || i >= len(w.Mgr.Desktops) || i == w.Mgr.CurrentDesktop {
		return
	}
	target := w.Mgr.Desktops[i]
	orig := w.Mgr.Current()

	if target.Current != nil {
		if err := w.X.MapWindow(target.Current.Win); err != nil {
			log.Debugf("wm: map %d: %v", target.Current.Win, err)
		}
	}
	for _, cl := range target.Clients() {
		if cl == target.Current {
			continue
		}
		if err := w.X.MapWindow(cl.Win); err != nil {
			log.Debugf("wm: map %d: %v", cl.Win, err)
		}
	}

	for _, cl := range orig.Clients() {
		if cl == orig.Current {
			continue
		}
		w.Mgr.MarkExpectedUnmap(cl.Win)
		if err := w.X.UnmapWindow(cl.Win); err != nil {
			log.Debugf("wm: unmap %d: %v", cl.Win, err)
		}
	}
	if orig.Current != nil {
		w.Mgr.MarkExpectedUnmap(orig.Current.Win)
		if err := w.X.UnmapWindow(orig.Current.Win); err != nil {
			log.Debugf("wm: unmap %d: %v", orig.Current.Win, err)
		}
	}

	w.Mgr.SelectDesktop(i)
	w.retile()
	w.refocus(target.Current)
	w.publish()
}

// ClientToDesktop moves the current client to desktop i, where it
// becomes that desktop's current. Its window is unmapped until the
// desktop is visited, unless FollowWindow switches there right away.
func (w *WM) ClientToDesktop(i int) {
	if i < 0 || i >= len(w.Mgr.Desktops) || i == w.Mgr.CurrentDesktop {
		return
	}
	d := w.Mgr.Current()
	cl := d.Current
	if cl == nil {
		return
	}
	target := w.Mgr.Desktops[i]

	needsRefocus, ok := d.RemoveClient(cl)
	if !ok {
		return
	}
	target.Attach(cl, config.AttachAside)
	target.Current = cl

	w.Mgr.MarkExpectedUnmap(cl.Win)
	if err := w.X.UnmapWindow(cl.Win); err != nil {
		log.Debugf("wm: unmap %d: %v", cl.Win, err)
	}

	w.refocusDesktop(d, needsRefocus)
	w.retile()

	if config.FollowWindow {
		w.ChangeDesktop(i)
	}
	w.publish()
}

// SwitchMode changes the current desktop's tiling mode. Selecting the
// mode that is already active clears the floating flag of every client
// that is neither transient nor fullscreen instead, pulling drag-floated
// windows back into the tiling.
func (w *WM) SwitchMode(m client.Mode) {
	d := w.Mgr.Current()
	if d.Mode == m {
		for _, cl := range d.Clients() {
			if !cl.Transient && !cl.Fullscreen {
				cl.Floating = false
			}
		}
	} else {
		d.Mode = m
	}
	w.retile()
	w.refocus(d.Current)
	w.publish()
}

// SetFullscreen toggles cl's fullscreen state. Entering fullscreen never
// overwrites cl.X/Y/W/H, so leaving it restores a floating client's
// prior placement for free; a tileable client instead gets its geometry
// from the following retileDesktop.
func (w *WM) SetFullscreen(d *client.Desktop, cl *client.Client, on bool) {
	if cl.Fullscreen == on {
		return
	}
	cl.Fullscreen = on
	if err := ewmh.SetFullscreenState(w.X, w.Atoms, cl.Win, on); err != nil {
		log.Debugf("wm: set _NET_WM_STATE on %d: %v", cl.Win, err)
	}

	if on {
		w.applyFullscreenGeometry(d, cl)
	} else if cl.ISFFT() {
		if err := w.X.MoveResizeWindow(cl.Win, cl.X, cl.Y, cl.W, cl.H); err != nil {
			log.Debugf("wm: restore floating geometry %d: %v", cl.Win, err)
		}
	}

	w.retileDesktop(d)
	w.refocusDesktop(d, d.Current)
	w.publish()
}

// KillClient closes cl: WM_DELETE_WINDOW if the client advertises it,
// else a forced kill, then drops the record.
func (w *WM) KillClient(d *client.Desktop, cl *client.Client) {
	if cl == nil {
		return
	}
	supports, err := icccm.SupportsDelete(w.X, cl.Win)
	if err == nil && supports {
		if err := icccm.SendDeleteWindow(w.X, cl.Win); err != nil {
			log.Debugf("wm: WM_DELETE_WINDOW to %d: %v", cl.Win, err)
		}
	} else if err := w.X.KillClient(cl.Win); err != nil {
		log.Debugf("wm: KillClient %d: %v", cl.Win, err)
	}
	w.removeClient(d, cl)
}

// FocusUrgent jumps to the first client carrying the urgent flag, in
// desktop index order, switching desktops if needed.
func (w *WM) FocusUrgent() {
	for i, d := range w.Mgr.Desktops {
		for _, cl := range d.Clients() {
			if !cl.Urgent {
				continue
			}
			if i != w.Mgr.CurrentDesktop {
				w.ChangeDesktop(i)
			}
			w.refocusDesktop(d, cl)
			w.publish()
			return
		}
	}
}

// Quit sets the loop's exit flag and the code it should return, consumed
// at the next iteration boundary.
func (w *WM) Quit(code int) {
	w.QuitCode = code
	w.quitting = true
}

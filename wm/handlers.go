package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	log "github.com/sirupsen/logrus"

	"kestrelwm/client"
	"kestrelwm/config"
	"kestrelwm/ewmh"
	"kestrelwm/icccm"
	"kestrelwm/mousebind"
	"kestrelwm/rules"
	"kestrelwm/xevent"
)

// HandleMapRequest manages a newly mapping window: resolve its app rule,
// add it to the target desktop, pick up transient/fullscreen hints, and
// map/focus it if its desktop is visible.
func (w *WM) HandleMapRequest(e xproto.MapRequestEvent) {
	if attrs, err := w.X.WindowAttributes(e.Window); err == nil && attrs.OverrideRedirect {
		return
	}
	if _, cl := w.Mgr.Find(e.Window); cl != nil {
		return
	}

	wc, err := icccm.GetWmClass(w.X, e.Window)
	if err != nil {
		log.Debugf("wm: WM_CLASS for %d: %v", e.Window, err)
	}

	targetIdx := w.Mgr.CurrentDesktop
	follow := false
	floating := false
	if rule, ok := rules.MatchAppRule(config.AppRules, wc); ok {
		if rule.Desktop >= 0 && rule.Desktop < len(w.Mgr.Desktops) {
			targetIdx = rule.Desktop
		}
		follow = rule.Follow
		floating = rule.Floating
	}

	target := w.Mgr.Desktops[targetIdx]
	cl := target.AddWindow(e.Window, config.AttachAside)
	cl.Floating = floating

	if x, y, width, height, err := w.X.WindowGeometry(e.Window); err == nil {
		cl.X, cl.Y, cl.W, cl.H = x, y, width, height
	}
	if tf, err := icccm.WmTransientFor(w.X, e.Window); err == nil && tf != 0 {
		cl.Transient = true
		cl.Floating = true
	}
	if fs, err := ewmh.WmStateHasFullscreen(w.X, w.Atoms, e.Window); err == nil && fs {
		cl.Fullscreen = true
	}

	evMask := xevent.ClientEventMask
	if config.FollowMouse {
		evMask |= xevent.ClientEnterMask
	}
	if err := w.X.Listen(e.Window, evMask); err != nil {
		log.Debugf("wm: listen on %d: %v", e.Window, err)
	}
	mousebind.GrabAll(w.X, e.Window, config.ButtonBindings)

	switch {
	case targetIdx == w.Mgr.CurrentDesktop:
		w.retileDesktop(target)
		if err := w.X.MapWindow(e.Window); err != nil {
			log.Debugf("wm: map %d: %v", e.Window, err)
		}
		w.refocusDesktop(target, cl)
	case follow:
		w.ChangeDesktop(targetIdx)
		w.refocusDesktop(target, cl)
	default:
		// Stays unmapped until its desktop is visited.
	}
	w.publish()
}

// HandleDestroyNotify removes the client owning a destroyed window.
func (w *WM) HandleDestroyNotify(e xproto.DestroyNotifyEvent) {
	d, cl := w.Mgr.Find(e.Window)
	if cl == nil {
		return
	}
	w.removeClient(d, cl)
}

// HandleUnmapNotify implements the UnmapNotify half. Synthetic
// withdrawal is distinguished from the WM's own anti-flicker unmaps via
// Mgr.TookExpectedUnmap rather than the event's (unexposed) send_event
// bit; see client.Manager's selfUnmaps doc comment.
func (w *WM) HandleUnmapNotify(e xproto.UnmapNotifyEvent) {
	if w.Mgr.TookExpectedUnmap(e.Window) {
		return
	}
	d, cl := w.Mgr.Find(e.Window)
	if cl == nil {
		return
	}
	w.removeClient(d, cl)
}

// removeClient drops cl from its owning desktop d, reconciles d's focus
// if needed, then re-tiles the globally current desktop regardless of
// which desktop actually owned cl.
func (w *WM) removeClient(d *client.Desktop, cl *client.Client) {
	needsRefocus, ok := d.RemoveClient(cl)
	if ok {
		w.refocusDesktop(d, needsRefocus)
	}
	w.retile()
	w.publish()
}

// HandleConfigureRequest honors a client's geometry request verbatim
// unless the client is fullscreen, in which case the fullscreen geometry
// is re-applied over it.
func (w *WM) HandleConfigureRequest(e xproto.ConfigureRequestEvent) {
	d, cl := w.Mgr.Find(e.Window)

	if cl == nil || !cl.Fullscreen {
		mask, values := valuesFromConfigureRequest(e)
		if err := w.X.ConfigureWindowRaw(e.Window, mask, values); err != nil {
			log.Debugf("wm: forward ConfigureRequest for %d: %v", e.Window, err)
		}
		if cl != nil {
			applyConfigureRequestGeometry(cl, e)
		}
	} else {
		w.applyFullscreenGeometry(d, cl)
	}

	if d != nil {
		w.retileDesktop(d)
	} else {
		w.retile()
	}
}

// valuesFromConfigureRequest marshals a ConfigureRequestEvent's raw
// value_mask/fields back into ConfigureWindow's (mask, values) shape,
// preserving the ascending bitmask order (X, Y, Width, Height,
// BorderWidth, Sibling, StackMode) the X protocol requires values to
// appear in.
func valuesFromConfigureRequest(e xproto.ConfigureRequestEvent) (uint16, []uint32) {
	var mask uint16
	var values []uint32

	if e.ValueMask&xproto.ConfigWindowX != 0 {
		mask |= xproto.ConfigWindowX
		values = append(values, uint32(int32(e.X)))
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		mask |= xproto.ConfigWindowY
		values = append(values, uint32(int32(e.Y)))
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		mask |= xproto.ConfigWindowWidth
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		mask |= xproto.ConfigWindowHeight
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		mask |= xproto.ConfigWindowBorderWidth
		values = append(values, uint32(e.BorderWidth))
	}
	if e.ValueMask&xproto.ConfigWindowSibling != 0 {
		mask |= xproto.ConfigWindowSibling
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		mask |= xproto.ConfigWindowStackMode
		values = append(values, uint32(e.StackMode))
	}
	return mask, values
}

// applyConfigureRequestGeometry keeps a managed client's tracked
// geometry in sync with an honored request, so a floating client's
// cl.X/Y/W/H (the authority MoveResizeWindow otherwise never touches for
// tileable clients) reflects what the application actually asked for.
func applyConfigureRequestGeometry(cl *client.Client, e xproto.ConfigureRequestEvent) {
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		cl.X = int(e.X)
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		cl.Y = int(e.Y)
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		cl.W = int(e.Width)
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		cl.H = int(e.Height)
	}
}

// applyFullscreenGeometry covers the whole screen including the panel
// strip.
func (w *WM) applyFullscreenGeometry(d *client.Desktop, cl *client.Client) {
	if err := w.X.MoveResizeWindow(cl.Win, 0, 0, w.Mgr.ScreenW, w.Mgr.ScreenH+w.Mgr.PanelHeight); err != nil {
		log.Debugf("wm: reapply fullscreen geometry %d: %v", cl.Win, err)
	}
}

// HandleClientMessage handles the _NET_WM_STATE fullscreen toggle and
// _NET_ACTIVE_WINDOW focus requests.
func (w *WM) HandleClientMessage(e xproto.ClientMessageEvent) {
	data := e.Data.Data32

	switch e.Type {
	case w.Atoms.WmState:
		if !w.Atoms.ClientMessageTargetsFullscreen(data) {
			return
		}
		d, cl := w.Mgr.Find(e.Window)
		if cl == nil {
			return
		}
		on := cl.Fullscreen
		switch ewmh.StateAction(data[0]) {
		case ewmh.StateAdd:
			on = true
		case ewmh.StateRemove:
			on = false
		case ewmh.StateToggle:
			on = !cl.Fullscreen
		}
		w.SetFullscreen(d, cl, on)

	case w.Atoms.ActiveWindow:
		d, cl := w.Mgr.Find(e.Window)
		if cl == nil || d != w.Mgr.Current() {
			return
		}
		w.refocus(cl)
		w.publish()
	}
}

// HandlePropertyNotify tracks WM_HINTS urgency changes. The urgent flag
// only sticks on non-current clients; the focused window asking for
// attention is noise.
func (w *WM) HandlePropertyNotify(e xproto.PropertyNotifyEvent) {
	hintsAtom, err := w.X.Atom("WM_HINTS")
	if err != nil || e.Atom != hintsAtom {
		return
	}
	d, cl := w.Mgr.Find(e.Window)
	if cl == nil {
		return
	}
	urgent, err := icccm.WmHintsUrgent(w.X, e.Window)
	if err != nil {
		return
	}
	cl.Urgent = urgent && cl != d.Current
	w.publish()
}

// HandleEnterNotify focuses the entered client when focus-follows-mouse
// is on.
func (w *WM) HandleEnterNotify(e xproto.EnterNotifyEvent) {
	if !config.FollowMouse {
		return
	}
	if e.Mode != xproto.NotifyModeNormal || e.Detail == xproto.NotifyDetailInferior {
		return
	}
	d, cl := w.Mgr.Find(e.Event)
	if cl == nil {
		return
	}
	w.refocusDesktop(d, cl)
	w.publish()
}

// HandleFocusIn re-asserts focus on current if some other window stole
// it, defending against applications that SetInputFocus themselves.
func (w *WM) HandleFocusIn(e xproto.FocusInEvent) {
	cur := w.Mgr.Current().Current
	if cur == nil || e.Event == cur.Win {
		return
	}
	if err := w.X.SetInputFocus(cur.Win); err != nil {
		log.Debugf("wm: re-assert focus on %d: %v", cur.Win, err)
	}
}

// HandleKeyPress resolves a grabbed key chord to its bound action.
func (w *WM) HandleKeyPress(e xproto.KeyPressEvent) {
	b, ok := w.Keys.Lookup(config.KeyBindings, e.Detail, e.State)
	if !ok {
		return
	}
	w.dispatchAction(config.Action(b.Action), b.Arg)
}

// HandleButtonPress applies click-to-focus and then, if the binding
// names a drag action, starts the drag session.
func (w *WM) HandleButtonPress(e xproto.ButtonPressEvent) {
	d := w.Mgr.Current()
	_, clicked := w.Mgr.Find(e.Child)
	if clicked == nil {
		_, clicked = w.Mgr.Find(e.Event)
	}

	if config.ClickToFocus && clicked != nil && clicked != d.Current {
		w.refocusDesktop(d, clicked)
	}
	if err := xproto.AllowEventsChecked(w.X.X, xproto.AllowAsyncPointer, xproto.TimeCurrentTime).Check(); err != nil {
		log.Debugf("wm: AllowEvents: %v", err)
	}

	b, ok := mousebind.Lookup(config.ButtonBindings, w.Mgr.NumLockMask, e.Detail, e.State)
	if ok && clicked != nil {
		w.startDrag(d, clicked, b.Action)
	}
	w.publish()
}

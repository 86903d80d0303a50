package xconn

import (
	"github.com/BurntSushi/xgb/xproto"
)

// WindowGeometry reads win's current (x, y, width, height), used to seed
// a newly mapped client's floating geometry before any layout or user
// drag has touched it.
func (c *Conn) WindowGeometry(win xproto.Window) (x, y, w, h int, err error) {
	reply, err := xproto.GetGeometry(c.X, xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, 0, 0, xerr("WindowGeometry", err)
	}
	return int(reply.X), int(reply.Y), int(reply.Width), int(reply.Height), nil
}

// MoveResizeWindow places win at (x, y) with size (w, h). Zero and
// negative sizes are bumped to 1 because the wire format cannot carry
// them and the server would reject the request.
func (c *Conn) MoveResizeWindow(win xproto.Window, x, y, w, h int) error {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(int32(x)), uint32(int32(y)), uint32(w), uint32(h)}
	return xerr("MoveResizeWindow", xproto.ConfigureWindowChecked(c.X, win, mask, values).Check())
}

// ConfigureWindowRaw forwards a ConfigureRequest's value_mask and values
// verbatim, for honoring a client's own geometry request.
func (c *Conn) ConfigureWindowRaw(win xproto.Window, mask uint16, values []uint32) error {
	return xerr("ConfigureWindowRaw", xproto.ConfigureWindowChecked(c.X, win, mask, values).Check())
}

// SetBorderWidth sets a window's border width in pixels.
func (c *Conn) SetBorderWidth(win xproto.Window, px int) error {
	return xerr("SetBorderWidth", xproto.ConfigureWindowChecked(c.X, win,
		xproto.ConfigWindowBorderWidth, []uint32{uint32(px)}).Check())
}

// SetBorderColor paints a window's border a single pixel value.
func (c *Conn) SetBorderColor(win xproto.Window, pixel uint32) error {
	return xerr("SetBorderColor", xproto.ChangeWindowAttributesChecked(c.X, win,
		xproto.CwBorderPixel, []uint32{pixel}).Check())
}

// RestackWindows realizes a total Z-order, topmost first. The core X
// protocol has no bulk-restack request, so this walks the list front to
// back, placing each window directly below the one already placed above
// it.
func (c *Conn) RestackWindows(topToBottom []xproto.Window) error {
	for i := 1; i < len(topToBottom); i++ {
		mask := uint16(xproto.ConfigWindowSibling | xproto.ConfigWindowStackMode)
		values := []uint32{uint32(topToBottom[i-1]), uint32(xproto.StackModeBelow)}
		if err := xproto.ConfigureWindowChecked(c.X, topToBottom[i], mask, values).Check(); err != nil {
			return xerr("RestackWindows", err)
		}
	}
	return nil
}

// MapWindow / UnmapWindow / DestroyWindow are thin, checked wrappers.
func (c *Conn) MapWindow(win xproto.Window) error {
	return xerr("MapWindow", xproto.MapWindowChecked(c.X, win).Check())
}

func (c *Conn) UnmapWindow(win xproto.Window) error {
	return xerr("UnmapWindow", xproto.UnmapWindowChecked(c.X, win).Check())
}

func (c *Conn) DestroyWindow(win xproto.Window) error {
	return xerr("DestroyWindow", xproto.DestroyWindowChecked(c.X, win).Check())
}

func (c *Conn) KillClient(win xproto.Window) error {
	return xerr("KillClient", xproto.KillClientChecked(c.X, uint32(win)).Check())
}

// WindowAttributes reports override-redirect and mapped state.
func (c *Conn) WindowAttributes(win xproto.Window) (*xproto.GetWindowAttributesReply, error) {
	reply, err := xproto.GetWindowAttributes(c.X, win).Reply()
	if err != nil {
		return nil, xerr("WindowAttributes", err)
	}
	return reply, nil
}

// Listen asks X to report the given event masks for win.
func (c *Conn) Listen(win xproto.Window, evMasks ...uint32) error {
	var mask uint32
	for _, m := range evMasks {
		mask |= m
	}
	return xerr("Listen", xproto.ChangeWindowAttributesChecked(c.X, win,
		xproto.CwEventMask, []uint32{mask}).Check())
}

// ListenRoot sets the root window's event mask. Acquiring
// SubstructureRedirect here is the act of becoming the window manager;
// if another WM already holds it the server answers with a BadAccess and
// the caller treats that as fatal.
func (c *Conn) ListenRoot(evMasks ...uint32) error {
	var mask uint32
	for _, m := range evMasks {
		mask |= m
	}
	return xerr("ListenRoot", xproto.ChangeWindowAttributesChecked(c.X, c.Root,
		xproto.CwEventMask, []uint32{mask}).Check())
}

// SetInputFocus focuses win with RevertToPointerRoot, so focus falls
// back to the pointer root rather than None if win goes away.
func (c *Conn) SetInputFocus(win xproto.Window) error {
	return xerr("SetInputFocus", xproto.SetInputFocusChecked(c.X,
		xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime).Check())
}

// SendClientMessage delivers a 32-bit-format ClientMessage to win without
// asking X to propagate it further, the shape WM_DELETE_WINDOW and
// _NET_WM_STATE notifications use.
func (c *Conn) SendClientMessage(win xproto.Window, msgType xproto.Atom, data [5]uint32) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   msgType,
		Data:   xproto.ClientMessageDataUnionData32New(data[:]),
	}
	return xerr("SendClientMessage", xproto.SendEventChecked(c.X, false, win,
		xproto.EventMaskNoEvent, string(ev.Bytes())).Check())
}

// ChangeProperty32 is the common case of replacing a property with a list
// of 32-bit values (used for _NET_ACTIVE_WINDOW, _NET_WM_STATE, _NET_SUPPORTED).
func (c *Conn) ChangeProperty32(win xproto.Window, prop, typ xproto.Atom, data []uint32) error {
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v >> 16)
		buf[4*i+3] = byte(v >> 24)
	}
	return xerr("ChangeProperty32", xproto.ChangePropertyChecked(c.X, xproto.PropModeReplace,
		win, prop, typ, 32, uint32(len(data)), buf).Check())
}

// DeleteProperty removes a property outright (used to clear
// _NET_ACTIVE_WINDOW on an empty desktop).
func (c *Conn) DeleteProperty(win xproto.Window, prop xproto.Atom) error {
	return xerr("DeleteProperty", xproto.DeletePropertyChecked(c.X, win, prop).Check())
}

// Package focus reconciles the focused client, border colors and widths,
// and window Z-order after any state change. Everything funnels through
// UpdateCurrent, a single recompute-everything call, which keeps the
// invariant simple: whatever the handlers did to the model, one call
// makes the server match it.
package focus

import (
	"github.com/BurntSushi/xgb/xproto"
	log "github.com/sirupsen/logrus"

	"kestrelwm/client"
	"kestrelwm/ewmh"
	"kestrelwm/mousebind"
	"kestrelwm/xconn"
)

// Config carries the border and click-to-focus policy inputs.
type Config struct {
	BorderWidth  uint32
	FocusColor   uint32
	UnfocusColor uint32
	ClickToFocus bool
}

// UpdateCurrent makes target the focused client on d and reconciles the
// server: it repoints Current/PrevFocus, sets input focus and
// _NET_ACTIVE_WINDOW, recolors and reborders every client, and submits
// the stacking order in one restack pass. Passing the current
// prev-focus rotates back to it; passing the current client is an
// idempotent repaint; passing nil on a non-empty desktop falls back to
// the head.
func UpdateCurrent(c *xconn.Conn, a ewmh.Atoms, cfg Config, d *client.Desktop, target *client.Client) {
	if d.Head == nil {
		d.Current = nil
		d.PrevFocus = nil
		if err := ewmh.ActiveWindowClear(c, a); err != nil {
			log.Debugf("focus: clear _NET_ACTIVE_WINDOW: %v", err)
		}
		return
	}

	switch {
	case target == d.PrevFocus:
		newCurrent := d.PrevFocus
		if newCurrent == nil {
			newCurrent = d.Head
		}
		d.PrevFocus = prevInList(d, newCurrent)
		d.Current = newCurrent
	case target != d.Current:
		d.PrevFocus = d.Current
		d.Current = target
	default:
		// target == d.Current: idempotent repaint, nothing to repoint.
	}

	if d.Current == nil {
		d.Current = d.Head
	}

	order := stackingOrder(d)
	reborder(c, cfg, d)

	if err := c.SetInputFocus(d.Current.Win); err != nil {
		log.Debugf("focus: SetInputFocus(%d): %v", d.Current.Win, err)
	}
	if err := ewmh.ActiveWindowSet(c, a, d.Current.Win); err != nil {
		log.Debugf("focus: set _NET_ACTIVE_WINDOW: %v", err)
	}

	if err := c.RestackWindows(order); err != nil {
		log.Debugf("focus: restack: %v", err)
	}

	if cfg.ClickToFocus {
		reclickGrab(c, d)
	}
}

// prevInList returns the list-previous of c on d, nil when c is head.
// The rotation clause needs the previous of a client that may not be
// d.Current, so this walks the public Clients() order.
func prevInList(d *client.Desktop, c *client.Client) *client.Client {
	if c == nil {
		return nil
	}
	var prev *client.Client
	for _, cur := range d.Clients() {
		if cur == c {
			return prev
		}
		prev = cur
	}
	return nil
}

// stackingOrder builds the top-to-bottom Z-order:
//
//  1. current, if floating or transient
//  2. all other floating/transient non-current clients
//  3. current, if tiled
//  4. current, if fullscreen
//  5. all other fullscreen clients
//  6. all remaining tiled clients
func stackingOrder(d *client.Desktop) []xproto.Window {
	all := d.Clients()
	cur := d.Current

	var floats, fulls, tiled []xproto.Window
	for _, cl := range all {
		if cl == cur {
			continue
		}
		switch {
		case cl.Fullscreen:
			fulls = append(fulls, cl.Win)
		case cl.Floating || cl.Transient:
			floats = append(floats, cl.Win)
		default:
			tiled = append(tiled, cl.Win)
		}
	}

	var order []xproto.Window
	if cur != nil && (cur.Floating || cur.Transient) {
		order = append(order, cur.Win)
		order = append(order, floats...)
	} else {
		// current is tiled or fullscreen (or absent): the floats and
		// transients stay above it, and current lands right before the
		// fullscreen/tiled tail.
		order = append(order, floats...)
		if cur != nil {
			order = append(order, cur.Win)
		}
	}
	order = append(order, fulls...)
	order = append(order, tiled...)
	return order
}

// borderWidth is 0 for a lone client, a fullscreen client, or a tileable
// client in monocle mode; otherwise the configured width.
func borderWidth(cfg Config, d *client.Desktop, cl *client.Client) uint32 {
	if d.Count() == 1 || cl.Fullscreen || (d.Mode == client.Monocle && !cl.ISFFT()) {
		return 0
	}
	return cfg.BorderWidth
}

// borderColor picks the focus color for the current client, the unfocus
// color for everyone else.
func borderColor(cfg Config, d *client.Desktop, cl *client.Client) uint32 {
	if cl == d.Current {
		return cfg.FocusColor
	}
	return cfg.UnfocusColor
}

// reborder applies border width/color to every client on d.
func reborder(c *xconn.Conn, cfg Config, d *client.Desktop) {
	for _, cl := range d.Clients() {
		if err := c.SetBorderWidth(cl.Win, int(borderWidth(cfg, d, cl))); err != nil {
			log.Debugf("focus: set border width %d: %v", cl.Win, err)
		}
		if err := c.SetBorderColor(cl.Win, borderColor(cfg, d, cl)); err != nil {
			log.Debugf("focus: set border color %d: %v", cl.Win, err)
		}
	}
}

// reclickGrab grabs Button1 on every non-current client and releases it
// on the current one, so clicking an unfocused window focuses it without
// the click reaching the application.
func reclickGrab(c *xconn.Conn, d *client.Desktop) {
	for _, cl := range d.Clients() {
		if cl == d.Current {
			mousebind.UngrabButton1(c, cl.Win)
		} else {
			mousebind.GrabButton1ForFocus(c, cl.Win)
		}
	}
}

// Package drag implements the modal pointer move/resize loop. It runs as
// a genuine nested event pump: the call stack can re-enter the event
// fetch safely, and only ever drags one window at a time, so there is no
// callback registry to thread through.
package drag

import (
	"github.com/BurntSushi/xgb/xproto"
	log "github.com/sirupsen/logrus"

	"kestrelwm/mousebind"
	"kestrelwm/xconn"
)

// Forwarder lets drag hand ConfigureRequest/MapRequest events it sees
// during the modal loop back to the dispatcher's regular handlers, so
// new windows appearing mid-drag still get managed.
type Forwarder interface {
	HandleConfigureRequest(xproto.ConfigureRequestEvent)
	HandleMapRequest(xproto.MapRequestEvent)
}

// Geometry is the minimal window-rectangle shape drag needs; the caller
// fills it from a client.Client's X, Y, W, H.
type Geometry struct {
	X, Y, W, H int
}

// Run drives the modal loop for a single client window until
// ButtonRelease. kind is mousebind.ActionMove or ActionResize. minSize
// is MINWSZ, the smallest width/height a resize may shrink the window
// to. apply is called with each new geometry as the pointer moves; it's
// responsible for the actual MoveResizeWindow call (the caller already
// owns the client record and can update it in place).
func Run(c *xconn.Conn, fwd Forwarder, win xproto.Window, kind mousebind.Action, start Geometry, minSize int, apply func(Geometry)) {
	if kind == mousebind.ActionNone {
		return
	}

	glyph := uint16(xconn.CursorFleur)
	if kind == mousebind.ActionResize {
		glyph = xconn.CursorBottomRightCorner
		xproto.WarpPointer(c.X, 0, win, 0, 0, 0, 0, int16(start.W), int16(start.H))
	}

	cursor, err := c.CreateCursor(glyph)
	if err != nil {
		log.Warnf("drag: cursor creation failed: %v", err)
	}
	grabMask := uint16(xproto.EventMaskButtonRelease | xproto.EventMaskButtonMotion | xproto.EventMaskPointerMotion)
	_, err = xproto.GrabPointer(c.X, false, c.Root, grabMask,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, cursor, xproto.TimeCurrentTime).Reply()
	if err != nil {
		log.Warnf("drag: pointer grab failed: %v", err)
		return
	}
	defer xproto.UngrabPointer(c.X, xproto.TimeCurrentTime)

	originPointer, err := xproto.QueryPointer(c.X, c.Root).Reply()
	if err != nil {
		return
	}
	startRootX, startRootY := int(originPointer.RootX), int(originPointer.RootY)

	for {
		ev, xerr := c.NextEvent()
		if xerr != nil {
			if xe, ok := xconn.IsProtocolError(xerr); ok {
				xconn.HandleProtocolError(xe)
				continue
			}
			return
		}

		switch e := ev.(type) {
		case xproto.MotionNotifyEvent:
			dx := int(e.RootX) - startRootX
			dy := int(e.RootY) - startRootY
			apply(nextGeometry(kind, start, dx, dy, minSize))

		case xproto.ButtonReleaseEvent:
			return

		case xproto.ConfigureRequestEvent:
			fwd.HandleConfigureRequest(e)
		case xproto.MapRequestEvent:
			fwd.HandleMapRequest(e)

		default:
			_ = e
		}
	}
}

func nextGeometry(kind mousebind.Action, start Geometry, dx, dy, minSize int) Geometry {
	g := start
	switch kind {
	case mousebind.ActionMove:
		g.X = start.X + dx
		g.Y = start.Y + dy
	case mousebind.ActionResize:
		g.W = start.W + dx
		g.H = start.H + dy
		if g.W < minSize {
			g.W = minSize
		}
		if g.H < minSize {
			g.H = minSize
		}
	}
	return g
}

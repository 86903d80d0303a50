package xconn

import (
	"errors"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	log "github.com/sirupsen/logrus"
)

// IsProtocolError reports whether err is an asynchronous X protocol error
// (as opposed to a connection-fatal I/O error). xgb multiplexes errors and
// events onto the same WaitForEvent() queue; protocol errors satisfy
// xgb.Error, connection failures do not. Unwraps the facade's Error
// wrapper, so NextEvent's return feeds straight in.
func IsProtocolError(err error) (xgb.Error, bool) {
	var xe xgb.Error
	if errors.As(err, &xe) {
		return xe, true
	}
	return nil, false
}

// IsExpectedRace reports whether an X protocol error is one of the
// harmless races with window destruction: BadWindow anywhere, BadMatch
// on SetInputFocus/ConfigureWindow, BadDrawable on drawing ops (CopyArea,
// PolySegment, PolyFillRectangle, PolyText8), BadAccess on
// GrabKey/GrabButton. A window can die between the event
// that named it and our request touching it; the follow-up
// DestroyNotify converges the state.
func IsExpectedRace(xe xgb.Error) bool {
	switch e := xe.(type) {
	case xproto.WindowError:
		return true
	case xproto.MatchError:
		// SetInputFocus (42), ConfigureWindow (12)
		return e.MajorOpcode == 42 || e.MajorOpcode == 12
	case xproto.DrawableError:
		// CopyArea (62), PolySegment (66), PolyFillRectangle (70), PolyText8 (74)
		return e.MajorOpcode == 62 || e.MajorOpcode == 66 || e.MajorOpcode == 70 || e.MajorOpcode == 74
	case xproto.AccessError:
		// GrabKey (33), GrabButton (28)
		return e.MajorOpcode == 33 || e.MajorOpcode == 28
	default:
		return false
	}
}

// HandleProtocolError handles one asynchronous X error: silently drop
// expected races, log everything else and continue (there is no
// Xlib-style default handler to delegate to; xgb delivers errors as
// values rather than through a callback the library owns).
func HandleProtocolError(xe xgb.Error) {
	if IsExpectedRace(xe) {
		log.Debugf("xconn: ignored X protocol race: %v", xe)
		return
	}
	log.Warnf("xconn: X error: %v", xe)
}

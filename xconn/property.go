package xconn

import "github.com/BurntSushi/xgb/xproto"

// GetProperty abstracts the messiness of calling xproto.GetProperty,
// requesting the whole value in one round trip. "No such property" is a
// normal, non-error outcome (nil reply): most callers just want to know
// a hint is absent (e.g. no WM_TRANSIENT_FOR).
func (c *Conn) GetProperty(win xproto.Window, prop xproto.Atom) (*xproto.GetPropertyReply, error) {
	reply, err := xproto.GetProperty(c.X, false, win, prop,
		xproto.GetPropertyTypeAny, 0, (1<<32)-1).Reply()
	if err != nil {
		return nil, xerr("GetProperty", err)
	}
	if reply == nil || reply.Format == 0 {
		return nil, nil
	}
	return reply, nil
}

// Atoms32 decodes a property reply of format 32 into a slice of Atom.
func Atoms32(reply *xproto.GetPropertyReply) []xproto.Atom {
	if reply == nil {
		return nil
	}
	vals := reply.Value
	out := make([]xproto.Atom, 0, len(vals)/4)
	for len(vals) >= 4 {
		out = append(out, xproto.Atom(uint32(vals[0])|uint32(vals[1])<<8|uint32(vals[2])<<16|uint32(vals[3])<<24))
		vals = vals[4:]
	}
	return out
}

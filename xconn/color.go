package xconn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

// AllocNamedColor resolves a color against the default colormap and
// returns its pixel value, ready for SetBorderColor. Accepts both X color
// names ("steelblue") and "#rrggbb" hex strings; the server's
// AllocNamedColor request only understands the former, so hex is parsed
// here and routed through AllocColor. Callers at startup log.Fatal on
// error rather than degrade.
func (c *Conn) AllocNamedColor(name string) (uint32, error) {
	cmap := c.Screen.DefaultColormap

	if strings.HasPrefix(name, "#") {
		r, g, b, err := parseHexColor(name)
		if err != nil {
			return 0, xerr("AllocNamedColor", err)
		}
		reply, err := xproto.AllocColor(c.X, cmap, r, g, b).Reply()
		if err != nil {
			return 0, xerr("AllocNamedColor", err)
		}
		return reply.Pixel, nil
	}

	reply, err := xproto.AllocNamedColor(c.X, cmap, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, xerr("AllocNamedColor", err)
	}
	return reply.Pixel, nil
}

// parseHexColor turns "#rrggbb" into the 16-bit-per-channel values
// AllocColor wants, scaling each 8-bit component onto the full range.
func parseHexColor(s string) (r, g, b uint16, err error) {
	if len(s) != 7 {
		return 0, 0, 0, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad hex color %q: %v", s, err)
	}
	r = uint16(v>>16&0xff) * 0x101
	g = uint16(v>>8&0xff) * 0x101
	b = uint16(v&0xff) * 0x101
	return r, g, b, nil
}

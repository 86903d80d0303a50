package xconn

import "github.com/BurntSushi/xgb/xproto"

// Cursor glyph indices into the X core "cursor" font, the two shapes
// the drag session uses for move/resize feedback.
const (
	CursorFleur             = 52 // XC_fleur: four-way move arrow
	CursorBottomRightCorner = 14 // XC_bottom_right_corner: resize handle
)

// CreateCursor builds a glyph cursor from the core cursor font, plain
// black-on-white. kestrelwm never themes the pointer.
func (c *Conn) CreateCursor(glyph uint16) (xproto.Cursor, error) {
	fontID, err := c.X.NewId()
	if err != nil {
		return 0, xerr("CreateCursor", err)
	}
	cursorID, err := c.X.NewId()
	if err != nil {
		return 0, xerr("CreateCursor", err)
	}

	font := xproto.Font(fontID)
	cursor := xproto.Cursor(cursorID)

	if err := xproto.OpenFontChecked(c.X, font, uint16(len("cursor")), "cursor").Check(); err != nil {
		return 0, xerr("CreateCursor", err)
	}
	err = xproto.CreateGlyphCursorChecked(c.X, cursor, font, font,
		glyph, glyph+1,
		0, 0, 0,
		0xffff, 0xffff, 0xffff).Check()
	if err != nil {
		return 0, xerr("CreateCursor", err)
	}
	if err := xproto.CloseFontChecked(c.X, font).Check(); err != nil {
		return 0, xerr("CreateCursor", err)
	}

	return cursor, nil
}

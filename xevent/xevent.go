// Package xevent holds the event masks the dispatcher installs on the
// root window and on managed clients.
package xevent

import "github.com/BurntSushi/xgb/xproto"

// RootEventMask is installed on the root window at startup. Acquiring
// SubstructureRedirect here is what makes this process the window
// manager.
const RootEventMask = uint32(xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskPropertyChange)

// ClientEventMask is installed on every managed client so the dispatcher
// sees its property and focus-change events.
const ClientEventMask = uint32(xproto.EventMaskPropertyChange |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskFocusChange)

// ClientEnterMask is added to ClientEventMask when focus-follows-mouse
// is enabled.
const ClientEnterMask = uint32(xproto.EventMaskEnterWindow)

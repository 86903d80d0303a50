package client

import "github.com/BurntSushi/xgb/xproto"

// Manager holds the process-wide state: the fixed set of desktops, the
// current/previous desktop indices, and the screen geometry and colors
// every component reads. Per-desktop fields (Current, PrevFocus, Mode,
// MasterSize, Growth, ShowPanel) live on each Desktop rather than being
// copied into globals on every switch, so a desktop switch is just an
// index update.
type Manager struct {
	Desktops []*Desktop

	CurrentDesktop  int
	PreviousDesktop int

	ScreenW     int
	ScreenH     int // usable height: screen height minus panel strip
	PanelHeight int
	TopPanel    bool

	FocusColor   uint32
	UnfocusColor uint32

	NumLockMask uint16

	// selfUnmaps tracks windows this process is about to unmap itself
	// (the desktop switch's anti-flicker sequence). X delivers a
	// genuine UnmapNotify for every one of those, indistinguishable at
	// the wire level from a client's own withdrawal. xgb's generated
	// event structs don't carry the send_event flag through to typed
	// values (BurntSushi/xgb strips it during dispatch before building
	// the per-type struct), so kestrelwm tracks its own unmaps instead
	// of trying to read a bit the library doesn't expose. wm's
	// UnmapNotify handler checks MarkExpectedUnmap/TookExpectedUnmap
	// before treating an UnmapNotify as a real client withdrawal.
	selfUnmaps map[xproto.Window]int
}

// New builds a Manager with n desktops, all at defaultMode/defaultMasterSize.
func New(n int, defaultDesktop int, defaultMode Mode, defaultMasterSize float64, showPanel bool) *Manager {
	m := &Manager{
		Desktops:   make([]*Desktop, n),
		selfUnmaps: make(map[xproto.Window]int),
	}
	for i := range m.Desktops {
		m.Desktops[i] = &Desktop{
			Mode:       defaultMode,
			MasterSize: defaultMasterSize,
			ShowPanel:  showPanel,
		}
	}
	if defaultDesktop < 0 || defaultDesktop >= n {
		defaultDesktop = 0
	}
	m.CurrentDesktop = defaultDesktop
	m.PreviousDesktop = defaultDesktop
	return m
}

// Current returns the currently selected desktop.
func (m *Manager) Current() *Desktop {
	return m.Desktops[m.CurrentDesktop]
}

// SelectDesktop makes desktop i the selected one. Since Mode, MasterSize
// and the rest live directly on each Desktop, there is nothing to marshal
// except the index itself; this also maintains PreviousDesktop for the
// "last desktop" toggle.
func (m *Manager) SelectDesktop(i int) bool {
	if i < 0 || i >= len(m.Desktops) || i == m.CurrentDesktop {
		return false
	}
	m.PreviousDesktop = m.CurrentDesktop
	m.CurrentDesktop = i
	return true
}

// Find locates the desktop owning win, scanning every desktop; an event
// can name a window parked on a desktop that is not the current one.
func (m *Manager) Find(win xproto.Window) (*Desktop, *Client) {
	for _, d := range m.Desktops {
		for c := d.Head; c != nil; c = c.next {
			if c.Win == win {
				return d, c
			}
		}
	}
	return nil, nil
}

// MarkExpectedUnmap records that the dispatcher is about to unmap win
// itself, so the resulting UnmapNotify should not be treated as a
// client withdrawal.
func (m *Manager) MarkExpectedUnmap(win xproto.Window) {
	m.selfUnmaps[win]++
}

// TookExpectedUnmap consumes one expected-unmap credit for win, if any,
// reporting whether it found one. wm's UnmapNotify handler removes the
// client only when this returns false.
func (m *Manager) TookExpectedUnmap(win xproto.Window) bool {
	n, ok := m.selfUnmaps[win]
	if !ok || n == 0 {
		return false
	}
	if n == 1 {
		delete(m.selfUnmaps, win)
	} else {
		m.selfUnmaps[win] = n - 1
	}
	return true
}

// UsableHeight returns the height available for tiling on d: the screen
// height minus the panel strip, with the strip reclaimed when d has
// hidden its panel.
func (m *Manager) UsableHeight(d *Desktop) int {
	if d.ShowPanel {
		return m.ScreenH
	}
	return m.ScreenH + m.PanelHeight
}

// PanelOffset returns the vertical offset layouts start at: the panel
// height when a visible panel sits at the top of the screen, else 0.
func (m *Manager) PanelOffset(d *Desktop) int {
	if m.TopPanel && d.ShowPanel {
		return m.PanelHeight
	}
	return 0
}

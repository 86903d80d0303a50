// Package config is the compile-time configuration: desktop count and
// defaults, layout parameters, colors, behavior flags, and the
// key/button/app-rule tables. There is no file format and no parser;
// this package is the literal Go source a user edits and recompiles.
package config

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/driusan/dewm/keysym"

	"kestrelwm/client"
	"kestrelwm/keybind"
	"kestrelwm/mousebind"
	"kestrelwm/rules"
)

// Action names a key-bound operation the wm package's dispatcher
// understands. Button bindings use mousebind.Action instead (just
// ActionMove/ActionResize; drag sessions are the only thing a pointer
// button starts).
type Action string

const (
	ActionSpawn            Action = "spawn"
	ActionKillClient       Action = "kill_client"
	ActionQuit             Action = "quit"
	ActionGotoDesktop      Action = "goto_desktop"
	ActionLastDesktop      Action = "last_desktop"
	ActionClientToDesktop  Action = "client_to_desktop"
	ActionSwitchMode       Action = "switch_mode"
	ActionMoveUp           Action = "move_up"
	ActionMoveDown         Action = "move_down"
	ActionSwapMaster       Action = "swap_master"
	ActionNextWin          Action = "next_win"
	ActionPrevWin          Action = "prev_win"
	ActionResizeMaster     Action = "resize_master"
	ActionResizeStack      Action = "resize_stack"
	ActionToggleFullscreen Action = "toggle_fullscreen"
	ActionFocusUrgent      Action = "focusurgent"
	ActionTogglePanel      Action = "toggle_panel"
)

const (
	// Desktops is the fixed number of virtual desktops.
	Desktops = 5
	// DefaultDesktop is the desktop selected at startup.
	DefaultDesktop = 0
	// MasterSize is the master area's fraction of the long screen axis.
	MasterSize = 0.55
	// PanelHeight is the reserved panel strip in pixels.
	PanelHeight = 18
	// TopPanel pins the strip to the top of the screen; false means
	// bottom.
	TopPanel = true
	// ShowPanel is each desktop's initial panel visibility.
	ShowPanel = true
	// BorderWidth is the window border width in pixels.
	BorderWidth = 2
	// MinWsz is the minimum width/height a drag-resize may shrink a
	// window to.
	MinWsz = 50

	// FollowMouse enables focus-follows-mouse.
	FollowMouse = false
	// ClickToFocus makes clicking an unfocused window focus it.
	ClickToFocus = true
	// AttachAside appends new clients at the tail of the list instead
	// of making them the new master.
	AttachAside = true
	// FollowWindow makes moving a client to another desktop also switch
	// to that desktop.
	FollowWindow = false

	// FocusColor / UnfocusColor are border colors, resolved to pixel
	// values at startup via xconn.AllocNamedColor.
	FocusColor   = "#5f8787"
	UnfocusColor = "#444444"
)

// DefaultMode is every desktop's initial tiling mode.
var DefaultMode = client.Tile

// Commands holds the argv slices spawn bindings reference by index.
var Commands = [][]string{
	{"xterm"},
	{"dmenu_run"},
}

// mod4 (the "super"/"windows" key) is the primary modifier this table
// binds against, so bindings don't collide with application shortcuts.
const mod4 = xproto.ModMask4
const shift = xproto.ModMaskShift

// KeyBindings is the compile-time key binding table.
var KeyBindings = []keybind.Binding{
	{Mods: mod4 | shift, Sym: keysym.XK_Return, Action: string(ActionSpawn), Arg: 0},
	{Mods: mod4, Sym: keysym.XK_p, Action: string(ActionSpawn), Arg: 1},
	{Mods: mod4 | shift, Sym: keysym.XK_q, Action: string(ActionKillClient)},
	{Mods: mod4 | shift, Sym: keysym.XK_e, Action: string(ActionQuit), Arg: 0},

	{Mods: mod4, Sym: keysym.XK_j, Action: string(ActionNextWin)},
	{Mods: mod4, Sym: keysym.XK_k, Action: string(ActionPrevWin)},
	{Mods: mod4, Sym: keysym.XK_Return, Action: string(ActionSwapMaster)},
	{Mods: mod4 | shift, Sym: keysym.XK_j, Action: string(ActionMoveDown)},
	{Mods: mod4 | shift, Sym: keysym.XK_k, Action: string(ActionMoveUp)},

	{Mods: mod4, Sym: keysym.XK_h, Action: string(ActionResizeMaster), Arg: -5},
	{Mods: mod4, Sym: keysym.XK_l, Action: string(ActionResizeMaster), Arg: 5},
	{Mods: mod4 | shift, Sym: keysym.XK_h, Action: string(ActionResizeStack), Arg: -5},
	{Mods: mod4 | shift, Sym: keysym.XK_l, Action: string(ActionResizeStack), Arg: 5},

	{Mods: mod4, Sym: keysym.XK_t, Action: string(ActionSwitchMode), Arg: int(client.Tile)},
	{Mods: mod4, Sym: keysym.XK_m, Action: string(ActionSwitchMode), Arg: int(client.Monocle)},
	{Mods: mod4, Sym: keysym.XK_b, Action: string(ActionSwitchMode), Arg: int(client.Bstack)},
	{Mods: mod4, Sym: keysym.XK_g, Action: string(ActionSwitchMode), Arg: int(client.Grid)},
	{Mods: mod4, Sym: keysym.XK_f, Action: string(ActionToggleFullscreen)},

	{Mods: mod4, Sym: keysym.XK_u, Action: string(ActionFocusUrgent)},
	{Mods: mod4, Sym: keysym.XK_space, Action: string(ActionTogglePanel)},
	{Mods: mod4, Sym: keysym.XK_Tab, Action: string(ActionLastDesktop)},

	{Mods: mod4, Sym: keysym.XK_1, Action: string(ActionGotoDesktop), Arg: 0},
	{Mods: mod4, Sym: keysym.XK_2, Action: string(ActionGotoDesktop), Arg: 1},
	{Mods: mod4, Sym: keysym.XK_3, Action: string(ActionGotoDesktop), Arg: 2},
	{Mods: mod4, Sym: keysym.XK_4, Action: string(ActionGotoDesktop), Arg: 3},
	{Mods: mod4, Sym: keysym.XK_5, Action: string(ActionGotoDesktop), Arg: 4},

	{Mods: mod4 | shift, Sym: keysym.XK_1, Action: string(ActionClientToDesktop), Arg: 0},
	{Mods: mod4 | shift, Sym: keysym.XK_2, Action: string(ActionClientToDesktop), Arg: 1},
	{Mods: mod4 | shift, Sym: keysym.XK_3, Action: string(ActionClientToDesktop), Arg: 2},
	{Mods: mod4 | shift, Sym: keysym.XK_4, Action: string(ActionClientToDesktop), Arg: 3},
	{Mods: mod4 | shift, Sym: keysym.XK_5, Action: string(ActionClientToDesktop), Arg: 4},
}

// ButtonBindings is the compile-time button binding table.
var ButtonBindings = []mousebind.Binding{
	{Mods: mod4, Button: xproto.ButtonIndex1, Action: mousebind.ActionMove},
	{Mods: mod4, Button: xproto.ButtonIndex3, Action: mousebind.ActionResize},
}

// AppRules is the compile-time app-placement table. Substring matching
// is case-sensitive (see the rules package).
var AppRules = []rules.AppRule{
	{Substring: "Gimp", Desktop: -1, Floating: true},
	{Substring: "Zathura", Desktop: -1, Floating: false},
}

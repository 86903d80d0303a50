package keybind

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/driusan/dewm/keysym"
)

func TestLookupMasksLockNoise(t *testing.T) {
	k := &Keys{
		keycodes:    map[xproto.Keysym][]xproto.Keycode{keysym.XK_Return: {36}},
		NumLockMask: xproto.ModMask2,
	}
	bindings := []Binding{{Mods: xproto.ModMask4, Sym: keysym.XK_Return, Action: "spawn"}}

	b, ok := k.Lookup(bindings, 36, xproto.ModMask4|xproto.ModMask2|xproto.ModMaskLock)
	if !ok || b.Action != "spawn" {
		t.Fatalf("expected match despite NumLock+CapsLock noise, got ok=%v binding=%+v", ok, b)
	}

	if _, ok := k.Lookup(bindings, 36, xproto.ModMaskControl); ok {
		t.Fatalf("expected no match for wrong modifier")
	}
	if _, ok := k.Lookup(bindings, 37, xproto.ModMask4); ok {
		t.Fatalf("expected no match for wrong keycode")
	}
}

func TestLookupRequiresBoundModifier(t *testing.T) {
	k := &Keys{keycodes: map[xproto.Keysym][]xproto.Keycode{keysym.XK_j: {44}}}
	bindings := []Binding{{Mods: xproto.ModMask4, Sym: keysym.XK_j, Action: "next_win"}}

	if _, ok := k.Lookup(bindings, 44, 0); ok {
		t.Fatalf("expected bare keypress not to match a modified binding")
	}
}

func TestFindModifierMask(t *testing.T) {
	reply := &xproto.GetModifierMappingReply{
		KeycodesPerModifier: 2,
		Keycodes:            make([]xproto.Keycode, 16),
	}
	// NumLock keycode 77 sitting in the Mod2 column.
	reply.Keycodes[4*2] = 77

	if got := findModifierMask(reply, []xproto.Keycode{77}); got != xproto.ModMask2 {
		t.Fatalf("expected Mod2 mask, got %#x", got)
	}
	if got := findModifierMask(reply, []xproto.Keycode{99}); got != 0 {
		t.Fatalf("expected 0 for keycode absent from the modifier map, got %#x", got)
	}
}

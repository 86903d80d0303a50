package mousebind

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestLookupMatchesButtonAndMods(t *testing.T) {
	bindings := []Binding{
		{Mods: xproto.ModMask4, Button: xproto.ButtonIndex1, Action: ActionMove},
		{Mods: xproto.ModMask4, Button: xproto.ButtonIndex3, Action: ActionResize},
	}

	b, ok := Lookup(bindings, xproto.ModMask2, xproto.ButtonIndex3, xproto.ModMask4|xproto.ModMask2)
	if !ok || b.Action != ActionResize {
		t.Fatalf("expected resize binding despite NumLock noise, got ok=%v binding=%+v", ok, b)
	}

	if _, ok := Lookup(bindings, 0, xproto.ButtonIndex2, xproto.ModMask4); ok {
		t.Fatalf("expected no match for unbound button")
	}
	if _, ok := Lookup(bindings, 0, xproto.ButtonIndex1, 0); ok {
		t.Fatalf("expected plain unmodified click not to match")
	}
}

package client

import "testing"

func TestAddWindowHeadVsTail(t *testing.T) {
	d := &Desktop{}
	_ = d.AddWindow(1, false)
	b := d.AddWindow(2, false)
	if d.Head != b {
		t.Fatalf("attachAside=false: expected newest client as head, got %v want %v", d.Head.Win, b.Win)
	}

	d2 := &Desktop{}
	x := d2.AddWindow(1, true)
	_ = d2.AddWindow(2, true)
	if d2.Head != x {
		t.Fatalf("attachAside=true: expected first client to remain head")
	}
	if d2.Count() != 2 {
		t.Fatalf("expected 2 clients, got %d", d2.Count())
	}
}

func TestRemoveClientRepointsPrevFocus(t *testing.T) {
	d := &Desktop{}
	a := d.AddWindow(1, true)
	b := d.AddWindow(2, true)
	c := d.AddWindow(3, true)
	d.Current = b
	d.PrevFocus = a

	refocus, needs := d.RemoveClient(b)
	if !needs {
		t.Fatalf("expected refocus needed when removing current")
	}
	if refocus != a {
		t.Fatalf("expected PrevFocus (a) as refocus target, got %v", refocus)
	}
	if d.Head != a || a.next != c {
		t.Fatalf("expected list a->c after removing b")
	}
}

func TestRemoveClientNotOnDesktop(t *testing.T) {
	d := &Desktop{}
	other := &Client{Win: 99}
	if _, ok := d.RemoveClient(other); ok {
		t.Fatalf("expected false removing a client not on this desktop")
	}
}

func order(d *Desktop) []uint32 {
	var out []uint32
	for p := d.Head; p != nil; p = p.next {
		out = append(out, uint32(p.Win))
	}
	return out
}

func sameOrder(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMoveUpMoveDownRoundTrip(t *testing.T) {
	d := &Desktop{}
	d.AddWindow(1, true)
	d.AddWindow(2, true)
	c := d.AddWindow(3, true)

	before := order(d)
	d.MoveUp(c)
	d.MoveDown(c)
	after := order(d)
	if !sameOrder(before, after) {
		t.Fatalf("MoveUp then MoveDown: expected original order %v, got %v", before, after)
	}
}

func TestMoveUpHeadWrapsToTail(t *testing.T) {
	d := &Desktop{}
	a := d.AddWindow(1, true)
	d.AddWindow(2, true)
	d.AddWindow(3, true)

	d.MoveUp(a)
	got := order(d)
	want := []uint32{2, 3, 1}
	if !sameOrder(got, want) {
		t.Fatalf("expected head to wrap to tail, got %v want %v", got, want)
	}
}

func TestSwapMasterPromotesToHead(t *testing.T) {
	d := &Desktop{}
	_ = d.AddWindow(1, true)
	_ = d.AddWindow(2, true)
	c := d.AddWindow(3, true)

	newCurrent := d.SwapMaster(c)
	if newCurrent != d.Head || d.Head != c {
		t.Fatalf("expected c promoted to head, got head=%v", d.Head.Win)
	}
}

func TestSwapMasterHeadDemotesOne(t *testing.T) {
	d := &Desktop{}
	a := d.AddWindow(1, true)
	b := d.AddWindow(2, true)

	newCurrent := d.SwapMaster(a)
	if newCurrent != b || d.Head != b {
		t.Fatalf("expected b promoted to head after demoting a, got head=%v", d.Head.Win)
	}
}

func TestCyclicNextPrevWrap(t *testing.T) {
	d := &Desktop{}
	a := d.AddWindow(1, true)
	b := d.AddWindow(2, true)

	if d.CyclicNext(b) != a {
		t.Fatalf("expected wrap to head from tail")
	}
	if d.CyclicPrev(a) != b {
		t.Fatalf("expected wrap to tail from head")
	}
}

func TestSetMasterSizeRejectsOutOfRange(t *testing.T) {
	d := &Desktop{MasterSize: 0.5}
	d.SetMasterSize(0.5)
	if d.MasterSize != 0.5 {
		t.Fatalf("expected rejection of push past 0.95, got %v", d.MasterSize)
	}
	d.SetMasterSize(-0.5)
	if d.MasterSize != 0.5 {
		t.Fatalf("expected rejection of push below 0.05, got %v", d.MasterSize)
	}
	d.SetMasterSize(0.1)
	if d.MasterSize != 0.6 {
		t.Fatalf("expected accepted delta to apply, got %v", d.MasterSize)
	}
}

func TestManagerFindScansEveryDesktop(t *testing.T) {
	m := New(2, 0, Tile, 0.55, true)
	c := m.Desktops[1].AddWindow(42, true)
	d, found := m.Find(42)
	if d != m.Desktops[1] || found != c {
		t.Fatalf("expected Find to locate client on non-current desktop")
	}
}

func TestManagerExpectedUnmapBookkeeping(t *testing.T) {
	m := New(1, 0, Tile, 0.55, true)
	if m.TookExpectedUnmap(7) {
		t.Fatalf("expected no credit before MarkExpectedUnmap")
	}
	m.MarkExpectedUnmap(7)
	if !m.TookExpectedUnmap(7) {
		t.Fatalf("expected credit after MarkExpectedUnmap")
	}
	if m.TookExpectedUnmap(7) {
		t.Fatalf("expected credit to be consumed exactly once")
	}
}

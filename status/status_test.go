package status

import (
	"bytes"
	"testing"

	"kestrelwm/client"
)

func TestEmitFormat(t *testing.T) {
	d0 := &client.Desktop{Mode: client.Tile}
	d0.AddWindow(1, true)
	d0.AddWindow(2, true)

	d1 := &client.Desktop{Mode: client.Monocle}

	var buf bytes.Buffer
	p := New(&buf)
	if err := p.Emit([]*client.Desktop{d0, d1}, 0); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	want := "0:2:0:1:0 1:0:1:0:0\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestEmitUrgentFlag(t *testing.T) {
	d0 := &client.Desktop{}
	c := d0.AddWindow(1, true)
	c.Urgent = true

	var buf bytes.Buffer
	p := New(&buf)
	if err := p.Emit([]*client.Desktop{d0}, 0); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	want := "0:1:0:1:1\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

package wm

import (
	log "github.com/sirupsen/logrus"

	"kestrelwm/client"
	"kestrelwm/config"
	"kestrelwm/drag"
	"kestrelwm/mousebind"
)

// startDrag runs a pointer move/resize session on cl. The client is
// floated first and the desktop re-tiled, so the remaining windows close
// the gap while the drag is still in progress.
func (w *WM) startDrag(d *client.Desktop, cl *client.Client, kind mousebind.Action) {
	if cl == nil || kind == mousebind.ActionNone {
		return
	}

	if cl.Fullscreen {
		w.SetFullscreen(d, cl, false)
	}
	cl.Floating = true
	w.retile()
	w.refocusDesktop(d, cl)

	start := drag.Geometry{X: cl.X, Y: cl.Y, W: cl.W, H: cl.H}
	drag.Run(w.X, w, cl.Win, kind, start, config.MinWsz, func(g drag.Geometry) {
		if err := w.X.MoveResizeWindow(cl.Win, g.X, g.Y, g.W, g.H); err != nil {
			log.Debugf("wm: drag move/resize %d: %v", cl.Win, err)
		}
		cl.X, cl.Y, cl.W, cl.H = g.X, g.Y, g.W, g.H
	})

	w.publish()
}

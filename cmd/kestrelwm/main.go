// Command kestrelwm runs the window manager against $DISPLAY. No flags
// besides -v/--version and no config file; configuration is compile-time
// in the config package.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"kestrelwm/client"
	"kestrelwm/config"
	"kestrelwm/ewmh"
	"kestrelwm/focus"
	"kestrelwm/keybind"
	"kestrelwm/status"
	"kestrelwm/wm"
	"kestrelwm/xconn"
)

// version is the banner -v/--version prints.
const version = "kestrelwm 0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := pflag.BoolP("version", "v", false, "print version and exit")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s\n", os.Args[0])
	}
	pflag.Parse()

	if *showVersion {
		fmt.Println(version)
		return 0
	}
	if pflag.NArg() > 0 {
		pflag.Usage()
		return 1
	}

	x, err := xconn.Dial("")
	if err != nil {
		log.Fatalf("kestrelwm: cannot open X display: %v", err)
	}
	defer x.Close()

	atoms := ewmh.LoadAtoms(x)

	keys, err := keybind.Load(x)
	if err != nil {
		log.Fatalf("kestrelwm: cannot load keyboard mapping: %v", err)
	}

	focusPixel, err := x.AllocNamedColor(config.FocusColor)
	if err != nil {
		log.Fatalf("kestrelwm: cannot allocate focus color %q: %v", config.FocusColor, err)
	}
	unfocusPixel, err := x.AllocNamedColor(config.UnfocusColor)
	if err != nil {
		log.Fatalf("kestrelwm: cannot allocate unfocus color %q: %v", config.UnfocusColor, err)
	}
	x.FocusColor = focusPixel
	x.UnfocusColor = unfocusPixel

	mgr := client.New(config.Desktops, config.DefaultDesktop, config.DefaultMode, config.MasterSize, config.ShowPanel)
	mgr.ScreenW = x.ScreenW
	mgr.ScreenH = x.ScreenH - config.PanelHeight
	mgr.PanelHeight = config.PanelHeight
	mgr.TopPanel = config.TopPanel
	mgr.FocusColor = focusPixel
	mgr.UnfocusColor = unfocusPixel
	mgr.NumLockMask = keys.NumLockMask

	focusCfg := focus.Config{
		BorderWidth:  uint32(config.BorderWidth),
		FocusColor:   focusPixel,
		UnfocusColor: unfocusPixel,
		ClickToFocus: config.ClickToFocus,
	}

	pub := status.New(os.Stdout)

	w := wm.New(x, atoms, keys, mgr, focusCfg, pub)
	return w.Run()
}

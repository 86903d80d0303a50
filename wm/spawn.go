package wm

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"kestrelwm/config"
)

// Spawn forks a new process running config.Commands[arg], setsid so it
// survives this process's controlling terminal, and lets the SIGCHLD
// reaper collect it. The X connection socket is opened close-on-exec,
// so the child never inherits it.
func (w *WM) Spawn(arg int) {
	if arg < 0 || arg >= len(config.Commands) {
		return
	}
	argv := config.Commands[arg]
	if len(argv) == 0 {
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil

	if err := cmd.Start(); err != nil {
		log.Warnf("wm: spawn %v: %v", argv, err)
		return
	}
	// The reaper (StartReaper) collects this child on SIGCHLD; the
	// parent never blocks on it.
}

// StartReaper installs the SIGCHLD auto-reap goroutine: waitpid in a
// loop with WNOHANG so zombies do not accumulate. This is the one piece
// of kestrelwm that runs outside the single-threaded event loop.
func StartReaper() {
	ch := make(chan os.Signal, 8)
	signal.Notify(ch, syscall.SIGCHLD)
	go func() {
		for range ch {
			for {
				var status syscall.WaitStatus
				pid, err := syscall.Wait4(-1, &status, syscall.WNOHANG, nil)
				if pid <= 0 || err != nil {
					break
				}
			}
		}
	}()
}

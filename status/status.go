// Package status emits the one-line desktop summary an external panel
// process reads from stdout: one ':'-separated record per desktop,
// re-emitted after any state change that could alter it.
package status

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"kestrelwm/client"
)

// Publisher writes status lines to an underlying writer, flushing after
// every emission so the panel never reads a partial line.
type Publisher struct {
	w *bufio.Writer
}

// New wraps w (typically os.Stdout) in a Publisher.
func New(w io.Writer) *Publisher {
	return &Publisher{w: bufio.NewWriter(w)}
}

// Emit writes one line describing every desktop, in the exact
// "idx:client_count:mode:is_current:has_urgent" record format, records
// space-separated.
func (p *Publisher) Emit(desktops []*client.Desktop, currentIdx int) error {
	records := make([]string, len(desktops))
	for i, d := range desktops {
		isCurrent := 0
		if i == currentIdx {
			isCurrent = 1
		}
		hasUrgent := 0
		if d.HasUrgent() {
			hasUrgent = 1
		}
		records[i] = fmt.Sprintf("%d:%d:%d:%d:%d", i, d.Count(), int(d.Mode), isCurrent, hasUrgent)
	}

	line := strings.Join(records, " ")
	if _, err := fmt.Fprintln(p.w, line); err != nil {
		return err
	}
	return p.w.Flush()
}

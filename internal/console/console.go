// Package console prints the short, prefixed status lines shown to the user
// while a conversion runs.
package console

import (
	"fmt"
	"io"
	"sync"
)

// MessageType selects the prefix of a status line.
type MessageType int

const (
	General MessageType = iota
	Info
	Error
)

var prefixes = map[MessageType]string{
	General: "[*] ",
	Info:    "[i] ",
	Error:   "[!] ",
}

// Format decorates message with the prefix for t.
func Format(message string, t MessageType) string {
	return prefixes[t] + message
}

// Reporter writes prefixed lines. Info and General lines go to out, Error lines
// to errOut. A quiet Reporter drops Info lines but still reports errors.
type Reporter struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

// NewReporter returns a Reporter writing to out and errOut.
func NewReporter(out, errOut io.Writer, quiet bool) *Reporter {
	return &Reporter{out: out, errOut: errOut, quiet: quiet}
}

// Infof prints an "[i]" line.
func (r *Reporter) Infof(format string, args ...any) {
	if r.quiet {
		return
	}
	r.println(r.out, Format(fmt.Sprintf(format, args...), Info))
}

// Generalf prints a "[*]" line.
func (r *Reporter) Generalf(format string, args ...any) {
	if r.quiet {
		return
	}
	r.println(r.out, Format(fmt.Sprintf(format, args...), General))
}

// Errorf prints an "[!]" line.
func (r *Reporter) Errorf(format string, args ...any) {
	r.println(r.errOut, Format(fmt.Sprintf(format, args...), Error))
}

func (r *Reporter) println(w io.Writer, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(w, line)
}

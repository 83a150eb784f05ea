package log

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Notice prefixes.
const (
	InfoPrefix = "[+]"
	WarnPrefix = "[!]"
)

// Notifier prints user-facing notices, one per line.
type Notifier struct {
	w    io.Writer
	info *color.Color
	warn *color.Color
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithoutColor disables ANSI colors regardless of the terminal.
func WithoutColor() NotifierOption {
	return func(n *Notifier) {
		n.info.DisableColor()
		n.warn.DisableColor()
	}
}

// NewNotifier creates a Notifier writing to w.
// Colors follow fatih/color's terminal detection unless WithoutColor is given.
func NewNotifier(w io.Writer, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		w:    w,
		info: color.New(color.FgGreen, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Infof prints an informational notice.
func (n *Notifier) Infof(format string, args ...any) {
	n.print(n.info, InfoPrefix, format, args...)
}

// Warnf prints a warning notice.
func (n *Notifier) Warnf(format string, args ...any) {
	n.print(n.warn, WarnPrefix, format, args...)
}

func (n *Notifier) print(c *color.Color, prefix, format string, args ...any) {
	// Write errors on a console stream are not actionable.
	_, _ = c.Fprint(n.w, prefix)
	_, _ = fmt.Fprintf(n.w, " %s\n", fmt.Sprintf(format, args...))
}

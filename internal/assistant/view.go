package assistant

import (
	"fmt"
	"io"
)

// View is the sink through which the assistant reports results and errors to the user.
type View interface {
	Display(message string)
}

// ConsoleView prints every message on its own line.
type ConsoleView struct {
	out io.Writer
}

// NewConsoleView returns a view writing to out.
func NewConsoleView(out io.Writer) *ConsoleView {
	return &ConsoleView{out: out}
}

// Display writes message followed by a newline.
func (v *ConsoleView) Display(message string) {
	fmt.Fprintln(v.out, message)
}

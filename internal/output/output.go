// Package output renders boards, move lists and game messages for the shell.
package output

import (
	"fmt"
	"io"
)

// DefaultLineLength is the width move lists are wrapped at.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// SetIndent sets the prefix written at the start of continuation lines.
func (o *OutputWriter) SetIndent(indent string) {
	o.indent = indent
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteList writes a label followed by the items, wrapping long lists with
// continuation lines indented under the first item.
func WriteList(w io.Writer, maxLineLength int, label string, items []string) {
	ow := NewOutputWriter(w, maxLineLength)
	ow.WriteNoSpace(label)
	ow.SetIndent("  ")
	for _, item := range items {
		ow.Write(item)
	}
	ow.NewLine()
}

package gen

import (
	"fmt"
	"strings"
)

// codeWriter accumulates generated text line by line.
type codeWriter struct {
	sb strings.Builder
}

func (w *codeWriter) line(s string) {
	w.sb.WriteString(s)
	w.sb.WriteByte('\n')
}

func (w *codeWriter) linef(format string, args ...any) {
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

// raw writes s as-is, adding a trailing newline if s lacks one.
func (w *codeWriter) raw(s string) {
	if s == "" {
		return
	}

	w.sb.WriteString(s)

	if !strings.HasSuffix(s, "\n") {
		w.sb.WriteByte('\n')
	}
}

func (w *codeWriter) blank() {
	w.sb.WriteByte('\n')
}

func (w *codeWriter) String() string {
	return w.sb.String()
}

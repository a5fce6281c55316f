package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gomarkdown/markdown"

	"github.com/tedmax100/counter-sweep/sweep"
)

const greeting = "Hello, Metis!"

func Greet(writer io.Writer) {
	fmt.Fprintln(writer, greeting)
}

// WriteTally writes a blank line followed by one line per divisor.
func WriteTally(writer io.Writer, t sweep.Tally) {
	fmt.Fprintln(writer)
	fmt.Fprintf(writer, "- Numbers divisible by two: %d\n", t.Two)
	fmt.Fprintf(writer, "- Numbers divisible by three: %d\n", t.Three)
	fmt.Fprintf(writer, "- Numbers divisible by five: %d\n", t.Five)
}

// Markdown returns the complete console report. The tally lines already form
// a markdown list.
func Markdown(t sweep.Tally) string {
	var buf bytes.Buffer
	Greet(&buf)
	WriteTally(&buf, t)
	return buf.String()
}

// HTML renders the report as an HTML fragment.
func HTML(t sweep.Tally) []byte {
	return markdown.ToHTML([]byte(Markdown(t)), nil, nil)
}

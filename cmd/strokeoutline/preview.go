package main

import (
	"fmt"
	"html"
	"io"

	"github.com/gogpu/outline"
)

// writePreview writes an SVG document that draws the filled outline in
// gray with the source path stroked on top in translucent red, so the two
// can be compared by eye.
func writePreview(w io.Writer, viewBox, src string, s outline.Stroke, out string) {
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s">`+"\n", html.EscapeString(viewBox))
	fmt.Fprintf(w, `  <path d="%s" fill="#888" fill-rule="nonzero"/>`+"\n", html.EscapeString(out))
	fmt.Fprintf(w, `  <path d="%s" fill="none" stroke="red" stroke-opacity="0.5" stroke-width="%g" stroke-linecap="%s" stroke-linejoin="%s"/>`+"\n",
		html.EscapeString(src), s.Width, s.Cap, s.Join)
	fmt.Fprintln(w, `</svg>`)
}

package stacks

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/adventofcode/pkg/crates"
)

// Options configures diagram generation.
type Options struct {
	// Title is drawn above the yard when non-empty.
	Title string

	// HighlightTops fills the top item of every stack.
	HighlightTops bool
}

const (
	topFill   = "#f2c14e"
	itemFill  = "white"
	emptyMark = "&#8709;"
)

// ToDOT converts a yard to Graphviz DOT source.
// Items are labelled with fmt's default formatting; runes print as characters.
func ToDOT[T any](y *crates.Yard[T], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Yard {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\", fontsize=18];\n")
	buf.WriteString("  nodesep=0.2;\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  labelloc=t;\n  label=%q;\n", opts.Title)
	}
	buf.WriteString("\n")

	snap := y.Snapshot()
	buf.WriteString("  { rank=same;")
	for i := range snap {
		fmt.Fprintf(&buf, " s%d;", i+1)
	}
	buf.WriteString(" }\n")

	for i, items := range snap {
		fmt.Fprintf(&buf, "  s%d [label=<%s>];\n", i+1, fmtTable(i+1, items, opts))
	}

	// Invisible edges keep the columns in index order.
	for i := 1; i < len(snap); i++ {
		fmt.Fprintf(&buf, "  s%d -> s%d [style=invis];\n", i, i+1)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtTable[T any](index int, items []T, opts Options) string {
	var b bytes.Buffer
	b.WriteString(`<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="2">`)
	if len(items) == 0 {
		fmt.Fprintf(&b, `<TR><TD BORDER="0">%s</TD></TR>`, emptyMark)
	}
	for j := len(items) - 1; j >= 0; j-- {
		fill := itemFill
		if opts.HighlightTops && j == len(items)-1 {
			fill = topFill
		}
		fmt.Fprintf(&b, `<TR><TD BGCOLOR="%s">%s</TD></TR>`, fill, html.EscapeString(label(items[j])))
	}
	fmt.Fprintf(&b, `<TR><TD BORDER="0"><B>%d</B></TD></TR>`, index)
	b.WriteString(`</TABLE>`)
	return b.String()
}

func label(v any) string {
	if r, ok := v.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(v)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// viewBox so the SVG scales in browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// Package render turns stack yards into pictures.
//
// The [stacks] subpackage draws a yard as Graphviz DOT and renders it to SVG.
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg):
//
//	dot := stacks.ToDOT(y, stacks.Options{})
//	svg, err := stacks.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [stacks]: github.com/matzehuels/adventofcode/pkg/render/stacks
package render

// Package stacks draws a stack yard as a Graphviz diagram.
//
// Every stack becomes one column: a table node whose rows list the items from
// top to bottom, with the stack's 1-based index underneath. Columns are laid
// out left to right in index order.
//
//	dot := stacks.ToDOT(y, stacks.Options{Title: "after 4 moves"})
//	svg, err := stacks.RenderSVG(ctx, dot)
//
// For PDF or PNG output, pass the SVG to render.ToPDF or render.ToPNG.
package stacks

package stacks

import (
	"strings"
	"testing"

	"github.com/matzehuels/adventofcode/pkg/crates"
)

func sample() *crates.Yard[rune] {
	return crates.ParseLayout([]string{"ZN", "MCD", "P"})
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sample(), Options{})

	if !strings.HasPrefix(dot, "digraph Yard {") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, want := range []string{"s1 [label=<", "s2 [label=<", "s3 [label=<", "s1 -> s2 [style=invis]", "rank=same; s1; s2; s3;"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
	if strings.Contains(dot, topFill) {
		t.Error("ToDOT() highlighted tops without HighlightTops")
	}
}

func TestToDOT_TopFirst(t *testing.T) {
	dot := ToDOT(sample(), Options{})
	line := dot[strings.Index(dot, "s2 [label="):]
	line = line[:strings.Index(line, "\n")]

	d, c, m := strings.Index(line, ">D<"), strings.Index(line, ">C<"), strings.Index(line, ">M<")
	if d < 0 || c < 0 || m < 0 || d > c || c > m {
		t.Errorf("stack 2 rows not listed top to bottom: %s", line)
	}
}

func TestToDOT_Options(t *testing.T) {
	dot := ToDOT(sample(), Options{Title: "step 0", HighlightTops: true})

	if !strings.Contains(dot, `label="step 0"`) {
		t.Error("ToDOT() missing title")
	}
	if got := strings.Count(dot, topFill); got != 3 {
		t.Errorf("highlighted %d tops, want 3", got)
	}
}

func TestToDOT_EmptyStack(t *testing.T) {
	y := crates.New[rune](2)
	_ = y.Init(1, []rune("A"))

	dot := ToDOT(y, Options{HighlightTops: true})
	if !strings.Contains(dot, emptyMark) {
		t.Error("ToDOT() did not mark the empty stack")
	}
	if got := strings.Count(dot, topFill); got != 1 {
		t.Errorf("highlighted %d tops, want 1", got)
	}
}

func TestToDOT_Escapes(t *testing.T) {
	y := crates.New[string](1)
	_ = y.Init(1, []string{"<&>"})

	dot := ToDOT(y, Options{})
	if !strings.Contains(dot, "&lt;&amp;&gt;") {
		t.Errorf("item label not escaped: %s", dot)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{'Z', "Z"},
		{7, "7"},
		{"crate", "crate"},
	}
	for _, tt := range tests {
		if got := label(tt.in); got != tt.want {
			t.Errorf("label(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))

	if !strings.Contains(got, `viewBox="0 0 62.00 116.00" width="62" height="116"`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if !strings.HasSuffix(got, "<g/></svg>") {
		t.Errorf("normalizeViewBox() dropped content: %s", got)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() changed an SVG without viewBox")
	}
}

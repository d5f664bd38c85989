package tui

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdownParser = goldmark.New().Parser()

// renderMarkdown formats post content for the terminal. The goldmark AST
// is walked directly; HTML output is of no use on a terminal.
func renderMarkdown(source string) string {
	src := []byte(source)
	doc := markdownParser.Parse(text.NewReader(src))

	r := mdRenderer{src: src}
	r.blocks(doc)
	return strings.TrimRight(r.out.String(), "\n")
}

type mdRenderer struct {
	src []byte
	out strings.Builder
}

func (r *mdRenderer) blocks(parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		r.block(n)
	}
}

func (r *mdRenderer) block(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		r.out.WriteString(mdHeadingStyle.Render(r.inline(n)))
		r.out.WriteString("\n\n")

	case *ast.Paragraph:
		r.out.WriteString(r.inline(n))
		r.out.WriteString("\n\n")

	case *ast.TextBlock:
		// tight list items
		r.out.WriteString(r.inline(n))
		r.out.WriteString("\n")

	case *ast.List:
		r.list(n)
		r.out.WriteString("\n")

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		for _, line := range r.lines(n) {
			r.out.WriteString("    ")
			r.out.WriteString(mdCodeStyle.Render(line))
			r.out.WriteString("\n")
		}
		r.out.WriteString("\n")

	case *ast.Blockquote:
		inner := r.sub(n)
		for _, line := range strings.Split(inner, "\n") {
			r.out.WriteString(mdQuoteStyle.Render("│ " + line))
			r.out.WriteString("\n")
		}
		r.out.WriteString("\n")

	case *ast.ThematicBreak:
		r.out.WriteString(uiDivider)
		r.out.WriteString("\n\n")

	case *ast.HTMLBlock:
		for _, line := range r.lines(n) {
			r.out.WriteString(line)
			r.out.WriteString("\n")
		}

	default:
		r.blocks(n)
	}
}

func (r *mdRenderer) list(list *ast.List) {
	number := list.Start
	if number == 0 {
		number = 1
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		bullet := "• "
		if list.IsOrdered() {
			bullet = strconv.Itoa(number) + ". "
			number++
		}

		lines := strings.Split(r.sub(item), "\n")
		indent := strings.Repeat(" ", len([]rune(bullet)))
		for i, line := range lines {
			if i == 0 {
				r.out.WriteString(bullet)
			} else if line != "" {
				r.out.WriteString(indent)
			}
			r.out.WriteString(line)
			r.out.WriteString("\n")
		}
	}
}

// sub renders the children of n on their own and trims trailing blank lines.
func (r *mdRenderer) sub(n ast.Node) string {
	inner := mdRenderer{src: r.src}
	inner.blocks(n)
	return strings.TrimRight(inner.out.String(), "\n")
}

func (r *mdRenderer) lines(n ast.Node) []string {
	segments := n.Lines()
	out := make([]string, 0, segments.Len())
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(r.src)), "\n"))
	}
	return out
}

func (r *mdRenderer) inline(parent ast.Node) string {
	var b strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(r.src))
			switch {
			case n.HardLineBreak():
				b.WriteString("\n")
			case n.SoftLineBreak():
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(n.Value)
		case *ast.CodeSpan:
			b.WriteString(mdCodeStyle.Render(r.inline(n)))
		case *ast.Emphasis:
			if n.Level >= 2 {
				b.WriteString(mdStrongStyle.Render(r.inline(n)))
			} else {
				b.WriteString(mdEmphStyle.Render(r.inline(n)))
			}
		case *ast.Link:
			label := r.inline(n)
			b.WriteString(label)
			if dest := string(n.Destination); dest != "" && dest != label {
				b.WriteString(" (" + dest + ")")
			}
		case *ast.AutoLink:
			b.Write(n.URL(r.src))
		case *ast.Image:
			b.WriteString("[image: " + r.inline(n) + "]")
		case *ast.RawHTML:
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				b.Write(seg.Value(r.src))
			}
		default:
			b.WriteString(r.inline(n))
		}
	}
	return b.String()
}

package compose

import (
	"html"
	"strings"
)

type nodeKind int

const (
	kindBox nodeKind = iota
	kindText
	kindImage
)

// Node is one element of a composed page: a flex box, a text run or an
// image. Layouts build trees of these; the renderer turns the tree into
// HTML that Chrome prints to A4.
type Node struct {
	kind     nodeKind
	Style    Style
	Text     string
	Src      string
	Children []*Node
}

// Box creates a container node. Nil children (suppressed facts, hidden
// sections) are dropped so call sites can pass conditionals straight through.
func Box(s Style, children ...*Node) *Node {
	n := &Node{kind: kindBox, Style: s}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func Text(s Style, text string) *Node {
	return &Node{kind: kindText, Style: s, Text: text}
}

func Image(s Style, src string) *Node {
	return &Node{kind: kindImage, Style: s, Src: src}
}

// Append adds non-nil children and returns the receiver.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func (n *Node) writeHTML(b *strings.Builder) {
	switch n.kind {
	case kindImage:
		b.WriteString(`<img src="`)
		b.WriteString(html.EscapeString(n.Src))
		b.WriteString(`" style="`)
		b.WriteString(n.Style.css(false))
		b.WriteString(`">`)
	case kindText:
		b.WriteString(`<div style="`)
		b.WriteString(n.Style.css(false))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString(`</div>`)
	default:
		b.WriteString(`<div style="`)
		b.WriteString(n.Style.css(true))
		b.WriteString(`">`)
		for _, c := range n.Children {
			c.writeHTML(b)
		}
		b.WriteString(`</div>`)
	}
}

// HTML renders the subtree as a fragment.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

// ImageSources collects every image src in document order.
func (n *Node) ImageSources() []string {
	var out []string
	n.walk(func(c *Node) {
		if c.kind == kindImage {
			out = append(out, c.Src)
		}
	})
	return out
}

// CountText returns how many text nodes equal s exactly.
func (n *Node) CountText(s string) int {
	count := 0
	n.walk(func(c *Node) {
		if c.kind == kindText && c.Text == s {
			count++
		}
	})
	return count
}

// ContainsText reports whether any text node equals s exactly.
func (n *Node) ContainsText(s string) bool {
	return n.CountText(s) > 0
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

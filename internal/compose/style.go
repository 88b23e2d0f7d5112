package compose

import (
	"fmt"
	"strings"
)

// Brand tokens shared by every layout so the sheets stay on-profile.
const (
	colorDark      = "#011627" // current header/footer
	colorLegacy    = "#00537c" // old solid blue header
	colorCyan      = "#009DE0"
	colorLime      = "#CED600"
	colorBody      = "#333333"
	colorMuted     = "#888888"
	colorFaintLine = "#eeeeee"
	colorCanvas    = "#f0f0f0"
	colorPlacehold = "#f9f9f9"
)

// Edges is padding/margin per side, in px.
type Edges struct {
	Top, Right, Bottom, Left float64
}

func pad(all float64) Edges { return Edges{all, all, all, all} }

// Border is a single-side border.
type Border struct {
	Width float64
	Color string
}

// Style is the subset of box/text styling the layouts use. Zero values are
// omitted from the emitted CSS.
type Style struct {
	Width     string
	Height    string
	MinHeight string
	Flex      string

	Direction string // "row" or "column"; boxes are always flex containers
	Wrap      bool
	Gap       float64
	Justify   string
	Align     string

	Padding Edges
	Margin  Edges

	Background string
	Color      string

	FontSize      float64
	Bold          bool
	Uppercase     bool
	LetterSpacing float64
	LineHeight    float64

	BorderTop    Border
	BorderRight  Border
	BorderBottom Border
	BorderLeft   Border
	BorderRadius float64

	ObjectFit string

	Position string
	Bottom   string
	Left     string
	Right    string
}

func (s Style) css(isBox bool) string {
	var b strings.Builder
	put := func(prop, val string) {
		if val != "" {
			b.WriteString(prop)
			b.WriteString(":")
			b.WriteString(val)
			b.WriteString(";")
		}
	}
	px := func(v float64) string { return fmt.Sprintf("%gpx", v) }

	if isBox {
		put("display", "flex")
		dir := s.Direction
		if dir == "" {
			dir = "column"
		}
		put("flex-direction", dir)
		if s.Wrap {
			put("flex-wrap", "wrap")
		}
		if s.Gap != 0 {
			put("gap", px(s.Gap))
		}
		put("justify-content", s.Justify)
		put("align-items", s.Align)
	}

	put("width", s.Width)
	put("height", s.Height)
	put("min-height", s.MinHeight)
	put("flex", s.Flex)
	put("position", s.Position)
	put("bottom", s.Bottom)
	put("left", s.Left)
	put("right", s.Right)

	if s.Padding != (Edges{}) {
		put("padding", fmt.Sprintf("%s %s %s %s", px(s.Padding.Top), px(s.Padding.Right), px(s.Padding.Bottom), px(s.Padding.Left)))
	}
	if s.Margin != (Edges{}) {
		put("margin", fmt.Sprintf("%s %s %s %s", px(s.Margin.Top), px(s.Margin.Right), px(s.Margin.Bottom), px(s.Margin.Left)))
	}

	put("background-color", s.Background)
	put("color", s.Color)
	if s.FontSize != 0 {
		put("font-size", px(s.FontSize))
	}
	if s.Bold {
		put("font-weight", "bold")
	}
	if s.Uppercase {
		put("text-transform", "uppercase")
	}
	if s.LetterSpacing != 0 {
		put("letter-spacing", px(s.LetterSpacing))
	}
	if s.LineHeight != 0 {
		put("line-height", fmt.Sprintf("%.4g", s.LineHeight))
	}

	border := func(side string, bd Border) {
		if bd.Width != 0 {
			put("border-"+side, fmt.Sprintf("%s solid %s", px(bd.Width), bd.Color))
		}
	}
	border("top", s.BorderTop)
	border("right", s.BorderRight)
	border("bottom", s.BorderBottom)
	border("left", s.BorderLeft)
	if s.BorderRadius != 0 {
		put("border-radius", px(s.BorderRadius))
	}
	put("object-fit", s.ObjectFit)

	return b.String()
}

// Text tokens reused verbatim across the project layouts.
var (
	styleTitle = Style{FontSize: 16, Bold: true, Color: colorDark, Margin: Edges{Bottom: 6}, Uppercase: true, LineHeight: 1.2}

	styleSubtitle = Style{FontSize: 10, Bold: true, Color: colorCyan, Margin: Edges{Bottom: 20}, Uppercase: true}

	styleSectionHeader = Style{FontSize: 11, Bold: true, Color: colorDark, Margin: Edges{Bottom: 15},
		BorderBottom: Border{Width: 2, Color: colorLime}, Padding: Edges{Bottom: 5}}

	styleBody = Style{FontSize: 9, LineHeight: 1.4, Color: colorBody}

	styleLabel = Style{FontSize: 7.5, Color: colorMuted, Uppercase: true, Bold: true, Margin: Edges{Bottom: 2}}

	styleValue = Style{FontSize: 9, Color: colorBody}
)

func sectionHeader(text string, marginBottom float64) *Node {
	s := styleSectionHeader
	s.Margin = Edges{Bottom: marginBottom}
	return Text(s, text)
}

func bodyBold(text string) *Node {
	s := styleBody
	s.Bold = true
	return Text(s, text)
}

package compose

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"prosjektbank/internal/domain"
)

// Branding is a palette + logo pairing. Which one applies follows from the
// layout id alone; there is no independent toggle.
type Branding struct {
	HeaderColor  string
	AccentWidth  float64
	AccentColor  string
	Logo         string
	LogoWidth    float64
	FooterHeight float64
}

var (
	currentBranding = Branding{
		HeaderColor:  colorDark,
		AccentWidth:  4,
		AccentColor:  colorLime,
		Logo:         "/omf-symbol.png",
		LogoWidth:    70,
		FooterHeight: 40,
	}
	legacyBranding = Branding{
		HeaderColor:  colorLegacy,
		Logo:         "/om-fjeld-logo-v2.png",
		LogoWidth:    80,
		FooterHeight: 40,
	}
)

// BrandingFor returns the branding family for a layout id.
func BrandingFor(id LayoutID) Branding {
	if id.Legacy() {
		return legacyBranding
	}
	return currentBranding
}

const footerSite = "www.omfjeld.no"

// ResolveImages applies the image fallback chain shared by every layout:
// explicit selection first, then the record's ordered images, then the
// legacy single-image field. The result is uncapped; each layout slices to
// its own maximum. An empty result means the layout renders its "no image"
// placeholder.
func ResolveImages(p *domain.Project, selected []string) []string {
	if len(selected) > 0 {
		return selected
	}
	if len(p.Images) > 0 {
		urls := make([]string, len(p.Images))
		for i, img := range p.Images {
			urls[i] = img.URL
		}
		return urls
	}
	if p.ImageURL != "" {
		return []string{p.ImageURL}
	}
	return nil
}

// resolveRef makes an image reference absolute against the asset base so the
// printed document never embeds a bare relative path.
func resolveRef(base, ref string) string {
	if ref == "" || base == "" {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(u).String()
}

func resolveAll(base string, refs []string) []string {
	if base == "" {
		return refs
	}
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = resolveRef(base, r)
	}
	return out
}

func brandedFrame(b Branding, docLabel string, body *Node) *Node {
	header := Box(Style{
		Height:       "60px",
		Background:   b.HeaderColor,
		Direction:    "row",
		Align:        "center",
		Justify:      "space-between",
		Padding:      Edges{Left: 40, Right: 40},
		BorderBottom: Border{Width: b.AccentWidth, Color: b.AccentColor},
	},
		Image(Style{Width: fmt.Sprintf("%gpx", b.LogoWidth), ObjectFit: "contain"}, b.Logo),
		Text(Style{Color: "#FFFFFF", FontSize: 10}, docLabel),
	)

	footer := Box(Style{
		Height:     fmt.Sprintf("%gpx", b.FooterHeight),
		Background: b.HeaderColor,
		Justify:    "center",
		Align:      "center",
	},
		Text(Style{Color: "#FFFFFF", FontSize: 8}, footerSite),
	)

	return Box(Style{Direction: "column", Background: "#FFFFFF", Height: "100%"},
		header, body, footer)
}

// AssembleProject builds the complete reference-sheet page for a project:
// branded header, the chosen layout's body, branded footer. selected is the
// caller's explicit image choice; assetBase resolves relative image paths.
func AssembleProject(p *domain.Project, o Options, layout LayoutID, selected []string, assetBase string) (*Node, error) {
	imgs := resolveAll(assetBase, ResolveImages(p, selected))
	branding := BrandingFor(layout)

	var body *Node
	switch layout {
	case LayoutStandard, LayoutStandardOld, LayoutStandard2, LayoutStandard3:
		body = standardBody(p, o, imgs, layout)
	case LayoutSingleImage:
		body = singleImageBody(p, o, imgs)
	case LayoutBottomHeavy:
		body = bottomHeavyBody(p, o, imgs)
	case LayoutTwoColumn:
		body = twoColumnBody(p, o, imgs)
	case LayoutGallery:
		body = galleryBody(p, o, imgs)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, layout)
	}

	branding.Logo = resolveRef(assetBase, branding.Logo)
	return brandedFrame(branding, "Prosjektreferanse", body), nil
}

// HTMLDocument wraps a composed page in a printable A4 document.
func HTMLDocument(title string, page *Node) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>`)
	b.WriteString(html.EscapeString(title))
	b.WriteString(`</title><style>`)
	b.WriteString(`@page{size:A4;margin:0}`)
	b.WriteString(`html,body{margin:0;padding:0;width:210mm;height:297mm}`)
	b.WriteString(`body{font-family:Helvetica,Arial,sans-serif;-webkit-print-color-adjust:exact}`)
	b.WriteString(`img{display:block}`)
	b.WriteString(`div{box-sizing:border-box}`)
	b.WriteString(`</style></head><body>`)
	b.WriteString(page.HTML())
	b.WriteString(`</body></html>`)
	return b.String()
}

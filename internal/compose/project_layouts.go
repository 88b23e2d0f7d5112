package compose

import (
	"fmt"

	"prosjektbank/internal/domain"
)

// Norwegian section labels shared by the project layouts.
const (
	labelFacts       = "Fakta"
	labelAbout       = "Om prosjektet"
	labelReference   = "Referanse"
	labelRelevance   = "Relevans"
	labelRole        = "Firmaets rolle:"
	labelChallenges  = "Utfordringer:"
	labelNoImage     = "Ingen bilde"
	labelCompanyRole = "Rolle på CV"
)

func capImages(imgs []string, max int) []string {
	if len(imgs) > max {
		return imgs[:max]
	}
	return imgs
}

// noImagePlaceholder is the explicit empty-slot block; layouts render it
// instead of silently dropping the image area.
func noImagePlaceholder(height string) *Node {
	s := Style{Width: "100%", Justify: "center", Align: "center", Background: colorPlacehold, Margin: Edges{Bottom: 10}}
	if height != "" {
		s.Height = height
	} else {
		s.Flex = "1"
		s.Margin = Edges{}
	}
	return Box(s, Text(Style{Color: "#cccccc"}, labelNoImage))
}

func coverImage(src string, height float64) *Node {
	return Image(Style{Width: "100%", Height: fmt.Sprintf("%gpx", height), ObjectFit: "cover", BorderRadius: 2}, src)
}

// factsColumn is the shared "Fakta" stack used by the sidebar layouts.
func factsColumn(p *domain.Project) []*Node {
	return []*Node{
		sectionHeader(labelFacts, 15),
		Fact("Sted", p.Location),
		Fact("Type bygg", p.Type),
		Fact("Tid", p.TimeFrame),
		Fact("Areal", areaValue(p.AreaM2)),
		Fact("Entreprise", p.ContractType),
		Fact("Utført av", p.PerformedBy),
		Fact("Miljøkrav", p.Certification),
	}
}

// contactSection renders the "Referanse" block. The header always prints
// when contact display is on; absent fields just leave no rows under it.
func contactSection(p *domain.Project, marginTop float64) *Node {
	return Box(Style{Margin: Edges{Top: marginTop}},
		sectionHeader(labelReference, 15),
		Fact("Byggherre", p.Client),
		Fact("Kontaktperson", p.ContactPerson),
		Fact("Epost", p.ContactEmail),
		Fact("Tlf", p.ContactPhone),
	)
}

func economySection(p *domain.Project, marginTop float64) *Node {
	return Box(Style{Margin: Edges{Top: marginTop}},
		Fact("Kontrakt", contractValue(p.ContractValueMNOK)),
	)
}

func titleBlock(p *domain.Project, subtitleMarginBottom float64) []*Node {
	sub := styleSubtitle
	sub.Margin = Edges{Bottom: subtitleMarginBottom}
	return []*Node{
		Text(styleTitle, p.Name),
		Text(sub, p.Location),
	}
}

func standardImageHeight(layout LayoutID, count int) float64 {
	if layout == LayoutStandard3 && count == 1 {
		return 200 // keeps a single wide photo from pushing facts off the page
	}
	switch count {
	case 1:
		return 350
	case 2:
		return 180
	}
	return 130
}

// rightColumnBusy reports whether the flowing right column will carry any
// relevance/role/challenges content. standard_2 keeps its description header
// inside the left column in that case to avoid colliding with those blocks.
func rightColumnBusy(p *domain.Project, o Options) bool {
	return (o.ShowRelevance && p.Relevance != "") ||
		(o.ShowRole && p.RoleDescription != "") ||
		(o.ShowChallenges && p.Challenges != "")
}

// standardBody covers standard, standard_old, standard_2 and standard_3.
// The variants differ only in palette (handled by the assembler), text
// splitting and where the description lives.
func standardBody(p *domain.Project, o Options, imgs []string, layout LayoutID) *Node {
	shouldSplit := layout == LayoutStandard2
	display := capImages(imgs, 3)
	h := standardImageHeight(layout, len(display))

	descCol1 := p.Description
	descCol2 := ""
	if shouldSplit {
		// Push roughly 70% into the wider left column so it fills its height.
		descCol1, descCol2 = SplitText(p.Description, 0.70)
	}

	imageBox := Box(Style{Direction: "column", Gap: 8, Margin: Edges{Bottom: 10}, Align: "flex-start"})
	for _, src := range display {
		imageBox.Append(coverImage(src, h))
	}
	if len(display) == 0 {
		imageBox.Append(noImagePlaceholder("200px"))
	}

	mainCol := Box(Style{Width: "60%", Padding: Edges{Right: 20}}).
		Append(titleBlock(p, 10)...).
		Append(imageBox)

	sideCol := Box(Style{Width: "40%", BorderLeft: Border{Width: 1, Color: colorFaintLine}, Padding: Edges{Left: 20}}).
		Append(factsColumn(p)...)
	if o.ShowEconomy {
		sideCol.Append(economySection(p, 10))
	}
	if o.ShowContact {
		sideCol.Append(contactSection(p, 10))
	}
	if layout == LayoutStandard3 && o.ShowDescription {
		sideCol.Append(Box(Style{Margin: Edges{Top: 10}},
			sectionHeader(labelAbout, 10),
			Text(styleBody, descCol1),
		))
	}

	page := Box(Style{Padding: Edges{Top: 40, Right: 40, Bottom: 20, Left: 40}, Flex: "1"},
		Box(Style{Direction: "row", Margin: Edges{Bottom: 10}}, mainCol, sideCol),
	)

	// Full-width description header only when the right column has nothing
	// that would collide with it; otherwise the header stays in the left
	// column below. Either way it prints exactly once.
	if shouldSplit && o.ShowDescription && !rightColumnBusy(p, o) {
		page.Append(Box(Style{Margin: Edges{Bottom: 10}}, sectionHeader(labelAbout, 0)))
	}

	if o.ShowDescription || o.ShowRelevance {
		left := Box(Style{Width: "60%", Padding: Edges{Right: 20}})
		if o.ShowDescription && layout != LayoutStandard3 {
			if !shouldSplit || rightColumnBusy(p, o) {
				left.Append(sectionHeader(labelAbout, 10))
			}
			left.Append(Text(styleBody, descCol1))
		}

		right := Box(Style{Width: "40%", Padding: Edges{Left: 20}})
		if o.ShowRelevance && p.Relevance != "" {
			right.Append(Box(Style{Margin: Edges{Bottom: 10}},
				sectionHeader(labelRelevance, 10),
				Text(styleBody, p.Relevance),
			))
		}
		if o.ShowDescription {
			if descCol2 != "" {
				s := styleBody
				s.Margin = Edges{Bottom: 10}
				right.Append(Text(s, descCol2))
			}
			if o.ShowRole && p.RoleDescription != "" {
				right.Append(Box(Style{Margin: Edges{Bottom: 10}},
					bodyBold(labelRole),
					Text(styleBody, p.RoleDescription),
				))
			}
			if o.ShowChallenges && p.Challenges != "" {
				right.Append(Box(Style{Margin: Edges{Bottom: 10}},
					bodyBold(labelChallenges),
					Text(styleBody, p.Challenges),
				))
			}
		}

		page.Append(Box(Style{Direction: "row", Flex: "1"}, left, right))
	}

	return page
}

// singleImageBody always shows at most one image, with every secondary
// section stacked in the right column.
func singleImageBody(p *domain.Project, o Options, imgs []string) *Node {
	display := capImages(imgs, 1)

	left := Box(Style{Width: "60%", Padding: Edges{Right: 20}}).Append(titleBlock(p, 10)...)
	imageBox := Box(Style{Margin: Edges{Bottom: 20}})
	if len(display) > 0 {
		imageBox.Append(coverImage(display[0], 350))
	} else {
		imageBox.Append(noImagePlaceholder("200px"))
	}
	left.Append(imageBox)
	if o.ShowDescription {
		left.Append(Box(Style{},
			sectionHeader(labelAbout, 6),
			Text(styleBody, p.Description),
		))
	}

	right := Box(Style{Width: "40%", BorderLeft: Border{Width: 1, Color: colorFaintLine}, Padding: Edges{Left: 20}}).
		Append(factsColumn(p)...)
	if o.ShowEconomy {
		right.Append(economySection(p, 10))
	}
	if o.ShowContact {
		right.Append(contactSection(p, 15))
	}
	if o.ShowRelevance && p.Relevance != "" {
		right.Append(Box(Style{Margin: Edges{Top: 15}},
			sectionHeader(labelRelevance, 6),
			Text(styleBody, p.Relevance),
		))
	}
	if o.ShowRole && p.RoleDescription != "" {
		right.Append(Box(Style{Margin: Edges{Top: 15}},
			bodyBold(labelRole),
			Text(styleBody, p.RoleDescription),
		))
	}
	if o.ShowChallenges && p.Challenges != "" {
		right.Append(Box(Style{Margin: Edges{Top: 15}},
			bodyBold(labelChallenges),
			Text(styleBody, p.Challenges),
		))
	}

	return Box(Style{Padding: Edges{Top: 40, Right: 40, Bottom: 60, Left: 40}, Flex: "1", Direction: "row"}, left, right)
}

// bottomHeavyBody fills the top half with up to two photos and splits the
// bottom half into text, facts and contact columns.
func bottomHeavyBody(p *domain.Project, o Options, imgs []string) *Node {
	display := capImages(imgs, 2)

	top := Box(Style{Height: "50%", Width: "100%", Direction: "row", Background: colorCanvas})
	for _, src := range display {
		w := "100%"
		if len(display) > 1 {
			w = "50%"
		}
		top.Append(Image(Style{Width: w, Height: "100%", ObjectFit: "cover"}, src))
	}
	if len(display) == 0 {
		top.Append(noImagePlaceholder(""))
	}

	textCol := Box(Style{Width: "50%"}).Append(
		Text(styleTitle, p.Name),
		Text(styleSubtitle, p.Location),
	)
	if o.ShowDescription {
		textCol.Append(Text(styleBody, p.Description))
	}

	factsCol := Box(Style{Width: "25%", BorderLeft: Border{Width: 1, Color: colorFaintLine}, Padding: Edges{Left: 20}},
		sectionHeader(labelFacts, 15),
		Fact("Sted", p.Location),
		Fact("Type bygg", p.Type),
		Fact("Tid", p.TimeFrame),
		Fact("Areal", areaValue(p.AreaM2)),
		Fact("Entreprise", p.ContractType),
		Fact("Utført av", p.PerformedBy),
	)
	if o.ShowEconomy {
		factsCol.Append(Fact("Kontrakt", contractValue(p.ContractValueMNOK)))
	}

	contactCol := Box(Style{Width: "25%", BorderLeft: Border{Width: 1, Color: colorFaintLine}, Padding: Edges{Left: 20}})
	if o.ShowContact {
		contactCol.Append(contactSection(p, 0))
	}

	bottom := Box(Style{Height: "50%", Padding: pad(40), Direction: "row", Gap: 30},
		textCol, factsCol, contactCol)

	return Box(Style{Flex: "1"}, top, bottom)
}

// twoColumnBody is a strict 50/50 page: photo strip left, everything else
// right.
func twoColumnBody(p *domain.Project, o Options, imgs []string) *Node {
	display := capImages(imgs, 3)

	left := Box(Style{Width: "50%", Height: "100%", Background: colorCanvas, Direction: "column"})
	for i, src := range display {
		s := Style{Width: "100%", Height: fmt.Sprintf("%g%%", 100/float64(len(display))), ObjectFit: "cover"}
		if i < len(display)-1 {
			s.BorderBottom = Border{Width: 2, Color: "#FFFFFF"}
		}
		left.Append(Image(s, src))
	}
	if len(display) == 0 {
		left.Append(noImagePlaceholder(""))
	}

	right := Box(Style{Width: "50%", Padding: pad(40)},
		Box(Style{Margin: Edges{Bottom: 20}},
			Text(styleTitle, p.Name),
			Text(styleSubtitle, p.Location),
		),
		Box(Style{Direction: "row", Gap: 20},
			Box(Style{Flex: "1"},
				sectionHeader(labelFacts, 15),
				Fact("Sted", p.Location),
				Fact("Type", p.Type),
				Fact("Tid", p.TimeFrame),
				Fact("Areal", areaValue(p.AreaM2)),
			),
			Box(Style{Flex: "1"},
				sectionHeader("Info", 15),
				Fact("Utført av", p.PerformedBy),
				func() *Node {
					if !o.ShowEconomy {
						return nil
					}
					return Fact("Kontrakt", contractValue(p.ContractValueMNOK))
				}(),
			),
		),
	)
	if o.ShowDescription {
		right.Append(Box(Style{Margin: Edges{Top: 20, Bottom: 20}}, Text(styleBody, p.Description)))
	}
	if o.ShowContact {
		right.Append(Box(Style{},
			sectionHeader(labelReference, 15),
			Fact("Byggherre", p.Client),
			Fact("Kontaktperson", p.ContactPerson),
			Fact("Epost", p.ContactEmail),
		))
	}

	return Box(Style{Flex: "1", Direction: "row"}, left, right)
}

// galleryBody leads with a 2x2 photo grid.
func galleryBody(p *domain.Project, o Options, imgs []string) *Node {
	display := capImages(imgs, 4)

	grid := Box(Style{Direction: "row", Wrap: true, Gap: 10, Height: "350px", Margin: Edges{Bottom: 30}})
	for _, src := range display {
		grid.Append(Image(Style{Width: "48%", Height: "48%", ObjectFit: "cover", BorderRadius: 2}, src))
	}
	if len(display) == 0 {
		grid.Append(noImagePlaceholder(""))
	}

	descCol := Box(Style{Width: "60%"})
	if o.ShowDescription {
		descCol.Append(Text(styleBody, p.Description))
	}

	factsCol := Box(Style{Width: "40%"},
		sectionHeader(labelFacts, 15),
		Fact("Sted", p.Location),
		Fact("Tid", p.TimeFrame),
		Fact("Areal", areaValue(p.AreaM2)),
		func() *Node {
			if !o.ShowEconomy {
				return nil
			}
			return Fact("Kontrakt", contractValue(p.ContractValueMNOK))
		}(),
	)
	if o.ShowContact {
		factsCol.Append(Box(Style{Margin: Edges{Top: 20}},
			sectionHeader(labelReference, 15),
			Fact("Byggherre", p.Client),
		))
	}

	return Box(Style{Padding: pad(40)},
		Box(Style{Margin: Edges{Bottom: 20}},
			Text(styleTitle, p.Name),
			Text(styleSubtitle, p.Location),
		),
		grid,
		Box(Style{Direction: "row", Gap: 40}, descCol, factsCol),
	)
}

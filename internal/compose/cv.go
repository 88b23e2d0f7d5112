package compose

import (
	"fmt"

	"prosjektbank/internal/domain"
)

// CV-specific text tokens; the CV sheet runs a notch smaller than the
// project sheets.
var (
	cvName = Style{FontSize: 18, Bold: true, Color: colorDark, Margin: Edges{Bottom: 2}}

	cvTitle = Style{FontSize: 9, Bold: true, Color: colorCyan, Uppercase: true, LetterSpacing: 1, Margin: Edges{Bottom: 20}}

	cvSectionHeader = Style{FontSize: 10, Bold: true, Color: colorDark, Uppercase: true,
		BorderBottom: Border{Width: 1, Color: colorLime}, Padding: Edges{Bottom: 2},
		Margin: Edges{Top: 15, Bottom: 10}}

	cvContactLabel = Style{FontSize: 6, Color: colorMuted, Uppercase: true, Bold: true, Margin: Edges{Bottom: 1}}
	cvContactValue = Style{FontSize: 8, Color: colorBody, Margin: Edges{Bottom: 8}}

	cvBody = Style{FontSize: 8, Color: colorBody, LineHeight: 1.4}
)

func cvSection(text string) *Node { return Text(cvSectionHeader, text) }

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// maxWorkExperiences caps the experience list so a dense CV still fits the
// single-page frame.
const maxWorkExperiences = 10

func cvLeftColumn(e *domain.Employee, assetBase string) *Node {
	col := Box(Style{Width: "32%", Padding: Edges{Right: 20}, BorderRight: Border{Width: 1, Color: colorFaintLine}})

	if e.ImageURL != "" {
		ring := Border{Width: 2, Color: colorLime}
		col.Append(Image(Style{
			Width: "120px", Height: "120px", BorderRadius: 60,
			Margin: Edges{Bottom: 20}, ObjectFit: "cover",
			BorderTop: ring, BorderRight: ring, BorderBottom: ring, BorderLeft: ring,
		}, resolveRef(assetBase, e.ImageURL)))
	}

	title := e.Title
	if title == "" {
		title = "Ansatt"
	}
	company := e.Company
	if company == "" {
		company = "Ø.M. Fjeld"
	}

	col.Append(
		Text(cvName, e.Name),
		Text(cvTitle, title),
		Box(Style{Margin: Edges{Bottom: 20}},
			cvSection("Kontakt"),
			Text(cvContactLabel, "Epost"),
			Text(cvContactValue, orDash(e.Email)),
			Text(cvContactLabel, "Telefon"),
			Text(cvContactValue, orDash(e.Phone)),
			Text(cvContactLabel, "Selskap"),
			Text(cvContactValue, company),
		),
	)

	if len(e.KeyCompetencies) > 0 {
		comp := Box(Style{Margin: Edges{Bottom: 15}}, cvSection("Nøkkelkompetanse"))
		for _, c := range e.KeyCompetencies {
			comp.Append(Box(Style{Direction: "row", Margin: Edges{Bottom: 3}},
				Text(Style{Color: colorLime, Margin: Edges{Right: 4}, FontSize: 8}, "•"),
				Text(Style{FontSize: 8, Color: "#444444"}, c),
			))
		}
		col.Append(comp)
	}

	col.Append(cvSection("Utdanning"))
	for _, edu := range e.Educations {
		col.Append(Box(Style{Margin: Edges{Bottom: 8}},
			Text(Style{FontSize: 8, Bold: true, Color: colorBody}, edu.Institution),
			Text(Style{FontSize: 7, Color: colorCyan}, edu.Degree),
			Text(Style{FontSize: 6, Color: "#999999"}, edu.TimeFrame),
		))
	}

	if len(e.Certifications) > 0 {
		col.Append(cvSection("Kurs og sertifiseringer"))
		for _, cert := range e.Certifications {
			label := cert.Name
			if cert.Year != "" {
				label = fmt.Sprintf("%s (%s)", cert.Name, cert.Year)
			}
			col.Append(Text(Style{FontSize: 7, Color: colorBody, Margin: Edges{Bottom: 3}}, label))
		}
	}

	col.Append(cvSection("Språk"))
	langs := Box(Style{Direction: "row", Wrap: true, Gap: 3})
	for _, lang := range e.Languages {
		langs.Append(Text(Style{FontSize: 7, Color: colorBody, Background: "#F0F0F0",
			Padding: Edges{Top: 1, Right: 3, Bottom: 1, Left: 3}, BorderRadius: 2}, lang))
	}
	col.Append(langs)

	return col
}

func cvProjectCard(m *domain.TeamMember) *Node {
	proj := m.Project
	if proj == nil {
		return nil
	}

	card := Box(Style{Padding: pad(12), Background: colorPlacehold, BorderRadius: 4,
		Margin: Edges{Bottom: 15}, BorderLeft: Border{Width: 3, Color: colorLime}},
		Box(Style{Direction: "row", Justify: "space-between", Align: "flex-start", Margin: Edges{Bottom: 4}},
			Text(Style{FontSize: 10, Bold: true, Color: colorDark, Width: "70%"}, proj.Name),
			Text(Style{FontSize: 8, Color: colorCyan, Bold: true}, proj.TimeFrame),
		),
	)

	gridItem := func(label, value string, accent bool) *Node {
		vs := Style{FontSize: 8, Color: colorBody}
		if accent {
			vs.Color = colorCyan
			vs.Bold = true
		}
		return Box(Style{Width: "50%", Margin: Edges{Bottom: 4}},
			Text(Style{FontSize: 6, Color: colorMuted, Uppercase: true, Bold: true}, label),
			Text(vs, orDash(value)),
		)
	}
	card.Append(Box(Style{Direction: "row", Wrap: true, Margin: Edges{Bottom: 8}},
		gridItem("Oppdragsgiver", proj.Client, false),
		gridItem(labelCompanyRole, m.Role, true),
		gridItem("Entrepriseform", proj.ContractType, false),
		gridItem("Type bygg", proj.Type, false),
	))

	projLabel := Style{FontSize: 6, Color: colorCyan, Uppercase: true, Bold: true, Margin: Edges{Top: 4, Bottom: 2}}
	projText := Style{FontSize: 8, Color: "#444444", LineHeight: 1.4}
	if m.CVRelevance != "" {
		card.Append(Box(Style{}, Text(projLabel, "Relevans"), Text(projText, m.CVRelevance)))
	}
	if m.RoleSummary != "" {
		card.Append(Box(Style{}, Text(projLabel, "Utfyllende om rolle"), Text(projText, m.RoleSummary)))
	}
	if m.ReferenceName != "" {
		ref := "Referanse: " + m.ReferenceName
		if m.ReferencePhone != "" {
			ref += " (" + m.ReferencePhone + ")"
		}
		card.Append(Box(Style{Margin: Edges{Top: 6}, BorderTop: Border{Width: 0.5, Color: "#CCCCCC"}, Padding: Edges{Top: 4}},
			Text(Style{FontSize: 7, Color: "#666666"}, ref),
		))
	}

	return card
}

func cvRightColumn(e *domain.Employee) *Node {
	col := Box(Style{Width: "68%", Padding: Edges{Left: 20}})

	if e.Bio != "" {
		profileHeader := cvSectionHeader
		profileHeader.Margin = Edges{Bottom: 10}
		col.Append(Box(Style{Margin: Edges{Bottom: 15}},
			Text(profileHeader, "Profil"),
			Text(cvBody, e.Bio),
		))
	}

	col.Append(cvSection("Arbeidserfaring"))
	exps := e.WorkExperiences
	if len(exps) > maxWorkExperiences {
		exps = exps[:maxWorkExperiences]
	}
	for _, exp := range exps {
		item := Box(Style{Margin: Edges{Bottom: 12}},
			Box(Style{Direction: "row", Justify: "space-between", Align: "flex-start", Margin: Edges{Bottom: 1}},
				Text(Style{FontSize: 9, Bold: true, Color: colorBody}, exp.Company),
				Text(Style{FontSize: 8, Color: colorCyan, Bold: true}, exp.TimeFrame),
			),
			Text(Style{FontSize: 8, Color: colorCyan, Bold: true, Margin: Edges{Bottom: 2}}, exp.Title),
		)
		if exp.Description != "" {
			item.Append(Text(Style{FontSize: 8, Color: "#555555", LineHeight: 1.3}, exp.Description))
		}
		col.Append(item)
	}

	col.Append(cvSection("Utvalgte Prosjekter"))
	for i := range e.TeamMemberships {
		col.Append(cvProjectCard(&e.TeamMemberships[i]))
	}

	return col
}

// AssembleCV builds the complete single-page CV sheet for an employee. CVs
// always carry the current branding.
func AssembleCV(e *domain.Employee, assetBase string) *Node {
	branding := currentBranding
	branding.Logo = resolveRef(assetBase, branding.Logo)
	branding.FooterHeight = 30

	body := Box(Style{Direction: "row", Padding: pad(40), Flex: "1"},
		cvLeftColumn(e, assetBase),
		cvRightColumn(e),
	)

	return brandedFrame(branding, "CURRICULUM VITAE", body)
}

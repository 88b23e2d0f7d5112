package main

import (
	"fmt"
	"os"
	"path/filepath"

	"prosjektbank/internal/compose"
	"prosjektbank/internal/domain"
)

// Renders a sample project through every layout and writes the HTML files so
// the markup can be inspected in a browser without a running server.
func main() {
	outDir := "sample-output"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(2)
	}

	area := 4200
	value := 312.5
	project := &domain.Project{
		ID:                1,
		Name:              "Kongsvinger ungdomsskole",
		Description:       "Ny ungdomsskole med flerbrukshall og uteområder. Prosjektet ble gjennomført som totalentreprise med tett samhandling med byggherre gjennom hele perioden, fra tidligfase til overlevering.",
		Type:              "Skole",
		Location:          "Kongsvinger",
		TimeFrame:         "Juni 2022 – desember 2024",
		ContractType:      "Totalentreprise",
		PerformedBy:       "Ø.M. Fjeld AS",
		Certification:     "BREEAM Very Good",
		Client:            "Kongsvinger kommune",
		RoleDescription:   "Totalentreprenør med ansvar for prosjektering og utførelse.",
		Relevance:         "Sammenlignbart skolebygg med tilsvarende arealer og entrepriseform.",
		Challenges:        "Byggearbeid tett på skole i full drift stilte strenge krav til sikkerhet og logistikk.",
		AreaM2:            &area,
		ContractValueMNOK: &value,
		ContactPerson:     "Kari Nordmann",
		ContactEmail:      "kari.nordmann@kongsvinger.kommune.no",
		ContactPhone:      "400 00 000",
		Images: []domain.ProjectImage{
			{ID: 1, URL: "/static/uploaded_images/sample_1.jpg"},
			{ID: 2, URL: "/static/uploaded_images/sample_2.jpg"},
			{ID: 3, URL: "/static/uploaded_images/sample_3.jpg"},
		},
	}

	opts := compose.DefaultOptions()
	opts.ShowRole = true
	opts.ShowRelevance = true
	opts.ShowChallenges = true

	for _, layout := range compose.Layouts {
		page, err := compose.AssembleProject(project, opts, layout, nil, "http://localhost:8000")
		if err != nil {
			fmt.Fprintf(os.Stderr, "assemble %s: %v\n", layout, err)
			os.Exit(2)
		}
		html := compose.HTMLDocument("Prosjektreferanse - "+project.Name, page)

		outFile := filepath.Join(outDir, fmt.Sprintf("reference_%s.html", layout))
		if err := os.WriteFile(outFile, []byte(html), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", outFile, err)
			os.Exit(2)
		}
		fmt.Printf("wrote %s\n", outFile)
	}
}

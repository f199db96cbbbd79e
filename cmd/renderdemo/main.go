package main

// Render sample documents through the full pipeline:
//   go run ./cmd/renderdemo -out ./out

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/encode"
	"cvbuilder-backend/docgen/model"
	"cvbuilder-backend/docgen/render"
)

func main() {
	outDir := flag.String("out", "./out", "output directory for generated documents")
	templateID := flag.String("template", "aether", "template id to render with")
	flag.Parse()

	tpl, err := catalog.Lookup(*templateID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unknown template %q\n", *templateID)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	jobs := []struct {
		kind    model.Kind
		base    string
		payload any
	}{
		{model.KindResume, "sample_resume", sampleResume()},
		{model.KindCoverLetter, "sample_cover_letter", sampleCoverLetter()},
	}

	for _, job := range jobs {
		if !tpl.Supports(job.kind) {
			fmt.Printf("skip %s: template %s does not support it\n", job.kind, tpl.ID)
			continue
		}
		raw, err := json.Marshal(job.payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal %s: %v\n", job.base, err)
			os.Exit(1)
		}
		for _, format := range tpl.Formats {
			path, err := renderOne(raw, job.kind, tpl, format, *outDir, job.base)
			if err != nil {
				fmt.Fprintf(os.Stderr, "render %s as %s: %v\n", job.base, format, err)
				os.Exit(1)
			}
			fmt.Printf("OK: wrote %s\n", path)
		}
	}
}

func renderOne(raw json.RawMessage, kind model.Kind, tpl catalog.Template, format, outDir, base string) (string, error) {
	content, err := model.Normalize(raw, kind)
	if err != nil {
		return "", err
	}
	doc, err := render.Render(content, tpl)
	if err != nil {
		return "", err
	}
	encoder, err := encode.ForFormat(format)
	if err != nil {
		return "", err
	}
	data, err := encoder.Encode(doc)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outDir, base+"."+encoder.Extension())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func sampleResume() model.ResumeContent {
	return model.ResumeContent{
		Header: model.ResumeHeader{
			Name:     "Jordan Lee",
			Title:    "Senior Backend Engineer",
			Email:    "jordan.lee@example.com",
			Phone:    "+1-555-0102",
			Location: "Austin, TX",
			Links: []string{
				"https://www.linkedin.com/in/jordanlee",
				"https://github.com/jordanlee",
			},
		},
		Summary: "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		Skills:  []string{"Go", "PostgreSQL", "Kubernetes", "AWS", "Terraform"},
		Experience: []model.ResumeExperience{
			{
				Company:  "Acme Logistics",
				Role:     "Senior Backend Engineer",
				Location: "Austin, TX",
				Start:    "2021-04",
				End:      "Present",
				Highlights: []string{
					"Designed a routing service that reduced shipment latency by 18%.",
					"Implemented distributed tracing to cut incident triage time by 35%.",
				},
			},
			{
				Company:  "Blue Harbor Systems",
				Role:     "Backend Engineer",
				Location: "Seattle, WA",
				Start:    "2018-01",
				End:      "2021-03",
				Highlights: []string{
					"Built event-driven ingestion pipelines for compliance data feeds.",
				},
			},
		},
		Education: []model.ResumeEducation{
			{
				Institution: "University of Texas at Austin",
				Degree:      "B.S.",
				Field:       "Computer Science",
				Start:       "2013",
				End:         "2017",
			},
		},
		Projects: []model.ResumeProject{
			{
				Name:        "opentrace-gw",
				Description: "Open-source tracing gateway for legacy services.",
			},
		},
	}
}

func sampleCoverLetter() model.CoverLetterContent {
	return model.CoverLetterContent{
		Sender: model.CoverLetterSender{
			Name:     "Jordan Lee",
			Email:    "jordan.lee@example.com",
			Phone:    "+1-555-0102",
			Location: "Austin, TX",
			JobTitle: "Senior Backend Engineer",
		},
		Recipient: model.CoverLetterRecipient{
			Name:    "Sam Rivera",
			Title:   "Engineering Manager",
			Company: "Northwind Cloud",
		},
		Content: model.CoverLetterBody{
			Introduction: "I am writing to apply for the Senior Backend Engineer position on your platform team.",
			Body: "At Acme Logistics I led the redesign of our routing services, cutting shipment latency by 18% while doubling throughput." +
				"\n\nI would bring the same focus on reliability and measurable outcomes to Northwind Cloud.",
			Closing: "Thank you for your time and consideration.",
		},
		Date: "2025-06-12",
	}
}

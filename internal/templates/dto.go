package templates

import "cvbuilder-backend/docgen/catalog"

type templateResponse struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Category    string   `json:"category"`
	Version     int      `json:"version"`
	Layout      string   `json:"layout"`
	Accent      string   `json:"accent"`
	Kinds       []string `json:"kinds"`
	Formats     []string `json:"formats"`
}

type listResponse struct {
	Templates []templateResponse `json:"templates"`
}

func toTemplateResponse(tpl catalog.Template) templateResponse {
	kinds := make([]string, 0, len(tpl.Kinds))
	for _, k := range tpl.Kinds {
		kinds = append(kinds, string(k))
	}
	return templateResponse{
		ID:          tpl.ID,
		DisplayName: tpl.DisplayName,
		Category:    tpl.Category,
		Version:     tpl.Version,
		Layout:      string(tpl.Layout),
		Accent:      tpl.Accent,
		Kinds:       kinds,
		Formats:     append([]string(nil), tpl.Formats...),
	}
}

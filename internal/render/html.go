// Package render turns a resume document into HTML using the user's selected
// template, produces a PDF from that HTML, and extracts a plain-text version
// for email bodies.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/dchen/career-portal/internal/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// templateData is the view model handed to the HTML templates.
type templateData struct {
	Doc             *types.ResumeDocument
	TechnicalSkills []types.Skill
	OtherSkills     []types.Skill
}

// Renderer renders resume documents with the embedded template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"dateRange": formatDateRange,
	}).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// TemplateNames returns the available template identifiers, sorted.
func (r *Renderer) TemplateNames() []string {
	var names []string
	for _, t := range r.templates.Templates() {
		if name, ok := strings.CutSuffix(t.Name(), ".html.tmpl"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// HTML renders the document with its selected template.
func (r *Renderer) HTML(doc *types.ResumeDocument) (string, error) {
	name := strings.TrimSpace(doc.SelectedTemplate)
	if name == "" {
		return "", fmt.Errorf("no template selected")
	}
	tmpl := r.templates.Lookup(name + ".html.tmpl")
	if tmpl == nil {
		return "", fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(r.TemplateNames(), ", "))
	}

	data := templateData{Doc: doc}
	for _, skill := range doc.Skills {
		if strings.EqualFold(strings.TrimSpace(skill.Category), "technical") {
			data.TechnicalSkills = append(data.TechnicalSkills, skill)
		} else {
			data.OtherSkills = append(data.OtherSkills, skill)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}

// formatDateRange renders "start – end" with "Present" for current positions.
func formatDateRange(start, end string, current bool) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if current || end == "" {
		end = "Present"
	}
	if start == "" {
		return end
	}
	return start + " – " + end
}

package rendering

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/jonathan/resume-tailor/internal/types"
)

//go:embed templates/*.tmpl
var bodyFS embed.FS

// bodies holds every parsed layout body. Parsing happens once; rendering is
// a pure function of (record, template id) afterwards.
var bodies = template.Must(template.New("layouts").ParseFS(bodyFS, "templates/*.tmpl"))

// layoutByID maps a registry id to its layout body. Ids sharing a body is
// intentional: those layouts have not been authored yet and delegate to the
// modern one, matching the registry's descriptions.
var layoutByID = map[string]string{
	"modern":    "modern.tex.tmpl",
	"academic":  "academic.tex.tmpl",
	"tech":      "modern.tex.tmpl",
	"executive": "modern.tex.tmpl",
	"minimal":   "modern.tex.tmpl",
	"creative":  "modern.tex.tmpl",
}

// templateData is the fully escaped view of a resume handed to a layout
// body. Escaping happens here, once, so the bodies interpolate freely.
type templateData struct {
	Name        string
	ContactLine string
	LinkLine    string
	Summary     string

	Experience   []experienceData
	Education    []educationData
	Projects     []projectData
	Publications []publicationData

	Languages   string
	Frameworks  string
	GPUGraphics string
	Tools       string
}

type experienceData struct {
	Title    string
	Company  string
	Location string
	Dates    string
	Bullets  []string
}

type educationData struct {
	Degree   string
	Field    string
	School   string
	Location string
	EndDate  string
	GPA      string
}

type projectData struct {
	Name     string
	OneLiner string
	Tech     string
	Bullets  []string
}

type publicationData struct {
	Title string
	Venue string
	Year  string
}

// Render produces the LaTeX document for a resume and a registered template
// id. It fails only with *TemplateNotFoundError for an unknown id; partial
// records render with their sections simply absent.
func Render(resume *types.Resume, templateID string) (string, error) {
	t, ok := Get(templateID)
	if !ok {
		return "", &TemplateNotFoundError{ID: templateID}
	}

	layout := layoutByID[t.ID]
	if layout == "" {
		layout = "modern.tex.tmpl"
	}

	var sb strings.Builder
	if err := bodies.ExecuteTemplate(&sb, layout, buildTemplateData(resume)); err != nil {
		return "", &TemplateError{Message: fmt.Sprintf("failed to execute layout %s", layout), Cause: err}
	}
	return sb.String(), nil
}

func buildTemplateData(r *types.Resume) *templateData {
	data := &templateData{
		Name:    "Your Name",
		Summary: EscapeLaTeX(r.Summary),

		Languages:   strings.Join(escapeAll(r.Skills.Languages), ", "),
		Frameworks:  strings.Join(escapeAll(r.Skills.Frameworks), ", "),
		GPUGraphics: strings.Join(escapeAll(r.Skills.GPUGraphics), ", "),
		Tools:       strings.Join(escapeAll(r.Skills.SystemsTools), ", "),
	}
	if r.Identity.Name != "" {
		data.Name = EscapeLaTeX(r.Identity.Name)
	}

	data.ContactLine = contactLine(r.Identity)
	data.LinkLine = linkLine(r.Identity.Links)

	for _, exp := range r.Experience {
		data.Experience = append(data.Experience, experienceData{
			Title:    EscapeLaTeX(exp.Title),
			Company:  EscapeLaTeX(exp.Company),
			Location: EscapeLaTeX(exp.Location),
			Dates:    dateRange(exp.StartDate, exp.EndDate),
			Bullets:  escapeAll(exp.Bullets),
		})
	}

	for _, edu := range r.Education {
		data.Education = append(data.Education, educationData{
			Degree:   EscapeLaTeX(edu.Degree),
			Field:    EscapeLaTeX(edu.Field),
			School:   EscapeLaTeX(edu.School),
			Location: EscapeLaTeX(edu.Location),
			EndDate:  EscapeLaTeX(edu.EndDate),
			GPA:      EscapeLaTeX(edu.GPA),
		})
	}

	for _, proj := range r.Projects {
		data.Projects = append(data.Projects, projectData{
			Name:     EscapeLaTeX(proj.Name),
			OneLiner: EscapeLaTeX(proj.OneLiner),
			Tech:     strings.Join(escapeAll(proj.Tech), ", "),
			Bullets:  escapeAll(proj.Bullets),
		})
	}

	for _, pub := range r.Publications {
		data.Publications = append(data.Publications, publicationData{
			Title: EscapeLaTeX(pub.Title),
			Venue: EscapeLaTeX(pub.Venue),
			Year:  EscapeLaTeX(pub.Year),
		})
	}

	return data
}

func contactLine(id types.Identity) string {
	line := EscapeLaTeX(id.Email)
	if id.Phone != "" {
		line += " | " + EscapeLaTeX(id.Phone)
	}
	return line
}

func linkLine(links []types.Link) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		parts = append(parts, fmt.Sprintf(`\href{%s}{%s}`, EscapeLaTeX(l.URL), l.Type))
	}
	return strings.Join(parts, " | ")
}

// dateRange formats "start -- end", rendering an open end date as Present.
func dateRange(start, end string) string {
	if start == "" {
		return ""
	}
	if end == "" {
		end = "Present"
	}
	return EscapeLaTeX(start) + " -- " + EscapeLaTeX(end)
}

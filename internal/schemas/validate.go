// Package schemas is the validation gate every extracted record passes
// before rendering or relevance analysis. It applies declared defaults to
// absent optional fields and checks the normalized record against an
// embedded JSON Schema plus format constraints.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-tailor/internal/types"
)

//go:embed resume.schema.json job.schema.json
var schemaFS embed.FS

var (
	resumeSchema *gojsonschema.Schema
	jobSchema    *gojsonschema.Schema

	formats = validator.New()
)

func init() {
	resumeSchema = mustCompile("resume.schema.json")
	jobSchema = mustCompile("job.schema.json")
}

func mustCompile(name string) *gojsonschema.Schema {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("schemas: missing embedded schema %s: %v", name, err))
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		panic(fmt.Sprintf("schemas: invalid schema %s: %v", name, err))
	}
	return schema
}

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every field that failed validation. The record it
// was built from is never partially applied.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateResume normalizes a draft resume in place and validates it.
// Defaults (empty lists, zero confidence) are applied before checking, so a
// draft fresh from extraction always passes. Returns *ValidationError on
// failure.
func ValidateResume(r *types.Resume) error {
	if r == nil {
		return &ValidationError{Errors: []FieldError{{Field: "resume", Message: "record is nil"}}}
	}

	applyResumeDefaults(r)

	errs := structural(resumeSchema, r)
	if r.Identity.Email != "" {
		if err := formats.Var(r.Identity.Email, "email"); err != nil {
			errs = append(errs, FieldError{Field: "identity.email", Message: "must be a valid email address"})
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// ValidateJob normalizes a draft job in place and validates it. Returns
// *ValidationError on failure.
func ValidateJob(j *types.Job) error {
	if j == nil {
		return &ValidationError{Errors: []FieldError{{Field: "job", Message: "record is nil"}}}
	}

	applyJobDefaults(j)

	if errs := structural(jobSchema, j); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// structural checks a record against its JSON Schema and maps the results
// to field errors.
func structural(schema *gojsonschema.Schema, record any) []FieldError {
	result, err := schema.Validate(gojsonschema.NewGoLoader(record))
	if err != nil {
		return []FieldError{{Field: "(document)", Message: err.Error()}}
	}
	if result.Valid() {
		return nil
	}

	errs := make([]FieldError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		errs = append(errs, FieldError{Field: re.Field(), Message: re.Description()})
	}
	return errs
}

func applyResumeDefaults(r *types.Resume) {
	if r.Identity.Links == nil {
		r.Identity.Links = []types.Link{}
	}
	if r.Skills.Languages == nil {
		r.Skills.Languages = []string{}
	}
	if r.Skills.Frameworks == nil {
		r.Skills.Frameworks = []string{}
	}
	if r.Skills.GPUGraphics == nil {
		r.Skills.GPUGraphics = []string{}
	}
	if r.Skills.SystemsTools == nil {
		r.Skills.SystemsTools = []string{}
	}
	if r.Experience == nil {
		r.Experience = []types.Experience{}
	}
	for i := range r.Experience {
		if r.Experience[i].Bullets == nil {
			r.Experience[i].Bullets = []string{}
		}
		if r.Experience[i].Tech == nil {
			r.Experience[i].Tech = []string{}
		}
	}
	if r.Education == nil {
		r.Education = []types.Education{}
	}
	if r.Projects == nil {
		r.Projects = []types.Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].Bullets == nil {
			r.Projects[i].Bullets = []string{}
		}
		if r.Projects[i].Tech == nil {
			r.Projects[i].Tech = []string{}
		}
		if r.Projects[i].Links == nil {
			r.Projects[i].Links = []string{}
		}
	}
	if r.Publications == nil {
		r.Publications = []types.Publication{}
	}
	for i := range r.Publications {
		if r.Publications[i].Links == nil {
			r.Publications[i].Links = []string{}
		}
	}
	if r.Certifications == nil {
		r.Certifications = []types.Certification{}
	}
	if r.Metadata.SourceFiles == nil {
		r.Metadata.SourceFiles = []string{}
	}
}

func applyJobDefaults(j *types.Job) {
	if j.Responsibilities == nil {
		j.Responsibilities = []string{}
	}
	if j.RequiredSkills == nil {
		j.RequiredSkills = []string{}
	}
	if j.PreferredSkills == nil {
		j.PreferredSkills = []string{}
	}
	if j.Keywords == nil {
		j.Keywords = []string{}
	}
	if len(j.Keywords) > 50 {
		j.Keywords = j.Keywords[:50]
	}
}

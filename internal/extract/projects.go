package extract

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/types"
)

// maxProjectNameLen caps how long an unbulleted line may be and still start
// a new project entry.
const maxProjectNameLen = 80

// Projects parses the projects section. A short unbulleted line names a new
// entry, with any embedded URL moved into the entry's links. Bulleted lines
// become bullets; the first long unbulleted line becomes the one-liner and
// further long lines become bullets.
func Projects(text string) []types.Project {
	projects := []types.Project{}
	var current *types.Project

	for _, line := range ingestion.NonEmptyLines(text) {
		isBullet := ingestion.IsBulletLine(line)

		switch {
		case len(line) < maxProjectNameLen && !isBullet:
			if current != nil {
				projects = append(projects, *current)
			}
			current = newProject(line)
		case current == nil:
			// Bullets before any project name have nowhere to go.
		case isBullet:
			current.Bullets = append(current.Bullets, ingestion.StripBullet(line))
		case len(line) > 20:
			if current.OneLiner == "" {
				current.OneLiner = line
			} else {
				current.Bullets = append(current.Bullets, line)
			}
		}
	}

	if current != nil {
		projects = append(projects, *current)
	}
	return projects
}

// newProject builds an entry from its name line, extracting an embedded URL
// into the link list and stripping it from the name.
func newProject(line string) *types.Project {
	proj := &types.Project{
		Bullets: []string{},
		Tech:    []string{},
		Links:   []string{},
	}

	if url := urlRe.FindString(line); url != "" {
		proj.Links = append(proj.Links, url)
		line = strings.TrimSpace(strings.Replace(line, url, "", 1))
	}
	proj.Name = line

	return proj
}

// Package templates renders the built-in prompt scaffolds.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/jordyvandomselaar/design-prompts-creator/internal/artifact"
)

//go:embed files/*.md.tmpl
var filesFS embed.FS

// assumptionsSection is appended verbatim to every format when requested.
const assumptionsSection = "\n\n## Assumptions\n\n- Add explicit assumptions here.\n"

// Data is what a template can interpolate
type Data struct {
	StyleName          string
	IncludeAssumptions bool
}

var parsed = template.Must(template.ParseFS(filesFS, "files/*.md.tmpl"))

func filename(f artifact.Format) string {
	return string(f) + ".md.tmpl"
}

// Render produces the markdown body for a format
func Render(f artifact.Format, data Data) (string, error) {
	tmpl := parsed.Lookup(filename(f))
	if tmpl == nil {
		return "", fmt.Errorf("no template for format %q", f)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", f, err)
	}

	if data.IncludeAssumptions {
		buf.WriteString(assumptionsSection)
	}
	return buf.String(), nil
}

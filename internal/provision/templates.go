package provision

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/capsulehq/capsulectl/internal/config"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Renders the embedded template by name against the configuration.
//
// The templates are the managed artifacts handed to systemd, rsyslog, and
// logrotate. Rendering is deterministic for a given configuration, which is
// what makes byte-for-byte idempotence checks possible.
func render(name string, cfg config.Config) ([]byte, error) {
	tmpl, err := template.ParseFS(templates, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

package html

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/philly/arch-blog/postpage/internal/posts/application"
	"github.com/philly/arch-blog/postpage/internal/posts/domain"
)

// SiteTitle is the <title> and heading of the generated page.
type SiteTitle string

// PropsScriptID is the id of the script element holding the page props.
const PropsScriptID = "__POSTPAGE_PROPS__"

const documentTemplate = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
  </head>
  <body>
    <main id="posts">
      <h1>{{.Title}}</h1>
{{- range .Units}}
{{.}}
{{- end}}
    </main>
    <script id="{{.PropsID}}" type="application/json">{{.Props}}</script>
  </body>
</html>
`

// Document assembles rendered units into a complete HTML page.
type Document struct {
	title string
	tmpl  *template.Template
}

// NewDocument creates a new document renderer
func NewDocument(title SiteTitle) *Document {
	return &Document{
		title: string(title),
		tmpl:  template.Must(template.New("document").Parse(documentTemplate)),
	}
}

// Render writes the page for units. The props are embedded as JSON so the
// rendered units can be matched back to their records by key.
func (d *Document) Render(props domain.PropsPayload, units []application.RenderedPost) ([]byte, error) {
	propsJSON, err := json.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("Document.Render: marshal props: %w", err)
	}
	escaped := strings.ReplaceAll(string(propsJSON), "</", `<\/`)

	rendered := make([]template.HTML, len(units))
	for i, u := range units {
		rendered[i] = template.HTML(u.HTML)
	}

	var buf bytes.Buffer
	err = d.tmpl.Execute(&buf, map[string]any{
		"Title":   d.title,
		"Units":   rendered,
		"PropsID": PropsScriptID,
		"Props":   template.JS(escaped),
	})
	if err != nil {
		return nil, fmt.Errorf("Document.Render: %w", err)
	}
	return buf.Bytes(), nil
}

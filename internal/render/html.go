package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/samandr77/microservices/invoice/internal/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

var printTemplate = template.Must(template.ParseFS(templatesFS, "templates/print.html"))

// HTML renders pages for the browser's print dialog. Images are referenced by URL, not embedded.
type HTML struct {
	logoURL   string
	footerURL string
}

func NewHTML(logoURL, footerURL string) *HTML {
	return &HTML{
		logoURL:   logoURL,
		footerURL: footerURL,
	}
}

func (h *HTML) Print(w io.Writer, doc entity.Document, tmpl entity.Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	v := newView(doc, tmpl)
	v.LogoURL = h.logoURL
	v.FooterURL = h.footerURL

	if err := printTemplate.Execute(w, v); err != nil {
		return fmt.Errorf("printTemplate.Execute: %w", err)
	}

	return nil
}

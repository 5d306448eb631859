package entity

import "fmt"

// Template is one of the two visual renderings of the same invoice data.
type Template string

const (
	TemplateClassic Template = "classic"
	TemplateSmart   Template = "smart"
)

func (t Template) String() string {
	return string(t)
}

func (t Template) Validate() error {
	switch t {
	case TemplateClassic, TemplateSmart:
		return nil
	default:
		return fmt.Errorf("%w: unknown template %q", ErrInvalidArgument, string(t))
	}
}

// ExportChannel tells how a rendered invoice left the service.
type ExportChannel string

const (
	ExportChannelDownload ExportChannel = "download"
	ExportChannelEmail    ExportChannel = "email"
)

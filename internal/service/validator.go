package service

import (
	"fmt"

	"github.com/samandr77/microservices/invoice/internal/entity"
)

// ParseTemplate reads a template name from a request. An empty name means classic.
func ParseTemplate(name string) (entity.Template, error) {
	if name == "" {
		return entity.TemplateClassic, nil
	}

	tmpl := entity.Template(name)

	err := tmpl.Validate()
	if err != nil {
		return "", fmt.Errorf("template: %w", err)
	}

	return tmpl, nil
}

// Package assets provides the HTML templates embedded in the binary, so the
// renderer works without any external asset directory.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed templates
var templatesFS embed.FS

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)

// LoadTemplate returns the embedded template with the given name.
func LoadTemplate(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	data, err := templatesFS.ReadFile("templates/" + name + ".html.tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(data), nil
}

// validateName rejects names that could traverse out of the embedded tree.
func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

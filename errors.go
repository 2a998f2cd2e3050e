package resume2pdf

import (
	"errors"

	"github.com/resumekit/go-resume2pdf/internal/resume"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// ErrMalformedDocument is returned when the input has no top-level
	// heading to use as the person's name. Re-exported from the parser so
	// callers match it without importing internal packages.
	ErrMalformedDocument = resume.ErrMalformedDocument

	// Configuration validation errors.
	ErrInvalidHeaderColor = errors.New("invalid header color")
	ErrUnknownFontScheme  = errors.New("unknown font scheme")
	ErrUnknownEngine      = errors.New("unknown PDF engine")

	// Rendering and browser errors.
	ErrHTMLRender     = errors.New("HTML rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)

package resume2pdf

import (
	"context"
	"fmt"

	"github.com/resumekit/go-resume2pdf/internal/layout"
	"github.com/resumekit/go-resume2pdf/internal/resume"
	"github.com/resumekit/go-resume2pdf/internal/sizing"
)

// Service orchestrates the résumé rendering pipeline: parse, classify and
// order, estimate volume, resolve sizing, build HTML, print to PDF.
// The pipeline is single-pass with no re-layout feedback loop.
type Service struct {
	cfg     serviceConfig
	builder *layout.Builder
	pdf     pdfConverter
}

// New creates a Service. Use options to customize behavior (WithTimeout,
// WithEngine). Returns ErrUnknownEngine for an unrecognized engine name.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg:     serviceConfig{timeout: defaultTimeout, engine: EngineRod},
		builder: layout.NewBuilder(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// PDF converter may be injected by tests before first use.
	if s.pdf == nil {
		switch s.cfg.engine {
		case EngineRod:
			s.pdf = newRodConverter(s.cfg.timeout)
		case EngineChromedp:
			s.pdf = newChromedpConverter(s.cfg.timeout)
		default:
			return nil, fmt.Errorf("%w: %q (valid: rod, chromedp)", ErrUnknownEngine, s.cfg.engine)
		}
	}

	return s, nil
}

// Convert runs the full pipeline and returns the PDF as bytes.
// The same input and configuration always produce identical output.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	htmlContent, params, err := s.render(input)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfBytes, err := s.pdf.ToPDF(ctx, htmlContent, &pdfOptions{MarginInches: params.MarginInches})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdfBytes, nil
}

// RenderHTML runs the pipeline up to the styled HTML document, for
// debugging output and HTML-only mode.
func (s *Service) RenderHTML(ctx context.Context, input Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	htmlContent, _, err := s.render(input)
	return htmlContent, err
}

// render executes the core transformation shared by Convert and RenderHTML.
func (s *Service) render(input Input) (string, sizing.Parameters, error) {
	var params sizing.Parameters

	if err := s.validateInput(input); err != nil {
		return "", params, err
	}

	doc, err := resume.Parse(input.Markdown)
	if err != nil {
		return "", params, err
	}
	doc.Sections = resume.Order(doc.Sections)

	volume := sizing.Estimate(doc)
	params = sizing.Resolve(volume, modeToSizing(input.Mode))

	htmlContent, err := s.builder.Build(doc, params, input.Style.theme())
	if err != nil {
		return "", params, fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return htmlContent, params, nil
}

// Close releases resources (the headless browser, if one was started).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return input.Style.Validate()
}

// modeToSizing converts the public Mode to the sizing package's type.
func modeToSizing(m Mode) sizing.Mode {
	if m == ModeOnePage {
		return sizing.ModeOnePage
	}
	return sizing.ModeMultiPage
}

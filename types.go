package resume2pdf

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/resumekit/go-resume2pdf/internal/layout"
)

// Mode selects the pagination target.
type Mode int

const (
	// ModeMultiPage renders at full size across as many pages as needed.
	ModeMultiPage Mode = iota
	// ModeOnePage applies content-aware compression to fit a single page.
	// The fit is heuristic: pathological inputs may still overflow, in
	// which case the PDF simply spans more pages.
	ModeOnePage
)

// PDF engine names.
const (
	EngineRod      = "rod"
	EngineChromedp = "chromedp"
)

// Default style values, matching the original template.
const (
	DefaultHeaderColor = "#4A6741"
	DefaultFontScheme  = "modern"
)

// BannerWhite disables the colored banner: white background, dark text.
const BannerWhite = "white"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Style is the immutable styling configuration for one render.
type Style struct {
	// HeaderColor is the banner background: a "#RRGGBB" hex value or
	// "white" for an unstyled banner with dark text.
	HeaderColor string
	// FontScheme names a font-family preset: modern, classic, typewriter.
	FontScheme string
}

// DefaultStyle returns the stock green banner with the modern font scheme.
func DefaultStyle() Style {
	return Style{HeaderColor: DefaultHeaderColor, FontScheme: DefaultFontScheme}
}

// Validate checks the style fields. Invalid values are rejected with the
// offending field and value, never silently defaulted.
func (s Style) Validate() error {
	if !strings.EqualFold(s.HeaderColor, BannerWhite) && !hexColor.MatchString(s.HeaderColor) {
		return fmt.Errorf("%w: %q (want \"#RRGGBB\" or \"white\")", ErrInvalidHeaderColor, s.HeaderColor)
	}
	if _, ok := layout.FontSchemeByName(s.FontScheme); !ok {
		return fmt.Errorf("%w: %q (valid: %s)", ErrUnknownFontScheme, s.FontScheme,
			strings.Join(layout.FontSchemeNames(), ", "))
	}
	return nil
}

// theme resolves the validated style into the layout theme.
func (s Style) theme() layout.Theme {
	scheme, _ := layout.FontSchemeByName(s.FontScheme)
	color := s.HeaderColor
	if strings.EqualFold(color, BannerWhite) {
		color = BannerWhite
	}
	return layout.Theme{BannerColor: color, Fonts: scheme}
}

// Input contains the parameters for one conversion.
type Input struct {
	Markdown string // Markdown résumé content (required)
	Mode     Mode
	Style    Style
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	engine  string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resume2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithEngine selects the headless-Chrome backend: EngineRod (default) or
// EngineChromedp. Unknown names are rejected when the Service is first used.
func WithEngine(name string) Option {
	return func(s *Service) {
		s.cfg.engine = name
	}
}

// ValidEngines lists the supported PDF engine names.
func ValidEngines() []string {
	return []string{EngineRod, EngineChromedp}
}
